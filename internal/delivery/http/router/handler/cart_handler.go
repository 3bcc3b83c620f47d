package handler

import (
	"log/slog"
	"net/http"

	"kasir/internal/delivery/http/response"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart item handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding a cart item.
type AddCartItemRequest struct {
	Name      string `json:"name" validate:"required"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	Count     int64  `json:"count" validate:"required,gte=1"`
	ImageURL  string `json:"image_url"`
}

// EditCountRequest represents the request body for editing an item count.
// A count below one deletes the item.
type EditCountRequest struct {
	Count int64 `json:"count"`
}

// AddCartItem handles adding an item to the cart.
func (h *CartHandler) AddCartItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddCartItemInput{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Count:     req.Count,
		ImageURL:  req.ImageURL,
	}

	item, err := h.cartUC.AddCartItem(c.Request().Context(), c.Param("businessId"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Cart item added successfully")
}

// ListUnassigned handles listing the items still available for checkout.
func (h *CartHandler) ListUnassigned(c echo.Context) error {
	items, err := h.cartUC.ListUnassigned(c.Request().Context(), c.Param("businessId"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Cart items retrieved successfully")
}

// GetCartItem handles retrieving a single cart item.
func (h *CartHandler) GetCartItem(c echo.Context) error {
	item, err := h.cartUC.GetCartItem(c.Request().Context(), c.Param("businessId"), c.Param("itemId"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Cart item retrieved successfully")
}

// EditCount handles updating a cart item's quantity.
func (h *CartHandler) EditCount(c echo.Context) error {
	var req EditCountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid count input")
	}

	deleted, err := h.cartUC.EditCount(c.Request().Context(), c.Param("businessId"), c.Param("itemId"), req.Count)
	if err != nil {
		return h.handleAppError(c, err)
	}

	if deleted {
		return response.Success(c, http.StatusOK, map[string]bool{"deleted": true}, "Cart item deleted")
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": false}, "Cart item count updated")
}

// handleAppError handles application errors
func (h *CartHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
