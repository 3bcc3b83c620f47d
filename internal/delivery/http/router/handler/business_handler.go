// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"kasir/internal/delivery/http/middleware"
	"kasir/internal/delivery/http/response"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for business-profile handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// CreateBusinessRequest represents the request body for creating a business.
type CreateBusinessRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Province   string `json:"province"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}

// UpdateBusinessRequest represents the request body for updating a business.
type UpdateBusinessRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	Province   *string `json:"province,omitempty"`
	City       *string `json:"city,omitempty"`
	District   *string `json:"district,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// CreateBusiness handles creating a new business profile.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	subject, err := middleware.SubjectFromContext(c)
	if err != nil {
		return err
	}

	var req CreateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateBusinessInput{
		Name:       req.Name,
		Address:    req.Address,
		Province:   req.Province,
		City:       req.City,
		District:   req.District,
		PostalCode: req.PostalCode,
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), subject, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// GetBusiness handles retrieving the caller's business profile.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	subject, err := middleware.SubjectFromContext(c)
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), subject, c.Param("businessId"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// UpdateBusiness handles a partial update of the caller's business profile.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	subject, err := middleware.SubjectFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	input := &usecase.UpdateBusinessInput{
		Name:       req.Name,
		Address:    req.Address,
		Province:   req.Province,
		City:       req.City,
		District:   req.District,
		PostalCode: req.PostalCode,
	}

	if err := h.businessUC.UpdateBusiness(c.Request().Context(), subject, c.Param("businessId"), input); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Business updated successfully")
}

// handleAppError handles application errors
func (h *BusinessHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
