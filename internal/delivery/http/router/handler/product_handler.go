package handler

import (
	"io"
	"log/slog"
	"net/http"

	"kasir/internal/delivery/http/response"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxImageBytes caps a product image upload at 5 MiB.
const maxImageBytes = 5 << 20

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
// Prices are in currency minor units.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Cost     int64  `json:"cost" validate:"required,gt=0"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Stock    int64  `json:"stock" validate:"required,gt=0"`
	ImageURL string `json:"image_url"`
}

// UpdateProductRequest represents the request body for updating a product.
type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	Cost     *int64  `json:"cost,omitempty" validate:"omitempty,gt=0"`
	Price    *int64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock    *int64  `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL *string `json:"image_url,omitempty"`
}

// CreateProduct handles creating a new product.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateProductInput{
		Name:     req.Name,
		Cost:     req.Cost,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), c.Param("businessId"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// SearchProducts handles the product listing; the optional queryName
// parameter narrows the result to name prefix matches.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	products, err := h.productUC.SearchProducts(c.Request().Context(), c.Param("businessId"), c.QueryParam("queryName"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles retrieving a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("businessId"), c.Param("productId"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// UpdateProduct handles a partial product update.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProductInput{
		Name:     req.Name,
		Cost:     req.Cost,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}

	if err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("businessId"), c.Param("productId"), input); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// DeleteProduct handles deleting a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("businessId"), c.Param("productId")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UploadProductImage handles a multipart image upload and returns the public
// URL to reference from a product.
func (h *ProductHandler) UploadProductImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}
	if fileHeader.Size > maxImageBytes {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the 5 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to open image file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return response.InternalServerError(c, "INTERNAL_ERROR", "Failed to read image file")
	}

	input := &usecase.UploadProductImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	url, err := h.productUC.UploadProductImage(c.Request().Context(), c.Param("businessId"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"image_url": url}, "Image uploaded successfully")
}

// handleAppError handles application errors
func (h *ProductHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
