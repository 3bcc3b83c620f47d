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

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	CheckoutUC    usecase.CheckoutUsecase
	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler holds dependencies for checkout and transaction reads.
type TransactionHandler struct {
	checkoutUC    usecase.CheckoutUsecase
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler.
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		checkoutUC:    params.CheckoutUC,
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// AssembleTransactionRequest represents the checkout request body. The total
// payment is in currency minor units.
type AssembleTransactionRequest struct {
	TotalPayment int64 `json:"total_payment" validate:"gte=0"`
}

// AssembleTransaction handles the checkout: every unassigned cart item of the
// business is claimed into a new transaction.
func (h *TransactionHandler) AssembleTransaction(c echo.Context) error {
	var req AssembleTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	transaction, err := h.checkoutUC.AssembleTransaction(c.Request().Context(), c.Param("businessId"), req.TotalPayment)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Transaction assembled successfully")
}

// ListTransactions handles listing all finalized transactions, newest first.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionUC.ListTransactions(c.Request().Context(), c.Param("businessId"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions, "Transactions retrieved successfully")
}

// GetTransaction handles retrieving a single transaction with its lines.
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.transactionUC.GetTransaction(c.Request().Context(), c.Param("businessId"), c.Param("transactionId"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transaction, "Transaction retrieved successfully")
}

// handleAppError handles application errors
func (h *TransactionHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
