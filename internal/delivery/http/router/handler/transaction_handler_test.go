package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kasir/internal/delivery/http/validator"
	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheckoutUsecase struct {
	transaction *entity.Transaction
	err         error

	gotBusinessID   string
	gotTotalPayment int64
}

func (s *stubCheckoutUsecase) AssembleTransaction(_ context.Context, businessID string, totalPayment int64) (*entity.Transaction, error) {
	s.gotBusinessID = businessID
	s.gotTotalPayment = totalPayment

	return s.transaction, s.err
}

type stubTransactionUsecase struct {
	transactions []*entity.Transaction
	transaction  *entity.Transaction
	err          error
}

func (s *stubTransactionUsecase) ListTransactions(_ context.Context, _ string) ([]*entity.Transaction, error) {
	return s.transactions, s.err
}

func (s *stubTransactionUsecase) GetTransaction(_ context.Context, _, _ string) (*entity.Transaction, error) {
	return s.transaction, s.err
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTransactionHandler_AssembleTransaction(t *testing.T) {
	checkout := &stubCheckoutUsecase{
		transaction: &entity.Transaction{
			ID:         "txn-0001",
			BusinessID: "biz-0001",
			Lines: []entity.TransactionLine{
				{ItemID: "item-tea", Name: "Tea", Count: 3, ExtendedPrice: 45000},
			},
			TotalPayment: 50000,
			CreatedAt:    time.Now().UTC(),
		},
	}
	h := &TransactionHandler{checkoutUC: checkout, logger: slog.Default()}

	c, rec := newTestContext(t, http.MethodPost, "/business/biz-0001/transaction", `{"total_payment":50000}`)
	c.SetParamNames("businessId")
	c.SetParamValues("biz-0001")

	require.NoError(t, h.AssembleTransaction(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "biz-0001", checkout.gotBusinessID)
	assert.Equal(t, int64(50000), checkout.gotTotalPayment)
	assert.Contains(t, rec.Body.String(), "txn-0001")
}

func TestTransactionHandler_AssembleTransaction_EmptyCart(t *testing.T) {
	checkout := &stubCheckoutUsecase{err: domainerrors.ErrNoPendingItems}
	h := &TransactionHandler{checkoutUC: checkout, logger: slog.Default()}

	c, rec := newTestContext(t, http.MethodPost, "/business/biz-0001/transaction", `{"total_payment":0}`)
	c.SetParamNames("businessId")
	c.SetParamValues("biz-0001")

	require.NoError(t, h.AssembleTransaction(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_PENDING_ITEMS")
}

func TestTransactionHandler_GetTransaction_NotFound(t *testing.T) {
	reader := &stubTransactionUsecase{err: domainerrors.ErrTransactionNotFound}
	h := &TransactionHandler{transactionUC: reader, logger: slog.Default()}

	c, rec := newTestContext(t, http.MethodGet, "/business/biz-0001/transaction/missing", "")
	c.SetParamNames("businessId", "transactionId")
	c.SetParamValues("biz-0001", "missing")

	require.NoError(t, h.GetTransaction(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
