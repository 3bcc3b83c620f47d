package impl

import (
	"context"
	"testing"
	"time"

	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBusinessID = "biz-0001"

func newCheckoutFixture() (*fakeCartItemRepo, *fakeTransactionRepo, *recordingPublisher, *checkoutService) {
	cartRepo := newFakeCartItemRepo()
	transactionRepo := newFakeTransactionRepo()
	publisher := &recordingPublisher{}
	txManager := &fakeTxManager{cartRepo: cartRepo, transactionRepo: transactionRepo}
	allocator := &stubAllocator{ids: []string{"txn-0001", "txn-0002"}}

	svc := NewCheckoutService(txManager, transactionRepo, allocator, publisher, discardLogger()).(*checkoutService)

	return cartRepo, transactionRepo, publisher, svc
}

func addItem(t *testing.T, repo *fakeCartItemRepo, id, name string, unitPrice, count int64) {
	t.Helper()
	now := time.Now().UTC()
	err := repo.Create(context.Background(), &entity.CartItem{
		ID:         id,
		BusinessID: testBusinessID,
		Name:       name,
		UnitPrice:  unitPrice,
		Count:      count,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
}

func TestAssembleTransaction_ClaimsAllUnassignedItems(t *testing.T) {
	cartRepo, transactionRepo, publisher, svc := newCheckoutFixture()

	addItem(t, cartRepo, "item-tea", "Tea", 15000, 3)
	addItem(t, cartRepo, "item-coffee", "Coffee", 22000, 1)

	transaction, err := svc.AssembleTransaction(context.Background(), testBusinessID, 100000)
	require.NoError(t, err)
	require.NotNil(t, transaction)

	assert.Equal(t, "txn-0001", transaction.ID)
	assert.Equal(t, testBusinessID, transaction.BusinessID)
	assert.Equal(t, int64(100000), transaction.TotalPayment)
	require.Len(t, transaction.Lines, 2)

	byItem := make(map[string]entity.TransactionLine, len(transaction.Lines))
	for _, line := range transaction.Lines {
		byItem[line.ItemID] = line
	}
	assert.Equal(t, int64(45000), byItem["item-tea"].ExtendedPrice)
	assert.Equal(t, int64(3), byItem["item-tea"].Count)
	assert.Equal(t, int64(22000), byItem["item-coffee"].ExtendedPrice)

	// Both items carry the transaction stamp afterwards.
	for _, id := range []string{"item-tea", "item-coffee"} {
		item, err := cartRepo.FindByID(context.Background(), testBusinessID, id)
		require.NoError(t, err)
		assert.Equal(t, "txn-0001", item.TransactionID)
		assert.False(t, item.Unassigned())
	}

	// The aggregate is persisted and the event published.
	stored, err := transactionRepo.FindByID(context.Background(), testBusinessID, "txn-0001")
	require.NoError(t, err)
	assert.Len(t, stored.Lines, 2)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "txn-0001", publisher.events[0].TransactionID)
	assert.Equal(t, 2, publisher.events[0].LineCount)
}

func TestAssembleTransaction_SecondCheckoutSeesOnlyNewItems(t *testing.T) {
	cartRepo, _, _, svc := newCheckoutFixture()

	addItem(t, cartRepo, "item-tea", "Tea", 15000, 3)

	first, err := svc.AssembleTransaction(context.Background(), testBusinessID, 45000)
	require.NoError(t, err)
	require.Len(t, first.Lines, 1)

	addItem(t, cartRepo, "item-coffee", "Coffee", 22000, 1)

	second, err := svc.AssembleTransaction(context.Background(), testBusinessID, 22000)
	require.NoError(t, err)
	require.Len(t, second.Lines, 1)
	assert.Equal(t, "item-coffee", second.Lines[0].ItemID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAssembleTransaction_EmptyCartCreatesNothing(t *testing.T) {
	_, transactionRepo, publisher, svc := newCheckoutFixture()

	transaction, err := svc.AssembleTransaction(context.Background(), testBusinessID, 0)
	require.Error(t, err)
	assert.Nil(t, transaction)
	assert.True(t, errors.Is(err, domainerrors.ErrNoPendingItems))

	list, listErr := transactionRepo.ListByCreatedDesc(context.Background(), testBusinessID)
	require.NoError(t, listErr)
	assert.Empty(t, list)
	assert.Empty(t, publisher.events)
}

func TestAssembleTransaction_ValidatesInput(t *testing.T) {
	_, _, _, svc := newCheckoutFixture()

	_, err := svc.AssembleTransaction(context.Background(), "", 100)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = svc.AssembleTransaction(context.Background(), testBusinessID, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAssembleTransaction_FailedCommitStampsNothing(t *testing.T) {
	cartRepo, transactionRepo, publisher, svc := newCheckoutFixture()

	addItem(t, cartRepo, "item-tea", "Tea", 15000, 3)
	transactionRepo.createErr = errors.New("deadline exceeded")

	transaction, err := svc.AssembleTransaction(context.Background(), testBusinessID, 45000)
	require.Error(t, err)
	assert.Nil(t, transaction)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceFailure))

	// The rollback left the item unclaimed and available for a retry.
	item, findErr := cartRepo.FindByID(context.Background(), testBusinessID, "item-tea")
	require.NoError(t, findErr)
	assert.True(t, item.Unassigned())
	assert.Empty(t, publisher.events)
}

func TestAssembleTransaction_AllocatorFailurePropagates(t *testing.T) {
	cartRepo := newFakeCartItemRepo()
	transactionRepo := newFakeTransactionRepo()
	txManager := &fakeTxManager{cartRepo: cartRepo, transactionRepo: transactionRepo}
	allocator := &stubAllocator{err: domainerrors.ErrIDSpaceExhausted}

	svc := NewCheckoutService(txManager, transactionRepo, allocator, &recordingPublisher{}, discardLogger())

	addItem(t, cartRepo, "item-tea", "Tea", 15000, 3)

	_, err := svc.AssembleTransaction(context.Background(), testBusinessID, 45000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIDSpaceExhausted))
}

func TestAssembleTransaction_PublishFailureDoesNotFailCheckout(t *testing.T) {
	cartRepo, _, publisher, svc := newCheckoutFixture()
	publisher.err = errors.New("broker unavailable")

	addItem(t, cartRepo, "item-tea", "Tea", 15000, 3)

	transaction, err := svc.AssembleTransaction(context.Background(), testBusinessID, 45000)
	require.NoError(t, err)
	assert.Equal(t, "txn-0001", transaction.ID)
}
