package firestore

import (
	"context"
	"time"

	"kasir/internal/domain/entity"
	"kasir/internal/domain/repository"
	"kasir/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// cartItemRepository implements repository.CartItemRepository on Firestore.
type cartItemRepository struct {
	session
}

// NewCartItemRepository is the constructor for cartItemRepository.
func NewCartItemRepository(client *firestore.Client) repository.CartItemRepository {
	return &cartItemRepository{session{client: client}}
}

func (repo *cartItemRepository) collection(businessID string) *firestore.CollectionRef {
	return repo.businessDoc(businessID).Collection(collectionCartItem)
}

// FindByID retrieves a single cart item under the given business.
func (repo *cartItemRepository) FindByID(ctx context.Context, businessID, itemID string) (*entity.CartItem, error) {
	snap, err := repo.get(ctx, repo.collection(businessID).Doc(itemID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to get cart item document")
	}

	var doc model.CartItemDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart item document")
	}

	return doc.ToCartItemDomain(), nil
}

// Exists reports whether a cart item document with the given id is present.
func (repo *cartItemRepository) Exists(ctx context.Context, businessID, itemID string) (bool, error) {
	snap, err := repo.get(ctx, repo.collection(businessID).Doc(itemID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to probe cart item document")
	}

	return snap.Exists(), nil
}

// Create persists a new cart item document keyed by its id.
func (repo *cartItemRepository) Create(ctx context.Context, item *entity.CartItem) error {
	if err := repo.set(ctx, repo.collection(item.BusinessID).Doc(item.ID), model.FromCartItemDomain(item)); err != nil {
		return errors.Wrap(err, "failed to create cart item document")
	}

	return nil
}

// ListUnassigned returns all items whose transaction id is still empty, in
// store-native order.
func (repo *cartItemRepository) ListUnassigned(ctx context.Context, businessID string) ([]*entity.CartItem, error) {
	query := repo.collection(businessID).Where(fieldTransactionID, "==", "")

	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var items []*entity.CartItem
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate cart item documents")
		}

		var doc model.CartItemDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode cart item document")
		}
		items = append(items, doc.ToCartItemDomain())
	}

	return items, nil
}

// UpdateCount sets the item's count and updatedAt; nothing else is mutable
// after creation.
func (repo *cartItemRepository) UpdateCount(ctx context.Context, businessID, itemID string, count int64, updatedAt time.Time) error {
	updates := []firestore.Update{
		{Path: fieldCount, Value: count},
		{Path: fieldUpdatedAt, Value: updatedAt},
	}

	if err := repo.update(ctx, repo.collection(businessID).Doc(itemID), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to update cart item count")
	}

	return nil
}

// Claim stamps the item with the given transaction id.
func (repo *cartItemRepository) Claim(ctx context.Context, businessID, itemID, transactionID string) error {
	updates := []firestore.Update{
		{Path: fieldTransactionID, Value: transactionID},
	}

	if err := repo.update(ctx, repo.collection(businessID).Doc(itemID), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to claim cart item")
	}

	return nil
}

// Delete removes the cart item document.
func (repo *cartItemRepository) Delete(ctx context.Context, businessID, itemID string) error {
	if err := repo.delete(ctx, repo.collection(businessID).Doc(itemID)); err != nil {
		return errors.Wrap(err, "failed to delete cart item document")
	}

	return nil
}
