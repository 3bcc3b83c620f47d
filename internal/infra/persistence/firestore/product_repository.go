package firestore

import (
	"context"

	"kasir/internal/domain/entity"
	"kasir/internal/domain/repository"
	"kasir/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productRepository implements repository.ProductRepository on Firestore.
type productRepository struct {
	session
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{session{client: client}}
}

func (repo *productRepository) collection(businessID string) *firestore.CollectionRef {
	return repo.businessDoc(businessID).Collection(collectionProduct)
}

// FindByID retrieves a single product under the given business.
func (repo *productRepository) FindByID(ctx context.Context, businessID, productID string) (*entity.Product, error) {
	snap, err := repo.get(ctx, repo.collection(businessID).Doc(productID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product document")
	}

	var doc model.ProductDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return doc.ToProductDomain(), nil
}

// Exists reports whether a product document with the given id is present.
func (repo *productRepository) Exists(ctx context.Context, businessID, productID string) (bool, error) {
	snap, err := repo.get(ctx, repo.collection(businessID).Doc(productID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to probe product document")
	}

	return snap.Exists(), nil
}

// ExistsByName reports whether a product with the exact given name is present.
func (repo *productRepository) ExistsByName(ctx context.Context, businessID, name string) (bool, error) {
	iter := repo.documents(ctx, repo.collection(businessID).Where(fieldName, "==", name).Limit(1))
	defer iter.Stop()

	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to query product by name")
	}

	return true, nil
}

// Create persists a new product document keyed by its id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.set(ctx, repo.collection(product.BusinessID).Doc(product.ID), model.FromProductDomain(product)); err != nil {
		return errors.Wrap(err, "failed to create product document")
	}

	return nil
}

// ListByCreatedDesc returns all products under the business, newest first.
func (repo *productRepository) ListByCreatedDesc(ctx context.Context, businessID string) ([]*entity.Product, error) {
	query := repo.collection(businessID).OrderBy(fieldCreatedAt, firestore.Desc)

	return repo.collect(ctx, query)
}

// SearchByPrefix returns products whose prefix index contains the exact
// (already lowercased) query string.
func (repo *productRepository) SearchByPrefix(ctx context.Context, businessID, prefix string) ([]*entity.Product, error) {
	query := repo.collection(businessID).Where(fieldPrefixes, "array-contains", prefix)

	return repo.collect(ctx, query)
}

func (repo *productRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var products []*entity.Product
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate product documents")
		}

		var doc model.ProductDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}
		products = append(products, doc.ToProductDomain())
	}

	return products, nil
}

// Patch applies a partial update built field-by-field from the non-nil slots.
// A name change always ships the rebuilt prefix index with it.
func (repo *productRepository) Patch(ctx context.Context, businessID, productID string, patch *entity.ProductPatch) error {
	updates := []firestore.Update{{Path: fieldUpdatedAt, Value: patch.UpdatedAt}}
	if patch.Name != nil {
		updates = append(updates,
			firestore.Update{Path: fieldName, Value: *patch.Name},
			firestore.Update{Path: fieldPrefixes, Value: patch.Prefixes},
		)
	}
	if patch.Cost != nil {
		updates = append(updates, firestore.Update{Path: "cost", Value: *patch.Cost})
	}
	if patch.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *patch.Price})
	}
	if patch.Stock != nil {
		updates = append(updates, firestore.Update{Path: "stock", Value: *patch.Stock})
	}
	if patch.ImageURL != nil {
		updates = append(updates, firestore.Update{Path: "imageUrl", Value: *patch.ImageURL})
	}

	if err := repo.update(ctx, repo.collection(businessID).Doc(productID), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to patch product document")
	}

	return nil
}

// Delete removes the product document.
func (repo *productRepository) Delete(ctx context.Context, businessID, productID string) error {
	if err := repo.delete(ctx, repo.collection(businessID).Doc(productID)); err != nil {
		return errors.Wrap(err, "failed to delete product document")
	}

	return nil
}
