package firestore

import (
	"context"

	"kasir/internal/domain/entity"
	"kasir/internal/domain/repository"
	"kasir/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// businessRepository implements repository.BusinessRepository on Firestore.
type businessRepository struct {
	session
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *firestore.Client) repository.BusinessRepository {
	return &businessRepository{session{client: client}}
}

// FindByID retrieves a single business by its identifier.
func (repo *businessRepository) FindByID(ctx context.Context, businessID string) (*entity.Business, error) {
	snap, err := repo.get(ctx, repo.businessDoc(businessID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to get business document")
	}

	var doc model.BusinessDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode business document")
	}

	return doc.ToBusinessDomain(), nil
}

// Exists reports whether a business document with the given id is present.
func (repo *businessRepository) Exists(ctx context.Context, businessID string) (bool, error) {
	snap, err := repo.get(ctx, repo.businessDoc(businessID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to probe business document")
	}

	return snap.Exists(), nil
}

// Create persists a new business document keyed by its id.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	if err := repo.set(ctx, repo.businessDoc(business.ID), model.FromBusinessDomain(business)); err != nil {
		return errors.Wrap(err, "failed to create business document")
	}

	return nil
}

// Patch applies a partial update built field-by-field from the non-nil slots.
func (repo *businessRepository) Patch(ctx context.Context, businessID string, patch *entity.BusinessPatch) error {
	updates := []firestore.Update{{Path: fieldUpdatedAt, Value: patch.UpdatedAt}}
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: fieldName, Value: *patch.Name})
	}
	if patch.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: *patch.Address})
	}
	if patch.Province != nil {
		updates = append(updates, firestore.Update{Path: "province", Value: *patch.Province})
	}
	if patch.City != nil {
		updates = append(updates, firestore.Update{Path: "city", Value: *patch.City})
	}
	if patch.District != nil {
		updates = append(updates, firestore.Update{Path: "district", Value: *patch.District})
	}
	if patch.PostalCode != nil {
		updates = append(updates, firestore.Update{Path: "postalCode", Value: *patch.PostalCode})
	}

	if err := repo.update(ctx, repo.businessDoc(businessID), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to patch business document")
	}

	return nil
}
