package impl

import (
	"context"
	"log/slog"
	"time"

	"kasir/internal/domain/constants"
	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/repository"
	"kasir/internal/domain/service"
	"kasir/internal/usecase"

	"github.com/pkg/errors"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	allocator    service.IDAllocator
	logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	allocator service.IDAllocator,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		allocator:    allocator,
		logger:       logger,
	}
}

// CreateBusiness allocates a fresh business id and persists the profile with
// the authenticated caller recorded as owner.
func (srv *businessService) CreateBusiness(ctx context.Context, ownerID string, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	if ownerID == "" || input.Name == "" || input.Address == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "owner id, name and address are required")
	}

	businessID, err := srv.allocator.Allocate(ctx, constants.BusinessIDLength, func(ctx context.Context, id string) (bool, error) {
		return srv.businessRepo.Exists(ctx, id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate business id")
	}

	now := time.Now().UTC()
	business := &entity.Business{
		ID:         businessID,
		Name:       input.Name,
		Address:    input.Address,
		Province:   input.Province,
		City:       input.City,
		District:   input.District,
		PostalCode: input.PostalCode,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.logger.Info("Business created", "businessID", businessID, "ownerID", ownerID)

	return business, nil
}

// GetBusiness retrieves a business profile, restricted to its owner.
func (srv *businessService) GetBusiness(ctx context.Context, requesterID, businessID string) (*entity.Business, error) {
	business, err := srv.findOwned(ctx, requesterID, businessID)
	if err != nil {
		return nil, err
	}

	return business, nil
}

// UpdateBusiness applies a partial profile update, restricted to the owner.
func (srv *businessService) UpdateBusiness(ctx context.Context, requesterID, businessID string, input *usecase.UpdateBusinessInput) error {
	if _, err := srv.findOwned(ctx, requesterID, businessID); err != nil {
		return err
	}

	if input.Name != nil && *input.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "business name must not be empty")
	}

	patch := &entity.BusinessPatch{
		Name:       input.Name,
		Address:    input.Address,
		Province:   input.Province,
		City:       input.City,
		District:   input.District,
		PostalCode: input.PostalCode,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := srv.businessRepo.Patch(ctx, businessID, patch); err != nil {
		return errors.Wrap(err, "failed to update business")
	}

	return nil
}

// findOwned loads the business and enforces that the requester owns it.
func (srv *businessService) findOwned(ctx context.Context, requesterID, businessID string) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if business.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrBusinessOwnershipViolation, "business belongs to another user")
	}

	return business, nil
}
