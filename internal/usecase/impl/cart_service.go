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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo  repository.CartItemRepository
	allocator service.IDAllocator
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartItemRepository,
	allocator service.IDAllocator,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:  cartRepo,
		allocator: allocator,
		logger:    logger,
	}
}

// AddCartItem stores a new unassigned cart item. The count is stored as the
// caller supplied it; the floor is only enforced on later edits.
func (srv *cartService) AddCartItem(ctx context.Context, businessID string, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	if businessID == "" || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "business id and item name are required")
	}

	itemID, err := srv.allocator.Allocate(ctx, constants.DocumentIDLength, func(ctx context.Context, id string) (bool, error) {
		return srv.cartRepo.Exists(ctx, businessID, id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate cart item id")
	}

	now := time.Now().UTC()
	item := &entity.CartItem{
		ID:         itemID,
		BusinessID: businessID,
		Name:       input.Name,
		UnitPrice:  input.UnitPrice,
		Count:      input.Count,
		ImageURL:   input.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.cartRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create cart item")
	}

	srv.logger.Info("Cart item added", "businessID", businessID, "itemID", itemID)

	return item, nil
}

// ListUnassigned returns the items still available for checkout.
func (srv *cartService) ListUnassigned(ctx context.Context, businessID string) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.ListUnassigned(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unassigned cart items")
	}

	return items, nil
}

// GetCartItem retrieves a single cart item.
func (srv *cartService) GetCartItem(ctx context.Context, businessID, itemID string) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, businessID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return item, nil
}

// EditCount updates the item's quantity. A new count below one deletes the
// item instead of writing a zero; deletion is terminal.
func (srv *cartService) EditCount(ctx context.Context, businessID, itemID string, newCount int64) (bool, error) {
	if _, err := srv.cartRepo.FindByID(ctx, businessID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return false, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return false, errors.Wrap(err, "failed to find cart item")
	}

	if newCount < 1 {
		if err := srv.cartRepo.Delete(ctx, businessID, itemID); err != nil {
			return false, errors.Wrap(err, "failed to delete cart item")
		}

		srv.logger.Info("Cart item deleted on zero count", "businessID", businessID, "itemID", itemID)

		return true, nil
	}

	if err := srv.cartRepo.UpdateCount(ctx, businessID, itemID, newCount, time.Now().UTC()); err != nil {
		return false, errors.Wrap(err, "failed to update cart item count")
	}

	return false, nil
}
