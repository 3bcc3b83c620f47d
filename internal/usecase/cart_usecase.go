package usecase

import (
	"context"

	"kasir/internal/domain/entity"
)

// CartUsecase defines the interface for the de-normalized cart: loose cart
// item documents that exist independently of any transaction until checkout
// claims them.
type CartUsecase interface {
	AddCartItem(ctx context.Context, businessID string, input *AddCartItemInput) (*entity.CartItem, error)

	// ListUnassigned returns the items still available for checkout.
	ListUnassigned(ctx context.Context, businessID string) ([]*entity.CartItem, error)

	GetCartItem(ctx context.Context, businessID, itemID string) (*entity.CartItem, error)

	// EditCount updates the item's quantity. A new count below one deletes
	// the item instead; deleted reports which path was taken.
	EditCount(ctx context.Context, businessID, itemID string, newCount int64) (deleted bool, err error)
}

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a cart item.
type AddCartItemInput struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Count     int64  `json:"count"`
	ImageURL  string `json:"image_url"`
}
