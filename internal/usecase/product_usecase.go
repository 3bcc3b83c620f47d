package usecase

import (
	"context"

	"kasir/internal/domain/entity"
)

// ProductUsecase defines the interface for product catalog operations,
// including the prefix search used by the storefront.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, businessID string, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, businessID, productID string) (*entity.Product, error)

	// SearchProducts resolves a user-typed query against the prefix index.
	// An empty query lists every product, newest first.
	SearchProducts(ctx context.Context, businessID, query string) ([]*entity.Product, error)

	UpdateProduct(ctx context.Context, businessID, productID string, input *UpdateProductInput) error
	DeleteProduct(ctx context.Context, businessID, productID string) error

	// UploadProductImage stores an image payload and returns its public URL.
	UploadProductImage(ctx context.Context, businessID string, input *UploadProductImageInput) (string, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name     string `json:"name"`
	Cost     int64  `json:"cost"`
	Price    int64  `json:"price"`
	Stock    int64  `json:"stock"`
	ImageURL string `json:"image_url"`
}

// UpdateProductInput defines a partial product update; nil fields are left
// unchanged. Setting Name rebuilds the search index.
type UpdateProductInput struct {
	Name     *string `json:"name,omitempty"`
	Cost     *int64  `json:"cost,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	Stock    *int64  `json:"stock,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// UploadProductImageInput carries an image payload for the blob store.
type UploadProductImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}
