package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"kasir/internal/domain/constants"
	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/repository"
	"kasir/internal/domain/service"
	"kasir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	allocator   service.IDAllocator
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	allocator service.IDAllocator,
	imageStore service.ImageStore,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		allocator:   allocator,
		imageStore:  imageStore,
		logger:      logger,
	}
}

// CreateProduct validates the input, rejects duplicate names and stores the
// product together with its derived prefix index.
func (srv *productService) CreateProduct(ctx context.Context, businessID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if businessID == "" || input.Name == "" || input.Cost <= 0 || input.Price <= 0 || input.Stock <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "all product fields are required")
	}

	// Advisory pre-check: two concurrent creations with the same name can
	// both pass. Accepted at this scale.
	taken, err := srv.productRepo.ExistsByName(ctx, businessID, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product name")
	}
	if taken {
		return nil, errors.Wrapf(domainerrors.ErrProductAlreadyExists, "product %q already exists", input.Name)
	}

	productID, err := srv.allocator.Allocate(ctx, constants.DocumentIDLength, func(ctx context.Context, id string) (bool, error) {
		return srv.productRepo.Exists(ctx, businessID, id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate product id")
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:         productID,
		BusinessID: businessID,
		Name:       input.Name,
		Cost:       input.Cost,
		Price:      input.Price,
		Stock:      input.Stock,
		ImageURL:   input.ImageURL,
		Prefixes:   entity.NamePrefixes(input.Name),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", "businessID", businessID, "productID", productID)

	return product, nil
}

// GetProduct retrieves a single product.
func (srv *productService) GetProduct(ctx context.Context, businessID, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, businessID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// SearchProducts resolves a query against the prefix index; an empty query
// falls back to the full listing, newest first.
func (srv *productService) SearchProducts(ctx context.Context, businessID, query string) ([]*entity.Product, error) {
	if query == "" {
		products, err := srv.productRepo.ListByCreatedDesc(ctx, businessID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}

		return products, nil
	}

	products, err := srv.productRepo.SearchByPrefix(ctx, businessID, strings.ToLower(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// UpdateProduct applies a partial update; a name change rebuilds the prefix
// index wholesale so no stale prefixes survive the rename.
func (srv *productService) UpdateProduct(ctx context.Context, businessID, productID string, input *usecase.UpdateProductInput) error {
	if _, err := srv.productRepo.FindByID(ctx, businessID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to find product")
	}

	patch := &entity.ProductPatch{
		Cost:      input.Cost,
		Price:     input.Price,
		Stock:     input.Stock,
		ImageURL:  input.ImageURL,
		UpdatedAt: time.Now().UTC(),
	}
	if input.Name != nil {
		if *input.Name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "product name must not be empty")
		}
		patch.Name = input.Name
		patch.Prefixes = entity.NamePrefixes(*input.Name)
	}

	if err := srv.productRepo.Patch(ctx, businessID, productID, patch); err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// DeleteProduct removes the product.
func (srv *productService) DeleteProduct(ctx context.Context, businessID, productID string) error {
	if _, err := srv.productRepo.FindByID(ctx, businessID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.productRepo.Delete(ctx, businessID, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", "businessID", businessID, "productID", productID)

	return nil
}

// UploadProductImage stores an image payload under a fresh key and returns
// its public URL.
func (srv *productService) UploadProductImage(ctx context.Context, businessID string, input *usecase.UploadProductImageInput) (string, error) {
	if businessID == "" || len(input.Data) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "business id and image payload are required")
	}

	key := path.Join(businessID, "product", uuid.New().String()+path.Ext(input.Filename))

	url, err := srv.imageStore.Upload(ctx, key, input.ContentType, input.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload product image")
	}

	srv.logger.Info("Product image uploaded", "businessID", businessID, "key", key)

	return url, nil
}
