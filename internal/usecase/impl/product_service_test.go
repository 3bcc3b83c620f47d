package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(ids ...string) (*fakeProductRepo, *fakeImageStore, usecase.ProductUsecase) {
	productRepo := newFakeProductRepo()
	imageStore := newFakeImageStore()
	svc := NewProductService(productRepo, &stubAllocator{ids: ids}, imageStore, discardLogger())

	return productRepo, imageStore, svc
}

func createProduct(t *testing.T, svc usecase.ProductUsecase, name string) string {
	t.Helper()
	product, err := svc.CreateProduct(context.Background(), testBusinessID, &usecase.CreateProductInput{
		Name:  name,
		Cost:  8000,
		Price: 15000,
		Stock: 40,
	})
	require.NoError(t, err)

	return product.ID
}

func TestCreateProduct_BuildsPrefixIndex(t *testing.T) {
	productRepo, _, svc := newProductFixture("prod-0001")

	id := createProduct(t, svc, "Milk")

	stored, err := productRepo.FindByID(context.Background(), testBusinessID, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"m", "mi", "mil", "milk"}, stored.Prefixes)
}

func TestCreateProduct_DuplicateNameConflicts(t *testing.T) {
	_, _, svc := newProductFixture("prod-0001", "prod-0002")

	createProduct(t, svc, "Milk")

	_, err := svc.CreateProduct(context.Background(), testBusinessID, &usecase.CreateProductInput{
		Name:  "Milk",
		Cost:  8000,
		Price: 15000,
		Stock: 40,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))
}

func TestCreateProduct_RequiresAllFields(t *testing.T) {
	_, _, svc := newProductFixture("prod-0001")

	_, err := svc.CreateProduct(context.Background(), testBusinessID, &usecase.CreateProductInput{
		Name:  "Milk",
		Price: 15000,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSearchProducts_MatchesCaseInsensitivePrefix(t *testing.T) {
	_, _, svc := newProductFixture("prod-0001", "prod-0002")

	createProduct(t, svc, "Milk")
	createProduct(t, svc, "Matcha")

	results, err := svc.SearchProducts(context.Background(), testBusinessID, "MI")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Milk", results[0].Name)

	results, err = svc.SearchProducts(context.Background(), testBusinessID, "m")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Non-prefix substrings do not match.
	results, err = svc.SearchProducts(context.Background(), testBusinessID, "ilk")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchProducts_EmptyQueryListsAll(t *testing.T) {
	_, _, svc := newProductFixture("prod-0001", "prod-0002")

	createProduct(t, svc, "Milk")
	createProduct(t, svc, "Matcha")

	results, err := svc.SearchProducts(context.Background(), testBusinessID, "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestUpdateProduct_RenameRebuildsPrefixes(t *testing.T) {
	productRepo, _, svc := newProductFixture("prod-0001")

	id := createProduct(t, svc, "Milk")

	newName := "Cream"
	err := svc.UpdateProduct(context.Background(), testBusinessID, id, &usecase.UpdateProductInput{Name: &newName})
	require.NoError(t, err)

	stored, err := productRepo.FindByID(context.Background(), testBusinessID, id)
	require.NoError(t, err)
	assert.Equal(t, "Cream", stored.Name)
	assert.Equal(t, []string{"c", "cr", "cre", "crea", "cream"}, stored.Prefixes)

	// No stale prefix of the old name survives the rename.
	results, err := svc.SearchProducts(context.Background(), testBusinessID, "mil")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUpdateProduct_PartialPatchKeepsOtherFields(t *testing.T) {
	productRepo, _, svc := newProductFixture("prod-0001")

	id := createProduct(t, svc, "Milk")

	price := int64(17000)
	err := svc.UpdateProduct(context.Background(), testBusinessID, id, &usecase.UpdateProductInput{Price: &price})
	require.NoError(t, err)

	stored, err := productRepo.FindByID(context.Background(), testBusinessID, id)
	require.NoError(t, err)
	assert.Equal(t, int64(17000), stored.Price)
	assert.Equal(t, "Milk", stored.Name)
	assert.Equal(t, int64(8000), stored.Cost)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	_, _, svc := newProductFixture()

	err := svc.DeleteProduct(context.Background(), testBusinessID, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestUploadProductImage_ReturnsPublicURL(t *testing.T) {
	_, imageStore, svc := newProductFixture()

	url, err := svc.UploadProductImage(context.Background(), testBusinessID, &usecase.UploadProductImageInput{
		Filename:    "milk.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, imageStore.baseURL+"/"+testBusinessID+"/product/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Len(t, imageStore.uploads, 1)
}
