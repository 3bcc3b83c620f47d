package impl

import (
	"context"
	"testing"

	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwnerID = "user_owner"

func newBusinessFixture(ids ...string) (*fakeBusinessRepo, usecase.BusinessUsecase) {
	businessRepo := newFakeBusinessRepo()
	svc := NewBusinessService(businessRepo, &stubAllocator{ids: ids}, discardLogger())

	return businessRepo, svc
}

func TestCreateBusiness_RecordsOwner(t *testing.T) {
	_, svc := newBusinessFixture("biz-0001")

	business, err := svc.CreateBusiness(context.Background(), testOwnerID, &usecase.CreateBusinessInput{
		Name:    "Warung Kopi",
		Address: "Jl. Merdeka 1",
		City:    "Bandung",
	})
	require.NoError(t, err)

	assert.Equal(t, "biz-0001", business.ID)
	assert.Equal(t, testOwnerID, business.OwnerID)
	assert.Equal(t, "Warung Kopi", business.Name)
}

func TestGetBusiness_EnforcesOwnership(t *testing.T) {
	_, svc := newBusinessFixture("biz-0001")

	business, err := svc.CreateBusiness(context.Background(), testOwnerID, &usecase.CreateBusinessInput{
		Name:    "Warung Kopi",
		Address: "Jl. Merdeka 1",
	})
	require.NoError(t, err)

	got, err := svc.GetBusiness(context.Background(), testOwnerID, business.ID)
	require.NoError(t, err)
	assert.Equal(t, business.ID, got.ID)

	_, err = svc.GetBusiness(context.Background(), "user_other", business.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessOwnershipViolation))
}

func TestUpdateBusiness_EnforcesOwnershipAndPatches(t *testing.T) {
	businessRepo, svc := newBusinessFixture("biz-0001")

	business, err := svc.CreateBusiness(context.Background(), testOwnerID, &usecase.CreateBusinessInput{
		Name:    "Warung Kopi",
		Address: "Jl. Merdeka 1",
	})
	require.NoError(t, err)

	newName := "Warung Kopi Baru"
	err = svc.UpdateBusiness(context.Background(), "user_other", business.ID, &usecase.UpdateBusinessInput{Name: &newName})
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessOwnershipViolation))

	err = svc.UpdateBusiness(context.Background(), testOwnerID, business.ID, &usecase.UpdateBusinessInput{Name: &newName})
	require.NoError(t, err)

	stored, err := businessRepo.FindByID(context.Background(), business.ID)
	require.NoError(t, err)
	assert.Equal(t, "Warung Kopi Baru", stored.Name)
	assert.Equal(t, "Jl. Merdeka 1", stored.Address)
}

func TestGetBusiness_NotFound(t *testing.T) {
	_, svc := newBusinessFixture()

	_, err := svc.GetBusiness(context.Background(), testOwnerID, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}
