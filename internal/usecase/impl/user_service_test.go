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

func newUserFixture() usecase.UserUsecase {
	return NewUserService(newFakeUserRepo(), discardLogger())
}

func TestRegisterUser_StoresExternalID(t *testing.T) {
	svc := newUserFixture()

	user, err := svc.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		UserID:   "user_2abc",
		Username: "dina",
		Email:    "dina@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := svc.GetUser(context.Background(), "user_2abc")
	require.NoError(t, err)
	assert.Equal(t, "dina", got.Username)
}

func TestRegisterUser_DuplicateIDConflicts(t *testing.T) {
	svc := newUserFixture()

	input := &usecase.RegisterUserInput{UserID: "user_2abc", Username: "dina", Email: "dina@example.com"}
	_, err := svc.RegisterUser(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestGetUser_NotFound(t *testing.T) {
	svc := newUserFixture()

	_, err := svc.GetUser(context.Background(), "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
