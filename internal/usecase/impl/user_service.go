package impl

import (
	"context"
	"log/slog"
	"time"

	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/repository"
	"kasir/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser records an account under its identity-provider id. Registering
// an id that is already present is a conflict, not an upsert.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if input.UserID == "" || input.Username == "" || input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user id, username and email are required")
	}

	taken, err := srv.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user id")
	}
	if taken {
		return nil, errors.Wrapf(domainerrors.ErrUserAlreadyExists, "user %q already registered", input.UserID)
	}

	user := &entity.User{
		ID:        input.UserID,
		Username:  input.Username,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User registered", "userID", user.ID)

	return user, nil
}

// GetUser retrieves a single user record.
func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
