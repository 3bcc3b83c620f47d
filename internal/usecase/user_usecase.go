package usecase

import (
	"context"

	"kasir/internal/domain/entity"
)

// UserUsecase defines the interface for the user registry. User ids come from
// the identity provider; this service only records them.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a user.
type RegisterUserInput struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
