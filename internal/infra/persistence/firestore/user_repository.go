package firestore

import (
	"context"

	"kasir/internal/domain/entity"
	"kasir/internal/domain/repository"
	"kasir/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements repository.UserRepository on Firestore.
type userRepository struct {
	session
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{session{client: client}}
}

func (repo *userRepository) doc(userID string) *firestore.DocumentRef {
	return repo.client.Collection(collectionUser).Doc(userID)
}

// FindByID retrieves a single user by the externally supplied id.
func (repo *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	snap, err := repo.get(ctx, repo.doc(userID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user document")
	}

	var doc model.UserDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return doc.ToUserDomain(), nil
}

// Exists reports whether a user document with the given id is present.
func (repo *userRepository) Exists(ctx context.Context, userID string) (bool, error) {
	snap, err := repo.get(ctx, repo.doc(userID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to probe user document")
	}

	return snap.Exists(), nil
}

// Create persists a new user document keyed by the external id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.set(ctx, repo.doc(user.ID), model.FromUserDomain(user)); err != nil {
		return errors.Wrap(err, "failed to create user document")
	}

	return nil
}
