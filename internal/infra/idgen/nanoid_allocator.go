// Package idgen implements identifier allocation on top of nanoid.
package idgen

import (
	"context"
	"log/slog"

	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/service"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

// maxAttempts bounds the regeneration loop. With a URL-safe alphabet of 64
// characters and ids of 16+ characters, a single collision is already
// extraordinary; hitting the bound means the existence probe itself is broken.
const maxAttempts = 5

type nanoidAllocator struct {
	logger *slog.Logger
}

// NewNanoidAllocator is the constructor for the nanoid-backed IDAllocator.
func NewNanoidAllocator(logger *slog.Logger) service.IDAllocator {
	return &nanoidAllocator{logger: logger}
}

// Allocate generates a random URL-safe id of the given length, retrying while
// the target collection already holds a document with that id.
func (a *nanoidAllocator) Allocate(ctx context.Context, length int, exists service.ExistsFunc) (string, error) {
	if length < 1 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "id length must be positive")
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		id, err := gonanoid.New(length)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate id")
		}

		taken, err := exists(ctx, id)
		if err != nil {
			return "", errors.Wrap(err, "failed to probe id existence")
		}
		if !taken {
			return id, nil
		}

		a.logger.Warn("id collision, regenerating",
			slog.Int("length", length),
			slog.Int("attempt", attempt+1),
		)
	}

	return "", errors.Wrapf(domainerrors.ErrIDSpaceExhausted, "no free id after %d attempts", maxAttempts)
}
