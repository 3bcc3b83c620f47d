// Package storage implements the ImageStore on top of a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"kasir/config"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers registered for blob.OpenBucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// ImageStoreParams holds dependencies for the image store, injected by Fx.
type ImageStoreParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and returns it as an
// ImageStore. The bucket URL decides the backing driver (gs://, file://).
func NewBlobImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("blob bucket opened", slog.String("url", cfg.BucketURL))

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores data under key with the given content type and returns the
// public URL for it.
func (s *blobImageStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if key == "" || len(data) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "image key and payload are required")
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "failed to open blob writer: %v", err)
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "failed to write blob: %v", err)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "failed to commit blob: %v", err)
	}

	s.logger.Debug("image uploaded", slog.String("key", key), slog.Int("bytes", len(data)))

	return s.publicBaseURL + "/" + key, nil
}
