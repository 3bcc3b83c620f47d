package service

import "context"

// ImageStore writes image payloads to a blob store and returns a publicly
// retrievable URL. The store itself is an external collaborator; nothing in
// the domain depends on how or where the bytes live.
type ImageStore interface {
	// Upload stores data under the given key with the given content type and
	// returns the public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
