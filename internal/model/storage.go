package model

import "context"

// BlobStore persists a single opaque document.
// Read returns ErrNotFound when nothing has been written yet.
type BlobStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
