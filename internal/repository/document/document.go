// Package document stores a whole string-keyed mapping as one indented JSON
// document on top of a model.BlobStore.
package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/diagnosis-server/internal/model"
)

const indent = "    "

var (
	_ model.AccountStore = (*Document[model.Account])(nil)
	_ model.SessionStore = (*Document[model.Session])(nil)
)

// Document is a typed view of a JSON object persisted in a blob.
type Document[V any] struct {
	blob model.BlobStore
}

// New creates a Document backed by blob.
func New[V any](blob model.BlobStore) *Document[V] {
	return &Document[V]{blob: blob}
}

// Load reads and decodes the mapping. A blob that was never written, or
// that holds only whitespace, yields an empty mapping. Content that does not
// decode is reported as model.ErrCorruptDocument and never discarded.
func (d *Document[V]) Load(ctx context.Context) (map[string]V, error) {
	data, err := d.blob.Read(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return map[string]V{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]V{}, nil
	}

	var out map[string]V
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptDocument, err)
	}
	if out == nil {
		// a literal "null" document
		out = map[string]V{}
	}

	return out, nil
}

// Save encodes the full mapping and overwrites the blob.
func (d *Document[V]) Save(ctx context.Context, values map[string]V) error {
	if values == nil {
		values = map[string]V{}
	}

	data, err := json.MarshalIndent(values, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	data = append(data, '\n')

	if err := d.blob.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
