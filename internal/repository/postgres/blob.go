package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/diagnosis-server/internal/model"
)

var _ model.BlobStore = (*DocumentRepository)(nil)

// DocumentRepository is one row of the documents table.
type DocumentRepository struct {
	db   *Connection
	name string
}

func NewDocumentRepository(db *Connection, name string) *DocumentRepository {
	return &DocumentRepository{db: db, name: name}
}

func (r *DocumentRepository) Read(ctx context.Context) ([]byte, error) {
	const query = `SELECT body FROM documents WHERE name = $1`

	var body []byte
	err := r.db.QueryRowContext(ctx, query, r.name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", r.name, err)
	}

	return body, nil
}

func (r *DocumentRepository) Write(ctx context.Context, data []byte) error {
	const query = `
        INSERT INTO documents (name, body, updated_at) VALUES ($1, $2, NOW())
        ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
    `

	if _, err := r.db.ExecContext(ctx, query, r.name, string(data)); err != nil {
		return fmt.Errorf("failed to save document %s: %w", r.name, err)
	}
	return nil
}
