package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isharehowlabs/yahudim.app/pkg/logger"
)

const (
	createDocumentsTable = `CREATE TABLE IF NOT EXISTS app_documents (
		name TEXT PRIMARY KEY,
		content JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	seedDocument   = `INSERT INTO app_documents (name, content, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (name) DO NOTHING`
	selectDocument = `SELECT content FROM app_documents WHERE name = $1`
	updateDocument = `UPDATE app_documents SET content = $1, updated_at = NOW() WHERE name = $2`
)

// PostgresStore keeps the whole document in one JSONB row.
type PostgresStore struct {
	DB   *sql.DB
	name string
}

func NewPostgresStore(db *sql.DB, name string) *PostgresStore {
	return &PostgresStore{DB: db, name: name}
}

func (s *PostgresStore) Initialize(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createDocumentsTable); err != nil {
		logger.Sugar.Errorf("Failed to create app_documents table: %v", err)
		return fmt.Errorf("create documents table: %w", err)
	}

	data, err := encodeDocument(NewDocument())
	if err != nil {
		return err
	}
	// lib/pq wants a string for JSONB, not []byte
	if _, err := s.DB.ExecContext(ctx, seedDocument, s.name, string(data)); err != nil {
		logger.Sugar.Errorf("Failed to seed document %s: %v", s.name, err)
		return fmt.Errorf("seed document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*Document, error) {
	var content []byte
	err := s.DB.QueryRowContext(ctx, selectDocument, s.name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %q has not been initialized", s.name)
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to load document %s: %v", s.name, err)
		return nil, fmt.Errorf("load document: %w", err)
	}
	return decodeDocument(content)
}

func (s *PostgresStore) Save(ctx context.Context, doc *Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	result, err := s.DB.ExecContext(ctx, updateDocument, string(data), s.name)
	if err != nil {
		logger.Sugar.Errorf("Failed to save document %s: %v", s.name, err)
		return fmt.Errorf("save document: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("document %q has not been initialized", s.name)
	}
	return nil
}
