// Package store persists the application Document as a whole. Every
// backend reads and writes the full document; there is no partial update.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorruptStore is returned by Load when the persisted content cannot be decoded.
var ErrCorruptStore = errors.New("store: document is corrupt")

type Store interface {
	// Initialize creates the empty document if none exists. It never overwrites.
	Initialize(ctx context.Context) error
	// Load returns a fresh copy of the persisted document.
	Load(ctx context.Context) (*Document, error)
	// Save replaces the persisted document in its entirety.
	Save(ctx context.Context, doc *Document) error
}

func encodeDocument(doc *Document) ([]byte, error) {
	doc.normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

func decodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	doc.normalize()
	return &doc, nil
}
