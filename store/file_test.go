package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreInitializeCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api", "data.json")
	s := NewFileStore(path)

	require.NoError(t, s.Initialize(context.Background()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"qanda_questions": [], "scripture_notes": []}`, string(raw))
	assert.Contains(t, string(raw), "\n  \"qanda_questions\"", "document is written with two-space indentation")
}

func TestFileStoreInitializeNeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	existing := `{"qanda_questions":[{"id":1,"name":"Ada","text":"Why?","isRead":false,"timestamp":1}],"scripture_notes":[]}`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	s := NewFileStore(path)
	require.NoError(t, s.Initialize(context.Background()))
	require.NoError(t, s.Initialize(context.Background()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, string(raw))
}

func TestFileStoreLoadDefaultsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"qanda_questions":[{"id":7,"text":"Hi"}]}`), 0o644))

	doc, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, doc.Questions, 1)
	assert.Equal(t, int64(7), doc.Questions[0].ID)
	assert.NotNil(t, doc.Notes)
	assert.Empty(t, doc.Notes)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"qanda_questions": [`), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptStore)

	raw, _ := os.ReadFile(path)
	assert.Equal(t, `{"qanda_questions": [`, string(raw), "corrupt file must not be repaired")
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorruptStore)
}

func TestFileStoreSaveReplacesWholeDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	s := NewFileStore(path)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	doc := NewDocument()
	doc.Notes = append(doc.Notes, Note{ID: 3, Title: "Psalm 23", Content: "The Lord is my shepherd"})
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Notes, got.Notes)
	assert.Empty(t, got.Questions)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}
