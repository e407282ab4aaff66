package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	doc     *Document
	loadErr error
	saves   int
}

func (s *countingStore) Initialize(context.Context) error { return nil }

func (s *countingStore) Load(context.Context) (*Document, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	cp := *s.doc
	cp.Questions = append([]Question{}, s.doc.Questions...)
	cp.Notes = append([]Note{}, s.doc.Notes...)
	return &cp, nil
}

func (s *countingStore) Save(_ context.Context, doc *Document) error {
	s.saves++
	s.doc = doc
	return nil
}

func TestManagerUpdateSkipsSaveOnError(t *testing.T) {
	s := &countingStore{doc: NewDocument()}
	m := NewManager(s)

	boom := errors.New("rejected")
	err := m.Update(context.Background(), func(doc *Document) error {
		doc.Questions = append(doc.Questions, Question{ID: 1})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.saves)
	assert.Empty(t, s.doc.Questions)
}

func TestManagerViewDiscardsChanges(t *testing.T) {
	s := &countingStore{doc: NewDocument()}
	m := NewManager(s)

	require.NoError(t, m.View(context.Background(), func(doc *Document) error {
		doc.Notes = append(doc.Notes, Note{ID: 1})
		return nil
	}))
	assert.Equal(t, 0, s.saves)
	assert.Empty(t, s.doc.Notes)
}

func TestManagerPropagatesLoadError(t *testing.T) {
	m := NewManager(&countingStore{loadErr: ErrCorruptStore})

	called := false
	err := m.Update(context.Background(), func(*Document) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCorruptStore)
	assert.False(t, called)
}

func TestManagerConcurrentUpdatesKeepEveryWrite(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	ctx := context.Background()
	require.NoError(t, fs.Initialize(ctx))
	m := NewManager(fs)

	now := time.UnixMilli(1_700_000_000_000)
	const writers = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Update(ctx, func(doc *Document) error {
				doc.Questions = append(doc.Questions, Question{ID: doc.NextQuestionID(now), Text: "same millisecond"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Questions, writers)

	seen := map[int64]bool{}
	for _, q := range doc.Questions {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
	}
}

func TestNextIDUsesClockWhenFree(t *testing.T) {
	doc := NewDocument()
	now := time.UnixMilli(1_700_000_000_123)

	assert.Equal(t, int64(1_700_000_000_123), doc.NextQuestionID(now))

	doc.Notes = append(doc.Notes, Note{ID: 1_700_000_000_123})
	assert.Equal(t, int64(1_700_000_000_124), doc.NextNoteID(now))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 120_000_000, time.FixedZone("EST", -5*3600))
	assert.Equal(t, "2024-03-05T12:08:09.120Z", FormatTimestamp(ts))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("1700000000123")
	assert.True(t, ok)
	assert.Equal(t, int64(1_700_000_000_123), id)

	for _, raw := range []string{"", "abc", "12abc", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}
