package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/isharehowlabs/yahudim.app/internal/note/model"
	"github.com/isharehowlabs/yahudim.app/pkg/apperror"
	"github.com/isharehowlabs/yahudim.app/store"
)

var (
	errFieldsRequired = apperror.Validation("Title and content are required")
	errNotFound       = apperror.NotFound("Note not found")
)

type NoteService struct {
	DB       *store.Manager
	Now      func() time.Time
	validate *validator.Validate
}

func NewNoteService(db *store.Manager) *NoteService {
	return &NoteService{DB: db, Now: time.Now, validate: validator.New()}
}

func (s *NoteService) List(ctx context.Context) ([]store.Note, error) {
	var notes []store.Note
	err := s.DB.View(ctx, func(doc *store.Document) error {
		notes = doc.Notes
		return nil
	})
	return notes, err
}

func (s *NoteService) Get(ctx context.Context, rawID string) (*store.Note, error) {
	id, ok := store.ParseID(rawID)
	if !ok {
		return nil, errNotFound
	}

	var note store.Note
	err := s.DB.View(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Notes, id)
		if i < 0 {
			return errNotFound
		}
		note = doc.Notes[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) Create(ctx context.Context, req model.NoteRequest) (*store.Note, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errFieldsRequired
	}

	var created store.Note
	err := s.DB.Update(ctx, func(doc *store.Document) error {
		now := s.Now()
		ts := store.FormatTimestamp(now)
		created = store.Note{
			ID:        doc.NextNoteID(now),
			Title:     req.Title,
			Verse:     req.Verse,
			Content:   req.Content,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		doc.Notes = append(doc.Notes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces title, verse and content and refreshes updatedAt. createdAt is never touched.
func (s *NoteService) Update(ctx context.Context, rawID string, req model.NoteRequest) (*store.Note, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errFieldsRequired
	}
	id, ok := store.ParseID(rawID)
	if !ok {
		return nil, errNotFound
	}

	var updated store.Note
	err := s.DB.Update(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Notes, id)
		if i < 0 {
			return errNotFound
		}
		n := &doc.Notes[i]
		n.Title = req.Title
		n.Verse = req.Verse
		n.Content = req.Content
		n.UpdatedAt = store.FormatTimestamp(s.Now())
		updated = *n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *NoteService) Delete(ctx context.Context, rawID string) error {
	id, ok := store.ParseID(rawID)
	if !ok {
		return errNotFound
	}
	return s.DB.Update(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Notes, id)
		if i < 0 {
			return errNotFound
		}
		doc.Notes = append(doc.Notes[:i], doc.Notes[i+1:]...)
		return nil
	})
}

func indexOf(notes []store.Note, id int64) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
