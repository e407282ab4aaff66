package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/isharehowlabs/yahudim.app/internal/question/model"
	"github.com/isharehowlabs/yahudim.app/pkg/apperror"
	"github.com/isharehowlabs/yahudim.app/store"
)

const defaultName = "Anonymous"

var (
	errTextRequired = apperror.Validation("Question text is required")
	errNotFound     = apperror.NotFound("Question not found")
)

type QuestionService struct {
	DB       *store.Manager
	Now      func() time.Time
	validate *validator.Validate
}

func NewQuestionService(db *store.Manager) *QuestionService {
	return &QuestionService{DB: db, Now: time.Now, validate: validator.New()}
}

// List returns the questions in stored order.
func (s *QuestionService) List(ctx context.Context) ([]store.Question, error) {
	var questions []store.Question
	err := s.DB.View(ctx, func(doc *store.Document) error {
		questions = doc.Questions
		return nil
	})
	return questions, err
}

func (s *QuestionService) Create(ctx context.Context, req model.CreateQuestionRequest) (*store.Question, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := s.validate.Struct(req); err != nil {
		return nil, errTextRequired
	}
	if req.Name == "" {
		req.Name = defaultName
	}

	var created store.Question
	err := s.DB.Update(ctx, func(doc *store.Document) error {
		now := s.Now()
		created = store.Question{
			ID:        doc.NextQuestionID(now),
			Name:      req.Name,
			Text:      req.Text,
			IsRead:    false,
			Timestamp: now.UnixMilli(),
		}
		doc.Questions = append(doc.Questions, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// MarkRead sets isRead to the requested value, or true when the request omits it.
func (s *QuestionService) MarkRead(ctx context.Context, rawID string, req model.UpdateQuestionRequest) (*store.Question, error) {
	id, ok := store.ParseID(rawID)
	if !ok {
		return nil, errNotFound
	}
	isRead := true
	if req.IsRead != nil {
		isRead = *req.IsRead
	}

	var updated store.Question
	err := s.DB.Update(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Questions, id)
		if i < 0 {
			return errNotFound
		}
		doc.Questions[i].IsRead = isRead
		updated = doc.Questions[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *QuestionService) Delete(ctx context.Context, rawID string) error {
	id, ok := store.ParseID(rawID)
	if !ok {
		return errNotFound
	}
	return s.DB.Update(ctx, func(doc *store.Document) error {
		i := indexOf(doc.Questions, id)
		if i < 0 {
			return errNotFound
		}
		doc.Questions = append(doc.Questions[:i], doc.Questions[i+1:]...)
		return nil
	})
}

func indexOf(questions []store.Question, id int64) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
