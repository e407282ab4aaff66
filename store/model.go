package store

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout renders note timestamps as ISO-8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Document is the single persisted object holding both collections.
type Document struct {
	Questions []Question `json:"qanda_questions"`
	Notes     []Note     `json:"scripture_notes"`
}

type Question struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	IsRead    bool   `json:"isRead"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Verse     string `json:"verse"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NewDocument returns a document with both collections present and empty.
func NewDocument() *Document {
	return &Document{Questions: []Question{}, Notes: []Note{}}
}

// normalize defaults missing collections to empty sequences.
func (d *Document) normalize() {
	if d.Questions == nil {
		d.Questions = []Question{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
}

// NextQuestionID returns now in epoch milliseconds, bumped past any existing question id.
func (d *Document) NextQuestionID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, q := range d.Questions {
		if q.ID >= id {
			id = q.ID + 1
		}
	}
	return id
}

// NextNoteID is NextQuestionID for the notes collection.
func (d *Document) NextNoteID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, n := range d.Notes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	return id
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseID parses a record id from a path segment. ok is false for anything
// that is not a base-10 integer, which callers treat as a lookup miss.
func ParseID(raw string) (id int64, ok bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return id, err == nil
}
