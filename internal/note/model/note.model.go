package model

// NoteRequest is the body for both create and update; update replaces every field.
type NoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Verse   string `json:"verse"`
	Content string `json:"content" validate:"required"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
