package model

type CreateQuestionRequest struct {
	Name string `json:"name"`
	Text string `json:"text" validate:"required"`
}

// UpdateQuestionRequest distinguishes an absent isRead (nil) from an explicit true or false.
type UpdateQuestionRequest struct {
	IsRead *bool `json:"isRead"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
