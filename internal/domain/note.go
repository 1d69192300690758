package domain

import "time"

type Note struct {
	NoteID    string    `json:"id" dynamodbav:"note_id"`
	UserID    string    `json:"userID" dynamodbav:"user_id"`
	Title     string    `json:"title" dynamodbav:"title"`
	Desc      string    `json:"desc" dynamodbav:"desc"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type AddNoteRequest struct {
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	UserID string `json:"userID"`
}

type DeleteNoteRequest struct {
	NoteID string `json:"NoteID" validate:"required"`
}

// UpdateNoteRequest changes only the fields present in the body.
type UpdateNoteRequest struct {
	NoteID string  `json:"NoteID" validate:"required"`
	Title  *string `json:"title"`
	Desc   *string `json:"desc"`
}
