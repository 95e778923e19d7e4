package note

import (
	"encoding/json"
	"time"
)

type Note struct {
	Id        string    `json:"id" example:"01HZX5Q3V8M7J2K4N6P9R1S3T5"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
}

// NewNote is the payload to create a note
type NewNote struct {
	Title   string `json:"title" validate:"required" example:"my note"`
	Content string `json:"content" validate:"required" example:"my note content"`
}

// UpdateNote is the payload to replace title and content of a note
type UpdateNote struct {
	Title   string `json:"title" validate:"required" example:"my new title"`
	Content string `json:"content" validate:"required" example:"my new content"`
}

// Event is a command received through messaging. Data holds a NewNote for create, an EventNote for update and
// an EventNote with only the id for delete.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

type EventNote struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
