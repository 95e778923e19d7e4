package note

import (
	"context"
	"errors"
	"time"
)

const noteKey = "notes.%s"

// ErrNotFound is returned when no note has the requested id
var ErrNotFound = errors.New("note not found")

type Note struct {
	Id        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Store persists notes. Find, Update and Delete return ErrNotFound for unknown ids.
type Store interface {
	List(ctx context.Context) ([]Note, error)
	Insert(ctx context.Context, n Note) error
	Find(ctx context.Context, id string) (Note, error)
	Update(ctx context.Context, n Note) error
	Delete(ctx context.Context, id string) error
}
