package note

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/ribgsilva/notes/persistence/v1/note"
	"reflect"
	"strings"
	"time"
)

// Core holds the note use cases on top of a note store
type Core struct {
	store    note.Store
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewCore(store note.Store) *Core {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Core{
		store:    store,
		validate: v,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID:    func() string { return ulid.Make().String() },
	}
}

// List returns every note in creation order. It never returns a nil slice on success.
func (c *Core) List(ctx context.Context) ([]Note, error) {
	found, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes, nil
}

func (c *Core) Create(ctx context.Context, newN NewNote) (Note, error) {
	newN.Title = strings.TrimSpace(newN.Title)
	newN.Content = strings.TrimSpace(newN.Content)
	if err := c.validate.Struct(newN); err != nil {
		return Note{}, fromValidationError(err)
	}

	now := c.now()
	n := note.Note{
		Id:        c.newID(),
		Title:     newN.Title,
		Content:   newN.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.store.Insert(ctx, n); err != nil {
		return Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return Note(n), nil
}

func (c *Core) Find(ctx context.Context, id string) (Note, error) {
	find, err := c.store.Find(ctx, id)
	if err != nil {
		return Note{}, wrap("find", id, err)
	}
	return Note(find), nil
}

// Update replaces title and content. updatedAt always ends strictly after the previous value.
func (c *Core) Update(ctx context.Context, id string, upd UpdateNote) (Note, error) {
	upd.Title = strings.TrimSpace(upd.Title)
	upd.Content = strings.TrimSpace(upd.Content)
	if err := c.validate.Struct(upd); err != nil {
		return Note{}, fromValidationError(err)
	}

	current, err := c.store.Find(ctx, id)
	if err != nil {
		return Note{}, wrap("update", id, err)
	}

	now := c.now()
	if !now.After(current.UpdatedAt) {
		now = current.UpdatedAt.Add(time.Millisecond)
	}
	current.Title = upd.Title
	current.Content = upd.Content
	current.UpdatedAt = now

	if err := c.store.Update(ctx, current); err != nil {
		return Note{}, wrap("update", id, err)
	}
	return Note(current), nil
}

func (c *Core) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return wrap("delete", id, err)
	}
	return nil
}

func wrap(op, id string, err error) error {
	if err == note.ErrNotFound {
		return err
	}
	return fmt.Errorf("failed to %s note %s: %w", op, id, err)
}
