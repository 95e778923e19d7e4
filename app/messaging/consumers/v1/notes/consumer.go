package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/notes/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// ErrUnknownEvent is returned by Handle for events with a type it does not know
var ErrUnknownEvent = errors.New("unknown event type")

// Consumer applies the note events received through messaging
type Consumer struct {
	Log   *zap.SugaredLogger
	Notes *note.Core
}

// Consume receives messages until ctx is done, handling at most maxWorkers of them at a time. Every message is acked,
// including the ones that failed, so a bad event is never redelivered.
func (c Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			c.Log.Infow("message received", "body", string(m.Body))
			if err := c.Handle(ctx, m.Body); err != nil {
				c.Log.Errorw("message", "ERROR", err, "body", string(m.Body))
			}
		}(message)
	}

	// wait for the running workers
	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Handle applies a single event
func (c Consumer) Handle(ctx context.Context, body []byte) error {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case note.EventCreate:
		var n note.NewNote
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return fmt.Errorf("failed to parse create event: %w", err)
		}
		created, err := c.Notes.Create(ctx, n)
		if err != nil {
			return err
		}
		c.Log.Infow("note created", "id", created.Id)
	case note.EventUpdate:
		var n note.EventNote
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return fmt.Errorf("failed to parse update event: %w", err)
		}
		if _, err := c.Notes.Update(ctx, n.Id, note.UpdateNote{Title: n.Title, Content: n.Content}); err != nil {
			return err
		}
		c.Log.Infow("note updated", "id", n.Id)
	case note.EventDelete:
		var n note.EventNote
		if err := json.Unmarshal(e.Data, &n); err != nil {
			return fmt.Errorf("failed to parse delete event: %w", err)
		}
		if err := c.Notes.Delete(ctx, n.Id); err != nil {
			return err
		}
		c.Log.Infow("note deleted", "id", n.Id)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
	return nil
}
