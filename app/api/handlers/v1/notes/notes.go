// Package notes holds the /api/notes handlers.
package notes

import (
	"errors"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/platform/web/handler"
	"go.uber.org/zap"
	"net/http"
)

// Handlers serves the notes api on top of the notes core
type Handlers struct {
	Log   *zap.SugaredLogger
	Notes *note.Core
}

// failure maps a core error to the response sent to the client. Store details are logged, never returned.
func (h Handlers) failure(op string, err error) handler.Result {
	var verr *note.ValidationError
	switch {
	case errors.As(err, &verr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "Title and content are required", Errors: verr.Fields},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "Note not found"},
		}
	default:
		h.Log.Errorw(op, "ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "Internal server error"},
		}
	}
}

func invalidBody() handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "Invalid request body"},
	}
}

// Message is the body sent back by operations without a resource to return
type Message struct {
	Message string `json:"message" example:"Note deleted"`
}
