package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note with title and content
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 429 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return invalidBody()
	}

	created, err := h.Notes.Create(ctx.Request.Context(), newN)
	if err != nil {
		return h.failure("create note", err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
