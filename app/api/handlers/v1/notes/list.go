package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note in creation order
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 429 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.List(ctx.Request.Context())
	if err != nil {
		return h.failure("list notes", err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
