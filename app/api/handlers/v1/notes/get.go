package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 404 {object} handler.Error
// @Failure 429 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	get, err := h.Notes.Find(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		return h.failure("find note", err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}
