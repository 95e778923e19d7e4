package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} Message
// @Failure 404 {object} handler.Error
// @Failure 429 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	if err := h.Notes.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return h.failure("delete note", err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Message{Message: "Note deleted"},
	}
}
