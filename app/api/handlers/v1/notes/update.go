package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/platform/web/handler"
	"net/http"
)

// Update godoc
// @Summary Update a note
// @Description Replace title and content of a note
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "New title and content"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 429 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return invalidBody()
	}

	updated, err := h.Notes.Update(ctx.Request.Context(), ctx.Param("id"), upd)
	if err != nil {
		return h.failure("update note", err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
