package pages

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func (h Handlers) List(ctx *gin.Context) {
	v := view{State: Loaded, Flash: popFlash(ctx)}

	notes, err := h.API.List(apiContext(ctx))
	if err != nil {
		h.Log.Errorw("list notes", "ERROR", err)
		v.State = Failed
		v.Flash = failure("Failed to fetch notes")
		ctx.HTML(http.StatusBadGateway, "list.html", v)
		return
	}
	v.Notes = notes
	ctx.HTML(http.StatusOK, "list.html", v)
}

func (h Handlers) Delete(ctx *gin.Context) {
	if err := h.API.Delete(apiContext(ctx), ctx.Param("id")); err != nil {
		h.Log.Errorw("delete note", "ERROR", err, "id", ctx.Param("id"))
		redirect(ctx, "/", failure("Failed to delete note"))
		return
	}
	redirect(ctx, "/", success("Note deleted successfully"))
}
