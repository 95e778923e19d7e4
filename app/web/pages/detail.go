package pages

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/app/web/client"
	"github.com/ribgsilva/notes/business/v1/note"
	"net/http"
	"strings"
)

// Detail shows a note, in edit mode when the edit query param is set
func (h Handlers) Detail(ctx *gin.Context) {
	n, err := h.API.Get(apiContext(ctx), ctx.Param("id"))
	if err != nil {
		if !client.IsNotFound(err) {
			h.Log.Errorw("find note", "ERROR", err, "id", ctx.Param("id"))
		}
		redirect(ctx, "/", failure("Note not found"))
		return
	}

	v := view{
		State:   Loaded,
		Flash:   popFlash(ctx),
		Note:    n,
		Editing: ctx.Query("edit") != "",
		Title:   n.Title,
		Content: n.Content,
	}
	ctx.HTML(http.StatusOK, "detail.html", v)
}

func (h Handlers) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	v := view{
		State:   Loaded,
		Note:    note.Note{Id: id},
		Editing: true,
		Title:   ctx.PostForm("title"),
		Content: ctx.PostForm("content"),
	}

	if strings.TrimSpace(v.Title) == "" || strings.TrimSpace(v.Content) == "" {
		v.Flash = failure("Please fill in all fields")
		ctx.HTML(http.StatusBadRequest, "detail.html", v)
		return
	}

	if _, err := h.API.Update(apiContext(ctx), id, note.UpdateNote{Title: v.Title, Content: v.Content}); err != nil {
		if client.IsNotFound(err) {
			redirect(ctx, "/", failure("Note not found"))
			return
		}
		h.Log.Errorw("update note", "ERROR", err, "id", id)
		v.State = Failed
		v.Flash = failure(client.Message(err, "Failed to update note"))
		ctx.HTML(http.StatusBadGateway, "detail.html", v)
		return
	}
	redirect(ctx, "/note/"+id, success("Note updated successfully!"))
}
