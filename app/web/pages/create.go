package pages

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/app/web/client"
	"github.com/ribgsilva/notes/business/v1/note"
	"net/http"
	"strings"
)

func (h Handlers) CreateForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "create.html", view{State: Loaded, Flash: popFlash(ctx)})
}

func (h Handlers) Create(ctx *gin.Context) {
	v := view{
		State:   Loaded,
		Title:   ctx.PostForm("title"),
		Content: ctx.PostForm("content"),
	}

	if strings.TrimSpace(v.Title) == "" || strings.TrimSpace(v.Content) == "" {
		v.Flash = failure("Please fill in all fields")
		ctx.HTML(http.StatusBadRequest, "create.html", v)
		return
	}

	if _, err := h.API.Create(apiContext(ctx), note.NewNote{Title: v.Title, Content: v.Content}); err != nil {
		h.Log.Errorw("create note", "ERROR", err)
		v.State = Failed
		v.Flash = failure(client.Message(err, "Failed to create note"))
		ctx.HTML(http.StatusBadGateway, "create.html", v)
		return
	}
	redirect(ctx, "/", success("Note created successfully!"))
}
