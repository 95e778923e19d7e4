// Package pages renders the notes frontend. Every page is built server side from the notes api answers.
package pages

import (
	"bytes"
	"context"
	"embed"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/app/web/client"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templates embed.FS

// State is what a page is doing. loading and submitting are only seen in the browser, while a request is in flight.
type State string

const (
	Loading    State = "loading"
	Loaded     State = "loaded"
	Failed     State = "error"
	Submitting State = "submitting"
)

// API is the part of the notes api the pages use
type API interface {
	List(ctx context.Context) ([]note.Note, error)
	Get(ctx context.Context, id string) (note.Note, error)
	Create(ctx context.Context, newN note.NewNote) (note.Note, error)
	Update(ctx context.Context, id string, upd note.UpdateNote) (note.Note, error)
	Delete(ctx context.Context, id string) error
}

type Handlers struct {
	Log *zap.SugaredLogger
	API API
}

// view is the data every template receives
type view struct {
	State   State
	Flash   *Flash
	Notes   []note.Note
	Note    note.Note
	Editing bool
	Title   string
	Content string
}

// apiContext is the request context carrying the browser address, forwarded to the api
func apiContext(ctx *gin.Context) context.Context {
	return client.WithClientIP(ctx.Request.Context(), ctx.ClientIP())
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	md := goldmark.New()
	return template.New("").Funcs(template.FuncMap{
		"markdown": func(src string) template.HTML {
			var buf bytes.Buffer
			if err := md.Convert([]byte(src), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(src))
			}
			// goldmark drops raw html unless WithUnsafe is set
			return template.HTML(buf.String())
		},
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"edited": func(n note.Note) bool {
			return !n.UpdatedAt.Equal(n.CreatedAt)
		},
		"excerpt": func(s string) string {
			r := []rune(s)
			if len(r) <= 140 {
				return s
			}
			return string(r[:140]) + "…"
		},
	}).ParseFS(templates, "templates/*.html")
}

// Map registers the page routes. The engine must already carry the templates returned by Templates.
func Map(r *gin.Engine, h Handlers) {
	r.GET("/", h.List)
	r.GET("/create", h.CreateForm)
	r.POST("/create", h.Create)
	r.GET("/note/:id", h.Detail)
	r.POST("/note/:id", h.Update)
	r.POST("/note/:id/delete", h.Delete)
}
