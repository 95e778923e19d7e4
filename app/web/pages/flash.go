package pages

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
)

const flashCookie = "notes_flash"

// Flash is a one shot notification shown on the next rendered page
type Flash struct {
	Kind    string
	Message string
}

func success(msg string) *Flash {
	return &Flash{Kind: "success", Message: msg}
}

func failure(msg string) *Flash {
	return &Flash{Kind: "error", Message: msg}
}

func setFlash(ctx *gin.Context, f *Flash) {
	ctx.SetCookie(flashCookie, f.Kind+"|"+f.Message, 60, "/", "", false, true)
}

// popFlash reads the pending flash and clears it
func popFlash(ctx *gin.Context) *Flash {
	value, err := ctx.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	ctx.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, msg, ok := strings.Cut(value, "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}

// redirect sends the browser to path, showing f there
func redirect(ctx *gin.Context, path string, f *Flash) {
	if f != nil {
		setFlash(ctx, f)
	}
	ctx.Redirect(http.StatusSeeOther, path)
}
