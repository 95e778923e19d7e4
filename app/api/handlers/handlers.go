package handlers

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes/platform/ratelimit"
	"github.com/ribgsilva/notes/platform/web/handler"
	"github.com/ribgsilva/notes/platform/web/middleware"
	"strings"
)

const apiPrefix = "/api/"

// Config holds what the routes need. A nil Limiter disables rate limiting and an empty AllowedOrigin disables cors.
// X-Forwarded-For is only honored for requests coming from one of the TrustedProxies, otherwise the limiter keys on
// the remote address.
type Config struct {
	Notes          notes.Handlers
	Health         healthcheck.Handlers
	Limiter        ratelimit.Limiter
	AllowedOrigin  string
	TrustedProxies []string
}

// Use installs the global middlewares. It must run before any route is mapped, gin only applies them to routes
// registered afterwards.
func Use(r *gin.Engine, c Config) error {
	if err := r.SetTrustedProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("setting trusted proxies: %w", err)
	}
	if c.Limiter != nil {
		limit := middleware.RateLimit(c.Notes.Log, c.Limiter)
		r.Use(func(ctx *gin.Context) {
			if strings.HasPrefix(ctx.Request.URL.Path, apiPrefix) {
				limit(ctx)
			}
		})
	}
	if c.AllowedOrigin != "" {
		r.Use(middleware.Cors(c.AllowedOrigin))
	}
	return nil
}

func MapDefaults(r *gin.Engine, c Config) {
	r.GET("/v1/healthcheck", handler.Wrapper(c.Health.Get))
}

func MapApi(r *gin.Engine, c Config) {
	g := r.Group(apiPrefix + "notes")
	g.GET("", handler.Wrapper(c.Notes.List))
	g.POST("", handler.Wrapper(c.Notes.Create))
	g.GET("/:id", handler.Wrapper(c.Notes.Get))
	g.PUT("/:id", handler.Wrapper(c.Notes.Update))
	g.DELETE("/:id", handler.Wrapper(c.Notes.Delete))
}
