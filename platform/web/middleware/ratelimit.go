// Package middleware contains the gin middlewares installed in front of the api routes.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/platform/ratelimit"
	"github.com/ribgsilva/notes/platform/web/handler"
	"go.uber.org/zap"
	"math"
	"net/http"
	"strconv"
)

// RateLimit rejects with 429 the requests that do not fit in the client window. The client is identified by its ip.
// A limiter failure is logged and the request is let through.
func RateLimit(log *zap.SugaredLogger, limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		client := ctx.ClientIP()

		d, err := limiter.Allow(ctx.Request.Context(), client)
		if err != nil {
			log.Errorw("rate limit", "ERROR", err, "client", client)
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			ctx.Header("Retry-After", strconv.Itoa(int(math.Ceil(d.Reset.Seconds()))))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, handler.Error{Message: "Too many requests"})
			return
		}

		ctx.Next()
	}
}
