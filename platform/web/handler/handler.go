// Package handler adapts handlers returning a Result to gin.
package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a handler wants written back to the client
type Result struct {
	Status  int
	Body    any
	Headers map[string]string
}

// Error is the body sent back on every failed request
type Error struct {
	Message string              `json:"message" example:"Resource not found"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Func is a handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper turns a Func into a gin.HandlerFunc, writing the Result as JSON
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		for k, v := range r.Headers {
			ctx.Header(k, v)
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
