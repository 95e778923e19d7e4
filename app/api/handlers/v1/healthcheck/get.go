package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes/platform/web/handler"
	"go.uber.org/zap"
	"net/http"
	"time"
)

type Handlers struct {
	Log     *zap.SugaredLogger
	Ping    func(ctx context.Context) error
	Timeout time.Duration
}

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the database answers
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} Status
// @Router /v1/healthcheck [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	pCtx, pCancel := context.WithTimeout(ctx.Request.Context(), h.Timeout)
	defer pCancel()
	if err := h.Ping(pCtx); err != nil {
		h.Log.Errorw("healthcheck", "ERROR", err)
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   Status{Status: "database unavailable"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
