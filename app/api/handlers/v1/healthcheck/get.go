package healthcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/memo-api/platform/web/handler"
	"github.com/ribgsilva/memo-api/sys"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Checks the database answers
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := r.Database.PingContext(pingCtx); err != nil {
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   handler.Error{Message: err.Error()},
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   Status{Status: "ok"},
		}
	}
}
