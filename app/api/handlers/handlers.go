package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/memo-api/app/api/handlers/v1/bridge"
	"github.com/ribgsilva/memo-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/memo-api/app/api/handlers/v1/memos"
	"github.com/ribgsilva/memo-api/app/api/handlers/v1/notebooks"
	gw "github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/platform/web/handler"
	"github.com/ribgsilva/memo-api/sys"
)

func MapDefaults(r *gin.Engine, res *sys.Resources) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get(res)))
}

func MapApi(r *gin.Engine, d *gw.Dispatcher, res *sys.Resources) {
	r.POST("/v1/bridge/:op", handler.Wrapper(bridge.Invoke(d, res.Log)))
	r.GET("/v1/memos/:id", handler.Wrapper(memos.Get(res)))
	r.GET("/v1/notebooks", handler.Wrapper(notebooks.List(res)))
	r.GET("/v1/notebooks/:id/memos", handler.Wrapper(notebooks.Memos(res)))
}
