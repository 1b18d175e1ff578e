package notebooks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/business/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/web/handler"
	"github.com/ribgsilva/memo-api/sys"
)

// List godoc
// @Summary List notebooks
// @Description Every notebook, oldest first
// @Tags Notebook
// @Produce json
// @Success 200 {array} notebook.Notebook
// @Failure 500 {object} handler.Error
// @Router /v1/notebooks [get]
func List(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		all, err := notebook.FindAll(ctx.Request.Context(), r)
		if err != nil {
			return handler.Result{
				Status: http.StatusInternalServerError,
				Body:   handler.Error{Message: err.Error()},
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   all,
		}
	}
}

// Memos godoc
// @Summary List the memos of a notebook
// @Description The memos of one notebook, oldest first
// @Tags Notebook
// @Produce json
// @Param id path string true "Notebook id"
// @Success 200 {array} memo.Memo
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notebooks/{id}/memos [get]
func Memos(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
		if err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid id"},
			}
		}
		memos, err := memo.FindByNotebook(ctx.Request.Context(), r, id)
		if err != nil {
			return handler.Result{
				Status: http.StatusInternalServerError,
				Body:   handler.Error{Message: err.Error()},
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   memos,
		}
	}
}
