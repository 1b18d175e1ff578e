package memos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/platform/web/handler"
	"github.com/ribgsilva/memo-api/sys"
)

// Get godoc
// @Summary Find a memo
// @Description Find a memo using its id
// @Tags Memo
// @Produce json
// @Param id path string true "Memo id"
// @Success 200 {object} memo.Memo
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/memos/{id} [get]
func Get(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid id"},
			}
		}

		get, err := memo.Find(ctx.Request.Context(), r, id)

		switch {
		case err != nil:
			return handler.Result{
				Status: http.StatusInternalServerError,
				Body:   handler.Error{Message: err.Error()},
			}
		case get.Id == 0:
			return handler.Result{
				Status: http.StatusNotFound,
				Body:   handler.Error{Message: "memo not found"},
			}
		default:
			return handler.Result{
				Status: http.StatusOK,
				Body:   get,
			}
		}
	}
}
