package bridge

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	gw "github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/platform/web/handler"
	"go.uber.org/zap"
)

// Invoke godoc
// @Summary Run a gateway operation
// @Description Runs the named operation with the positional arguments in the body
// @Tags Bridge
// @Accept json
// @Produce json
// @Param op path string true "Operation name" example(selectMemo)
// @Param args body []interface{} false "Positional arguments"
// @Success 200 {object} bridge.Reply
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/bridge/{op} [post]
func Invoke(d *gw.Dispatcher, log *zap.SugaredLogger) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		op := ctx.Param("op")
		log.Debugw("bridge", "op", op, "request_id", ctx.GetHeader(gw.RequestIDHeader))

		var args gw.Args
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "could not read body", Kind: errs.KindBridge, Op: op},
			}
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &args); err != nil {
				return handler.Result{
					Status: http.StatusBadRequest,
					Body:   handler.Error{Message: "body must be a json array of arguments", Kind: errs.KindBridge, Op: op},
				}
			}
		}

		result, err := d.Invoke(ctx.Request.Context(), op, args)
		if err != nil {
			return Failure(op, err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   gw.Reply{Result: result},
		}
	}
}

// Failure maps an operation error to its response
func Failure(op string, err error) handler.Result {
	kind := errs.KindOf(err)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gw.ErrUnknownOperation):
		status = http.StatusNotFound
	case kind == errs.KindInput, kind == errs.KindBridge:
		status = http.StatusBadRequest
	}
	body := handler.Error{Message: err.Error(), Kind: kind, Op: op}
	if field, reason, ok := errs.Reason(err); ok {
		body.Message = reason
		body.Field = field
	}
	return handler.Result{
		Status: status,
		Body:   body,
	}
}
