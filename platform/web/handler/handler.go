package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a handler wants written back: the status and a json body
type Result struct {
	Status int
	Body   any
}

// Error is the body of every failed response
type Error struct {
	Message string `json:"message" example:"memo not found"`
	Kind    string `json:"kind,omitempty" example:"store"`
	Op      string `json:"op,omitempty" example:"insertMemo"`
	Field   string `json:"field,omitempty" example:"notebook_id"`
}

// Wrapper adapts a Result returning func into a gin handler
func Wrapper(f func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
