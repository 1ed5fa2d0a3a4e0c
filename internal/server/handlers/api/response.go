package api

import "github.com/gin-gonic/gin"

// AbortWithError stops the handler chain and writes the error envelope.
func AbortWithError(ctx *gin.Context, status int, code string, err error) {
	ctx.Abort()
	ctx.Error(err)
	ctx.PureJSON(status, APIError{
		Code:    code,
		Message: err.Error(),
	})
}
