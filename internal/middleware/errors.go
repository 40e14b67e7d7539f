package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkowalik/twrpulse/internal/domain/dto"
	"github.com/mkowalik/twrpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context (via c.Error) into
// a standardized 500 JSON response, unless a handler already wrote one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError logs err and aborts the request with a standardized JSON
// error body at the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Warn().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
