package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/mkowalik/twrpulse/internal/domain/dto"
	"github.com/mkowalik/twrpulse/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that gracefully recovers from any panics,
// logs the stack trace for debugging, and returns a standardized JSON error response.
//
// Behavior:
//   - Uses defer to catch any panic that occurs during request handling.
//   - Logs the recovered panic value and stack trace.
//   - Returns a 500 Internal Server Error response using dto.NewErrorResponse.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				errResponse := dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
