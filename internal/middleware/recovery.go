package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

// Recovery handles panics and answers with the generic internal error body
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("error", rec).
					Str("stack", string(debug.Stack())).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("client_ip", c.ClientIP()).
					Str("request_id", c.GetString(ContextRequestID)).
					Msg("Request panic recovered")

				c.Set(ContextErrorType, errors.ErrInternal.String())
				httputil.AbortWithError(c, errors.NewInternal(fmt.Errorf("panic: %v", rec)))
			}
		}()
		c.Next()
	}
}
