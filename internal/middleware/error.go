package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

// ErrorHandler turns the last error attached with c.Error into the JSON
// error body. Handlers never write error responses themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		lastErr := c.Errors.Last()
		appErr := errors.Classify(lastErr.Err)

		event := log.Warn()
		if !appErr.Code.IsClientFault() {
			event = log.Error()
		}
		event.
			Err(lastErr.Err).
			Str("request_id", c.GetString(ContextRequestID)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Str("error_type", appErr.Code.String()).
			Str("field", appErr.Field).
			Msg("Request error")

		c.Set(ContextErrorType, appErr.Code.String())

		if c.Writer.Written() {
			return
		}
		httputil.RespondWithError(c, appErr)
	}
}
