package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
)

// ErrorBody is the only error shape returned to API callers.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondWithSuccess sends a 200 with the payload as the top-level body
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondWithError classifies err and sends the matching status and message
func RespondWithError(c *gin.Context, err error) {
	appErr := errors.Classify(err)
	c.JSON(appErr.StatusCode(), ErrorBody{Error: appErr.PublicMessage()})
}

// AbortWithError is RespondWithError for middleware that must stop the chain
func AbortWithError(c *gin.Context, err error) {
	appErr := errors.Classify(err)
	c.AbortWithStatusJSON(appErr.StatusCode(), ErrorBody{Error: appErr.PublicMessage()})
}
