package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/validation"
	"github.com/jwalitptl/healthcare-platform/pkg/errors"
)

// Handler is implemented by every route group
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// FormFields collects the named fields from a url-encoded or multipart form.
// A JSON object body is accepted as well; its scalar values are converted to
// their text form so that all sources validate the same way.
func FormFields(c *gin.Context, keys ...string) (validation.Fields, error) {
	fields := make(validation.Fields, len(keys))

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var body map[string]interface{}
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, errors.NewInvalidFormat("body", "request body must be a JSON object", err)
		}
		for _, key := range keys {
			switch v := body[key].(type) {
			case nil:
			case json.Number:
				fields[key] = v.String()
			default:
				fields[key] = fmt.Sprint(v)
			}
		}
		return fields, nil
	}

	for _, key := range keys {
		fields[key] = c.PostForm(key)
	}
	return fields, nil
}
