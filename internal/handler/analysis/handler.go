package analysis

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/service/analysis"
	"github.com/jwalitptl/healthcare-platform/pkg/errors"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

const uploadField = "dataUpload"

type Handler struct {
	service analysis.AnalysisService
}

func NewHandler(service analysis.AnalysisService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/data-analysis", h.Analyze)
}

func (h *Handler) Analyze(c *gin.Context) {
	// Any other form error leaves file nil, which validates as missing
	file, err := c.FormFile(uploadField)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		_ = c.Error(errors.NewInvalidFormat(uploadField, "uploaded file exceeds the maximum upload size", err))
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), file)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}
