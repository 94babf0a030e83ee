package diagnosis

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/handler"
	"github.com/jwalitptl/healthcare-platform/internal/service/diagnosis"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

type Handler struct {
	service diagnosis.DiagnosisService
}

func NewHandler(service diagnosis.DiagnosisService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/diagnosis", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	fields, err := handler.FormFields(c, "patient_name", "email", "age", "symptoms")
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), fields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}
