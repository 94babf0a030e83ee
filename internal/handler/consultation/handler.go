package consultation

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/handler"
	"github.com/jwalitptl/healthcare-platform/internal/service/consultation"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

type Handler struct {
	service consultation.ConsultationService
}

func NewHandler(service consultation.ConsultationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/consultation", h.Book)
}

func (h *Handler) Book(c *gin.Context) {
	fields, err := handler.FormFields(c, "name", "email", "date")
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Book(c.Request.Context(), fields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}
