package healthplan

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/handler"
	"github.com/jwalitptl/healthcare-platform/internal/service/healthplan"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

type Handler struct {
	service healthplan.PlanService
}

func NewHandler(service healthplan.PlanService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/healthcare-plan", h.Generate)
}

func (h *Handler) Generate(c *gin.Context) {
	fields, err := handler.FormFields(c, "age", "goals")
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), fields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}
