package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/service/stats"
	"github.com/jwalitptl/healthcare-platform/pkg/httputil"
)

type Handler struct {
	service stats.StatsService
}

func NewHandler(service stats.StatsService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}
