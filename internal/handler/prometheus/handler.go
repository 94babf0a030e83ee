package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwalitptl/healthcare-platform/internal/middleware"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

type Handler struct {
	metrics *metrics.Metrics
}

func New(m *metrics.Metrics) *Handler {
	return &Handler{metrics: m}
}

// Middleware records request count and latency by route template.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		h.metrics.RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		h.metrics.RequestTotal.WithLabelValues(method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			errType := c.GetString(middleware.ContextErrorType)
			if errType == "" {
				errType = "http"
			}
			h.metrics.ErrorTotal.WithLabelValues(method, path, errType).Inc()
		}
	}
}

func (h *Handler) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{}))
}
