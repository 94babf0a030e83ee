package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthcare-platform/internal/handler"
	"github.com/jwalitptl/healthcare-platform/internal/handler/prometheus"
	"github.com/jwalitptl/healthcare-platform/internal/middleware"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

type RouterConfig struct {
	Mode             string
	RateLimitEnabled bool
	RateLimit        middleware.RateLimiterConfig
	CORSConfig       middleware.CORSConfig
	SizeLimit        middleware.SizeLimitConfig
	RequestTimeout   time.Duration
	// MetricsPath is left unregistered when empty
	MetricsPath string
}

// Handlers are the route groups; nil entries are skipped
type Handlers struct {
	Dashboard    handler.Handler
	Health       handler.Handler
	Diagnosis    handler.Handler
	Consultation handler.Handler
	Plan         handler.Handler
	Analysis     handler.Handler
	Stats        handler.Handler
}

type Router struct {
	engine   *gin.Engine
	handlers Handlers
	metrics  *prometheus.Handler
	config   RouterConfig
}

func NewRouter(config RouterConfig, handlers Handlers, m *metrics.Metrics) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	engine := gin.New()

	r := &Router{
		engine:   engine,
		handlers: handlers,
		metrics:  prometheus.New(m),
		config:   config,
	}

	// Recovery and ErrorHandler sit inside the logger and metrics so both
	// observe the final status
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		r.metrics.Middleware(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(config.CORSConfig),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
	)

	if config.RateLimitEnabled {
		engine.Use(middleware.NewRateLimiter(config.RateLimit).RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	if r.config.MetricsPath != "" {
		root.GET(r.config.MetricsPath, r.metrics.Handler())
	}

	register(root, r.handlers.Health)

	pages := root.Group("")
	pages.Use(middleware.Cache(middleware.DefaultCacheConfig()))
	register(pages, r.handlers.Dashboard)

	api := root.Group("/api")
	api.Use(
		middleware.Cache(middleware.NoStoreCacheConfig()),
		middleware.SizeLimit(r.config.SizeLimit),
	)
	register(api, r.handlers.Diagnosis)
	register(api, r.handlers.Consultation)
	register(api, r.handlers.Plan)
	register(api, r.handlers.Analysis)
	register(api, r.handlers.Stats)
}

func register(rg *gin.RouterGroup, h handler.Handler) {
	if h != nil {
		h.RegisterRoutes(rg)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
