package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CacheConfig represents cache control configuration
type CacheConfig struct {
	MaxAge         int
	Private        bool
	NoStore        bool
	MustRevalidate bool
	Vary           []string
}

// NoStoreCacheConfig is used for every API response: they echo health data
func NoStoreCacheConfig() CacheConfig {
	return CacheConfig{Private: true, NoStore: true}
}

// DefaultCacheConfig is used for the static dashboard page
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxAge:         300,
		MustRevalidate: true,
		Vary:           []string{"Accept-Encoding"},
	}
}

// Cache adds cache control headers to responses. Non-GET requests are
// never cacheable.
func Cache(config CacheConfig) gin.HandlerFunc {
	value := cacheControl(config)
	vary := strings.Join(config.Vary, ", ")

	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", value)
		if vary != "" {
			c.Header("Vary", vary)
		}
		c.Next()
	}
}

func cacheControl(config CacheConfig) string {
	if config.NoStore {
		return "no-store"
	}

	directives := []string{"public"}
	if config.Private {
		directives[0] = "private"
	}
	if config.MaxAge > 0 {
		directives = append(directives, "max-age="+strconv.Itoa(config.MaxAge))
	}
	if config.MustRevalidate {
		directives = append(directives, "must-revalidate")
	}
	return strings.Join(directives, ", ")
}
