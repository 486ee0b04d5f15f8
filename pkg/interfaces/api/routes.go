package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// SetupRoutes configures all API routes. A nil gatherer serves the default registry.
func SetupRoutes(handlers *Handlers, gatherer prometheus.Gatherer, log logger.Logger) *gin.Engine {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	v1 := router.Group("/v1")
	{
		v1.POST("/plans", handlers.CreatePlanHandler)
		v1.GET("/plans/:id/events", handlers.PlanEventsHandler)
	}

	router.GET("/healthz", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}

// requestLogger logs one line per request
func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugw("request", map[string]any{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}
