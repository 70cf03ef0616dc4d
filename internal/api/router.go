package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/signaldeck/signaldeck-backend-go/internal/config"
	"github.com/signaldeck/signaldeck-backend-go/internal/handler"
	"github.com/signaldeck/signaldeck-backend-go/internal/metrics"
	"github.com/signaldeck/signaldeck-backend-go/internal/middleware"
	"github.com/signaldeck/signaldeck-backend-go/internal/service"
)

// SetupRouter wires middleware, handlers and routes.
func SetupRouter(cfg *config.Config, log *zap.Logger, dashboardService *service.DashboardService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(metrics.Handler())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SignalDeck backend is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	dashboardHandler := handler.NewDashboardHandler(dashboardService, cfg)
	metaHandler := handler.NewMetaHandler(dashboardService)

	api := r.Group("/api/v1")
	if cfg.AuthSecret != "" {
		api.Use(middleware.Auth(cfg.AuthSecret))
	}
	{
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/regions", metaHandler.ListRegions)
		api.GET("/buckets", metaHandler.ListBuckets)
		api.GET("/regions/:region/sectors", metaHandler.ListSectors)
		api.POST("/regions/:region/reload", dashboardHandler.ReloadRegion)
	}

	return r
}
