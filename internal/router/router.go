package router

import (
	"fmt"
	"net/http"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/logger"
	"fbr-invoice-backend/internal/metrics"
	"fbr-invoice-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const healthMessage = "FBR Invoice Backend is running"

// RouteRegistrar is implemented by every handler mounted under /api/v1.
type RouteRegistrar interface {
	RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth)
}

type Options struct {
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Auth           *middleware.Auth
	AllowedOrigins []string
	Production     bool
	EnableSwagger  bool
	Handlers       []RouteRegistrar
}

// New builds the engine with the shared middleware chain and mounts every handler.
func New(opts Options) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	r.Use(logger.GinMiddleware(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.GinMiddleware())
	}
	r.Use(apperr.Middleware())

	r.GET("/health", health)
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	if opts.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/v1")
	for _, h := range opts.Handlers {
		h.RegisterRoutes(api, opts.Auth)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": fmt.Sprintf("Cannot find %s on this server", c.Request.URL.Path),
		})
	})
	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   healthMessage,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// corsConfig allows the listed origins with credentials; an empty list allows any origin without them.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", logger.RequestIDHeader}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.ExposeHeaders = []string{"Content-Disposition", logger.RequestIDHeader}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
