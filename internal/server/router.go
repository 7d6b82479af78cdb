package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/vietmaphub/landmark-backend/internal/handlers"
	"github.com/vietmaphub/landmark-backend/internal/middleware"
	"github.com/vietmaphub/landmark-backend/internal/observability"
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	LandmarkHandler *handlers.LandmarkHandler
	MediaHandler    *handlers.MediaHandler

	// Tracing mounts the otelgin middleware; the tracer provider itself is
	// installed by observability.Init.
	Tracing bool

	// When ServeFrontend is set the built SPA under FrontendDist is served
	// with an index.html fallback for non-API routes.
	ServeFrontend bool
	FrontendDist  string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Tracing {
		router.Use(otelgin.Middleware(observability.ServiceName))
	}
	router.Use(middleware.RequestID())
	if cfg.Log != nil {
		router.Use(middleware.RequestLogger(cfg.Log))
	}

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	api := router.Group("/api")
	{
		api.GET("/ping", handlers.Ping)

		landmarks := api.Group("/landmarks")
		{
			landmarks.GET("", cfg.LandmarkHandler.List)
			landmarks.POST("", cfg.LandmarkHandler.Create)
			landmarks.POST("/bulk-save", cfg.LandmarkHandler.BulkSave)
			landmarks.PUT("/:id", cfg.LandmarkHandler.Update)
			landmarks.DELETE("/:id", cfg.LandmarkHandler.Delete)
		}

		media := api.Group("/media")
		{
			media.GET("/landmark/:landmarkId", cfg.MediaHandler.ListByLandmark)
			media.POST("/upload/:landmarkId", cfg.MediaHandler.Upload)
			media.GET("/serve/:landmarkId/:fileName", cfg.MediaHandler.Serve)
			media.PUT("/reorder/:landmarkId", cfg.MediaHandler.Reorder)
			media.DELETE("/:mediaId", cfg.MediaHandler.Delete)
		}
	}

	if cfg.ServeFrontend {
		registerFrontend(router, cfg.FrontendDist)
	}

	return router
}

// registerFrontend serves the built SPA: real files as-is, everything else
// falls back to index.html so client-side routing works.
func registerFrontend(router *gin.Engine, dist string) {
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		requested := filepath.Join(dist, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(dist, "index.html"))
	})
}
