package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietmaphub/landmark-backend/internal/db"
	"github.com/vietmaphub/landmark-backend/internal/handlers"
	"github.com/vietmaphub/landmark-backend/internal/observability"
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/repos"
	"github.com/vietmaphub/landmark-backend/internal/server"
	"github.com/vietmaphub/landmark-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	Router *gin.Engine
	Cfg    Config

	pg           *db.PostgresService
	traceCleanup func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)
	traceCleanup := observability.Init(context.Background(), log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.MigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	gdb := pg.DB()

	landmarkRepo := repos.NewLandmarkRepo(gdb, log)
	mediaRepo := repos.NewLandmarkMediaRepo(gdb, log)

	landmarkService := services.NewLandmarkService(gdb, log, landmarkRepo, mediaRepo, cfg.UploadDir)
	mediaService := services.NewMediaService(gdb, log, landmarkRepo, mediaRepo, cfg.UploadDir)

	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		LandmarkHandler: handlers.NewLandmarkHandler(log, landmarkService),
		MediaHandler:    handlers.NewMediaHandler(log, mediaService),
		Tracing:         traceCleanup != nil,
		ServeFrontend:   cfg.ServeFrontend,
		FrontendDist:    cfg.FrontendDist,
	})

	return &App{
		Log:          log,
		Router:       router,
		Cfg:          cfg,
		pg:           pg,
		traceCleanup: traceCleanup,
	}, nil
}

// Close flushes pending spans, releases the DB pool and flushes the logger.
// Best effort on shutdown.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.traceCleanup != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.traceCleanup(ctx); err != nil {
			a.Log.Warn("Failed to flush traces", "error", err)
		}
		cancel()
	}
	if a.pg != nil {
		if err := a.pg.Close(); err != nil {
			a.Log.Warn("Failed to close database", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
