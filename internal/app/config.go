package app

import (
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/utils"
)

type Config struct {
	Port          int
	UploadDir     string
	ServeFrontend bool
	FrontendDist  string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:          utils.GetEnvAsInt("PORT", 5000, log),
		UploadDir:     utils.GetEnv("UPLOAD_DIR", "./uploads", log),
		ServeFrontend: utils.GetEnvAsBool("SERVE_FRONTEND", false, log),
		FrontendDist:  utils.GetEnv("FRONTEND_DIST", "./frontend/dist", log),
	}
}
