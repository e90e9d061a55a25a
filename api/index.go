package handler

import (
	"net/http"
	"os"

	"github.com/arnavshah/duty-planner-go/internal/app"
	"github.com/arnavshah/duty-planner-go/internal/config"
	"github.com/arnavshah/duty-planner-go/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		logger.New().WithError(err).Fatal("failed to load configuration")
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	// auto-generation only runs in cmd/server
	a, err := app.New(cfg, logger.New().WithField("runtime", "serverless"))
	if err != nil {
		logger.New().WithError(err).Fatal("failed to start")
	}

	gin.SetMode(gin.ReleaseMode)
	r = a.Router()
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
