// @title BioTutor API
// @version 1.0
// @description Backend for the AI-powered biology tutor.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"biotutor_backend/internal/app"
	"biotutor_backend/internal/config"
	"biotutor_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
