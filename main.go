package main

import (
	"log"

	"github.com/DhavalSuthar-24/crickscore/config"
	_ "github.com/DhavalSuthar-24/crickscore/docs"
	"github.com/DhavalSuthar-24/crickscore/internal/models"
	"github.com/DhavalSuthar-24/crickscore/routes"
)

// @title CrickScore REST API
// @version 1.0
// @description Cricket tournaments, teams, players, matches and live scoring.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := models.Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
