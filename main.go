package main

import (
	"log"

	"github.com/pickuphub/backend/config"
	_ "github.com/pickuphub/backend/docs"
	"github.com/pickuphub/backend/internal/comment"
	"github.com/pickuphub/backend/internal/event"
	"github.com/pickuphub/backend/internal/rsvp"
	"github.com/pickuphub/backend/internal/sport"
	"github.com/pickuphub/backend/internal/user"
	"github.com/pickuphub/backend/routes"
)

// @title PickupHub REST API
// @version 1.0
// @description Backend for the pickup-sports coordination app.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&user.User{},
		&sport.Sport{},
		&event.GameEvent{},
		&rsvp.RSVP{},
		&comment.Comment{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
