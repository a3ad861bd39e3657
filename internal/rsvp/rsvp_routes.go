package rsvp

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	mw "github.com/pickuphub/backend/internal/middleware"
)

// RegisterRSVPRoutes registers membership routes. They span two path
// roots (/events/:gameId and /users), so the root group is passed in.
func RegisterRSVPRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	rsvpRepo := NewRSVPRepository(db)
	rsvpController := NewRSVPController(rsvpRepo, appConfig)

	protected := router.Group("/")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protected.POST("/events/:gameId/join", rsvpController.Join)
		protected.POST("/events/:gameId/leave", rsvpController.Leave)
		protected.GET("/events/:gameId/joined", rsvpController.HasJoined)
		protected.GET("/users/joined-games", rsvpController.JoinedGames)
	}
}
