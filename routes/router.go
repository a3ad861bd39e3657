package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/auth"
	"github.com/pickuphub/backend/internal/comment"
	"github.com/pickuphub/backend/internal/event"
	"github.com/pickuphub/backend/internal/rsvp"
	"github.com/pickuphub/backend/internal/sport"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	// The session rides an HTTP-only cookie, so CORS must be credentialed
	// and pinned to the SPA origin — a wildcard would be rejected by the
	// browser for credentialed requests.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{appConfig.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := &r.RouterGroup
	auth.RegisterAuthRoutes(root, db, appConfig)
	event.RegisterEventRoutes(root, db, appConfig)
	sport.RegisterSportRoutes(root, db, appConfig)
	rsvp.RegisterRSVPRoutes(root, db, appConfig)
	comment.RegisterCommentRoutes(root, db, appConfig)

	return r
}
