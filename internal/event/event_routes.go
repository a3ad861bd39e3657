package event

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	mw "github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/internal/sport"
)

func RegisterEventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	eventRepo := NewEventRepository(db)
	sportRepo := sport.NewSportRepository(db)
	eventController := NewEventController(eventRepo, sportRepo, appConfig)

	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", eventController.ListEvents)
	}

	protectedEvents := router.Group("/events")
	protectedEvents.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protectedEvents.POST("/create", eventController.CreateEvent)
	}
}
