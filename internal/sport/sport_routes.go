package sport

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	mw "github.com/pickuphub/backend/internal/middleware"
)

func RegisterSportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	sportRepo := NewSportRepository(db)
	sportController := NewSportController(sportRepo, appConfig)

	publicSports := router.Group("/sports")
	{
		publicSports.GET("", sportController.GetAllSports)
	}

	protectedSports := router.Group("/sports")
	protectedSports.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protectedSports.POST("/create", sportController.CreateSport)
	}
}
