package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/middleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	users := router.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/logout", authController.Logout)
		users.GET("/logout", authController.LogoutRedirect)
	}

	usersProtected := router.Group("/users")
	usersProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		usersProtected.GET("/profile", authController.Profile)
	}
}
