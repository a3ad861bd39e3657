package comment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	mw "github.com/pickuphub/backend/internal/middleware"
)

func RegisterCommentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	commentRepo := NewCommentRepository(db)
	commentController := NewCommentController(commentRepo, appConfig)

	// Reading the log is public; appending requires a session.
	router.GET("/events/:gameId/comments", commentController.ListComments)

	protected := router.Group("/")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		protected.POST("/events/:gameId/comments", commentController.CreateComment)
	}
}
