package comment

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/pkg/responses"
)

// CommentController handles per-event chat messages.
type CommentController struct {
	repo   CommentRepository
	config *config.Config
}

// NewCommentController creates a new CommentController.
func NewCommentController(repo CommentRepository, cfg *config.Config) *CommentController {
	return &CommentController{
		repo:   repo,
		config: cfg,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required" example:"See you there!"`
}

// ListComments godoc
// @Summary      List comments for an event
// @Description  Returns the event's comments ascending by time, with author names. Public.
// @Tags         Comments
// @Produce      json
// @Param        gameId  path  int  true  "Game event ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  responses.ErrorResponse "Invalid game ID"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events/{gameId}/comments [get]
func (cc *CommentController) ListComments(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid game ID")
		return
	}

	comments, err := cc.repo.ListComments(uint(gameID))
	if err != nil {
		log.Printf("list comments error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	if comments == nil {
		comments = []CommentDetail{}
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{"comments": comments})
}

// CreateComment godoc
// @Summary      Post a comment on an event
// @Description  Appends a comment to the event's log. Comments are immutable once posted.
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Param        gameId   path  int                   true  "Game event ID"
// @Param        comment  body  CreateCommentRequest  true  "Comment text"
// @Success      201  {object}  map[string]interface{} "Comment added"
// @Failure      400  {object}  responses.ErrorResponse "Missing or blank text, or invalid game ID"
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events/{gameId}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid game ID")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		responses.SendError(c, http.StatusBadRequest, "Comment text required")
		return
	}

	comment := Comment{
		GameEventID: uint(gameID),
		UserID:      userID,
		Text:        req.Text,
	}
	if err := cc.repo.CreateComment(&comment); err != nil {
		log.Printf("create comment error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, gin.H{"message": "Comment added"})
}
