package sport

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/pkg/responses"
)

// SportController handles API requests related to sports.
type SportController struct {
	repo   SportRepository
	config *config.Config
}

// NewSportController creates a new SportController.
func NewSportController(repo SportRepository, cfg *config.Config) *SportController {
	return &SportController{
		repo:   repo,
		config: cfg,
	}
}

type CreateSportRequest struct {
	Name string `json:"name" binding:"required" example:"Soccer"`
}

type SportResponse struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// GetAllSports godoc
// @Summary      List all sports
// @Description  Returns every sport category, sorted by name.
// @Tags         Sports
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /sports [get]
func (sc *SportController) GetAllSports(c *gin.Context) {
	sports, err := sc.repo.GetAllSports()
	if err != nil {
		log.Printf("get sports error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while fetching sports")
		return
	}
	if sports == nil {
		sports = []Sport{}
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{"sports": sports})
}

// CreateSport godoc
// @Summary      Create a sport
// @Description  Adds a new sport category with a unique, trimmed name.
// @Tags         Sports
// @Accept       json
// @Produce      json
// @Param        sport  body  CreateSportRequest  true  "Sport name"
// @Success      201  {object}  map[string]interface{} "Sport created successfully"
// @Failure      400  {object}  responses.ErrorResponse "Missing name or sport already exists"
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /sports/create [post]
func (sc *SportController) CreateSport(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Sport name is required")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		responses.SendError(c, http.StatusBadRequest, "Sport name is required")
		return
	}

	existing, err := sc.repo.FindSportByName(name)
	if err != nil {
		log.Printf("create sport lookup error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while creating the sport")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusBadRequest, "Sport already exists")
		return
	}

	s := Sport{
		Name:   name,
		UserID: userID,
	}
	if err := sc.repo.CreateSport(&s); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent create slipped past the pre-check.
			responses.SendError(c, http.StatusBadRequest, "Sport already exists")
			return
		}
		log.Printf("create sport insert error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while creating the sport")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "Sport created successfully",
		"sport": SportResponse{
			ID:     s.ID,
			UserID: s.UserID,
			Name:   s.Name,
		},
	})
}
