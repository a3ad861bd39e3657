package rsvp

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/event"
	"github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/pkg/responses"
)

// RSVPController handles joining and leaving game events.
type RSVPController struct {
	repo   RSVPRepository
	config *config.Config
}

// NewRSVPController creates a new RSVPController.
func NewRSVPController(repo RSVPRepository, cfg *config.Config) *RSVPController {
	return &RSVPController{
		repo:   repo,
		config: cfg,
	}
}

func gameIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid game ID")
		return 0, false
	}
	return uint(id), true
}

// Join godoc
// @Summary      Join a game event
// @Description  Records the caller's RSVP. A user may join an event at most once; capacity is advisory and never blocks a join.
// @Tags         RSVP
// @Produce      json
// @Param        gameId  path  int  true  "Game event ID"
// @Success      201  {object}  map[string]interface{} "Successfully joined game"
// @Failure      400  {object}  responses.ErrorResponse "Already joined or invalid game ID"
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events/{gameId}/join [post]
func (rc *RSVPController) Join(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	joined, err := rc.repo.HasJoined(gameID, userID)
	if err != nil {
		log.Printf("join pre-check error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to join game")
		return
	}
	if joined {
		responses.SendError(c, http.StatusBadRequest, "You have already joined this game")
		return
	}

	if err := rc.repo.Join(gameID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent join by the same user won the race; the composite
			// primary key is the authoritative guard.
			responses.SendError(c, http.StatusBadRequest, "You have already joined this game")
			return
		}
		log.Printf("join insert error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to join game")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, gin.H{"message": "Successfully joined game"})
}

// Leave godoc
// @Summary      Leave a game event
// @Description  Removes the caller's RSVP. Idempotent: leaving an event never joined still succeeds.
// @Tags         RSVP
// @Produce      json
// @Param        gameId  path  int  true  "Game event ID"
// @Success      200  {object}  map[string]interface{} "Successfully left game"
// @Failure      400  {object}  responses.ErrorResponse "Invalid game ID"
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events/{gameId}/leave [post]
func (rc *RSVPController) Leave(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	if err := rc.repo.Leave(gameID, userID); err != nil {
		log.Printf("leave error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to leave game")
		return
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{"message": "Successfully left game"})
}

// HasJoined godoc
// @Summary      Check join status
// @Description  Reports whether the caller has joined the given event.
// @Tags         RSVP
// @Produce      json
// @Param        gameId  path  int  true  "Game event ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  responses.ErrorResponse "Invalid game ID"
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events/{gameId}/joined [get]
func (rc *RSVPController) HasJoined(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	joined, err := rc.repo.HasJoined(gameID, userID)
	if err != nil {
		log.Printf("join status error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to check join status")
		return
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{"hasJoined": joined})
}

// JoinedGames godoc
// @Summary      List the caller's joined events
// @Description  Returns the events the caller has joined, ascending by datetime.
// @Tags         RSVP
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /users/joined-games [get]
func (rc *RSVPController) JoinedGames(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	games, err := rc.repo.JoinedEvents(userID)
	if err != nil {
		log.Printf("joined games error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch joined games")
		return
	}
	if games == nil {
		games = []event.EventDetail{}
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{"games": games})
}
