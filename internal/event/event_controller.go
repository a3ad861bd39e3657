package event

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/internal/sport"
	"github.com/pickuphub/backend/pkg/responses"
	"github.com/pickuphub/backend/pkg/validator"
)

// EventController handles API requests related to game events.
type EventController struct {
	repo      EventRepository
	sportRepo sport.SportRepository
	config    *config.Config
}

// NewEventController creates a new EventController.
func NewEventController(repo EventRepository, sportRepo sport.SportRepository, cfg *config.Config) *EventController {
	return &EventController{
		repo:      repo,
		sportRepo: sportRepo,
		config:    cfg,
	}
}

type CreateEventRequest struct {
	Title      string `json:"title" binding:"required" example:"Pickup 5v5"`
	Sport      string `json:"sport" binding:"required" example:"Soccer"`
	Location   string `json:"location" binding:"required" example:"Park"`
	Datetime   string `json:"datetime" binding:"required" example:"2025-06-01 18:00:00"`
	MaxPlayers int    `json:"max_players" binding:"required" example:"10"`
	SkillLevel string `json:"skill_level" binding:"required" example:"Intermediate"`
}

type EventResponse struct {
	ID          uint      `json:"id"`
	OrganizerID uint      `json:"organizer_id"`
	Title       string    `json:"title"`
	SportID     uint      `json:"sport"`
	SportName   string    `json:"sport_name"`
	Location    string    `json:"location"`
	Datetime    time.Time `json:"datetime"`
	MaxPlayers  int       `json:"max_players"`
	SkillLevel  string    `json:"skill_level"`
	CreatedAt   time.Time `json:"created_at"`
}

// datetimeLayouts are the accepted event datetime formats: the API's
// documented "YYYY-MM-DD HH:MM:SS" plus what datetime-local inputs send.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDatetime(value string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ListEvents godoc
// @Summary      List all events
// @Description  Returns every event ascending by datetime, with organizer name, sport name and current player count.
// @Tags         Events
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	events, err := ec.repo.ListEvents()
	if err != nil {
		log.Printf("list events error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while fetching events")
		return
	}
	if events == nil {
		events = []EventDetail{}
	}

	responses.SendSuccess(c, http.StatusOK, gin.H{"events": events})
}

// CreateEvent godoc
// @Summary      Create an event
// @Description  Creates a game event. The sport is resolved by name and created lazily if absent.
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        event  body  CreateEventRequest  true  "Event details"
// @Success      201  {object}  map[string]interface{} "Event created successfully"
// @Failure      400  {object}  responses.ErrorResponse "Missing or invalid fields"
// @Failure      401  {object}  responses.ErrorResponse "Missing or invalid session"
// @Failure      500  {object}  responses.ErrorResponse "Internal server error"
// @Router       /events/create [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	organizerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("create event validation failed: %v", validator.ParseError(err))
		responses.SendError(c, http.StatusBadRequest, "All fields are required: title, sport, location, datetime, max_players, skill_level")
		return
	}

	if req.MaxPlayers <= 0 {
		responses.SendError(c, http.StatusBadRequest, "max_players must be a positive number")
		return
	}

	datetime, ok := parseDatetime(req.Datetime)
	if !ok {
		responses.SendError(c, http.StatusBadRequest, "datetime must be formatted as YYYY-MM-DD HH:MM:SS")
		return
	}

	// Find-or-create the sport by name. Two concurrent creates of the same
	// new name race; the unique index rejects the loser and the request
	// surfaces a store error (accepted, cosmetic — no transaction here).
	sportName := strings.TrimSpace(req.Sport)
	existing, err := ec.sportRepo.FindSportByName(sportName)
	if err != nil {
		log.Printf("create event sport lookup error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while creating the event")
		return
	}

	var sportID uint
	if existing != nil {
		sportID = existing.ID
	} else {
		s := sport.Sport{Name: sportName, UserID: organizerID}
		if err := ec.sportRepo.CreateSport(&s); err != nil {
			log.Printf("create event sport insert error: %v", err)
			responses.SendError(c, http.StatusInternalServerError, "Failed to create sport")
			return
		}
		sportID = s.ID
	}

	e := GameEvent{
		OrganizerID: organizerID,
		Title:       req.Title,
		SportID:     sportID,
		Location:    req.Location,
		Datetime:    datetime,
		MaxPlayers:  req.MaxPlayers,
		SkillLevel:  req.SkillLevel,
	}
	if err := ec.repo.CreateEvent(&e); err != nil {
		log.Printf("create event insert error: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while creating the event")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event": EventResponse{
			ID:          e.ID,
			OrganizerID: e.OrganizerID,
			Title:       e.Title,
			SportID:     e.SportID,
			SportName:   sportName,
			Location:    e.Location,
			Datetime:    e.Datetime,
			MaxPlayers:  e.MaxPlayers,
			SkillLevel:  e.SkillLevel,
			CreatedAt:   e.CreatedAt,
		},
	})
}
