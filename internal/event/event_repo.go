package event

import (
	"gorm.io/gorm"
)

const detailColumns = "game_events.id, game_events.organizer_id, game_events.title, " +
	"game_events.sport_id, game_events.location, game_events.datetime, " +
	"game_events.max_players, game_events.skill_level, " +
	"users.username AS organizer_name, sports.name AS sport_name, " +
	"COUNT(rsvps.user_id) AS current_players"

type EventRepository interface {
	CreateEvent(event *GameEvent) error
	ListEvents() ([]EventDetail, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(event *GameEvent) error {
	return r.db.Create(event).Error
}

// ListEvents returns every event ascending by datetime, enriched with
// organizer name, sport name and membership count. The RSVP join is an
// outer join so events nobody has joined still appear with count 0.
func (r *eventRepository) ListEvents() ([]EventDetail, error) {
	var events []EventDetail
	err := r.db.Model(&GameEvent{}).
		Select(detailColumns).
		Joins("LEFT JOIN users ON users.id = game_events.organizer_id").
		Joins("LEFT JOIN sports ON sports.id = game_events.sport_id").
		Joins("LEFT JOIN rsvps ON rsvps.game_event_id = game_events.id").
		Group("game_events.id, game_events.organizer_id, game_events.title, game_events.sport_id, game_events.location, game_events.datetime, game_events.max_players, game_events.skill_level, users.username, sports.name").
		Order("game_events.datetime ASC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
