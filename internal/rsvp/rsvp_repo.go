package rsvp

import (
	"gorm.io/gorm"

	"github.com/pickuphub/backend/internal/event"
)

type RSVPRepository interface {
	HasJoined(gameEventID, userID uint) (bool, error)
	Join(gameEventID, userID uint) error
	Leave(gameEventID, userID uint) error
	Count(gameEventID uint) (int64, error)
	JoinedEvents(userID uint) ([]event.EventDetail, error)
}

type rsvpRepository struct {
	db *gorm.DB
}

// NewRSVPRepository creates a new instance of RSVPRepository.
func NewRSVPRepository(db *gorm.DB) RSVPRepository {
	return &rsvpRepository{db: db}
}

func (r *rsvpRepository) HasJoined(gameEventID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&RSVP{}).
		Where("game_event_id = ? AND user_id = ?", gameEventID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Join inserts a membership row. A concurrent join by the same user for
// the same event makes the second insert fail with gorm.ErrDuplicatedKey;
// callers must treat that as "already joined", not as a store failure.
func (r *rsvpRepository) Join(gameEventID, userID uint) error {
	return r.db.Create(&RSVP{GameEventID: gameEventID, UserID: userID}).Error
}

// Leave deletes the membership row if present. Deleting a membership that
// does not exist affects zero rows and is not an error.
func (r *rsvpRepository) Leave(gameEventID, userID uint) error {
	return r.db.Where("game_event_id = ? AND user_id = ?", gameEventID, userID).
		Delete(&RSVP{}).Error
}

func (r *rsvpRepository) Count(gameEventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&RSVP{}).
		Where("game_event_id = ?", gameEventID).
		Count(&count).Error
	return count, err
}

// JoinedEvents returns the events the user has joined, ascending by
// datetime, enriched the same way the public event listing is. The
// membership restriction is an inner join; the count aggregation joins
// the RSVP table a second time under an alias.
func (r *rsvpRepository) JoinedEvents(userID uint) ([]event.EventDetail, error) {
	var events []event.EventDetail
	err := r.db.Model(&event.GameEvent{}).
		Select("game_events.id, game_events.organizer_id, game_events.title, "+
			"game_events.sport_id, game_events.location, game_events.datetime, "+
			"game_events.max_players, game_events.skill_level, "+
			"users.username AS organizer_name, sports.name AS sport_name, "+
			"COUNT(att.user_id) AS current_players").
		Joins("JOIN rsvps ON rsvps.game_event_id = game_events.id AND rsvps.user_id = ?", userID).
		Joins("LEFT JOIN users ON users.id = game_events.organizer_id").
		Joins("LEFT JOIN sports ON sports.id = game_events.sport_id").
		Joins("LEFT JOIN rsvps att ON att.game_event_id = game_events.id").
		Group("game_events.id, game_events.organizer_id, game_events.title, game_events.sport_id, game_events.location, game_events.datetime, game_events.max_players, game_events.skill_level, users.username, sports.name").
		Order("game_events.datetime ASC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
