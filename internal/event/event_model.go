package event

import (
	"time"

	"gorm.io/gorm"
)

// GameEvent is a scheduled pickup session. Immutable after creation:
// there is no edit or delete operation.
type GameEvent struct {
	gorm.Model
	OrganizerID uint      `gorm:"not null;index" json:"organizer_id"`
	Title       string    `gorm:"not null" json:"title"`
	SportID     uint      `gorm:"not null;index" json:"sport_id"`
	Location    string    `gorm:"not null" json:"location"`
	Datetime    time.Time `gorm:"not null" json:"datetime"`
	MaxPlayers  int       `gorm:"not null" json:"max_players"`
	SkillLevel  string    `gorm:"not null" json:"skill_level"`
}

// EventDetail is an event row enriched with organizer name, sport name
// and the aggregated membership count.
type EventDetail struct {
	ID             uint      `json:"id"`
	OrganizerID    uint      `json:"organizer_id"`
	Title          string    `json:"title"`
	SportID        uint      `json:"sport_id"`
	Location       string    `json:"location"`
	Datetime       time.Time `json:"datetime"`
	MaxPlayers     int       `json:"max_players"`
	SkillLevel     string    `json:"skill_level"`
	OrganizerName  string    `json:"organizer_name"`
	SportName      string    `json:"sport_name"`
	CurrentPlayers int64     `json:"current_players"`
}
