package rsvp

import "time"

// RSVP records a user's commitment to attend a game event. The primary
// key is a composite of (GameEventID, UserID): the store-level uniqueness
// constraint is the authoritative guard against concurrent double joins —
// the handler pre-check is only an early exit.
type RSVP struct {
	GameEventID uint      `gorm:"primaryKey" json:"gameevent_id"`
	UserID      uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (RSVP) TableName() string {
	return "rsvps"
}
