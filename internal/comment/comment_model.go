package comment

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a chat message on a game event. The log is append-only:
// comments are never edited or deleted.
type Comment struct {
	gorm.Model
	GameEventID uint      `gorm:"not null;index" json:"gameevent_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Text        string    `gorm:"not null" json:"text"`
	SentAt      time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

// CommentDetail is a comment resolved to its author's display name,
// with sent_at exposed as created_at the way the frontend expects it.
type CommentDetail struct {
	ID        uint      `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
