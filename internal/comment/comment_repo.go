package comment

import (
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *Comment) error
	ListComments(gameEventID uint) ([]CommentDetail, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(comment *Comment) error {
	return r.db.Create(comment).Error
}

// ListComments returns the event's comments ascending by sent_at, each
// resolved to the author's username.
func (r *commentRepository) ListComments(gameEventID uint) ([]CommentDetail, error) {
	var comments []CommentDetail
	err := r.db.Model(&Comment{}).
		Select(`comments.id, users.username AS "user", comments.text, comments.sent_at AS created_at`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.game_event_id = ?", gameEventID).
		Order("comments.sent_at ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
