// sport/model.go
package sport

import "gorm.io/gorm"

// Sport is a named activity category. Created lazily the first time an
// event references a new name; never updated or deleted.
type Sport struct {
	gorm.Model
	Name   string `gorm:"unique;not null" json:"name"`
	UserID uint   `gorm:"not null" json:"user_id"` // creator
}
