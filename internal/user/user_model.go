package user

import "gorm.io/gorm"

// User is a registered account. Immutable after registration except for
// credential rotation, which is not exposed over the API.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
}
