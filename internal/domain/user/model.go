package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a staff account. Only active administrators may moderate.
type User struct {
	ID             string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Username       string     `json:"username" gorm:"uniqueIndex;not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	FullName       string     `json:"full_name"`
	HashedPassword string     `json:"-" gorm:"not null"`
	IsActive       bool       `json:"is_active" gorm:"not null"`
	IsAdmin        bool       `json:"is_admin" gorm:"default:false"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CanModerate reports whether the account may reach the moderation console.
func (u User) CanModerate() bool { return u.IsActive && u.IsAdmin }
