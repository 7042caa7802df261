package models

import (
	"time"
)

// User carries only the profile fields the gallery endpoints join against.
// Account management lives elsewhere in the application.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	ProfilePhoto string    `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Comments []GalleryComment `json:"comments,omitempty" gorm:"foreignKey:UserID"`
	Likes    []CommentLike    `json:"likes,omitempty" gorm:"foreignKey:UserID"`
}
