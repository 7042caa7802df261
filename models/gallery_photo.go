package models

import (
	"time"
)

// Photo moderation states. Comments are only accepted on approved photos.
const (
	PhotoStatusPending  = "Pending"
	PhotoStatusApproved = "Approved"
	PhotoStatusRejected = "Rejected"
)

type GalleryPhoto struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []GalleryComment `json:"comments,omitempty" gorm:"foreignKey:PhotoID"`
}

func (GalleryPhoto) TableName() string {
	return "gallery_photos"
}
