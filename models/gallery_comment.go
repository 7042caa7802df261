package models

import (
	"time"
)

// GalleryComment is a remark on a gallery photo, or a reply to another
// comment. Nesting is a single level: a reply's parent is always a
// top-level comment. Rows are never removed, only flagged deleted.
type GalleryComment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoID         uint      `gorm:"not null;index" json:"photo_id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	ParentCommentID *uint     `gorm:"index" json:"parent_comment_id"` // nil for top-level comments
	LikeCount       int       `gorm:"not null;default:0" json:"like_count"`
	ReplyCount      int       `gorm:"not null;default:0" json:"reply_count"`
	IsDeleted       bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User  User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Photo GalleryPhoto `json:"photo,omitempty" gorm:"foreignKey:PhotoID"`
}

func (GalleryComment) TableName() string {
	return "gallery_comments"
}
