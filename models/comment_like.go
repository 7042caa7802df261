package models

import (
	"time"
)

// CommentLike records one user's like on one comment. The composite unique
// index keeps concurrent toggles from ever producing a duplicate pair; the
// comment's like_count is a cached aggregate maintained in the same
// transaction as each insert or delete.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_likes_comment_user" json:"comment_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_likes_comment_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Comment GalleryComment `json:"comment,omitempty" gorm:"foreignKey:CommentID"`
}

func (CommentLike) TableName() string {
	return "gallery_comment_likes"
}
