package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StandardResponse is the envelope every gallery endpoint answers with. The
// mobile client keys off Success, so business failures still ship with an
// HTTP 200 status line.
type StandardResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// CommentView is a comment row enriched with its author's profile and the
// viewer-specific is_liked flag. Top-level comments carry their replies;
// reply rows leave Replies nil so the field is omitted.
type CommentView struct {
	ID              uint           `json:"id"`
	PhotoID         uint           `json:"photo_id"`
	UserID          uint           `json:"user_id"`
	Content         string         `json:"content"`
	ParentCommentID *uint          `json:"parent_comment_id"`
	LikeCount       int            `json:"like_count"`
	ReplyCount      int            `json:"reply_count"`
	IsDeleted       bool           `json:"is_deleted"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	UserName        string         `json:"user_name"`
	ProfilePhoto    string         `json:"profile_photo"`
	IsLiked         int            `json:"is_liked"`
	Replies         []*CommentView `json:"replies,omitempty" gorm:"-"`
}

func respondSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: false,
		Message: message,
	})
}
