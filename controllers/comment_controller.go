package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/photo-gallery/api-go/middleware"
	"github.com/photo-gallery/api-go/models"
	"github.com/photo-gallery/api-go/utils"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// HandleAction is the single entry point for the gallery comment endpoint.
// The action selector arrives in the query string or the posted form; each
// action reads its own parameters from the request body or query.
func (cc *CommentController) HandleAction(c *gin.Context) {
	action := utils.QueryOrForm(c, "action")

	switch action {
	case "add-comment":
		cc.AddComment(c)
	case "get-comments":
		cc.GetComments(c)
	case "like-comment":
		cc.LikeComment(c)
	case "delete-comment":
		cc.DeleteComment(c)
	default:
		respondError(c, "Invalid action. Supported actions: add-comment, get-comments, like-comment, delete-comment")
	}
}

type addCommentRequest struct {
	PhotoID         uint   `form:"photo_id" json:"photo_id"`
	UserID          uint   `form:"user_id" json:"user_id"`
	Content         string `form:"content" json:"content"`
	ParentCommentID int    `form:"parent_comment_id" json:"parent_comment_id"`
}

// AddComment creates a top-level comment or a reply. A reply's parent must
// be a live comment under the same photo; its reply_count is bumped in the
// same transaction as the insert.
func (cc *CommentController) AddComment(c *gin.Context) {
	var req addCommentRequest
	c.ShouldBind(&req)

	if req.UserID == 0 {
		req.UserID = middleware.AuthUserID(c)
	}

	// A supplied-but-blank content field is its own failure, distinct from
	// the field being absent. Form and query carry that distinction; a JSON
	// body only reaches us through the bound value.
	content := req.Content
	contentSupplied := content != ""
	if v, ok := c.GetPostForm("content"); ok {
		content = v
		contentSupplied = true
	} else if v, ok := c.GetQuery("content"); ok {
		content = v
		contentSupplied = true
	}

	if req.PhotoID == 0 || req.UserID == 0 || !contentSupplied {
		respondError(c, "Missing required fields: photo_id, user_id, content")
		return
	}

	content = strings.TrimSpace(content)
	if content == "" {
		respondError(c, "Comment content cannot be empty")
		return
	}

	var photo models.GalleryPhoto
	if err := cc.DB.Where("id = ? AND status = ?", req.PhotoID, models.PhotoStatusApproved).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, "Photo not found or not approved")
		} else {
			log.Printf("[%s] add-comment photo lookup: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Database connection failed")
		}
		return
	}

	// Zero or negative parent ids mean "no parent".
	var parentID *uint
	if req.ParentCommentID > 0 {
		id := uint(req.ParentCommentID)

		var parent models.GalleryComment
		if err := cc.DB.Where("id = ? AND photo_id = ? AND is_deleted = ?", id, req.PhotoID, false).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, "Parent comment not found")
			} else {
				log.Printf("[%s] add-comment parent lookup: %v", c.GetString(middleware.RequestIDKey), err)
				respondError(c, "Database connection failed")
			}
			return
		}
		parentID = &id
	}

	comment := models.GalleryComment{
		PhotoID:         req.PhotoID,
		UserID:          req.UserID,
		Content:         content,
		ParentCommentID: parentID,
	}

	tx := cc.DB.Begin()

	if err := tx.Create(&comment).Error; err != nil {
		tx.Rollback()
		log.Printf("[%s] add-comment insert: %v", c.GetString(middleware.RequestIDKey), err)
		respondError(c, "Failed to add comment")
		return
	}

	if parentID != nil {
		if err := tx.Model(&models.GalleryComment{}).
			Where("id = ?", *parentID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).Error; err != nil {
			tx.Rollback()
			log.Printf("[%s] add-comment reply_count: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to add comment")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[%s] add-comment commit: %v", c.GetString(middleware.RequestIDKey), err)
		respondError(c, "Failed to add comment")
		return
	}

	respondSuccess(c, "Comment added successfully", gin.H{
		"id":         comment.ID,
		"comment_id": comment.ID,
		"is_reply":   parentID != nil,
	})
}

type getCommentsRequest struct {
	PhotoID uint `form:"photo_id" json:"photo_id"`
	UserID  uint `form:"user_id" json:"user_id"`
}

// GetComments returns every live comment on a photo as a two-level tree:
// top-level comments newest-first, each with its replies oldest-first. One
// query fetches the whole photo's thread; the tree is assembled in-process.
func (cc *CommentController) GetComments(c *gin.Context) {
	var req getCommentsRequest
	c.ShouldBind(&req)

	if req.PhotoID == 0 {
		respondError(c, "photo_id is required")
		return
	}

	viewerID := req.UserID
	if viewerID == 0 {
		viewerID = middleware.AuthUserID(c)
	}

	var rows []*CommentView
	err := cc.DB.Table("gallery_comments AS gc").
		Select(`gc.id, gc.photo_id, gc.user_id, gc.content, gc.parent_comment_id,
			gc.like_count, gc.reply_count, gc.is_deleted, gc.created_at, gc.updated_at,
			u.name AS user_name, u.profile_photo,
			(SELECT COUNT(*) FROM gallery_comment_likes gcl WHERE gcl.comment_id = gc.id AND gcl.user_id = ?) AS is_liked`, viewerID).
		Joins("JOIN users u ON u.id = gc.user_id").
		Where("gc.photo_id = ? AND gc.is_deleted = ?", req.PhotoID, false).
		Order("gc.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[%s] get-comments: %v", c.GetString(middleware.RequestIDKey), err)
		respondError(c, "Database connection failed")
		return
	}

	respondSuccess(c, "Comments retrieved successfully", buildCommentTree(rows))
}

// buildCommentTree nests replies under their parents. Rows arrive in
// creation order, so a reply's parent is always seen before the reply
// itself. Replies whose parent was soft-deleted are promoted to the top
// level so they stay visible on their own. The assembled top level is
// returned newest-first.
func buildCommentTree(rows []*CommentView) []*CommentView {
	roots := make([]*CommentView, 0, len(rows))
	index := make(map[uint]*CommentView, len(rows))

	for _, row := range rows {
		if row.ParentCommentID == nil {
			row.Replies = make([]*CommentView, 0)
			index[row.ID] = row
			roots = append(roots, row)
			continue
		}
		if parent, ok := index[*row.ParentCommentID]; ok {
			parent.Replies = append(parent.Replies, row)
		} else {
			row.Replies = make([]*CommentView, 0)
			roots = append(roots, row)
		}
	}

	for i, j := 0, len(roots)-1; i < j; i, j = i+1, j-1 {
		roots[i], roots[j] = roots[j], roots[i]
	}

	return roots
}

type likeCommentRequest struct {
	CommentID uint `form:"comment_id" json:"comment_id"`
	UserID    uint `form:"user_id" json:"user_id"`
}

// LikeComment toggles the (comment, user) like pair. The row insert/delete
// and the cached like_count run in one transaction, and the composite
// unique index on the pair makes a racing duplicate like fail at commit
// instead of double-counting.
func (cc *CommentController) LikeComment(c *gin.Context) {
	var req likeCommentRequest
	c.ShouldBind(&req)

	if req.UserID == 0 {
		req.UserID = middleware.AuthUserID(c)
	}

	if req.CommentID == 0 || req.UserID == 0 {
		respondError(c, "comment_id and user_id are required")
		return
	}

	var comment models.GalleryComment
	if err := cc.DB.Where("id = ? AND is_deleted = ?", req.CommentID, false).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, "Comment not found")
		} else {
			log.Printf("[%s] like-comment lookup: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Database connection failed")
		}
		return
	}

	var existingLike models.CommentLike
	result := cc.DB.Where("comment_id = ? AND user_id = ?", req.CommentID, req.UserID).First(&existingLike)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("[%s] like-comment like lookup: %v", c.GetString(middleware.RequestIDKey), result.Error)
		respondError(c, "Database connection failed")
		return
	}

	tx := cc.DB.Begin()

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		like := models.CommentLike{
			CommentID: req.CommentID,
			UserID:    req.UserID,
		}

		if err := tx.Create(&like).Error; err != nil {
			tx.Rollback()
			log.Printf("[%s] like-comment insert: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to like comment")
			return
		}

		if err := tx.Model(&models.GalleryComment{}).
			Where("id = ?", req.CommentID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
			tx.Rollback()
			log.Printf("[%s] like-comment like_count: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to like comment")
			return
		}

		if err := tx.Commit().Error; err != nil {
			log.Printf("[%s] like-comment commit: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to like comment")
			return
		}

		respondSuccess(c, "Comment liked", gin.H{"liked": true})
	} else {
		if err := tx.Delete(&existingLike).Error; err != nil {
			tx.Rollback()
			log.Printf("[%s] like-comment delete: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to unlike comment")
			return
		}

		if err := tx.Model(&models.GalleryComment{}).
			Where("id = ?", req.CommentID).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - ?, 0)", 1)).Error; err != nil {
			tx.Rollback()
			log.Printf("[%s] like-comment like_count: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to unlike comment")
			return
		}

		if err := tx.Commit().Error; err != nil {
			log.Printf("[%s] like-comment commit: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Failed to unlike comment")
			return
		}

		respondSuccess(c, "Comment unliked", gin.H{"liked": false})
	}
}

type deleteCommentRequest struct {
	CommentID uint `form:"comment_id" json:"comment_id"`
	UserID    uint `form:"user_id" json:"user_id"`
}

// DeleteComment soft-deletes a comment its author no longer wants shown.
// Replies are not cascaded; they stay visible independently.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	var req deleteCommentRequest
	c.ShouldBind(&req)

	if req.UserID == 0 {
		req.UserID = middleware.AuthUserID(c)
	}

	if req.CommentID == 0 || req.UserID == 0 {
		respondError(c, "comment_id and user_id are required")
		return
	}

	var comment models.GalleryComment
	if err := cc.DB.Where("id = ? AND is_deleted = ?", req.CommentID, false).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, "Comment not found")
		} else {
			log.Printf("[%s] delete-comment lookup: %v", c.GetString(middleware.RequestIDKey), err)
			respondError(c, "Database connection failed")
		}
		return
	}

	if comment.UserID != req.UserID {
		respondError(c, "You can only delete your own comments")
		return
	}

	if err := cc.DB.Model(&comment).Update("is_deleted", true).Error; err != nil {
		log.Printf("[%s] delete-comment update: %v", c.GetString(middleware.RequestIDKey), err)
		respondError(c, "Failed to delete comment")
		return
	}

	respondSuccess(c, "Comment deleted successfully", nil)
}
