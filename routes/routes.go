package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-gallery/api-go/controllers"
	"github.com/photo-gallery/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	commentController := controllers.NewCommentController(db)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())
	{
		SetupCommentRoutes(api, commentController)
	}
}
