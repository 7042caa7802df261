package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photo-gallery/api-go/controllers"
)

func SetupCommentRoutes(api *gin.RouterGroup, commentController *controllers.CommentController) {
	gallery := api.Group("/gallery")
	{
		// One action-dispatched endpoint, reads and writes alike. OPTIONS
		// is short-circuited by the CORS middleware before it gets here.
		gallery.GET("/comments", commentController.HandleAction)
		gallery.POST("/comments", commentController.HandleAction)
		gallery.OPTIONS("/comments", commentController.HandleAction)
	}
}
