package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterReviewRoutes(router *gin.RouterGroup, reviewController *controllers.ReviewController, authRequired gin.HandlerFunc) {
	reviewGroup := router.Group("/reviews")
	{
		reviewGroup.GET("", reviewController.GetAllReviews)
		reviewGroup.POST("", authRequired, reviewController.CreateReview)
	}
}
