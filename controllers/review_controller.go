package controllers

import (
	"BistroBoss/models"
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{
		ReviewService: reviewService,
	}
}

func (r *ReviewController) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid review payload")
		return
	}

	result, err := r.ReviewService.CreateReview(c.Request.Context(), review)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (r *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := r.ReviewService.GetAllReviews(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
