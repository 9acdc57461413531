package services

import (
	"BistroBoss/models"
	"BistroBoss/utils"
	"context"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewService struct {
	collection *mongo.Collection
}

func NewReviewService(db *mongo.Database) *ReviewService {
	return &ReviewService{collection: db.Collection("reviews")}
}

// CreateReview inserts a review. Reviews are never updated or deleted here.
func (s *ReviewService) CreateReview(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error) {
	result, err := s.collection.InsertOne(ctx, review)
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create review")
	}
	return result, nil
}

// GetAllReviews lists every review.
func (s *ReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch reviews")
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse review data")
	}
	return reviews, nil
}
