package services

import (
	"BistroBoss/models"
	"BistroBoss/utils"
	"context"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService struct {
	collection *mongo.Collection
}

func NewBookingService(db *mongo.Database) *BookingService {
	return &BookingService{collection: db.Collection("bookings")}
}

// CreateBooking inserts a reservation request.
func (s *BookingService) CreateBooking(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	result, err := s.collection.InsertOne(ctx, booking)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create booking")
	}
	return result, nil
}

// GetBookings lists bookings, filtered by email when one is given.
func (s *BookingService) GetBookings(ctx context.Context, email string) ([]models.Booking, error) {
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"email": email}
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		log.Printf("Error fetching bookings: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch bookings")
	}

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse booking data")
	}
	return bookings, nil
}

// ApproveBooking marks a booking as approved.
func (s *BookingService) ApproveBooking(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid booking id")
	}

	update := bson.M{"$set": bson.M{"status": models.BookingApproved}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		log.Printf("Error approving booking: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to approve booking")
	}
	if result.MatchedCount == 0 {
		return nil, utils.NewCustomError(http.StatusNotFound, "Booking not found")
	}
	return result, nil
}

// DeleteBooking removes a booking by id.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid booking id")
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Printf("Error deleting booking: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to delete booking")
	}
	if result.DeletedCount == 0 {
		return nil, utils.NewCustomError(http.StatusNotFound, "Booking not found")
	}
	return result, nil
}
