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

type CartService struct {
	collection *mongo.Collection
}

func NewCartService(db *mongo.Database) *CartService {
	return &CartService{collection: db.Collection("carts")}
}

// CreateCart adds one cart entry.
func (s *CartService) CreateCart(ctx context.Context, cart models.Cart) (*mongo.InsertOneResult, error) {
	result, err := s.collection.InsertOne(ctx, cart)
	if err != nil {
		log.Printf("Error creating cart entry: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create cart entry")
	}
	return result, nil
}

// GetCartsByEmail lists the cart entries belonging to one user.
func (s *CartService) GetCartsByEmail(ctx context.Context, email string) ([]models.Cart, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("Error fetching cart entries: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch cart entries")
	}

	carts := []models.Cart{}
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse cart data")
	}
	return carts, nil
}

// DeleteCart removes one cart entry by id.
func (s *CartService) DeleteCart(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid cart id")
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Printf("Error deleting cart entry: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to delete cart entry")
	}
	if result.DeletedCount == 0 {
		return nil, utils.NewCustomError(http.StatusNotFound, "Cart entry not found")
	}
	return result, nil
}

// DeleteCartsByIDs removes every cart entry whose id is in the list.
func (s *CartService) DeleteCartsByIDs(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("Error clearing cart entries: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to clear cart entries")
	}
	return result, nil
}

// ParseCartIDs converts hex ids to ObjectIDs, rejecting malformed ones before
// any write happens.
func ParseCartIDs(ids []string) ([]primitive.ObjectID, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid cart id: "+id)
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}
