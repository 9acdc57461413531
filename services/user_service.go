package services

import (
	"BistroBoss/models"
	"BistroBoss/utils"
	"context"
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// CreateUser inserts the user unless the email is already registered.
// A nil result with a nil error means the user already existed. The window
// between the lookup and the insert is not closed; concurrent first sign-ins
// for the same email may both land.
func (s *UserService) CreateUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Error checking existing user: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to check existing user")
	}

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create user")
	}
	return result, nil
}

// GetAllUsers lists every registered user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch users")
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse user data")
	}
	return users, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid user id")
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to delete user")
	}
	if result.DeletedCount == 0 {
		return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
	}
	return result, nil
}

// PromoteUser sets the admin role on a user by id.
func (s *UserService) PromoteUser(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid user id")
	}

	update := bson.M{"$set": bson.M{"role": "admin"}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		log.Printf("Error promoting user: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update user role")
	}
	if result.MatchedCount == 0 {
		return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
	}
	return result, nil
}

// IsAdmin reports whether the stored role for the email is admin.
// An unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		log.Printf("Error looking up user role: %v", err)
		return false, utils.NewCustomError(http.StatusInternalServerError, "Failed to look up user role")
	}
	return user.Role == "admin", nil
}
