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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuService struct {
	collection *mongo.Collection
}

func NewMenuService(db *mongo.Database) *MenuService {
	return &MenuService{collection: db.Collection("menus")}
}

// GetAllMenus lists the whole catalog.
func (s *MenuService) GetAllMenus(ctx context.Context) ([]models.Menu, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Error fetching menus: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menus")
	}

	menus := []models.Menu{}
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu data")
	}
	return menus, nil
}

// GetMenuByID fetches one catalog item.
func (s *MenuService) GetMenuByID(ctx context.Context, id string) (*models.Menu, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid menu id")
	}

	var menu models.Menu
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewCustomError(http.StatusNotFound, "Menu not found")
	}
	if err != nil {
		log.Printf("Error fetching menu: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu")
	}
	return &menu, nil
}

// CreateMenu inserts a catalog item.
func (s *MenuService) CreateMenu(ctx context.Context, menu models.Menu) (*mongo.InsertOneResult, error) {
	result, err := s.collection.InsertOne(ctx, menu)
	if err != nil {
		log.Printf("Error creating menu: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create menu")
	}
	return result, nil
}

// UpdateMenu replaces the editable fields of a catalog item, inserting it when
// the id matches nothing (upsert).
func (s *MenuService) UpdateMenu(ctx context.Context, id string, menu models.Menu) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid menu id")
	}

	update := bson.M{"$set": bson.M{
		"name":     menu.Name,
		"category": menu.Category,
		"price":    menu.Price,
		"recipe":   menu.Recipe,
		"image":    menu.Image,
	}}
	opts := options.Update().SetUpsert(true)
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, opts)
	if err != nil {
		log.Printf("Error updating menu: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update menu")
	}
	return result, nil
}

// DeleteMenu removes a catalog item by id.
func (s *MenuService) DeleteMenu(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid menu id")
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Printf("Error deleting menu: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to delete menu")
	}
	if result.DeletedCount == 0 {
		return nil, utils.NewCustomError(http.StatusNotFound, "Menu not found")
	}
	return result, nil
}
