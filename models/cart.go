package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart is one selected menu item for one user, removed at checkout.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID string             `bson:"menuId" json:"menuId" binding:"required"`
	Email  string             `bson:"email" json:"email" binding:"required,email"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image" json:"image"`
	Price  float64            `bson:"price" json:"price"`
}
