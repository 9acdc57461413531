package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Menu is a catalog item, maintained by admins only.
type Menu struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	Category string             `bson:"category" json:"category" binding:"required,oneof=salad pizza soup drink dessert"`
	Price    float64            `bson:"price" json:"price" binding:"required,gt=0"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
}
