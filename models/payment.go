package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Payment records a completed checkout. CartIDs drives cart cleanup and MenuIDs
// feeds the menu-stage aggregation; both are hex ids kept as strings on the wire.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Price         float64            `bson:"price" json:"price" binding:"required,gt=0"`
	Date          string             `bson:"date" json:"date"`
	MenuIDs       []string           `bson:"menuId" json:"menuId"`
	CartIDs       []string           `bson:"cartsId" json:"cartsId" binding:"required"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}

// CheckoutResult reports both halves of the record-then-clear sequence.
type CheckoutResult struct {
	InsertedResult *mongo.InsertOneResult `json:"insertedResult"`
	DeletedResult  *mongo.DeleteResult    `json:"deletedResult"`
}
