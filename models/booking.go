package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking status is unset until an admin approves it.
type Booking struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email" binding:"required,email"`
	Phone  string             `bson:"phone" json:"phone"`
	Date   string             `bson:"date" json:"date" binding:"required"`
	Time   string             `bson:"time" json:"time" binding:"required"`
	Guests int                `bson:"guests" json:"guests"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}

// BookingApproved is the only status a booking can transition to.
const BookingApproved = "Approved"
