package services

import (
	"BistroBoss/models"
	"BistroBoss/utils"
	"context"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentService struct {
	collection  *mongo.Collection
	CartService *CartService
}

func NewPaymentService(db *mongo.Database, cartService *CartService) *PaymentService {
	return &PaymentService{
		collection:  db.Collection("payments"),
		CartService: cartService,
	}
}

// CreatePaymentIntent asks Stripe for a client secret covering the amount,
// given in the provider's minor unit (cents).
func (s *PaymentService) CreatePaymentIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return "", utils.NewCustomError(http.StatusBadGateway, "Failed to create payment intent")
	}
	return intent.ClientSecret, nil
}

// RecordPayment inserts the payment record and then clears the cart entries it
// references. The two writes are sequential, not a transaction; a crash in
// between leaves the payment recorded with its carts still present.
func (s *PaymentService) RecordPayment(ctx context.Context, payment models.Payment) (*models.CheckoutResult, error) {
	cartIDs, err := ParseCartIDs(payment.CartIDs)
	if err != nil {
		return nil, err
	}

	insertedResult, err := s.collection.InsertOne(ctx, payment)
	if err != nil {
		log.Printf("Error recording payment: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to record payment")
	}

	deletedResult, err := s.CartService.DeleteCartsByIDs(ctx, cartIDs)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutResult{
		InsertedResult: insertedResult,
		DeletedResult:  deletedResult,
	}, nil
}

// GetPaymentsByEmail lists one user's payment history.
func (s *PaymentService) GetPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch payments")
	}

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse payment data")
	}
	return payments, nil
}
