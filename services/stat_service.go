package services

import (
	"BistroBoss/models"
	"BistroBoss/utils"
	"context"
	"log"
	"math"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// menuCategories fixes the order of the menu-stage rows.
var menuCategories = []string{"salad", "pizza", "soup", "drink", "dessert"}

// StatService computes the dashboard aggregates. Every call is a full scan of
// the collections involved; nothing is cached or maintained incrementally.
type StatService struct {
	users    *mongo.Collection
	menus    *mongo.Collection
	reviews  *mongo.Collection
	bookings *mongo.Collection
	payments *mongo.Collection
}

func NewStatService(db *mongo.Database) *StatService {
	return &StatService{
		users:    db.Collection("users"),
		menus:    db.Collection("menus"),
		reviews:  db.Collection("reviews"),
		bookings: db.Collection("bookings"),
		payments: db.Collection("payments"),
	}
}

// Counts returns the admin dashboard header numbers.
func (s *StatService) Counts(ctx context.Context) (*models.Counts, error) {
	userCount, err := s.users.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, s.countError(err)
	}
	menuCount, err := s.menus.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, s.countError(err)
	}
	orderCount, err := s.payments.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, s.countError(err)
	}

	payments, err := s.allPayments(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Counts{
		UserCount:  userCount,
		MenuCount:  menuCount,
		OrderCount: orderCount,
		Revenue:    totalRevenue(payments),
	}, nil
}

// MenuStage returns per-category count and price sum over every menu item that
// appears in any payment's item list.
func (s *StatService) MenuStage(ctx context.Context) ([]models.CategoryStat, error) {
	payments, err := s.allPayments(ctx)
	if err != nil {
		return nil, err
	}

	menuIDs := collectMenuIDs(payments)
	orderedItems := []models.Menu{}
	if len(menuIDs) > 0 {
		cursor, err := s.menus.Find(ctx, bson.M{"_id": bson.M{"$in": menuIDs}})
		if err != nil {
			log.Printf("Error fetching ordered menu items: %v", err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch ordered menu items")
		}
		if err := cursor.All(ctx, &orderedItems); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu data")
		}
	}

	return groupByCategory(orderedItems), nil
}

// UserStage returns one user's payment, review, and booking counts.
func (s *StatService) UserStage(ctx context.Context, email string) (*models.UserStage, error) {
	filter := bson.M{"email": email}

	orderCount, err := s.payments.CountDocuments(ctx, filter)
	if err != nil {
		return nil, s.countError(err)
	}
	reviewCount, err := s.reviews.CountDocuments(ctx, filter)
	if err != nil {
		return nil, s.countError(err)
	}
	bookingCount, err := s.bookings.CountDocuments(ctx, filter)
	if err != nil {
		return nil, s.countError(err)
	}

	return &models.UserStage{
		OrderCount:   orderCount,
		ReviewCount:  reviewCount,
		BookingCount: bookingCount,
		PaymentCount: orderCount,
	}, nil
}

func (s *StatService) allPayments(ctx context.Context) ([]models.Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{})
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

func (s *StatService) countError(err error) error {
	log.Printf("Error counting documents: %v", err)
	return utils.NewCustomError(http.StatusInternalServerError, "Failed to count documents")
}

// totalRevenue sums payment prices, rounded to two decimal places.
func totalRevenue(payments []models.Payment) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.Price
	}
	return math.Round(total*100) / 100
}

// collectMenuIDs gathers every menu id referenced by the payments. Ids that do
// not parse as ObjectIDs are skipped.
func collectMenuIDs(payments []models.Payment) []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, payment := range payments {
		for _, id := range payment.MenuIDs {
			objectID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			ids = append(ids, objectID)
		}
	}
	return ids
}

// groupByCategory buckets menu items into the fixed category order with a
// count and price sum per bucket.
func groupByCategory(items []models.Menu) []models.CategoryStat {
	stats := make([]models.CategoryStat, 0, len(menuCategories))
	for _, category := range menuCategories {
		var count int64
		var price float64
		for _, item := range items {
			if item.Category == category {
				count++
				price += item.Price
			}
		}
		stats = append(stats, models.CategoryStat{Category: category, Count: count, Price: price})
	}
	return stats
}
