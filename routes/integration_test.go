package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"BistroBoss/models"
	"BistroBoss/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestAPIIntegration exercises the HTTP surface against a live MongoDB.
// It is skipped unless RUN_MONGO_INTEGRATION=true and MONGO_URI are set.
func TestAPIIntegration(t *testing.T) {
	if os.Getenv("RUN_MONGO_INTEGRATION") != "true" {
		t.Skip("set RUN_MONGO_INTEGRATION=true to run this integration test")
	}
	_ = godotenv.Load()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Fatal("MONGO_URI is required")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(fmt.Sprintf("bistroboss_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Logf("drop test database: %v", err)
		}
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	tokenService := services.NewTokenService("integration-secret")
	RegisterRoutes(router, db, tokenService)

	ts := httptest.NewServer(router)
	defer ts.Close()

	adminEmail := "admin@example.com"
	dinerEmail := "diner@example.com"

	adminToken := mustToken(t, tokenService, adminEmail)
	dinerToken := mustToken(t, tokenService, dinerEmail)

	// Register both identities; the admin role is granted through the store
	// directly so the PATCH route can be tested against a real admin later.
	doJSON(t, ts.URL, http.MethodPost, "/users", "", map[string]string{"name": "Admin", "email": adminEmail})
	doJSON(t, ts.URL, http.MethodPost, "/users", "", map[string]string{"name": "Diner", "email": dinerEmail})
	if _, err := db.Collection("users").UpdateOne(ctx, bson.M{"email": adminEmail}, bson.M{"$set": bson.M{"role": "admin"}}); err != nil {
		t.Fatalf("grant admin role: %v", err)
	}

	t.Run("duplicate user is a no-op", func(t *testing.T) {
		resp := doJSON(t, ts.URL, http.MethodPost, "/users", "", map[string]string{"name": "Diner", "email": dinerEmail})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": dinerEmail})
		if err != nil {
			t.Fatalf("count users: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1 user document, got %d", count)
		}
	})

	t.Run("guarded route without token", func(t *testing.T) {
		resp := doJSON(t, ts.URL, http.MethodGet, "/users", "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", resp.StatusCode)
		}
	})

	t.Run("admin route rejects non-admin", func(t *testing.T) {
		before, err := db.Collection("menus").CountDocuments(ctx, bson.M{})
		if err != nil {
			t.Fatalf("count menus: %v", err)
		}
		resp := doJSON(t, ts.URL, http.MethodPost, "/menus", dinerToken, map[string]any{
			"name": "Sneaky Pizza", "category": "pizza", "price": 9.99,
		})
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", resp.StatusCode)
		}
		after, err := db.Collection("menus").CountDocuments(ctx, bson.M{})
		if err != nil {
			t.Fatalf("count menus: %v", err)
		}
		if after != before {
			t.Fatal("menu collection mutated by a forbidden request")
		}
	})

	var pizzaID string
	t.Run("menu round trip", func(t *testing.T) {
		resp := doJSON(t, ts.URL, http.MethodPost, "/menus", adminToken, map[string]any{
			"name": "Margherita", "category": "pizza", "price": 12.5, "recipe": "tomato, mozzarella", "image": "margherita.jpg",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		pizzaID = insertedID(t, resp)

		var menu models.Menu
		decodeResponse(t, doJSON(t, ts.URL, http.MethodGet, "/menus/"+pizzaID, "", nil), &menu)
		if menu.Name != "Margherita" || menu.Category != "pizza" || menu.Price != 12.5 ||
			menu.Recipe != "tomato, mozzarella" || menu.Image != "margherita.jpg" {
			t.Fatalf("round trip mismatch: %+v", menu)
		}
	})

	t.Run("checkout clears referenced carts", func(t *testing.T) {
		cartResp := doJSON(t, ts.URL, http.MethodPost, "/carts", "", map[string]any{
			"menuId": pizzaID, "email": dinerEmail, "name": "Margherita", "price": 12.5,
		})
		firstCart := insertedID(t, cartResp)
		cartResp = doJSON(t, ts.URL, http.MethodPost, "/carts", "", map[string]any{
			"menuId": pizzaID, "email": dinerEmail, "name": "Margherita", "price": 12.5,
		})
		secondCart := insertedID(t, cartResp)

		resp := doJSON(t, ts.URL, http.MethodPost, "/payments", dinerToken, map[string]any{
			"email": dinerEmail, "price": 25.0, "transactionId": "tx_123",
			"menuId": []string{pizzaID, pizzaID}, "cartsId": []string{firstCart, secondCart},
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var carts []models.Cart
		decodeResponse(t, doJSON(t, ts.URL, http.MethodGet, "/carts?email="+dinerEmail, dinerToken, nil), &carts)
		for _, cart := range carts {
			if id := cart.ID.Hex(); id == firstCart || id == secondCart {
				t.Fatalf("cart %s still present after checkout", id)
			}
		}
	})

	t.Run("counts revenue", func(t *testing.T) {
		var counts models.Counts
		decodeResponse(t, doJSON(t, ts.URL, http.MethodGet, "/counts", adminToken, nil), &counts)
		if counts.Revenue != 25.0 {
			t.Fatalf("expected revenue 25.0, got %v", counts.Revenue)
		}
		if counts.OrderCount != 1 {
			t.Fatalf("expected 1 order, got %d", counts.OrderCount)
		}
	})

	t.Run("menu stage groups purchased items", func(t *testing.T) {
		var stats []models.CategoryStat
		decodeResponse(t, doJSON(t, ts.URL, http.MethodGet, "/menu-stage", adminToken, nil), &stats)
		if len(stats) != 5 {
			t.Fatalf("expected 5 rows, got %d", len(stats))
		}
		for _, row := range stats {
			switch row.Category {
			case "pizza":
				if row.Count != 1 || row.Price != 12.5 {
					t.Fatalf("unexpected pizza row: %+v", row)
				}
			default:
				if row.Count != 0 {
					t.Fatalf("unpurchased category %s has count %d", row.Category, row.Count)
				}
			}
		}
	})

	t.Run("booking approval transition", func(t *testing.T) {
		resp := doJSON(t, ts.URL, http.MethodPost, "/bookings", dinerToken, map[string]any{
			"name": "Diner", "email": dinerEmail, "date": "2026-09-01", "time": "19:00", "guests": 2,
		})
		bookingID := insertedID(t, resp)

		var bookings []models.Booking
		decodeResponse(t, doJSON(t, ts.URL, http.MethodGet, "/bookings?email="+dinerEmail, dinerToken, nil), &bookings)
		if len(bookings) != 1 || bookings[0].Status == models.BookingApproved {
			t.Fatalf("unexpected bookings before approval: %+v", bookings)
		}

		if resp := doJSON(t, ts.URL, http.MethodPatch, "/bookings/"+bookingID, dinerToken, nil); resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403 for non-admin approval, got %d", resp.StatusCode)
		}
		if resp := doJSON(t, ts.URL, http.MethodPatch, "/bookings/"+bookingID, adminToken, nil); resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 for admin approval, got %d", resp.StatusCode)
		}

		decodeResponse(t, doJSON(t, ts.URL, http.MethodGet, "/bookings?email="+dinerEmail, dinerToken, nil), &bookings)
		if len(bookings) != 1 || bookings[0].Status != models.BookingApproved {
			t.Fatalf("booking not approved: %+v", bookings)
		}
	})
}

func mustToken(t *testing.T, tokenService *services.TokenService, email string) string {
	t.Helper()
	token, err := tokenService.Generate(email)
	if err != nil {
		t.Fatalf("generate token for %s: %v", email, err)
	}
	return token
}

func doJSON(t *testing.T, baseURL, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func insertedID(t *testing.T, resp *http.Response) string {
	t.Helper()
	var result struct {
		InsertedID string `json:"InsertedID"`
	}
	decodeResponse(t, resp, &result)
	if result.InsertedID == "" {
		t.Fatal("response missing InsertedID")
	}
	return result.InsertedID
}
