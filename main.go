package main

import (
	"BistroBoss/config/database"
	"BistroBoss/config/environment"
	"BistroBoss/middleware"
	"BistroBoss/routes"
	"BistroBoss/services"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using existing environment")
	}

	// Mongo init
	db := database.InitMongo()
	defer database.CloseMongo()

	stripe.Key = environment.GetStripeKey()

	secret := environment.GetJWTSecret()
	if secret == "" {
		log.Fatal("JWT_ACCESS_TOKEN environment variable is missing")
	}
	tokenService := services.NewTokenService(secret)

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Register all routes
	routes.RegisterRoutes(r, db, tokenService)

	port := environment.GetPort()
	log.Println("server is running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
