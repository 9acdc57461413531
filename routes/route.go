package routes

import (
	"BistroBoss/controllers"
	"BistroBoss/handlers"
	"BistroBoss/middleware"
	"BistroBoss/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes wires services, controllers, and route groups onto the
// router. The database handle is passed in explicitly; nothing here reaches
// for globals.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, tokenService *services.TokenService) {
	userService := services.NewUserService(db)
	menuService := services.NewMenuService(db)
	cartService := services.NewCartService(db)
	reviewService := services.NewReviewService(db)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db, cartService)
	statService := services.NewStatService(db)

	authRequired := middleware.AuthMiddleware(tokenService)
	adminRequired := middleware.AdminMiddleware(userService)

	authController := controllers.NewAuthController(tokenService)
	userController := controllers.NewUserController(userService)
	menuController := controllers.NewMenuController(menuService)
	cartController := controllers.NewCartController(cartService)
	reviewController := controllers.NewReviewController(reviewService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	statController := controllers.NewStatController(statService)

	// Registered at the root; the paths themselves are the compatibility
	// surface the frontend was built against.
	root := router.Group("")
	{
		handlers.RegisterAuthRoutes(root, authController)
		handlers.RegisterUserRoutes(root, userController, authRequired, adminRequired)
		handlers.RegisterMenuRoutes(root, menuController, authRequired, adminRequired)
		handlers.RegisterCartRoutes(root, cartController, authRequired)
		handlers.RegisterReviewRoutes(root, reviewController, authRequired)
		handlers.RegisterBookingRoutes(root, bookingController, authRequired, adminRequired)
		handlers.RegisterPaymentRoutes(root, paymentController, authRequired)
		handlers.RegisterStatRoutes(root, statController, authRequired, adminRequired)
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "food data is comming")
	})
}
