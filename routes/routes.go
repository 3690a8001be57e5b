package routes

import (
	"github.com/amalakkad93/StarcoEat/configs"
	"github.com/amalakkad93/StarcoEat/controllers"
	"github.com/amalakkad93/StarcoEat/middlewares"
	"github.com/amalakkad93/StarcoEat/repository"
	"github.com/amalakkad93/StarcoEat/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, paymentRepo, deliveryRepo, menuRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	restCtrl := controllers.NewRestaurantController(db)
	reviewCtrl := controllers.NewReviewController(reviewRepo, restRepo)
	favoriteCtrl := controllers.NewFavoriteController(favoriteRepo, restRepo)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Public browsing
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu-items", restCtrl.MenuItems)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
	r.POST("/restaurants/:id/reviews", auth, reviewCtrl.Create)

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("/current", cartCtrl.GetCurrent)
		cart.POST("/:id/items", cartCtrl.AddItem)
		cart.PUT("/items/:itemId", cartCtrl.UpdateItem)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("/current/clear", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.GET("/user/:userId", orderCtrl.ListForUser)
		orders.POST("/create_order", orderCtrl.CreateFromCart)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("/:id/reorder", orderCtrl.Reorder)
		orders.GET("/:id/items", orderCtrl.Items)
		orders.DELETE("/:id", orderCtrl.Delete)
		orders.PUT("/:id", orderCtrl.Update)
		orders.POST("/:id/cancel", orderCtrl.Cancel)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
	}

	// Payments
	payments := r.Group("/payments", auth)
	{
		payments.GET("", paymentCtrl.List)
		payments.POST("", paymentCtrl.Create)
		payments.GET("/:id", paymentCtrl.Get)
		payments.PUT("/:id", paymentCtrl.Update)
		payments.DELETE("/:id", paymentCtrl.Delete)
	}

	// Favorites
	favorites := r.Group("/favorites", auth)
	{
		favorites.GET("", favoriteCtrl.List)
		favorites.POST("", favoriteCtrl.Create)
		favorites.DELETE("/:restaurantId", favoriteCtrl.Delete)
	}
}
