// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/flashsale"
	"github.com/your-org/digistore-backend/internal/interfaces/http/handlers"
	"github.com/your-org/digistore-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires every endpoint group onto the v1 router
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, loader *catalog.Loader, cfg *config.Config) {
	flashSaleService := flashsale.NewService(db, loader)

	catalogHandler := handlers.NewCatalogHandler(db, loader, flashSaleService, cfg)
	cartHandler := handlers.NewCartHandler(redisClient, loader, flashSaleService, cfg)
	flashSaleHandler := handlers.NewFlashSaleHandler(flashSaleService)
	chatHandler := handlers.NewChatHandler(loader)
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)
	contentHandler := handlers.NewContentHandler(db)
	authHandler := handlers.NewAuthHandler(cfg)

	setupAuthRoutes(rg, authHandler, cfg)
	setupStorefrontRoutes(rg, catalogHandler, flashSaleHandler, chatHandler, contentHandler)
	setupCartRoutes(rg, cartHandler, orderHandler)
	setupAdminRoutes(rg, catalogHandler, flashSaleHandler, orderHandler, contentHandler, cfg)
}

// setupAuthRoutes sets up back-office authentication routes
func setupAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// setupStorefrontRoutes sets up the public catalog, flash sale, chat and
// content routes
func setupStorefrontRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, flashSaleHandler *handlers.FlashSaleHandler, chatHandler *handlers.ChatHandler, contentHandler *handlers.ContentHandler) {
	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/slug/:slug", catalogHandler.GetProductBySlug)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/:id/reviews", catalogHandler.GetReviews)
		products.POST("/:id/reviews", catalogHandler.CreateReview)
	}

	rg.GET("/flash-sales", flashSaleHandler.GetActive)
	rg.POST("/chat", chatHandler.Reply)

	content := rg.Group("/content")
	{
		content.GET("/hero-slides", contentHandler.GetHeroSlides)
		content.GET("/blogs", contentHandler.GetBlogPosts)
		content.GET("/blogs/:slug", contentHandler.GetBlogPostBySlug)
		content.GET("/promotions", contentHandler.GetPromotions)
		content.GET("/customers", contentHandler.GetCustomers)
	}
}

// setupCartRoutes sets up guest cart and checkout routes
func setupCartRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler, orderHandler *handlers.OrderHandler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	rg.POST("/checkout", orderHandler.Checkout)
	rg.GET("/orders/:number", orderHandler.GetOrderByNumber)
}

// setupAdminRoutes sets up back-office routes, all behind admin auth
func setupAdminRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, flashSaleHandler *handlers.FlashSaleHandler, orderHandler *handlers.OrderHandler, contentHandler *handlers.ContentHandler, cfg *config.Config) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware(cfg))
	{
		products := admin.Group("/products")
		{
			products.GET("", catalogHandler.AdminGetProducts)
			products.GET("/:id", catalogHandler.AdminGetProduct)
			products.POST("", catalogHandler.AdminCreateProduct)
			products.PUT("/:id", catalogHandler.AdminUpdateProduct)
			products.DELETE("/:id", catalogHandler.AdminDeleteProduct)
		}

		admin.POST("/catalog/refresh", catalogHandler.AdminRefreshCatalog)

		flashSales := admin.Group("/flash-sales")
		{
			flashSales.POST("", flashSaleHandler.AdminCreate)
			flashSales.PUT("/:id", flashSaleHandler.AdminUpdate)
			flashSales.DELETE("/:id", flashSaleHandler.AdminDelete)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.AdminGetOrders)
			orders.GET("/:id", orderHandler.AdminGetOrder)
			orders.PUT("/:id/status", orderHandler.AdminUpdateStatus)
			orders.GET("/:id/invoice", orderHandler.AdminGetInvoice)
		}

		content := admin.Group("/content")
		{
			content.POST("/hero-slides", contentHandler.AdminSaveHeroSlide)
			content.DELETE("/hero-slides/:id", contentHandler.AdminDeleteHeroSlide)
			content.POST("/blogs", contentHandler.AdminCreateBlogPost)
			content.DELETE("/blogs/:id", contentHandler.AdminDeleteBlogPost)
			content.POST("/promotions", contentHandler.AdminSavePromotion)
			content.DELETE("/promotions/:id", contentHandler.AdminDeletePromotion)
			content.POST("/customers", contentHandler.AdminSaveCustomer)
			content.DELETE("/customers/:id", contentHandler.AdminDeleteCustomer)
		}
	}
}
