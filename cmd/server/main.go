package main

import (
	"log"
	"time"

	"wechat_mall/internal/auth"
	"wechat_mall/internal/config"
	"wechat_mall/internal/database"
	"wechat_mall/internal/handlers"
	"wechat_mall/internal/logger"
	"wechat_mall/internal/models"
	"wechat_mall/internal/orderid"
	"wechat_mall/internal/redis"
	"wechat_mall/internal/repository"
	"wechat_mall/internal/services"
	"wechat_mall/internal/wechat"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize WeChat client
	wechatClient := &wechat.Client{AppID: cfg.WechatAppID, Secret: cfg.WechatSecret}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, wechatClient, redisClient, services.UserServiceConfig{
		JWTSecret:         cfg.JWTSecret,
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		SessionCacheTTL:   time.Duration(cfg.SessionCacheHours) * time.Hour,
		TokenTTL:          time.Duration(cfg.TokenTTLHours) * time.Hour,
	})
	productService := services.NewProductService(productRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, productRepo, orderid.New(nil, nil), nil, nil)
	addressService := services.NewAddressService(addrRepo)
	couponService := services.NewCouponService(couponRepo, userRepo)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	addressHandler := handlers.NewAddressHandler(addressService)
	couponHandler := handlers.NewCouponHandler(couponService)
	configHandler := handlers.NewConfigHandler(configRepo)

	anyRole := auth.RequireRoles(cfg.JWTSecret, string(models.RoleAdmin), string(models.RoleUser))
	adminOnly := auth.RequireRoles(cfg.JWTSecret, string(models.RoleAdmin))
	userOnly := auth.RequireRoles(cfg.JWTSecret, string(models.RoleUser))

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/account/users/login", accountHandler.UserLogin)
		api.POST("/account/users/register", accountHandler.Register)
		api.POST("/account/admin/login", accountHandler.AdminLogin)

		api.GET("/categories", categoryHandler.ListCategories)
		api.POST("/categories", adminOnly, categoryHandler.CreateCategory)
		api.PUT("/categories/:categoryID", adminOnly, categoryHandler.UpdateCategory)
		api.DELETE("/categories/:categoryID", adminOnly, categoryHandler.RemoveCategory)

		api.GET("/categories/:categoryID/products", productHandler.ListCategoryProducts)
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:productID", productHandler.GetProduct)
		api.POST("/products", adminOnly, productHandler.CreateProduct)
		api.PUT("/products/:productID", adminOnly, productHandler.UpdateProduct)
		api.PATCH("/products/:productID", adminOnly, productHandler.PatchProduct)

		api.GET("/orders", anyRole, orderHandler.ListOrders)
		api.GET("/orders/:orderID", anyRole, orderHandler.GetOrder)
		api.POST("/orders", anyRole, orderHandler.CreateOrder)
		api.PUT("/orders/:orderID", anyRole, orderHandler.UpdateOrder)
		api.DELETE("/orders/:orderID", anyRole, orderHandler.RemoveOrder)
		api.POST("/orders/:orderID/payment", userOnly, orderHandler.PayOrder)

		api.GET("/addresses", userOnly, addressHandler.ListAddresses)
		api.GET("/addresses/default", userOnly, addressHandler.GetDefaultAddress)
		api.POST("/addresses", userOnly, addressHandler.CreateAddress)
		api.PUT("/addresses/:id", userOnly, addressHandler.UpdateAddress)
		api.DELETE("/addresses/:id", userOnly, addressHandler.RemoveAddress)

		api.GET("/coupons", userOnly, couponHandler.ListMyCoupons)
		api.POST("/coupons", adminOnly, couponHandler.CreateCoupon)
		api.POST("/coupons/:id/grants", adminOnly, couponHandler.GrantCoupon)

		api.GET("/configs/:key", adminOnly, configHandler.GetConfig)
		api.PUT("/configs/:key", adminOnly, configHandler.PutConfig)
	}

	// Start server
	logger.Info("server starting", "port", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
