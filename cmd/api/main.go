package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tokoprima/admin-api/internal/cache"
	"github.com/tokoprima/admin-api/internal/config"
	"github.com/tokoprima/admin-api/internal/database"
	"github.com/tokoprima/admin-api/internal/handler"
	"github.com/tokoprima/admin-api/internal/middleware"
	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/repository"
	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
	"github.com/tokoprima/admin-api/internal/worker"
	"github.com/tokoprima/admin-api/pkg/paystack"
)

// main is the application entrypoint for the storefront admin API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting admin api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	lookupCache := cache.NewLookupCache(redisClient)

	// 4. Initialize the payment gateway client
	paystackClient := paystack.NewClient(paystack.Config{
		BaseURL:   cfg.Paystack.BaseURL,
		SecretKey: cfg.Paystack.SecretKey,
	})

	tokens := utils.NewJWTManager(cfg.JWTSecret)

	// 5. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	productRepo := repository.NewProductRepository(db)
	shippingRepo := repository.NewShippingOptionRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo)
	discountSvc := service.NewDiscountService(discountRepo)
	productSvc := service.NewProductService(productRepo, lookupCache)
	shippingSvc := service.NewShippingService(shippingRepo)
	paymentSvc := service.NewPaymentService(paystackClient)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db, redisClient),
		Auth:     handler.NewAuthHandler(authSvc),
		User:     handler.NewUserHandler(userSvc),
		Discount: handler.NewDiscountHandler(discountSvc),
		Product:  handler.NewProductHandler(productSvc),
		Shipping: handler.NewShippingHandler(shippingSvc),
		Payment:  handler.NewPaymentHandler(paymentSvc),
		Webhook:  handler.NewWebhookHandler(cfg.Paystack.SecretKey),
	}

	// 8. Initialize middleware
	roleMw := middleware.NewRoleMiddleware(userRepo, tokens)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, roleMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewDiscountExpiryWorker(discountSvc, cfg.Worker.DiscountExpiryInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Discount *handler.DiscountHandler
	Product  *handler.ProductHandler
	Shipping *handler.ShippingHandler
	Payment  *handler.PaymentHandler
	Webhook  *handler.WebhookHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, roleMw *middleware.RoleMiddleware) {
	// Gateway webhook endpoint (authenticated by body signature, not tokens)
	router.POST("/webhook/paystack", handlers.Webhook.HandlePaystackCallback)

	router.GET("/v1/health", handlers.Health.GetHealth)
	router.POST("/v1/auth/login", handlers.Auth.Login)

	// User management (admin only)
	users := router.Group("/v1/users")
	users.Use(roleMw.Require(models.RoleAdmin))
	{
		users.GET("", handlers.User.ListUsers)
		users.POST("", handlers.User.CreateUser)
		users.PATCH("/:id", handlers.User.UpdateUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
		users.POST("/activity", handlers.User.TouchActivity)
	}

	// Discount management (admin only)
	discounts := router.Group("/v1/discounts")
	discounts.Use(roleMw.Require(models.RoleAdmin))
	{
		discounts.GET("", handlers.Discount.ListDiscounts)
		discounts.POST("", handlers.Discount.CreateDiscount)
		discounts.GET("/:id", handlers.Discount.GetDiscount)
		discounts.PATCH("/:id", handlers.Discount.UpdateDiscount)
		discounts.DELETE("/:id", handlers.Discount.DeleteDiscount)
	}

	// Catalog reads and code lookup (admin and cashier)
	products := router.Group("/v1/products")
	products.Use(roleMw.Require(models.RoleAdmin, models.RoleCashier))
	{
		products.GET("", handlers.Product.ListProducts)
		products.GET("/lookup", handlers.Product.LookupByCode)
		products.GET("/:id", handlers.Product.GetProduct)
	}

	// Payment verification (admin and cashier)
	router.POST("/v1/payments/verify",
		roleMw.Require(models.RoleAdmin, models.RoleCashier),
		handlers.Payment.VerifyPayment)

	// Shipping options (admin only)
	shipping := router.Group("/v1/shipping-options")
	shipping.Use(roleMw.Require(models.RoleAdmin))
	{
		shipping.GET("", handlers.Shipping.ListOptions)
		shipping.POST("", handlers.Shipping.CreateOption)
		shipping.PATCH("/:id", handlers.Shipping.UpdateOption)
		shipping.DELETE("/:id", handlers.Shipping.DeleteOption)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
