package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"islandstay/config"
	"islandstay/database"
	wishlistRepoPkg "islandstay/database/repository/wishlist"
	"islandstay/handlers"
	"islandstay/liteapi"
	"islandstay/middleware"
	"islandstay/routes"
	"islandstay/services/checkout"
	"islandstay/services/search"
	"islandstay/services/wishlist"
	"islandstay/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Provider gateway: live client fronted by the fixture fallback policy.
	liveSource := liteapi.NewClient(
		config.AppConfig.LiteAPIBaseURL,
		config.ProviderAPIKey(),
		time.Duration(config.AppConfig.ProviderTimeoutMs)*time.Millisecond,
		logger,
	)
	gateway := liteapi.NewGateway(
		liveSource,
		liteapi.NewFixtureSource(),
		config.AppConfig.FixtureFallback,
		logger,
	)

	// Payment adapter. With a Stripe key configured, card collection outside
	// the provider's widget goes through Stripe; otherwise only the widget
	// path is available.
	var payments checkout.PaymentProvider
	if config.AppConfig.StripeKey != "" {
		payments = checkout.NewStripePaymentProvider(config.AppConfig.StripeKey, logger)
	} else {
		payments = checkout.NewWidgetPaymentProvider(logger)
	}

	// services.
	searchService := &search.DefaultSearchService{
		Gateway:         gateway,
		Cache:           search.NewSummaryCache(utils.GetHotelCacheClient(), 30*time.Minute),
		Logger:          logger,
		DefaultCurrency: config.AppConfig.DefaultCurrency,
	}
	checkoutService := &checkout.DefaultCheckoutService{
		Gateway:  gateway,
		Store:    checkout.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute),
		Payments: payments,
		Logger:   logger,
	}
	wishlistService := &wishlist.DefaultWishlistService{
		Repo:   wishlistRepoPkg.NewMongoWishlistRepo(),
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Search:   &handlers.SearchHandler{Service: searchService},
		Hotels:   &handlers.HotelHandler{Service: searchService},
		Checkout: &handlers.CheckoutHandler{Service: checkoutService},
		Bookings: &handlers.BookingHandler{Gateway: gateway},
		Wishlist: &handlers.WishlistHandler{Service: wishlistService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetHotelCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
