package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servicehub/database"
	"servicehub/internal/cache"
	"servicehub/internal/config"
	"servicehub/internal/microservices/http-api/handler"
	"servicehub/internal/microservices/http-api/middleware"
	"servicehub/internal/microservices/http-api/repository"
	"servicehub/internal/microservices/http-api/service"
	"servicehub/internal/microservices/websocket"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	store, err := cache.NewStore(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		// the API works without redis, just slower on list endpoints
		logger.Warn("redis unavailable, running without cache", "error", err)
		store = nil
	}
	defer store.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, masterRepo, refreshTokenRepo, cfg)
	categoryService := service.NewCategoryService(categoryRepo, store)
	masterService := service.NewMasterService(masterRepo, categoryRepo, store)
	bookingService := service.NewBookingService(bookingRepo, masterRepo, serviceRepo)
	reviewService := service.NewReviewService(reviewRepo, masterRepo, userRepo)
	chatService := service.NewChatService(messageRepo, bookingRepo, userRepo)

	// Realtime chat gateway: auth service verifies credentials, chat service
	// is the message store
	gateway := websocket.NewGateway(authService, chatService, logger)

	router := buildRouter(cfg, db, handlers{
		auth:     handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds())),
		category: handler.NewCategoryHandler(categoryService),
		master:   handler.NewMasterHandler(masterService, reviewService),
		booking:  handler.NewBookingHandler(bookingService),
		review:   handler.NewReviewHandler(reviewService),
		chat:     handler.NewChatHandler(chatService),
	}, authService, gateway)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.Info("server started", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutdown signal received, closing server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

type handlers struct {
	auth     *handler.AuthHandler
	category *handler.CategoryHandler
	master   *handler.MasterHandler
	booking  *handler.BookingHandler
	review   *handler.ReviewHandler
	chat     *handler.ChatHandler
}

func buildRouter(cfg *config.Config, db *gorm.DB, h handlers, authService service.AuthService, gateway *websocket.Gateway) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Realtime chat gateway
	router.GET("/ws", gateway.Handler())

	api := router.Group("/api")

	// Auth endpoints, throttled per IP
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	auth := api.Group("/auth", authLimiter.Middleware())
	h.auth.RegisterRoutes(auth)

	// Public read endpoints with client-side caching hints
	categories := api.Group("/categories", middleware.CacheControl(300))
	h.category.RegisterRoutes(categories)

	masters := api.Group("/masters")
	h.master.RegisterRoutes(masters)

	api.GET("/search", h.master.Search)

	// Authenticated endpoints
	authed := api.Group("", middleware.AuthMiddleware(authService))
	{
		bookings := authed.Group("/bookings")
		h.booking.RegisterRoutes(bookings)

		reviews := authed.Group("/reviews")
		h.review.RegisterRoutes(reviews)

		messages := authed.Group("/messages")
		h.chat.RegisterRoutes(messages)
	}

	return router
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
