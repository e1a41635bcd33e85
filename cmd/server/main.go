package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tech-discovery/internal/auth"
	"tech-discovery/internal/handler"
	"tech-discovery/internal/observability"
	"tech-discovery/internal/payment"
	"tech-discovery/internal/repository"
	"tech-discovery/internal/service"
	"tech-discovery/pkg/config"
	"tech-discovery/pkg/database"
)

func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongoDB.Database)
	productRepo := repository.NewProductRepository(mongoDB.Database)
	couponRepo := repository.NewCouponRepository(mongoDB.Database)

	// Initialize services and external collaborators
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, userRepo)
	couponService := service.NewCouponService(couponRepo)
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes)
	paymentClient := payment.NewClient(cfg.Payment.APIURL, cfg.Payment.SecretKey)

	// Setup Gin router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(logger))
	router.Use(handler.RequestTimeout(cfg.App.RequestTimeout()))

	handler.RegisterRoutes(router, handler.RouteConfig{
		Users:    handler.NewUserHandler(userService, productService, logger),
		Products: handler.NewProductHandler(productService, logger),
		Coupons:  handler.NewCouponHandler(couponService, logger),
		Platform: handler.NewPlatformHandler(tokenManager, paymentClient, logger),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Graceful shutdown
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
