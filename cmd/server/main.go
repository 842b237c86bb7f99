package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seuristic/image-ecommerce/internal/auth"
	"github.com/seuristic/image-ecommerce/internal/cache"
	"github.com/seuristic/image-ecommerce/internal/config"
	"github.com/seuristic/image-ecommerce/internal/gateway"
	httpapi "github.com/seuristic/image-ecommerce/internal/http"
	"github.com/seuristic/image-ecommerce/internal/media"
	"github.com/seuristic/image-ecommerce/internal/notify"
	"github.com/seuristic/image-ecommerce/internal/repository"
	"github.com/seuristic/image-ecommerce/internal/service"
	"github.com/seuristic/image-ecommerce/internal/worker"
)

func main() {
	cfg := config.Load()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.RazorpayWebhookSecret == "" {
		log.Fatal("RAZORPAY_WEBHOOK_SECRET is not set")
	}

	ctx := context.Background()

	// Set up MongoDB connection
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	productRepo := repository.NewMongoProductRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	paymentGateway := gateway.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
	})

	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, paymentGateway, mailer)
	productService := service.NewProductService(productRepo, cache.NewRedisCache(redisClient))
	userService := service.NewUserService(userRepo)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:           httpapi.NewAuthHandler(userService, tokens),
		Products:       httpapi.NewProductHandler(productService),
		Orders:         httpapi.NewOrderHandler(orderService),
		Webhook:        httpapi.NewWebhookHandler(orderService, cfg.RazorpayWebhookSecret),
		Media:          httpapi.NewMediaHandler(media.NewSigner(cfg.ImageKitPrivateKey)),
		Tokens:         tokens,
		RequestTimeout: cfg.RequestTimeout,
	})

	workerCtx, stopWorker := context.WithCancel(ctx)
	reconciler := worker.NewReconciliationWorker(
		orderRepo, paymentGateway, orderService,
		cfg.ReconcileInterval, cfg.ReconcileMinAge, cfg.ReconcileExpiry,
	)
	go reconciler.Run(workerCtx)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect failed: %v", err)
	}
	log.Println("server exited")
}
