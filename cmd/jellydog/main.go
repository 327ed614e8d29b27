package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ckrskrrr/JellyDog/internal/cache"
	"github.com/ckrskrrr/JellyDog/internal/config"
	h "github.com/ckrskrrr/JellyDog/internal/http"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := repository.NewRepository(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Printf("sqlite ready at %s", cfg.SQLitePath)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed: ", err)
	}
	log.Printf("redis ready at %s", cfg.RedisAddr)

	productCache := cache.NewRedisCache(redisClient)
	productService := service.NewProductService(repo, repo, productCache)

	router := h.NewRouter(h.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		Carts:          service.NewCartService(repo),
		Checkout:       service.NewCheckoutService(repo),
		Returns:        service.NewReturnService(repo),
		Inventory:      service.NewInventoryService(repo),
		Products:       productService,
		Admin:          productService,
		Stores:         service.NewStoreService(repo),
		Auth:           service.NewAuthService(repo),
		Customers:      service.NewCustomerService(repo),
		Stats:          service.NewStatsService(repo),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      http.MaxBytesHandler(router, cfg.MaxRequestBodySize),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("JellyDog API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
