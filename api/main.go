package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront-api/internal/alerts"
	"github.com/rogerio-castellano/storefront-api/internal/auth"
	"github.com/rogerio-castellano/storefront-api/internal/config"
	"github.com/rogerio-castellano/storefront-api/internal/db"
	api "github.com/rogerio-castellano/storefront-api/internal/http"
	"github.com/rogerio-castellano/storefront-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront-api/internal/imagestore"
	"github.com/rogerio-castellano/storefront-api/internal/redissvc"
	"github.com/rogerio-castellano/storefront-api/internal/repo"
	"github.com/rogerio-castellano/storefront-api/internal/stats"
)

var ctx = context.Background()

// @title Storefront API
// @version 1.0
// @description REST API for the storefront catalog and admin dashboard.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	alerts.Configure(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	handlers.SetRedisService(redisService)
	alerts.SetRedisService(redisService)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	defer database.Close()

	productRepo := repo.NewPostgresProductRepository(database)
	customerRepo := repo.NewPostgresCustomerRepository(database)
	statsRepo := repo.NewPostgresStatsRepository(database)

	handlers.SetProductRepo(productRepo)
	alerts.SetProductRepo(productRepo)
	handlers.SetCustomerRepo(customerRepo)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetStatsRepo(statsRepo)
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetStoreRepo(repo.NewPostgresStoreRepository(database))
	handlers.SetBlogRepo(repo.NewPostgresBlogRepository(database))
	handlers.SetImageStore(imagestore.New(cfg.MediaDir))
	handlers.SetLowStockThreshold(cfg.LowStockThreshold)

	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go alerts.StartDailyLowStockSummary(24 * time.Hour)
	go rl.StartVisitorCleanupLoop()
	go stats.StartDailySnapshotLoop(statsRepo, customerRepo, time.Hour)

	r := api.NewRouter()
	log.Printf("Server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
