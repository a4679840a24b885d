package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront-api/internal/imagestore"
	"github.com/rogerio-castellano/storefront-api/internal/redissvc"
	repo "github.com/rogerio-castellano/storefront-api/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
	userRepo     repo.UserRepository
	statsRepo    repo.StatsRepository
	categoryRepo repo.CategoryRepository
	storeRepo    repo.StoreRepository
	blogRepo     repo.BlogRepository

	images            *imagestore.Store
	lowStockThreshold = 10

	Rdb *redis.Client
	Ctx context.Context
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetStoreRepo(r repo.StoreRepository) {
	storeRepo = r
}

func SetBlogRepo(r repo.BlogRepository) {
	blogRepo = r
}

func SetImageStore(s *imagestore.Store) {
	images = s
}

func SetLowStockThreshold(n int) {
	if n > 0 {
		lowStockThreshold = n
	}
}

func SetRedisService(rs *redissvc.RedisService) {
	Rdb = rs.Rdb()
	Ctx = rs.Ctx()
}
