package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"stocks_api/internal/app/router"
	stockadapters "stocks_api/internal/feature/stocks/adapters"
	stockhandler "stocks_api/internal/feature/stocks/transport/handler"
	stockusecase "stocks_api/internal/feature/stocks/usecase"
	"stocks_api/internal/platform/cache"
	infradb "stocks_api/internal/platform/db"
	infraredis "stocks_api/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	stockRepo := stockadapters.NewStockRepository(db)
	bearerRepo := stockadapters.NewBearerRepository(db)

	// 一覧取得をRedisキャッシュでラップ（書き込み時に無効化）
	cachedStockRepo := cache.NewCachingStockRepository(rdb, 0, stockRepo, "stocks")

	// Usecase
	stockUC := stockusecase.NewStockUsecase(cachedStockRepo, bearerRepo)

	// Handler
	stockH := stockhandler.NewStockHandler(stockUC)

	// ルータ生成
	router := router.NewRouter(stockH)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
