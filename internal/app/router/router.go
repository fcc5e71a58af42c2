package router

import (
	"github.com/gin-gonic/gin"

	stockhandler "stocks_api/internal/feature/stocks/transport/handler"
	"stocks_api/internal/platform/auth"
	"stocks_api/internal/platform/http/handler"
)

// NewRouter はAPIのルーティングテーブルを構築します。
func NewRouter(stocks *stockhandler.StockHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証必須のルート
	// Bearerトークン（非空）をAuthorizationヘッダーに要求する
	v1 := r.Group("/api/v1")
	v1.Use(auth.RequireAccessToken())
	{
		v1.GET("/stocks", stocks.List)
		v1.POST("/stocks", stocks.Create)
		v1.PUT("/stocks/:id", stocks.Update)
		v1.DELETE("/stocks/:id", stocks.Delete)
	}

	return r
}
