// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/feature/stocks/transport/http/dto"
	"stocks_api/internal/feature/stocks/usecase"
	"stocks_api/internal/platform/apperr"
	"stocks_api/internal/platform/httperr"
)

// StockUsecase はstock操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type StockUsecase interface {
	List(ctx context.Context) ([]entity.Stock, error)
	Create(ctx context.Context, name string, bearerID uint) (*entity.Stock, error)
	Update(ctx context.Context, id uint, in usecase.UpdateStockInput) (*entity.Stock, error)
	Delete(ctx context.Context, id uint) error
}

// StockHandler はstockリソースのHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List はcurrentなすべてのstockを返すAPIです。
//
// GET /api/v1/stocks
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.uc.List(c.Request.Context())
	if err != nil {
		httperr.Render(c, err)
		return
	}

	out := make([]dto.StockItem, 0, len(stocks))
	for i := range stocks {
		out = append(out, dto.NewStockItem(&stocks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create は新しいstockを作成するAPIです。
// nameとbearer_idが必須で、欠落は400、bearer未登録は404、名前重複は422になります。
//
// POST /api/v1/stocks
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockReq
	if err := bindJSON(c, &req); err != nil {
		httperr.Render(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Render(c, err)
		return
	}

	stock, err := h.uc.Create(c.Request.Context(), *req.Name, *req.BearerID)
	if err != nil {
		httperr.Render(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStockItem(stock))
}

// Update はstockの部分更新APIです。パッチに含まれるフィールドのみ適用され、
// 空のボディは変更なしの200になります。bearer_nameが指定された場合は
// 同名のbearerが検索または作成され、所有者が付け替えられます。
//
// PUT /api/v1/stocks/:id
func (h *StockHandler) Update(c *gin.Context) {
	id, err := stockID(c)
	if err != nil {
		httperr.Render(c, err)
		return
	}

	var req dto.UpdateStockReq
	if err := bindJSON(c, &req); err != nil {
		httperr.Render(c, err)
		return
	}

	stock, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateStockInput{
		Name:       req.Name,
		BearerName: req.BearerName,
	})
	if err != nil {
		httperr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStockItem(stock))
}

// Delete はstockを論理削除するAPIです。成功時は204で空ボディを返します。
// 未登録または削除済みのIDは404になります。
//
// DELETE /api/v1/stocks/:id
func (h *StockHandler) Delete(c *gin.Context) {
	id, err := stockID(c)
	if err != nil {
		httperr.Render(c, err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		httperr.Render(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindJSON はリクエストボディをデコードします。
// ボディなしは空のパラメータセットとして扱い、必須チェックに委ねます。
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperr.InvalidParams("invalid request body")
	}
	return nil
}

// stockID はパスパラメータのidを解析します。
// 数値でない値は該当行が存在し得ないため、生の値を含むNotFoundとして扱います。
func stockID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Stock", raw)
	}
	return uint(id), nil
}
