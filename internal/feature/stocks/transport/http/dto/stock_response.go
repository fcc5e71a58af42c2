package dto

import "stocks_api/internal/feature/stocks/domain/entity"

// StockItem はstockの公開プロジェクションです。
// bearer_nameは保存時の非正規化ではなく、描画時に所有Bearerから解決されます。
type StockItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	BearerName string `json:"bearer_name"`
}

// NewStockItem はエンティティをレスポンスDTOへ変換します。
func NewStockItem(s *entity.Stock) StockItem {
	return StockItem{
		ID:         s.ID,
		Name:       s.Name,
		BearerName: s.Bearer.Name,
	}
}
