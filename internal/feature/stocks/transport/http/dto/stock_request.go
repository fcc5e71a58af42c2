// Package dto defines data transfer objects for the stocks feature's HTTP transport layer.
//
// リクエスト構造体は操作ごとに許可されるフィールドだけを列挙したホワイトリストです。
// JSONデコードは宣言済みフィールドのみを取り込むため、未宣言のパラメータは
// サービス層に到達する前に黙って破棄されます。特に更新リクエストはbearer_idを
// 一切受け取りません。所有者の付け替えはbearer_nameの解決経由に限定されます。
package dto

import "stocks_api/internal/platform/apperr"

// CreateStockReq represents the request body for POST /api/v1/stocks.
// ポインタ型はキーの欠落と値の区別のために使用します。
type CreateStockReq struct {
	Name     *string `json:"name"`
	BearerID *uint   `json:"bearer_id"`
}

// Validate は必須フィールドの欠落を宣言順に検査します。
// 欠落があれば "name is missing, bearer_id is missing" 形式のエラーを返します。
func (r *CreateStockReq) Validate() error {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.BearerID == nil {
		missing = append(missing, "bearer_id")
	}
	if len(missing) > 0 {
		return apperr.MissingParams(missing...)
	}
	return nil
}

// UpdateStockReq represents the request body for PUT /api/v1/stocks/:id.
// すべてのフィールドが任意で、空のボディは変更なしの更新として有効です。
type UpdateStockReq struct {
	Name       *string `json:"name"`
	BearerName *string `json:"bearer_name"`
}
