// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/feature/stocks/usecase"
	"stocks_api/internal/platform/apperr"
)

// stockGorm はStockRepositoryインターフェースのGORM実装です。
// すべてのクエリをdeleted_at IS NULLで明示的にスコープします。
type stockGorm struct {
	db *gorm.DB
}

// stockGormがStockRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたDB接続でstockGormリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// ListCurrent は論理削除されていないstockをID順に返します。
func (r *stockGorm) ListCurrent(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Preload("Bearer").
		Where("deleted_at IS NULL").
		Order("id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindCurrent は指定IDの論理削除されていないstockをBearer解決済みで取得します。
// 未登録のIDと削除済みのIDはどちらもapperrのNotFoundになります。
func (r *stockGorm) FindCurrent(ctx context.Context, id uint) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).
		Preload("Bearer").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Stock", id)
		}
		return nil, err
	}
	return &stock, nil
}

// Create はstockをデータベースに追加します。
// current内で名前が重複する場合、apperr.Taken("name")を返します。
func (r *stockGorm) Create(ctx context.Context, stock *entity.Stock) error {
	if err := r.db.WithContext(ctx).Omit("Bearer").Create(stock).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Taken("name")
		}
		return err
	}
	return nil
}

// Update はstockの全フィールドを保存します。
// 関連のBearerは書き込み対象から除外します（所有者の付け替えはBearerIDで行われます）。
func (r *stockGorm) Update(ctx context.Context, stock *entity.Stock) error {
	if err := r.db.WithContext(ctx).Omit("Bearer").Save(stock).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Taken("name")
		}
		return err
	}
	return nil
}

// SoftDelete は指定IDのcurrentなstockのdeleted_atを設定します。
// WHERE句がcurrentスコープを兼ねるため、削除済み行への再実行は
// 行を更新せずapperrのNotFoundになります。
func (r *stockGorm) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Stock", id)
	}
	return nil
}
