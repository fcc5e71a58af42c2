// Package usecase はstocksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"stocks_api/internal/feature/stocks/domain/entity"
)

// StockRepository はStockエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// すべての操作は論理削除されていない行（current）のみを対象とします。
type StockRepository interface {
	// ListCurrent はcurrentなすべてのstockをBearerを解決済みの状態で返します。
	ListCurrent(ctx context.Context) ([]entity.Stock, error)

	// FindCurrent は指定IDのcurrentなstockを取得します。
	// 行が存在しないか論理削除済みの場合、apperrのNotFoundを返します。
	FindCurrent(ctx context.Context, id uint) (*entity.Stock, error)

	// Create は新しいstockを永続化します。
	// current内で名前が重複する場合、apperrのConflictを返します。
	Create(ctx context.Context, stock *entity.Stock) error

	// Update はstockの変更を永続化します。
	// current内で名前が重複する場合、apperrのConflictを返します。
	Update(ctx context.Context, stock *entity.Stock) error

	// SoftDelete は指定IDのcurrentなstockにトゥームストーンを設定します。
	// 行は物理削除されません。対象が存在しない（既に削除済みを含む）場合、
	// apperrのNotFoundを返します。
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

// BearerRepository はBearerエンティティの永続化層を抽象化します。
type BearerRepository interface {
	// FindByID は指定IDのbearerを取得します。
	// 存在しない場合、apperrのNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Bearer, error)

	// FindOrCreateByName は指定された名前のbearerを返し、存在しなければ作成します。
	// 一意性制約を仲裁役として、同名での同時呼び出しでも行は1つしか作られません。
	FindOrCreateByName(ctx context.Context, name string) (*entity.Bearer, error)
}

// UpdateStockInput はstock更新の部分パッチです。nilのフィールドは変更されません。
// bearer_idを直接受け取らないのは意図的な制約です。所有者の付け替えは
// BearerNameの解決を経由してのみ行えます。
type UpdateStockInput struct {
	Name       *string
	BearerName *string
}

// StockUsecase はstockのCRUD操作と、更新時のbearer名解決を編成します。
type StockUsecase struct {
	stocks  StockRepository
	bearers BearerRepository
}

// NewStockUsecase はStockUsecaseの新しいインスタンスを生成します。
func NewStockUsecase(stocks StockRepository, bearers BearerRepository) *StockUsecase {
	return &StockUsecase{stocks: stocks, bearers: bearers}
}

// List はcurrentなすべてのstockを返します。
func (u *StockUsecase) List(ctx context.Context) ([]entity.Stock, error) {
	return u.stocks.ListCurrent(ctx)
}

// Create は指定されたbearerの所有で新しいstockを作成します。
// bearerが存在しない場合はNotFound、名前が重複する場合はConflictを返します。
func (u *StockUsecase) Create(ctx context.Context, name string, bearerID uint) (*entity.Stock, error) {
	bearer, err := u.bearers.FindByID(ctx, bearerID)
	if err != nil {
		return nil, err
	}

	stock := &entity.Stock{Name: name, BearerID: bearer.ID}
	if err := u.stocks.Create(ctx, stock); err != nil {
		return nil, err
	}
	stock.Bearer = *bearer

	return stock, nil
}

// Update はパッチに含まれるフィールドのみを適用する部分更新です。
// 空のパッチは変更なしでそのままのstockを返します。
// BearerNameが指定された場合は同名のbearerを検索または作成し、
// 解決済みのIDで所有者を付け替えます。
func (u *StockUsecase) Update(ctx context.Context, id uint, in UpdateStockInput) (*entity.Stock, error) {
	stock, err := u.stocks.FindCurrent(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.BearerName != nil && *in.BearerName != "" {
		bearer, err := u.bearers.FindOrCreateByName(ctx, *in.BearerName)
		if err != nil {
			return nil, err
		}
		stock.BearerID = bearer.ID
		stock.Bearer = *bearer
	}
	if in.Name != nil {
		stock.Name = *in.Name
	}

	if err := u.stocks.Update(ctx, stock); err != nil {
		return nil, err
	}

	return stock, nil
}

// Delete は指定IDのcurrentなstockを論理削除します。
// 既に削除済みのstockはcurrentに存在しないため、2回目の呼び出しはNotFoundになります。
func (u *StockUsecase) Delete(ctx context.Context, id uint) error {
	return u.stocks.SoftDelete(ctx, id, time.Now())
}
