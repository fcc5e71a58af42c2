package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/feature/stocks/usecase"
	"stocks_api/internal/platform/apperr"
)

// bearerGorm はBearerRepositoryインターフェースのGORM実装です。
type bearerGorm struct {
	db *gorm.DB
}

// bearerGormがBearerRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BearerRepository = (*bearerGorm)(nil)

// NewBearerRepository は指定されたDB接続でbearerGormリポジトリの新しいインスタンスを生成します。
func NewBearerRepository(db *gorm.DB) *bearerGorm {
	return &bearerGorm{db: db}
}

// FindByID はIDでbearerを取得します。
// 存在しない場合、apperrのNotFoundを返します。
func (r *bearerGorm) FindByID(ctx context.Context, id uint) (*entity.Bearer, error) {
	var bearer entity.Bearer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bearer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Bearer", id)
		}
		return nil, err
	}
	return &bearer, nil
}

// FindByName は名前の完全一致でbearerを取得します。
// 存在しない場合、gorm.ErrRecordNotFoundをそのまま返します。
func (r *bearerGorm) FindByName(ctx context.Context, name string) (*entity.Bearer, error) {
	var bearer entity.Bearer
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&bearer).Error; err != nil {
		return nil, err
	}
	return &bearer, nil
}

// Create はbearerをデータベースに追加します。
// 同名のbearerが既に存在する場合、apperr.Taken("name")を返します。
func (r *bearerGorm) Create(ctx context.Context, bearer *entity.Bearer) error {
	if err := r.db.WithContext(ctx).Create(bearer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Taken("name")
		}
		return err
	}
	return nil
}

// FindOrCreateByName は指定された名前のbearerを返し、存在しなければ作成します。
// 同名での同時作成はnameの一意性制約が仲裁し、競合に敗れた側は
// 勝者の行を再検索して返します。重複行が作られることはありません。
func (r *bearerGorm) FindOrCreateByName(ctx context.Context, name string) (*entity.Bearer, error) {
	bearer, err := r.FindByName(ctx, name)
	if err == nil {
		return bearer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &entity.Bearer{Name: name}
	if createErr := r.Create(ctx, created); createErr != nil {
		// 競合相手が先に作成した場合は既存行を引き直す
		if apperr.KindOf(createErr) == apperr.KindConflict {
			return r.FindByName(ctx, name)
		}
		return nil, createErr
	}
	return created, nil
}
