package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/platform/apperr"
)

// bearerCount はbearers行数を返します。
func bearerCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&entity.Bearer{}).Count(&count).Error)
	return count
}

// TestNewBearerRepository はNewBearerRepositoryコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewBearerRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBearerRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestBearerGorm_FindByID はFindByIDの取得と未検出時のメッセージを検証します。
func TestBearerGorm_FindByID(t *testing.T) {
	t.Parallel()

	t.Run("success: finds bearer by id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewBearerRepository(db)
		seeded := seedBearer(t, db, "Bearer 1")

		bearer, err := repo.FindByID(context.Background(), seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "Bearer 1", bearer.Name)
	})

	t.Run("failure: unknown id returns not found with id in message", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewBearerRepository(db)

		_, err := repo.FindByID(context.Background(), 0)

		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.EqualError(t, err, "Couldn't find Bearer with 'id'=0")
	})
}

// TestBearerGorm_Create は名前の一意性制約が重複行を拒否することを検証します。
func TestBearerGorm_Create(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBearerRepository(db)
	seedBearer(t, db, "Bearer 1")

	err := repo.Create(context.Background(), &entity.Bearer{Name: "Bearer 1"})

	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "name has already been taken")
	assert.Equal(t, int64(1), bearerCount(t, db), "no second live row with the same name")
}

// TestBearerGorm_FindOrCreateByName はfind-or-createの両経路をテーブル駆動テストで検証します。
func TestBearerGorm_FindOrCreateByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		seedName      string
		lookupName    string
		expectedCount int64
	}{
		{
			name:          "existing bearer is reused without creating a row",
			seedName:      "Bearer 1",
			lookupName:    "Bearer 1",
			expectedCount: 1,
		},
		{
			name:          "novel name creates exactly one bearer",
			seedName:      "Bearer 1",
			lookupName:    "Bearer 3",
			expectedCount: 2,
		},
		{
			name:          "name matching is case-sensitive",
			seedName:      "Bearer 1",
			lookupName:    "bearer 1",
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewBearerRepository(db)
			seeded := seedBearer(t, db, tt.seedName)

			bearer, err := repo.FindOrCreateByName(context.Background(), tt.lookupName)

			require.NoError(t, err)
			assert.Equal(t, tt.lookupName, bearer.Name)
			assert.Equal(t, tt.expectedCount, bearerCount(t, db))

			if tt.seedName == tt.lookupName {
				assert.Equal(t, seeded.ID, bearer.ID, "existing id should be returned")
			} else {
				assert.NotEqual(t, seeded.ID, bearer.ID)
			}
		})
	}
}

// TestBearerGorm_FindOrCreateByName_Idempotent は同名での繰り返し呼び出しが常に同じ行を返すことを検証します。
func TestBearerGorm_FindOrCreateByName_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBearerRepository(db)

	first, err := repo.FindOrCreateByName(context.Background(), "Bearer 3")
	require.NoError(t, err)

	second, err := repo.FindOrCreateByName(context.Background(), "Bearer 3")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), bearerCount(t, db))
}
