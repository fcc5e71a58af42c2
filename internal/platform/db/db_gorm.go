// Package db はPostgreSQLへのGORM接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stocks_api/internal/feature/stocks/domain/entity"
)

// Config はデータベース接続設定です。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// ConfigFromEnv は環境変数から接続設定を読み込みます。
func ConfigFromEnv() Config {
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  sslMode,
	}
}

// BuildDSN は設定からPostgreSQLのDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// OpenDB は環境変数の設定でデータベースへ接続します。
// 起動直後のDB未準備に備えて60秒までリトライし、
// RUN_MIGRATIONS=trueの場合はスキーマのマイグレーションを実行します。
// TranslateErrorにより一意性制約違反はドライバ非依存のgorm.ErrDuplicatedKeyになります。
func OpenDB() *gorm.DB {
	dsn := BuildDSN(ConfigFromEnv())

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(conn); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}

// Migrate はBearerとStockのテーブルおよびインデックスを作成します。
// stocksのname一意性インデックスは部分インデックス（deleted_at IS NULL）で、
// 論理削除済みの行は名前の再利用を妨げません。
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&entity.Bearer{},
		&entity.Stock{},
	)
}
