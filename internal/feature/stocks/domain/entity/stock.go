package entity

import "time"

// Stock represents the managed resource. Each stock belongs to exactly one
// Bearer and is removed by soft delete: DeletedAt is set instead of the row
// being dropped, and every read path filters on DeletedAt IS NULL.
//
// The unique index on Name is partial (current rows only), so a soft-deleted
// stock does not block reuse of its name.
type Stock struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"size:255;not null;uniqueIndex:uniq_stocks_name,where:deleted_at IS NULL"`
	BearerID  uint       `gorm:"not null;index"`
	Bearer    Bearer     `gorm:"foreignKey:BearerID"`
	DeletedAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}
