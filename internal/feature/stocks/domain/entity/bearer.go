// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Bearer represents the named owner of stocks.
// Names are globally unique; bearers are never deleted by the API, only
// created (explicitly or implicitly while updating a stock).
type Bearer struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
