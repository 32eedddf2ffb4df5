// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// Idempotency records which feedback a previous create request produced for a
// given Idempotency-Key. A retry carrying the same key within the TTL returns
// the original record instead of inserting a duplicate.
type Idempotency struct {
	Key        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	FeedbackID string    `gorm:"type:TEXT NOT NULL"`
	CreatedAt  time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }

// Expired reports whether the record is no longer valid at now.
func (i Idempotency) Expired(now time.Time) bool { return !now.Before(i.ExpiresAt) }
