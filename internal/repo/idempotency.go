// Package repo implements the SQLite record store for feedback, backed by
// GORM. This file provides repository helpers for the Idempotency model used
// to implement safe-retry semantics for the create endpoint.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/li-0406/foodApi/internal/domain"
)

// ErrDuplicate indicates that an idempotency record already exists for the
// given key.
var ErrDuplicate = domain.ErrDuplicate

// GetIdempotency returns a non-expired record or ErrNotFound.
func GetIdempotency(ctx context.Context, db *gorm.DB, key string, now time.Time) (*domain.Idempotency, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.Idempotency
	err := db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateIdempotency inserts a record and returns ErrDuplicate on unique
// violation. An expired record holding the same key is replaced.
func CreateIdempotency(ctx context.Context, db *gorm.DB, key, feedbackID string, ttl time.Duration) (*domain.Idempotency, error) {
	now := time.Now().UTC()
	rec := &domain.Idempotency{
		Key:        key,
		FeedbackID: feedbackID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key = ? AND expires_at <= ?", key, now).Delete(&domain.Idempotency{}).Error; err != nil {
			return err
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}

// PurgeExpiredIdempotency deletes every record expired at now and reports how
// many rows were removed.
func PurgeExpiredIdempotency(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&domain.Idempotency{})
	return res.RowsAffected, res.Error
}
