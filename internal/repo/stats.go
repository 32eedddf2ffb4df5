// Package repo implements the SQLite record store for feedback, backed by
// GORM. This file provides a small aggregate query used for conditional
// responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/li-0406/foodApi/internal/domain"
)

// FeedbackStats returns the total number of feedback rows and the maximum
// UpdatedAt among them. When the table is empty, the returned count is 0 and
// maxUpdatedAt is nil.
func FeedbackStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Feedback{})

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = db.WithContext(ctx).Model(&domain.Feedback{}).
		Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
