// Package repo implements the SQLite record store for feedback, backed by
// GORM. This file provides repository functions for the Feedback model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: persistence and query composition
// only, with one exception: the schema check (domain.Feedback.Validate) runs
// before every write, the way a document store enforces its schema.
//
// Error semantics:
//   - A missing record yields ErrNotFound (gorm.ErrRecordNotFound is
//     translated so callers need not import gorm).
//   - A schema failure yields an error wrapping domain.ErrValidation.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
//
// Usage:
//
//	// In the service layer
//	fb, err := repo.GetFeedback(ctx, db, id)
//	if errors.Is(err, repo.ErrNotFound) {
//	    // handle missing
//	} else if err != nil {
//	    // handle DB failure
//	}
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/li-0406/foodApi/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = domain.ErrNotFound

// CreateFeedback assigns a UUID and timestamps to f, checks the schema and
// inserts the row. On success f holds the persisted values.
func CreateFeedback(ctx context.Context, db *gorm.DB, f *domain.Feedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now
	return db.WithContext(ctx).Create(f).Error
}

// ListFeedbacks returns every feedback record in insertion order. It returns
// an empty slice when the table is empty.
func ListFeedbacks(ctx context.Context, db *gorm.DB) ([]domain.Feedback, error) {
	out := []domain.Feedback{}
	err := db.WithContext(ctx).
		Order("created_at asc").
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetFeedback fetches a single record by ID, or ErrNotFound.
func GetFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.Feedback, error) {
	var f domain.Feedback
	err := db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFeedback applies p to the record identified by id inside a
// transaction, re-checks the schema and saves it. The stored row is left
// untouched when the patched record fails validation.
func UpdateFeedback(ctx context.Context, db *gorm.DB, id string, p domain.FeedbackPatch) (*domain.Feedback, error) {
	var out domain.Feedback
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		p.Apply(&out)
		if err := out.Validate(); err != nil {
			return err
		}
		out.UpdatedAt = time.Now().UTC()
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFeedback removes the record identified by id. If no rows are
// affected it returns ErrNotFound.
func DeleteFeedback(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Feedback{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
