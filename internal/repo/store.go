package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/li-0406/foodApi/internal/domain"
)

// Store adapts the repository functions to the method set the service layer
// depends on. It owns nothing beyond the *gorm.DB handle.
type Store struct {
	db *gorm.DB
}

// NewStore wraps db.
func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) CreateFeedback(ctx context.Context, f *domain.Feedback) error {
	return CreateFeedback(ctx, s.db, f)
}

func (s *Store) ListFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	return ListFeedbacks(ctx, s.db)
}

func (s *Store) GetFeedback(ctx context.Context, id string) (*domain.Feedback, error) {
	return GetFeedback(ctx, s.db, id)
}

func (s *Store) UpdateFeedback(ctx context.Context, id string, p domain.FeedbackPatch) (*domain.Feedback, error) {
	return UpdateFeedback(ctx, s.db, id, p)
}

func (s *Store) DeleteFeedback(ctx context.Context, id string) error {
	return DeleteFeedback(ctx, s.db, id)
}

func (s *Store) FeedbackStats(ctx context.Context) (int64, *time.Time, error) {
	return FeedbackStats(ctx, s.db)
}

func (s *Store) GetIdempotency(ctx context.Context, key string, now time.Time) (*domain.Idempotency, error) {
	return GetIdempotency(ctx, s.db, key, now)
}

func (s *Store) CreateIdempotency(ctx context.Context, key, feedbackID string, ttl time.Duration) (*domain.Idempotency, error) {
	return CreateIdempotency(ctx, s.db, key, feedbackID, ttl)
}

func (s *Store) PurgeExpiredIdempotency(ctx context.Context, now time.Time) (int64, error) {
	return PurgeExpiredIdempotency(ctx, s.db, now)
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
