package repo

import (
	"context"
	"testing"
	"time"

	"github.com/li-0406/foodApi/internal/domain"
)

func TestGetIdempotency_BlankKey_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	rec, err := GetIdempotency(context.Background(), db, "   ", now)
	if rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank key, got (%v, %v)", rec, err)
	}
}

func TestGetIdempotency_ExpiredOrMissing_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	// Insert an expired record (expires_at <= now)
	exp := &domain.Idempotency{
		Key:        "k1",
		FeedbackID: "f1",
		CreatedAt:  now.Add(-2 * time.Hour),
		ExpiresAt:  now.Add(-time.Hour),
	}
	if err := db.Create(exp).Error; err != nil {
		t.Fatalf("seed expired: %v", err)
	}

	rec, err := GetIdempotency(context.Background(), db, "k1", now)
	if rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for expired, got (%v, %v)", rec, err)
	}

	// Also check a totally missing key
	rec2, err2 := GetIdempotency(context.Background(), db, "missing", now)
	if rec2 != nil || err2 != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for missing, got (%v, %v)", rec2, err2)
	}
}

func TestGetIdempotency_Success(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	ok := &domain.Idempotency{
		Key:        "k2",
		FeedbackID: "f9",
		CreatedAt:  now.Add(-time.Minute),
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := db.Create(ok).Error; err != nil {
		t.Fatalf("seed ok: %v", err)
	}

	rec, err := GetIdempotency(context.Background(), db, "k2", now)
	if err != nil {
		t.Fatalf("GetIdempotency success err: %v", err)
	}
	if rec == nil || rec.FeedbackID != "f9" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestCreateIdempotency_SuccessAndDuplicate(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})

	ttl := 90 * time.Minute
	start := time.Now().UTC()

	rec, err := CreateIdempotency(context.Background(), db, "k9", "f9", ttl)
	if err != nil {
		t.Fatalf("CreateIdempotency error: %v", err)
	}
	if rec == nil || rec.Key != "k9" || rec.FeedbackID != "f9" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	// ExpiresAt should be in (start, start+2h), loose bound to avoid timing flakes.
	if !(rec.ExpiresAt.After(start) && rec.ExpiresAt.Before(start.Add(2*time.Hour))) {
		t.Fatalf("unexpected ExpiresAt: %v", rec.ExpiresAt)
	}

	// Same live key should map to ErrDuplicate
	_, err2 := CreateIdempotency(context.Background(), db, "k9", "fX", ttl)
	if err2 != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err2)
	}
}

func TestCreateIdempotency_ReplacesExpiredKey(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	old := &domain.Idempotency{Key: "k", FeedbackID: "old", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	if err := db.Create(old).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec, err := CreateIdempotency(context.Background(), db, "k", "new", time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency over expired key: %v", err)
	}
	if rec.FeedbackID != "new" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	got, err := GetIdempotency(context.Background(), db, "k", time.Now().UTC())
	if err != nil || got.FeedbackID != "new" {
		t.Fatalf("readback: got=%+v err=%v", got, err)
	}
}

// Generic DB error path: attempt insert without migrating the table.
func TestCreateIdempotency_Error_NoTable(t *testing.T) {
	db := newTestDB(t) // intentionally NOT migrating idempotency
	_, err := CreateIdempotency(context.Background(), db, "kX", "fX", time.Minute)
	if err == nil {
		t.Fatalf("expected error when table is missing")
	}
	if err == ErrDuplicate {
		t.Fatalf("expected non-duplicate error, got ErrDuplicate")
	}
}

func TestPurgeExpiredIdempotency(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	recs := []domain.Idempotency{
		{Key: "gone1", FeedbackID: "f", CreatedAt: now, ExpiresAt: now.Add(-time.Second)},
		{Key: "gone2", FeedbackID: "f", CreatedAt: now, ExpiresAt: now},
		{Key: "live", FeedbackID: "f", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&recs).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := PurgeExpiredIdempotency(context.Background(), db, now)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Fatalf("purged=%d; want 2", n)
	}
	if _, err := GetIdempotency(context.Background(), db, "live", now); err != nil {
		t.Fatalf("live record should remain: %v", err)
	}
}
