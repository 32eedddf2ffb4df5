// internal/domain/idempotency_test.go
package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestIdempotency_Migration_PrimaryKey_AndInsert(t *testing.T) {
	db := newTestDB(t)
	if err := db.AutoMigrate(&Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	now := time.Now().UTC()
	rec := Idempotency{Key: "k1", FeedbackID: "f1", ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("autoCreateTime should populate CreatedAt")
	}

	// Key is the primary key: a second insert with the same key fails.
	dup := Idempotency{Key: "k1", FeedbackID: "f2", ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("expected primary key violation on duplicate key")
	}

	var got Idempotency
	if err := db.First(&got, "key = ?", "k1").Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.FeedbackID != "f1" {
		t.Fatalf("FeedbackID=%q; want f1", got.FeedbackID)
	}
}

func TestIdempotency_Expired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rec := Idempotency{ExpiresAt: now.Add(time.Minute)}

	if rec.Expired(now) {
		t.Fatalf("record should be valid before ExpiresAt")
	}
	if !rec.Expired(now.Add(time.Minute)) {
		t.Fatalf("record should expire exactly at ExpiresAt")
	}
	if !rec.Expired(now.Add(time.Hour)) {
		t.Fatalf("record should be expired after ExpiresAt")
	}
}
