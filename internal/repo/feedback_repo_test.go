package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/li-0406/foodApi/internal/domain"
)

func strp(s string) *string { return &s }

func TestCreateFeedback_Error_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	f := &domain.Feedback{ContactPerson: "A", Email: "a@x.com", Feedback: "hi"}
	if err := CreateFeedback(context.Background(), db, f); err == nil {
		t.Fatalf("expected error when feedbacks table is missing")
	}
}

func TestCreateFeedback_Success_AssignsIDAndTimestamps(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	start := time.Now().UTC()

	f := &domain.Feedback{ContactPerson: "A", Phone: "123", Email: "a@x.com", Feedback: "hi"}
	if err := CreateFeedback(context.Background(), db, f); err != nil {
		t.Fatalf("CreateFeedback error: %v", err)
	}
	if f.ID == "" {
		t.Fatalf("ID not assigned")
	}
	if f.CreatedAt.Before(start.Add(-time.Minute)) || !f.CreatedAt.Equal(f.UpdatedAt) {
		t.Fatalf("timestamps not set reasonably: %v / %v", f.CreatedAt, f.UpdatedAt)
	}

	var got domain.Feedback
	if err := db.First(&got, "id = ?", f.ID).Error; err != nil {
		t.Fatalf("load feedback: %v", err)
	}
	if got.ContactPerson != "A" || got.Phone != "123" || got.Email != "a@x.com" || got.Feedback != "hi" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestCreateFeedback_ValidationError_NothingPersisted(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})

	f := &domain.Feedback{ContactPerson: "A", Email: "   ", Feedback: ""}
	err := CreateFeedback(context.Background(), db, f)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var n int64
	db.Model(&domain.Feedback{}).Count(&n)
	if n != 0 {
		t.Fatalf("invalid record was persisted (count=%d)", n)
	}
}

func TestListFeedbacks_EmptyAndInsertionOrder(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	ctx := context.Background()

	out, err := ListFeedbacks(ctx, db)
	if err != nil {
		t.Fatalf("ListFeedbacks error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.Feedback{
		{ID: "b", ContactPerson: "second", Email: "e", Feedback: "f", CreatedAt: base.Add(time.Minute), UpdatedAt: base},
		{ID: "a", ContactPerson: "first", Email: "e", Feedback: "f", CreatedAt: base, UpdatedAt: base},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err = ListFeedbacks(ctx, db)
	if err != nil {
		t.Fatalf("ListFeedbacks error: %v", err)
	}
	if len(out) != 2 || out[0].ContactPerson != "first" || out[1].ContactPerson != "second" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestGetFeedback_FoundAndNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	ctx := context.Background()

	f := &domain.Feedback{ContactPerson: "A", Email: "a@x.com", Feedback: "hi"}
	if err := CreateFeedback(ctx, db, f); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetFeedback(ctx, db, f.ID)
	if err != nil || got.ID != f.ID {
		t.Fatalf("GetFeedback: got=%+v err=%v", got, err)
	}

	if _, err := GetFeedback(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetFeedback_NoTable_RawError(t *testing.T) {
	db := newTestDB(t)
	_, err := GetFeedback(context.Background(), db, "x")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected raw DB error, got %v", err)
	}
}

func TestUpdateFeedback_PartialApply(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	ctx := context.Background()

	f := &domain.Feedback{ContactPerson: "A", Phone: "1", Email: "a@x.com", Feedback: "hi"}
	if err := CreateFeedback(ctx, db, f); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := f.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	got, err := UpdateFeedback(ctx, db, f.ID, domain.FeedbackPatch{
		Feedback: strp("updated"),
		Source:   strp("friend"),
	})
	if err != nil {
		t.Fatalf("UpdateFeedback: %v", err)
	}
	if got.Feedback != "updated" || got.Source != "friend" || got.ContactPerson != "A" || got.Phone != "1" {
		t.Fatalf("unexpected updated record: %+v", got)
	}
	if !got.UpdatedAt.After(before) {
		t.Fatalf("UpdatedAt not bumped: %v -> %v", before, got.UpdatedAt)
	}

	reloaded, _ := GetFeedback(ctx, db, f.ID)
	if reloaded.Feedback != "updated" {
		t.Fatalf("update not persisted: %+v", reloaded)
	}
}

func TestUpdateFeedback_ValidationFailure_LeavesRowUntouched(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	ctx := context.Background()

	f := &domain.Feedback{ContactPerson: "A", Email: "a@x.com", Feedback: "hi"}
	if err := CreateFeedback(ctx, db, f); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := UpdateFeedback(ctx, db, f.ID, domain.FeedbackPatch{Email: strp("  ")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	reloaded, _ := GetFeedback(ctx, db, f.ID)
	if reloaded.Email != "a@x.com" {
		t.Fatalf("row modified despite validation failure: %+v", reloaded)
	}
}

func TestUpdateFeedback_NotFound(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	_, err := UpdateFeedback(context.Background(), db, "missing", domain.FeedbackPatch{Feedback: strp("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFeedback_SuccessThenNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Feedback{})
	ctx := context.Background()

	f := &domain.Feedback{ContactPerson: "A", Email: "a@x.com", Feedback: "hi"}
	if err := CreateFeedback(ctx, db, f); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := DeleteFeedback(ctx, db, f.ID); err != nil {
		t.Fatalf("DeleteFeedback: %v", err)
	}
	if _, err := GetFeedback(ctx, db, f.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := DeleteFeedback(ctx, db, f.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestDeleteFeedback_NoTable_RawError(t *testing.T) {
	db := newTestDB(t)
	err := DeleteFeedback(context.Background(), db, "x")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected raw DB error, got %v", err)
	}
}
