// Package services – FeedbackService
//
// This file implements the FeedbackService, which governs the feedback record
// lifecycle: create (optionally idempotent), list, get, update and delete. It
// normalizes input (Unicode NFC, trimmed), enforces the required-field contract
// (contactPerson, email, feedback) before any store call, and translates store
// sentinels into service errors so handlers can map them to HTTP results
// consistently.
//
// Store-level schema failures (domain.ErrValidation) are passed through
// unchanged; the HTTP error middleware owns their rewrite.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/li-0406/foodApi/internal/domain"
)

// FeedbackStore defines the persistence contract required by FeedbackService.
// Implementations return domain.ErrNotFound for missing records and
// domain.ErrDuplicate for a live idempotency key.
type FeedbackStore interface {
	// CreateFeedback assigns an identifier and timestamps and persists f.
	CreateFeedback(ctx context.Context, f *domain.Feedback) error

	// ListFeedbacks returns all records in insertion order.
	ListFeedbacks(ctx context.Context) ([]domain.Feedback, error)

	// GetFeedback fetches a record by identifier.
	GetFeedback(ctx context.Context, id string) (*domain.Feedback, error)

	// UpdateFeedback applies a partial update and returns the new state.
	UpdateFeedback(ctx context.Context, id string, p domain.FeedbackPatch) (*domain.Feedback, error)

	// DeleteFeedback removes a record by identifier.
	DeleteFeedback(ctx context.Context, id string) error

	// FeedbackStats returns the record count and latest update time.
	FeedbackStats(ctx context.Context) (int64, *time.Time, error)

	GetIdempotency(ctx context.Context, key string, now time.Time) (*domain.Idempotency, error)
	CreateIdempotency(ctx context.Context, key, feedbackID string, ttl time.Duration) (*domain.Idempotency, error)
	PurgeExpiredIdempotency(ctx context.Context, now time.Time) (int64, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close(ctx context.Context) error
}

// storeOps counts store calls by operation and outcome.
var storeOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "feedback_store_operations_total",
		Help: "Feedback store operations by operation and result.",
	},
	[]string{"op", "result"},
)

func init() {
	prometheus.MustRegister(storeOps)
}

// CreateInput is the body of a create request. Source is not accepted on
// create.
type CreateInput struct {
	ContactPerson string
	Phone         string
	Email         string
	Feedback      string
}

// UpdateInput is the body of an update request. The three required fields
// must always be supplied; Phone and Source are changed only when non-nil.
type UpdateInput struct {
	ContactPerson string
	Email         string
	Feedback      string
	Phone         *string
	Source        *string
}

// FeedbackService provides the feedback use-cases on top of a FeedbackStore.
type FeedbackService struct {
	// Store is the record store used for all operations.
	Store FeedbackStore

	// IdempotencyTTL bounds how long an Idempotency-Key replays its result.
	IdempotencyTTL time.Duration

	now func() time.Time
}

// NewFeedbackService constructs a FeedbackService. A non-positive ttl falls
// back to 24h.
func NewFeedbackService(store FeedbackStore, idempotencyTTL time.Duration) *FeedbackService {
	if idempotencyTTL <= 0 {
		idempotencyTTL = 24 * time.Hour
	}
	return &FeedbackService{
		Store:          store,
		IdempotencyTTL: idempotencyTTL,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new record from in.
//
// When idemKey is non-empty and a live record exists for it, the feedback it
// created is returned with replayed=true and nothing new is stored. Losing a
// race for the same key deletes the just-created duplicate and replays the
// winner's record.
func (s *FeedbackService) Create(ctx context.Context, in CreateInput, idemKey string) (fb *domain.Feedback, replayed bool, err error) {
	f := &domain.Feedback{
		ContactPerson: normalize(in.ContactPerson),
		Phone:         normalize(in.Phone),
		Email:         normalize(in.Email),
		Feedback:      normalize(in.Feedback),
	}
	if missingRequired(f.ContactPerson, f.Email, f.Feedback) {
		return nil, false, ErrMissingRequiredFields
	}

	if idemKey != "" {
		prev, err := s.replay(ctx, idemKey)
		if err != nil || prev != nil {
			return prev, prev != nil, err
		}
	}

	err = s.Store.CreateFeedback(ctx, f)
	observe("create", err)
	if err != nil {
		return nil, false, err
	}
	if idemKey == "" {
		return f, false, nil
	}

	_, err = s.Store.CreateIdempotency(ctx, idemKey, f.ID, s.IdempotencyTTL)
	switch {
	case err == nil:
		return f, false, nil
	case errors.Is(err, domain.ErrDuplicate):
		// Another request claimed the key between lookup and insert.
		if derr := s.Store.DeleteFeedback(ctx, f.ID); derr != nil {
			log.Warn().Err(derr).Str("feedback_id", f.ID).Msg("idempotency: failed to remove duplicate record")
		}
		prev, rerr := s.replay(ctx, idemKey)
		if rerr != nil {
			return nil, false, rerr
		}
		if prev == nil {
			return nil, false, ErrIdempotencyConflict
		}
		return prev, true, nil
	default:
		// The record exists; only replay protection is lost.
		log.Warn().Err(err).Str("feedback_id", f.ID).Msg("idempotency: failed to record key")
		return f, false, nil
	}
}

// replay returns the record created under key, nil when the key is unknown,
// or ErrIdempotencyConflict when the record has since been deleted.
func (s *FeedbackService) replay(ctx context.Context, key string) (*domain.Feedback, error) {
	rec, err := s.Store.GetIdempotency(ctx, key, s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	prev, err := s.Store.GetFeedback(ctx, rec.FeedbackID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrIdempotencyConflict
	}
	if err != nil {
		return nil, err
	}
	return prev, nil
}

// HasIdempotencyKey reports whether key still replays a record at now. It
// matches middleware.IdempotencyLookup.
func (s *FeedbackService) HasIdempotencyKey(ctx context.Context, key string, now time.Time) (bool, error) {
	_, err := s.Store.GetIdempotency(ctx, key, now)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// List returns every record.
func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	out, err := s.Store.ListFeedbacks(ctx)
	observe("list", err)
	return out, err
}

// Stats returns the aggregate used for list ETags.
func (s *FeedbackService) Stats(ctx context.Context) (int64, *time.Time, error) {
	return s.Store.FeedbackStats(ctx)
}

// Get returns one record or ErrFeedbackNotFound.
func (s *FeedbackService) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	f, err := s.Store.GetFeedback(ctx, strings.TrimSpace(id))
	observe("get", err)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrFeedbackNotFound
	}
	return f, err
}

// Update enforces the required-field contract, then applies in as a partial
// update. The store re-validates the resulting record.
func (s *FeedbackService) Update(ctx context.Context, id string, in UpdateInput) (*domain.Feedback, error) {
	p := domain.FeedbackPatch{
		ContactPerson: ptr(normalize(in.ContactPerson)),
		Email:         ptr(normalize(in.Email)),
		Feedback:      ptr(normalize(in.Feedback)),
	}
	if missingRequired(*p.ContactPerson, *p.Email, *p.Feedback) {
		return nil, ErrMissingRequiredFields
	}
	if in.Phone != nil {
		p.Phone = ptr(normalize(*in.Phone))
	}
	if in.Source != nil {
		p.Source = ptr(normalize(*in.Source))
	}

	f, err := s.Store.UpdateFeedback(ctx, strings.TrimSpace(id), p)
	observe("update", err)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrFeedbackNotFound
	}
	return f, err
}

// Delete removes one record or returns ErrFeedbackNotFound.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	err := s.Store.DeleteFeedback(ctx, strings.TrimSpace(id))
	observe("delete", err)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrFeedbackNotFound
	}
	return err
}

// Ping reports store reachability.
func (s *FeedbackService) Ping(ctx context.Context) error {
	return s.Store.Ping(ctx)
}

// PurgeExpiredKeys removes idempotency records that can no longer replay.
func (s *FeedbackService) PurgeExpiredKeys(ctx context.Context) (int64, error) {
	return s.Store.PurgeExpiredIdempotency(ctx, s.now())
}

// normalize trims surrounding whitespace and composes to Unicode NFC so that
// visually identical input is stored identically.
func normalize(v string) string {
	return norm.NFC.String(strings.TrimSpace(v))
}

func missingRequired(fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			return true
		}
	}
	return false
}

func ptr(s string) *string { return &s }

func observe(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	default:
		result = "error"
	}
	storeOps.WithLabelValues(op, result).Inc()
}
