package handlers

import (
	"context"
	"time"

	"github.com/li-0406/foodApi/internal/domain"
	"github.com/li-0406/foodApi/internal/services"
)

//
// Service contracts (context-aware)
//

// FeedbackService defines the feedback record operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type FeedbackService interface {
	// Create stores a new record, or replays the one created under idemKey.
	Create(ctx context.Context, in services.CreateInput, idemKey string) (*domain.Feedback, bool, error)
	// List returns every record in insertion order.
	List(ctx context.Context) ([]domain.Feedback, error)
	// Stats returns the record count and latest update time (ETag input).
	Stats(ctx context.Context) (int64, *time.Time, error)
	// Get returns one record by identifier.
	Get(ctx context.Context, id string) (*domain.Feedback, error)
	// Update applies a partial update and returns the new state.
	Update(ctx context.Context, id string, in services.UpdateInput) (*domain.Feedback, error)
	// Delete removes one record.
	Delete(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for feedback records. It depends on an
// abstract service interface to keep transport concerns separate from
// business logic.
type Handlers struct {
	fbSvc FeedbackService
}

// New constructs and returns a Handlers instance bound to the given service.
func New(fbSvc FeedbackService) *Handlers {
	return &Handlers{fbSvc: fbSvc}
}
