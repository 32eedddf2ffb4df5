// Package handlers translates service and store failures into the tagged
// errors rendered by the error middleware.
//
// Policy:
//   - client input (missing fields, malformed JSON) → 400
//   - unknown record, including malformed identifiers → 404
//   - Idempotency-Key claimed by a record that no longer exists → 409
//   - store schema validation → passed through; the middleware rewrites it
//     into a 400 with a fixed message
//   - everything else → 500, non-operational
package handlers

import (
	"errors"
	"net/http"

	"github.com/li-0406/foodApi/internal/apperr"
	"github.com/li-0406/foodApi/internal/domain"
	"github.com/li-0406/foodApi/internal/services"
)

// Success messages.
const (
	MsgCreated = "feedback created"
	MsgListed  = "feedbacks fetched"
	MsgFetched = "feedback fetched"
	MsgUpdated = "feedback updated"
	MsgDeleted = "feedback deleted"
)

// Client error messages.
const (
	MsgInvalidJSON  = "invalid JSON body"
	MsgBodyTooLarge = "request body too large"
)

func translate(err error) error {
	if _, ok := apperr.From(err); ok {
		return err
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, services.ErrMissingRequiredFields):
		return apperr.BadRequest(err.Error())
	case errors.Is(err, services.ErrFeedbackNotFound), errors.Is(err, domain.ErrNotFound):
		return apperr.NotFound(services.ErrFeedbackNotFound.Error())
	case errors.Is(err, services.ErrIdempotencyConflict):
		return apperr.New(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return err
	case errors.As(err, &tooLarge):
		return apperr.New(http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
	default:
		return apperr.Internal(err)
	}
}

// bindError classifies a request body decoding failure.
func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.New(http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
	}
	return apperr.BadRequest(MsgInvalidJSON)
}
