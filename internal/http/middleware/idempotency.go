// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotency support for unsafe HTTP methods (POST
// /feedbacks). It validates an Idempotency-Key request header, optionally
// performs a lookup to detect previously completed requests, and annotates
// the request context so downstream handlers can:
//   - read the validated key (GetIdempotencyKey)
//   - detect replayed requests (IsReplay)
//
// Design goals:
//   - Keep transport concerns (validation, context stashing) in middleware.
//   - Decouple persistence via a narrow IdempotencyLookup function type.
//   - Remain framework-agnostic beyond Gin’s context.
package middleware

import (
	"context"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/li-0406/foodApi/internal/apperr"
)

// HeaderIdempotencyKey is the canonical request header that clients use to
// convey an idempotency key for unsafe operations (e.g., POST).
//
// The value is expected to be stable for a given semantic operation so that
// retries (network, client, or server initiated) can be safely deduplicated.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotentReplayed is set to "true" on responses that replay a
// previously created record instead of creating a new one.
const HeaderIdempotentReplayed = "Idempotent-Replayed"

// Context keys used internally to stash idempotency state.
// These keys are intentionally unexported and referenced via accessor helpers.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay" // bool: true when a stored replay exists
)

// defaultKeyPattern is a conservative RFC7230-like token pattern.
var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// GetIdempotencyKey returns the validated idempotency key stored in the Gin
// context by IdempotencyValidator. The second return value indicates presence.
//
// Handlers should prefer this function over reading the header directly.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the middleware detected that this request would
// replay a previously completed operation.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions configures header validation behavior for
// IdempotencyValidator. TTL enforcement belongs to the lookup function.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters. If nil, ^[A-Za-z0-9._~\-:]+$ is used.
	Pattern *regexp.Regexp
}

// IdempotencyLookup answers whether a still-valid record exists for key at
// the given time. Return an error only for lookup failures; they are logged
// and do not block normal processing.
type IdempotencyLookup func(ctx context.Context, key string, now time.Time) (exists bool, err error)

// IdempotencyValidator validates the Idempotency-Key header (if present),
// stashes it in the request context, and optionally checks for a prior
// completed request via the supplied lookup.
//
// Behavior:
//   - If header is absent: the middleware is a no-op.
//   - If header fails validation: forwards a 400 to the error middleware and
//     aborts the chain.
//   - If lookup indicates a replay: sets the replay flag.
//
// This middleware does not itself return a cached payload; handlers remain in
// control of how to serve replays.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			_ = c.Error(apperr.BadRequest("invalid Idempotency-Key"))
			c.Abort()
			return
		}

		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			exists, err := lookup(c.Request.Context(), key, time.Now().UTC())
			if err != nil {
				LoggerFrom(c).Warn().Err(err).Msg("idempotency lookup failed")
			}
			if exists {
				c.Set(ctxKeyIdemReplay, true)
			}
		}

		c.Next()
	}
}
