// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, a structured HTTP logger that
// automatically scrubs obvious PII from request metadata before emitting logs.
//
// Design goals:
//   - Default-safe: never logs request or response bodies
//   - Redacts common identifiers (emails, phone numbers, record IDs)
//   - Masks sensitive headers (Authorization, Cookie, Set-Cookie, plus custom)
//   - Produces structured JSON logs via zerolog
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
//	    MaskHeaders: []string{"X-Api-Key"},
//	}))
//
// Feedback records carry emails and phone numbers, so paths such as
// /feedbacks/:id are logged by route template and query strings are scrubbed.
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions configures additional scrub behavior for RedactingLogger.
//
// MaskHeaders specifies extra HTTP header names whose values will be fully
// replaced with "[REDACTED]". Matching is case-insensitive and merged with
// built-in sensitive headers ("Authorization", "Cookie", "Set-Cookie").
type RedactOptions struct {
	MaskHeaders []string
}

var (
	uuidRE = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	// MongoDB ObjectIDs in hex form.
	objectIDRE = regexp.MustCompile(`(?i)\b[0-9a-f]{24}\b`)
	emailRE    = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits-only phone pattern (prevents matching hex characters from IDs).
	// Examples matched: "+1 212-555-1212", "212 555 1212", "(212) 555-1212".
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// redact scrubs identifiers, emails and phone numbers from s.
//
// Order matters: IDs → email → phone (phone is the loosest and would
// otherwise match digit runs inside IDs).
func redact(s string) string {
	if s == "" {
		return s
	}
	out := uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	out = objectIDRE.ReplaceAllString(out, "[REDACTED:id]")
	out = emailRE.ReplaceAllString(out, "[REDACTED:email]")
	out = phoneRE.ReplaceAllString(out, "[REDACTED:phone]")
	return out
}

// RedactingLogger returns a Gin middleware that logs HTTP requests and
// responses with sensitive values scrubbed.
//
// Behavior:
//   - Attaches a request-scoped logger (request_id, method, route) to the
//     context for LoggerFrom.
//   - Logs method, path, query string, status, response size, latency,
//     request headers and recorded errors (with scrubbing applied).
//   - Fully masks built-in sensitive headers and any additional headers
//     provided in opts.MaskHeaders.
//   - Logs at INFO level by default, WARN for 4xx, and ERROR for 5xx.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	// Build header mask set (case-insensitive).
	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = redact(c.Request.URL.Path)
		}
		safeQuery := redact(truncate(c.Request.URL.RawQuery, maxQueryLogLength))

		// Scrub headers.
		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := maskHeaders[strings.ToLower(k)]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = redact(strings.Join(vv, ", "))
		}

		reqID := c.Writer.Header().Get(requestIDHeader)
		if reqID == "" {
			reqID = c.GetHeader(requestIDHeader)
		}
		l := log.With().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Logger()
		c.Set(loggerKey, &l)

		c.Next()

		status := c.Writer.Status()

		// Severity based on status.
		ev := l.Info()
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", redact(c.Errors.String()))
		}
		if IsReplay(c) {
			ev = ev.Bool("idempotent_replay", true)
		}

		ev.
			Str("query", safeQuery).
			Str("remote_ip", c.ClientIP()).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
