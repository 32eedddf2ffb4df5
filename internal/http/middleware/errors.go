// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements ErrorHandler, the single place where failures forwarded
// by handlers and middleware (via c.Error) are turned into HTTP responses.
//
// Classification of the last forwarded error:
//   - a tagged *apperr.Error is rendered as is;
//   - an error wrapping domain.ErrValidation (store schema check) becomes an
//     operational 400 with a fixed client message;
//   - anything else is a non-operational 500.
//
// Response body:
//
//	{
//	  "request_id":    "<uuid>",
//	  "status":        "fail" | "error",
//	  "code":          "<kind>",
//	  "message":       "<text>",
//	  "statusCode":    <int>,
//	  "isOperational": <bool>,
//	  "stack":         "<trace>"   // only when stack exposure is enabled
//	}
//
// "fail" is used for 4xx and "error" for 5xx.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/li-0406/foodApi/internal/apperr"
	"github.com/li-0406/foodApi/internal/domain"
)

// internalMessage replaces non-operational messages when stacks are hidden.
const internalMessage = "internal server error"

// ErrorHandler renders the last error recorded on the Gin context once the
// rest of the chain has run. When exposeStack is false, stack traces are
// omitted and non-operational messages are replaced by a generic one.
//
// Nothing is written when the chain recorded no error or when a response has
// already been written.
func ErrorHandler(exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		ae := Classify(last.Err)

		if ae.StatusCode >= http.StatusInternalServerError {
			LoggerFrom(c).Error().
				Err(last.Err).
				Str("code", string(ae.Kind)).
				Int("status", ae.StatusCode).
				Msg("request failed")
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(ae.StatusCode, errorBody(c, ae, exposeStack))
	}
}

// Classify maps any error onto the tagged application error used for the
// response.
func Classify(err error) *apperr.Error {
	if ae, ok := apperr.From(err); ok {
		return ae
	}
	if errors.Is(err, domain.ErrValidation) {
		return apperr.Validation(err)
	}
	return apperr.Internal(err)
}

func errorBody(c *gin.Context, ae *apperr.Error, exposeStack bool) gin.H {
	status := "fail"
	if ae.StatusCode >= http.StatusInternalServerError {
		status = "error"
	}
	msg := ae.Message
	if !ae.Operational && !exposeStack {
		msg = internalMessage
	}

	body := gin.H{
		"request_id":    c.Writer.Header().Get(requestIDHeader),
		"status":        status,
		"code":          string(ae.Kind),
		"message":       msg,
		"statusCode":    ae.StatusCode,
		"isOperational": ae.Operational,
	}
	if exposeStack {
		body["stack"] = ae.Stack()
	}
	return body
}
