// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities used across all endpoints. Success
// bodies share one envelope; failures are never written here but forwarded to
// the error middleware, which owns the error body.
//
// Conventions:
//   - respond() writes the success envelope and honors the given status.
//   - respondList() adds the record count under "results".
//   - fail() records the error on the context and aborts the chain; the
//     caller must return right after it.
//
// Example success response:
//
//	HTTP/1.1 201 Created
//	{
//	  "statusCode": 201,
//	  "status": "success",
//	  "message": "feedback created",
//	  "data": { "id": "…", "contactPerson": "Ann", … }
//	}
//
// Example error response (rendered by middleware.ErrorHandler):
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "status": "fail",
//	  "code": "not_found",
//	  "message": "feedback not found",
//	  "statusCode": 404,
//	  "isOperational": true
//	}
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/li-0406/foodApi/internal/domain"
)

// statusSuccess is the "status" value of every success envelope.
const statusSuccess = "success"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Status     string `json:"status" example:"success"`
	Message    string `json:"message" example:"feedback fetched"`
	Data       any    `json:"data"`
}

// FeedbackResponse documents a success envelope carrying one record.
type FeedbackResponse struct {
	StatusCode int             `json:"statusCode" example:"200"`
	Status     string          `json:"status" example:"success"`
	Message    string          `json:"message" example:"feedback fetched"`
	Data       domain.Feedback `json:"data"`
}

// ListFeedbacksResponse is the list envelope; Results equals len(Data).
type ListFeedbacksResponse struct {
	StatusCode int               `json:"statusCode" example:"200"`
	Status     string            `json:"status" example:"success"`
	Message    string            `json:"message" example:"feedbacks fetched"`
	Results    int               `json:"results" example:"1"`
	Data       []domain.Feedback `json:"data"`
}

// ErrorResponse is the error body written by the error middleware. It is
// declared here for the API documentation.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// "fail" for 4xx, "error" for 5xx
	Status string `json:"status" example:"fail"`
	// Stable, machine-readable code
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message       string `json:"message" example:"feedback not found"`
	StatusCode    int    `json:"statusCode" example:"404"`
	IsOperational bool   `json:"isOperational" example:"true"`
	// Present only when stack exposure is enabled
	Stack string `json:"stack,omitempty"`
}

// respond writes the success envelope with the given status.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, SuccessResponse{
		StatusCode: status,
		Status:     statusSuccess,
		Message:    message,
		Data:       data,
	})
}

// respondList writes the list envelope. A nil slice is written as [].
func respondList(c *gin.Context, status int, message string, items []domain.Feedback) {
	if items == nil {
		items = []domain.Feedback{}
	}
	c.JSON(status, ListFeedbacksResponse{
		StatusCode: status,
		Status:     statusSuccess,
		Message:    message,
		Results:    len(items),
		Data:       items,
	})
}

// fail forwards err to the error middleware and stops the handler chain.
// Service and store errors are translated first (see errors.go).
func fail(c *gin.Context, err error) {
	_ = c.Error(translate(err))
	c.Abort()
}
