// Feedback HTTP handlers.
//
// This file exposes REST endpoints for feedback records:
//   - POST   /feedbacks        (create, optional Idempotency-Key)
//   - GET    /feedbacks        (list, weak ETag support)
//   - GET    /feedbacks/{id}   (get)
//   - PATCH  /feedbacks/{id}   (partial update)
//   - DELETE /feedbacks/{id}   (delete)
//
// Handlers are transport-thin: they decode input, call the service, and
// either write a success envelope or forward a failure to the error
// middleware. Every failure path returns immediately after fail().
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/li-0406/foodApi/internal/http/middleware"
	"github.com/li-0406/foodApi/internal/services"
)

//
// DTOs
//

// CreateFeedbackRequest is the JSON payload for creating a record.
// contactPerson, email and feedback are required; source is not accepted.
type CreateFeedbackRequest struct {
	ContactPerson string `json:"contactPerson" example:"Ann Lee"`
	Phone         string `json:"phone" example:"0912-345-678"`
	Email         string `json:"email" example:"ann@example.com"`
	Feedback      string `json:"feedback" example:"The lunch set was great"`
}

// UpdateFeedbackRequest is the JSON payload for updating a record.
// contactPerson, email and feedback must always be supplied; phone and source
// are changed only when present.
type UpdateFeedbackRequest struct {
	ContactPerson string  `json:"contactPerson" example:"Ann Lee"`
	Phone         *string `json:"phone,omitempty" example:"0912-345-678"`
	Email         string  `json:"email" example:"ann@example.com"`
	Feedback      string  `json:"feedback" example:"Updated: the lunch set was great"`
	Source        *string `json:"source,omitempty" example:"Instagram"`
}

//
// Handlers
//

// CreateFeedback godoc
// @ID          createFeedback
// @Summary     Create feedback
// @Description Stores a new feedback record. Supplying Idempotency-Key makes retries return the originally created record.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Deduplicates retried creates"  example(3f0c9a4e-create-1)
// @Param       body             body    handlers.CreateFeedbackRequest  true  "Feedback payload"
//
// @Success     201  {object} handlers.FeedbackResponse
// @Header      201  {string} Idempotent-Replayed "true when an earlier result was replayed"
// @Failure     400  {object} handlers.ErrorResponse "Missing required fields or invalid Idempotency-Key"
// @Failure     409  {object} handlers.ErrorResponse "Idempotency-Key refers to a deleted record"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedbacks [post]
func (h *Handlers) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}
	key, _ := middleware.GetIdempotencyKey(c)

	fb, replayed, err := h.fbSvc.Create(c.Request.Context(), services.CreateInput{
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Feedback:      req.Feedback,
	}, key)
	if err != nil {
		fail(c, err)
		return
	}
	if replayed {
		c.Header(middleware.HeaderIdempotentReplayed, "true")
	}
	respond(c, http.StatusCreated, MsgCreated, fb)
}

// ListFeedbacks godoc
// @ID          listFeedbacks
// @Summary     List feedback
// @Description Returns every record in insertion order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Feedback
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"feedbacks:3:1700000000000000000\")
//
// @Success     200  {object} handlers.ListFeedbacksResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedbacks [get]
func (h *Handlers) ListFeedbacks(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if count, maxTS, err := h.fbSvc.Stats(ctx); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.UnixNano()
		}
		etag := fmt.Sprintf(`W/"feedbacks:%d:%d"`, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := h.fbSvc.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	respondList(c, http.StatusOK, MsgListed, items)
}

// GetFeedback godoc
// @ID          getFeedback
// @Summary     Get feedback
// @Description Returns one record. Unknown and malformed identifiers both yield 404.
// @Tags        Feedback
// @Produce     json
//
// @Param       id  path  string  true  "Record ID"  example(65f1c2a9b3e4d5f6a7b8c9d0)
//
// @Success     200  {object} handlers.FeedbackResponse
// @Failure     404  {object} handlers.ErrorResponse "Feedback not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedbacks/{id} [get]
func (h *Handlers) GetFeedback(c *gin.Context) {
	fb, err := h.fbSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, MsgFetched, fb)
}

// UpdateFeedback godoc
// @ID          updateFeedback
// @Summary     Update feedback
// @Description Partially updates a record. contactPerson, email and feedback are required; phone and source are optional.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Record ID"  example(65f1c2a9b3e4d5f6a7b8c9d0)
// @Param       body  body  handlers.UpdateFeedbackRequest  true  "Fields to update"
//
// @Success     200  {object} handlers.FeedbackResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing required fields or invalid values"
// @Failure     404  {object} handlers.ErrorResponse "Feedback not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedbacks/{id} [patch]
func (h *Handlers) UpdateFeedback(c *gin.Context) {
	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	fb, err := h.fbSvc.Update(c.Request.Context(), c.Param("id"), services.UpdateInput{
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Feedback:      req.Feedback,
		Phone:         req.Phone,
		Source:        req.Source,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, MsgUpdated, fb)
}

// DeleteFeedback godoc
// @ID          deleteFeedback
// @Summary     Delete feedback
// @Description Removes one record. The response carries data: null.
// @Tags        Feedback
// @Produce     json
//
// @Param       id  path  string  true  "Record ID"  example(65f1c2a9b3e4d5f6a7b8c9d0)
//
// @Success     200  {object} handlers.SuccessResponse
// @Failure     404  {object} handlers.ErrorResponse "Feedback not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedbacks/{id} [delete]
func (h *Handlers) DeleteFeedback(c *gin.Context) {
	if err := h.fbSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, MsgDeleted, nil)
}
