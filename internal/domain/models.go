// Package domain defines the persistence models for feedback records. The
// same types are returned by every store implementation (GORM/SQLite and
// MongoDB) and serialized as-is in API responses.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation marks a record that fails the store-layer schema check.
// Stores return errors wrapping it; the HTTP error middleware recognizes the
// category and rewrites it into a client-facing message.
var ErrValidation = errors.New("validation failed")

// Store sentinels shared by every store implementation.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate")
)

// Feedback is a single piece of feedback left by a visitor.
//
// Fields:
//   - ID: store-assigned identifier (UUID for SQLite, ObjectID hex for MongoDB).
//   - ContactPerson / Email / Feedback: required, never blank once persisted.
//   - Phone: optional contact number.
//   - Source: optional, how the visitor found the service.
//   - CreatedAt / UpdatedAt: maintained by the store.
type Feedback struct {
	ID            string    `json:"id"               gorm:"type:varchar(36);primaryKey"`
	ContactPerson string    `json:"contactPerson"    gorm:"type:varchar(255);not null"`
	Phone         string    `json:"phone,omitempty"  gorm:"type:varchar(64)"`
	Email         string    `json:"email"            gorm:"type:varchar(255);not null;index"`
	Feedback      string    `json:"feedback"         gorm:"type:text;not null"`
	Source        string    `json:"source,omitempty" gorm:"type:varchar(255)"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedbacks" }

// Validate reports whether the record satisfies the schema: contactPerson,
// email and feedback must be non-blank. The returned error wraps
// ErrValidation and names every failing field.
func (f *Feedback) Validate() error {
	var missing []string
	if strings.TrimSpace(f.ContactPerson) == "" {
		missing = append(missing, "contactPerson")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Feedback) == "" {
		missing = append(missing, "feedback")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// FeedbackPatch is a partial update. Nil fields are left untouched.
type FeedbackPatch struct {
	ContactPerson *string
	Phone         *string
	Email         *string
	Feedback      *string
	Source        *string
}

// Apply copies every non-nil field of p onto f.
func (p FeedbackPatch) Apply(f *Feedback) {
	if p.ContactPerson != nil {
		f.ContactPerson = *p.ContactPerson
	}
	if p.Phone != nil {
		f.Phone = *p.Phone
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Feedback != nil {
		f.Feedback = *p.Feedback
	}
	if p.Source != nil {
		f.Source = *p.Source
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p FeedbackPatch) IsEmpty() bool {
	return p.ContactPerson == nil && p.Phone == nil && p.Email == nil &&
		p.Feedback == nil && p.Source == nil
}
