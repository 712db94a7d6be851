// Package lifecycle holds the validation rules a post must satisfy before
// any mutation commits. It is pure: no I/O, no store access, so handlers can
// also call it directly for early form feedback.
package lifecycle

import (
	"errors"
	"strings"

	"github.com/maheshrc27/postdeck/internal/models"
)

// ValidationError marks input the caller must correct before resubmitting.
// Store state is never changed when one is returned.
type ValidationError struct {
	reason string
}

func (e *ValidationError) Error() string {
	return e.reason
}

// NewValidationError wraps a free-form rejection reason in the validation
// class so callers can map it alongside the sentinels.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{reason: reason}
}

var (
	ErrEmptyContent    = &ValidationError{reason: "content must not be empty"}
	ErrMissingSchedule = &ValidationError{reason: "scheduled posts require a valid scheduled time"}
	ErrUnknownPlatform = &ValidationError{reason: "platform must be facebook or instagram"}
	ErrUnknownStatus   = &ValidationError{reason: "status must be draft, scheduled or published"}
)

// IsValidation reports whether err is any of the validation sentinels.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks a candidate post against the lifecycle rules.
//
// Past schedule times are accepted: nothing in this system executes a
// scheduled post, so rejecting them would only break edits of old drafts.
func Validate(p *models.Post) error {
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}

	switch p.Platform {
	case models.PlatformFacebook, models.PlatformInstagram:
	default:
		return ErrUnknownPlatform
	}

	switch p.Status {
	case models.PostStatusDraft, models.PostStatusScheduled, models.PostStatusPublished:
	default:
		return ErrUnknownStatus
	}

	if p.Status == models.PostStatusScheduled && p.ScheduledAt == nil {
		return ErrMissingSchedule
	}

	return nil
}
