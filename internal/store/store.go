// Package store defines the owner-partitioned storage contracts for posts,
// platforms and users, plus the error kinds every backend maps to.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/maheshrc27/postdeck/internal/models"
)

// ErrNotFound is returned when an id is absent from the resolved owner
// partition. It is surfaced to the caller unchanged; there is no retry.
var ErrNotFound = errors.New("not found")

// TransientError wraps a failure at the storage or network boundary. The
// caller decides whether to retry; no backoff is attempted here.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func Transient(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// PostStore is keyed storage of posts, partitioned by owner. A partition is
// lazily seeded with the shared demo dataset on first access, at most once
// per owner lifetime. Implementations persist what they are given; id and
// timestamp assignment is the service's job.
type PostStore interface {
	// List returns the owner's posts in insertion order.
	List(ctx context.Context, ownerID string) ([]*models.Post, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Post, error)
	Insert(ctx context.Context, ownerID string, post *models.Post) error
	// Update replaces the stored record with the same id, keeping its
	// position in the partition. ErrNotFound if the id is absent.
	Update(ctx context.Context, ownerID string, post *models.Post) error
	Delete(ctx context.Context, ownerID, id string) error
}

// PlatformStore holds the per-owner catalog of connectable platforms.
// The catalog is seeded alongside the post partition; only the connected
// flag and pages ever change.
type PlatformStore interface {
	List(ctx context.Context, ownerID string) ([]*models.Platform, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Platform, error)
	// SetConnected flips the connected flag. Disconnecting clears pages;
	// reconnecting restores the catalog pages for that platform.
	SetConnected(ctx context.Context, ownerID, id string, connected bool) (*models.Platform, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
}
