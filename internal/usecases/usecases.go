// Package usecases implements the application operations: creating and
// authenticating users, and creating, editing and listing bookmarks. Each
// use case orchestrates validation, repository access and response
// construction, then hands its response to a presenter. Controllers adapt
// plain key-value requests into use case inputs and drive the
// use case / presenter / view pipeline, so the same operation can serve
// HTTP, CLI and test deliveries unchanged.
package usecases

import (
	"context"

	"github.com/mpetrov/linkstash/internal/entities"
)

// UserRepo is the storage capability the use cases need for users.
type UserRepo interface {
	// Save stores the user. Saving an id that already exists must be a
	// no-op, not an error; callers pre-check with Exists.
	Save(ctx context.Context, user entities.User) error
	// Get returns the user or the absent sentinel.
	Get(ctx context.Context, userID string) (entities.User, error)
	Exists(ctx context.Context, userID string) (bool, error)
	// GetPasswordHash returns "" for an absent user.
	GetPasswordHash(ctx context.Context, userID string) (string, error)
}

// BookmarkRepo is the storage capability the use cases need for bookmarks.
type BookmarkRepo interface {
	// Save upserts the bookmark by id.
	Save(ctx context.Context, bookmark entities.Bookmark) error
	// Get returns the bookmark or the absent sentinel.
	Get(ctx context.Context, bookmarkID string) (entities.Bookmark, error)
	// GetByUser returns up to limit bookmarks owned by userID, ordered by
	// date_created ascending.
	GetByUser(ctx context.Context, userID string, limit int) ([]entities.Bookmark, error)
}

// Request is the delivery-agnostic key-value request a controller adapts
// into use case inputs.
type Request map[string]string

// View renders a presenter's view model into a final artifact: a JSON
// string, a templated string, a console line. The use case layer does not
// prescribe the format.
type View interface {
	GenerateView(viewModel any) (string, error)
}
