package usecases

import "errors"

var (
	// ErrUserNotFound is returned when an operation requires a user that
	// does not exist. It is raised before the operation is attempted.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookmarkNotFound covers both an absent bookmark and a bookmark
	// owned by someone else, so callers cannot probe for the existence of
	// other users' bookmarks.
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrInvalidOperation signals a structural precondition violation,
	// such as editing a bookmark or user that does not exist.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrRepository wraps an unexpected storage fault. The underlying
	// cause is logged, never exposed to the caller.
	ErrRepository = errors.New("data access error")
)
