package entities

import "time"

// User is an account holder. ID is the username and acts as the primary key.
// The zero value is the absent sentinel returned by repositories when no
// such user exists.
type User struct {
	ID           string
	PasswordHash string
}

// AbsentUser returns the sentinel representing "no such user".
func AbsentUser() User {
	return User{}
}

// Exists reports whether the user refers to a stored account.
func (u User) Exists() bool {
	return u.ID != ""
}

// Bookmark is a saved link owned by a single user.
type Bookmark struct {
	ID          string
	UserID      string
	Name        string
	URL         string
	DateCreated time.Time
}

// AbsentBookmark returns the sentinel representing "no such bookmark".
func AbsentBookmark() Bookmark {
	return Bookmark{}
}

// Exists reports whether the bookmark refers to a stored record.
func (b Bookmark) Exists() bool {
	return b.ID != ""
}

// BelongsTo reports whether the bookmark is owned by userID. It is the sole
// authorization check for read and edit operations, and is always false for
// the absent sentinel and for an empty owner id.
func (b Bookmark) BelongsTo(userID string) bool {
	return b.ID != "" && userID != "" && b.UserID == userID
}
