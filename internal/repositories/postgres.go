package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mpetrov/linkstash/internal/entities"
	"github.com/mpetrov/linkstash/internal/logger"
)

type userRow struct {
	UserID       string `db:"user_id"`
	PasswordHash string `db:"password_hash"`
}

type bookmarkRow struct {
	BookmarkID  string       `db:"bookmark_id"`
	UserID      string       `db:"user_id"`
	Name        string       `db:"name"`
	URL         string       `db:"url"`
	DateCreated sql.NullTime `db:"date_created"`
}

// PostgresUserRepo stores users in the users table.
type PostgresUserRepo struct {
	db *sqlx.DB
}

// NewPostgresUserRepo creates a user repository over the given connection pool.
func NewPostgresUserRepo(db *sqlx.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// Save stores the user. The conflict target makes saving an existing id a
// no-op rather than an error, so the first stored hash is never overwritten.
func (r *PostgresUserRepo) Save(ctx context.Context, user entities.User) error {
	const query = `
		INSERT INTO users (user_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.PasswordHash)
	if err != nil {
		logger.Log.Errorw("failed to save user", "user_id", user.ID, "err", err)
	}
	return err
}

// Get returns the user with the given id, or the absent sentinel.
func (r *PostgresUserRepo) Get(ctx context.Context, userID string) (entities.User, error) {
	const query = `SELECT user_id, password_hash FROM users WHERE user_id = $1`

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.AbsentUser(), nil
		}
		return entities.AbsentUser(), fmt.Errorf("failed to get user: %w", err)
	}
	return entities.User{ID: row.UserID, PasswordHash: row.PasswordHash}, nil
}

// Exists reports whether a row with the given id is stored.
func (r *PostgresUserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

// GetPasswordHash returns the stored hash for userID, or "" when absent.
func (r *PostgresUserRepo) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.PasswordHash, nil
}

// PostgresBookmarkRepo stores bookmarks in the bookmarks table.
type PostgresBookmarkRepo struct {
	db *sqlx.DB
}

// NewPostgresBookmarkRepo creates a bookmark repository over the given pool.
func NewPostgresBookmarkRepo(db *sqlx.DB) *PostgresBookmarkRepo {
	return &PostgresBookmarkRepo{db: db}
}

// Save upserts the bookmark by id. Only name and url are updated on
// conflict; owner and creation date are immutable after insert.
func (r *PostgresBookmarkRepo) Save(ctx context.Context, bookmark entities.Bookmark) error {
	if bookmark.ID == "" {
		return nil
	}

	const query = `
		INSERT INTO bookmarks (bookmark_id, user_id, name, url, date_created)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (bookmark_id) DO UPDATE
		SET name = EXCLUDED.name,
		    url = EXCLUDED.url
	`
	_, err := r.db.ExecContext(ctx, query,
		bookmark.ID, bookmark.UserID, bookmark.Name, bookmark.URL, bookmark.DateCreated)
	if err != nil {
		logger.Log.Errorw("failed to save bookmark", "bookmark_id", bookmark.ID, "err", err)
	}
	return err
}

// Get returns the bookmark with the given id, or the absent sentinel.
func (r *PostgresBookmarkRepo) Get(ctx context.Context, bookmarkID string) (entities.Bookmark, error) {
	const query = `
		SELECT bookmark_id, user_id, name, url, date_created
		FROM bookmarks
		WHERE bookmark_id = $1
	`

	var row bookmarkRow
	if err := r.db.GetContext(ctx, &row, query, bookmarkID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.AbsentBookmark(), nil
		}
		return entities.AbsentBookmark(), fmt.Errorf("failed to get bookmark: %w", err)
	}
	return rowToBookmark(row), nil
}

// GetByUser returns up to limit bookmarks owned by userID, ordered by
// date_created ascending (oldest first).
func (r *PostgresBookmarkRepo) GetByUser(ctx context.Context, userID string, limit int) ([]entities.Bookmark, error) {
	const query = `
		SELECT bookmark_id, user_id, name, url, date_created
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY date_created ASC
		LIMIT $2
	`

	var rows []bookmarkRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]entities.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, rowToBookmark(row))
	}
	return bookmarks, nil
}

// Delete removes a bookmark row. Deleting an unknown id is a no-op.
func (r *PostgresBookmarkRepo) Delete(ctx context.Context, bookmarkID string) error {
	const query = `DELETE FROM bookmarks WHERE bookmark_id = $1`

	if _, err := r.db.ExecContext(ctx, query, bookmarkID); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

func rowToBookmark(row bookmarkRow) entities.Bookmark {
	b := entities.Bookmark{
		ID:     row.BookmarkID,
		UserID: row.UserID,
		Name:   row.Name,
		URL:    row.URL,
	}
	if row.DateCreated.Valid {
		b.DateCreated = row.DateCreated.Time
	}
	return b
}
