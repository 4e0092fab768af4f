package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mpetrov/linkstash/internal/entities"
	"github.com/mpetrov/linkstash/internal/logger"
)

// Redis key layout. Users and bookmarks are stored as JSON documents under
// prefixed keys; a per-user set indexes bookmark ids for GetByUser.
const (
	userKeyPrefix     = "linkstash:user:"
	bookmarkKeyPrefix = "linkstash:bookmark:"
)

func userKey(userID string) string {
	return userKeyPrefix + userID
}

func bookmarkKey(bookmarkID string) string {
	return bookmarkKeyPrefix + bookmarkID
}

func userBookmarksKey(userID string) string {
	return userKeyPrefix + userID + ":bookmarks"
}

type userDocument struct {
	ID           string `json:"id"`
	PasswordHash string `json:"password_hash"`
}

type bookmarkDocument struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	DateCreated time.Time `json:"date_created"`
}

// RedisUserRepo stores users as JSON documents in Redis.
type RedisUserRepo struct {
	client *redis.Client
}

// NewRedisUserRepo creates a user repository backed by the given client.
func NewRedisUserRepo(client *redis.Client) *RedisUserRepo {
	return &RedisUserRepo{client: client}
}

// Save stores the user unless a document with that id already exists.
func (r *RedisUserRepo) Save(ctx context.Context, user entities.User) error {
	doc := userDocument{ID: user.ID, PasswordHash: user.PasswordHash}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// SetNX keeps the first write; saving an existing id is a no-op.
	if err := r.client.SetNX(ctx, userKey(user.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Get returns the user with the given id, or the absent sentinel when the
// key does not exist.
func (r *RedisUserRepo) Get(ctx context.Context, userID string) (entities.User, error) {
	data, err := r.client.Get(ctx, userKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.AbsentUser(), nil
		}
		return entities.AbsentUser(), fmt.Errorf("failed to get user: %w", err)
	}

	var doc userDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.AbsentUser(), fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return entities.User{ID: doc.ID, PasswordHash: doc.PasswordHash}, nil
}

// Exists reports whether a user document is stored under the given id.
func (r *RedisUserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	n, err := r.client.Exists(ctx, userKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return n > 0, nil
}

// GetPasswordHash returns the stored hash for userID, or "" when absent.
func (r *RedisUserRepo) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.PasswordHash, nil
}

// RedisBookmarkRepo stores bookmarks as JSON documents in Redis with a
// per-user index set.
type RedisBookmarkRepo struct {
	client *redis.Client
}

// NewRedisBookmarkRepo creates a bookmark repository backed by the given client.
func NewRedisBookmarkRepo(client *redis.Client) *RedisBookmarkRepo {
	return &RedisBookmarkRepo{client: client}
}

// Save upserts the bookmark document and indexes it under its owner.
func (r *RedisBookmarkRepo) Save(ctx context.Context, bookmark entities.Bookmark) error {
	if bookmark.ID == "" {
		return nil
	}

	doc := bookmarkDocument{
		ID:          bookmark.ID,
		UserID:      bookmark.UserID,
		Name:        bookmark.Name,
		URL:         bookmark.URL,
		DateCreated: bookmark.DateCreated,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, bookmarkKey(bookmark.ID), data, 0)
	pipe.SAdd(ctx, userBookmarksKey(bookmark.UserID), bookmark.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	return nil
}

// Get returns the bookmark with the given id, or the absent sentinel when
// the key does not exist.
func (r *RedisBookmarkRepo) Get(ctx context.Context, bookmarkID string) (entities.Bookmark, error) {
	data, err := r.client.Get(ctx, bookmarkKey(bookmarkID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.AbsentBookmark(), nil
		}
		return entities.AbsentBookmark(), fmt.Errorf("failed to get bookmark: %w", err)
	}

	var doc bookmarkDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.AbsentBookmark(), fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}
	return entities.Bookmark{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Name:        doc.Name,
		URL:         doc.URL,
		DateCreated: doc.DateCreated,
	}, nil
}

// GetByUser returns up to limit bookmarks owned by userID, ordered by
// date_created ascending (oldest first).
func (r *RedisBookmarkRepo) GetByUser(ctx context.Context, userID string, limit int) ([]entities.Bookmark, error) {
	ids, err := r.client.SMembers(ctx, userBookmarksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark ids: %w", err)
	}

	bookmarks := make([]entities.Bookmark, 0, len(ids))
	for _, id := range ids {
		bookmark, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !bookmark.Exists() {
			// stale index entry
			logger.Log.Warnw("bookmark indexed but missing", "bookmark_id", id, "user_id", userID)
			continue
		}
		bookmarks = append(bookmarks, bookmark)
	}

	sort.Slice(bookmarks, func(i, j int) bool {
		return bookmarks[i].DateCreated.Before(bookmarks[j].DateCreated)
	})

	if limit > 0 && len(bookmarks) > limit {
		bookmarks = bookmarks[:limit]
	}
	return bookmarks, nil
}

// Delete removes the bookmark document and its index entry.
func (r *RedisBookmarkRepo) Delete(ctx context.Context, bookmarkID string) error {
	bookmark, err := r.Get(ctx, bookmarkID)
	if err != nil {
		return err
	}
	if !bookmark.Exists() {
		return nil
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, bookmarkKey(bookmarkID))
	pipe.SRem(ctx, userBookmarksKey(bookmark.UserID), bookmarkID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}
