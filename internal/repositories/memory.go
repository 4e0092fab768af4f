package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/mpetrov/linkstash/internal/entities"
)

// MemoryUserRepo is an in-memory user store. It is used as the test double
// and as the storage backend for local runs.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

// NewMemoryUserRepo creates an empty in-memory user repository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]entities.User)}
}

// Save stores the user. Saving an id that already exists is a no-op, so the
// first write wins; callers are expected to pre-check with Exists.
func (r *MemoryUserRepo) Save(ctx context.Context, user entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return nil
	}
	r.users[user.ID] = user
	return nil
}

// Get returns the user with the given id, or the absent sentinel.
func (r *MemoryUserRepo) Get(ctx context.Context, userID string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return entities.AbsentUser(), nil
	}
	return user, nil
}

// Exists reports whether a user with the given id is stored.
func (r *MemoryUserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userID]
	return ok, nil
}

// GetPasswordHash returns the stored hash for userID, or "" when absent.
func (r *MemoryUserRepo) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.PasswordHash, nil
}

// MemoryBookmarkRepo is an in-memory bookmark store.
type MemoryBookmarkRepo struct {
	mu        sync.RWMutex
	bookmarks map[string]entities.Bookmark
}

// NewMemoryBookmarkRepo creates an empty in-memory bookmark repository.
func NewMemoryBookmarkRepo() *MemoryBookmarkRepo {
	return &MemoryBookmarkRepo{bookmarks: make(map[string]entities.Bookmark)}
}

// Save upserts the bookmark by id.
func (r *MemoryBookmarkRepo) Save(ctx context.Context, bookmark entities.Bookmark) error {
	if bookmark.ID == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookmarks[bookmark.ID] = bookmark
	return nil
}

// Get returns the bookmark with the given id, or the absent sentinel.
func (r *MemoryBookmarkRepo) Get(ctx context.Context, bookmarkID string) (entities.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookmark, ok := r.bookmarks[bookmarkID]
	if !ok {
		return entities.AbsentBookmark(), nil
	}
	return bookmark, nil
}

// GetByUser returns up to limit bookmarks owned by userID, ordered by
// date_created ascending (oldest first).
func (r *MemoryBookmarkRepo) GetByUser(ctx context.Context, userID string, limit int) ([]entities.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Bookmark, 0)
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DateCreated.Before(out[j].DateCreated)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a bookmark. Deleting an unknown id is a no-op.
func (r *MemoryBookmarkRepo) Delete(ctx context.Context, bookmarkID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bookmarks, bookmarkID)
	return nil
}
