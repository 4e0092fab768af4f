package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mpetrov/linkstash/internal/entities"
)

func TestMemoryUserRepo_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	assert.NoError(t, repo.Save(ctx, entities.User{ID: "hodor", PasswordHash: "hash1"}))
	// second save with the same id must not replace the first
	assert.NoError(t, repo.Save(ctx, entities.User{ID: "hodor", PasswordHash: "hash2"}))

	hash, err := repo.GetPasswordHash(ctx, "hodor")
	assert.NoError(t, err)
	assert.Equal(t, "hash1", hash)
}

func TestMemoryUserRepo_GetAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	user, err := repo.Get(ctx, "nobody")
	assert.NoError(t, err)
	assert.False(t, user.Exists())

	exists, err := repo.Exists(ctx, "nobody")
	assert.NoError(t, err)
	assert.False(t, exists)

	hash, err := repo.GetPasswordHash(ctx, "nobody")
	assert.NoError(t, err)
	assert.Empty(t, hash)
}

func TestMemoryBookmarkRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	created := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	b := entities.Bookmark{
		ID:          "id1",
		UserID:      "hodor",
		Name:        "Google",
		URL:         "http://google.com",
		DateCreated: created,
	}
	assert.NoError(t, repo.Save(ctx, b))

	got, err := repo.Get(ctx, "id1")
	assert.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestMemoryBookmarkRepo_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	b := entities.Bookmark{ID: "id1", UserID: "hodor", Name: "Google", URL: "http://google.com"}
	assert.NoError(t, repo.Save(ctx, b))

	b.Name = "Google Search"
	b.URL = "https://google.com/search"
	assert.NoError(t, repo.Save(ctx, b))

	got, err := repo.Get(ctx, "id1")
	assert.NoError(t, err)
	assert.Equal(t, "Google Search", got.Name)
	assert.Equal(t, "https://google.com/search", got.URL)

	all, err := repo.GetByUser(ctx, "hodor", 100)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryBookmarkRepo_SaveIgnoresEmptyID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	assert.NoError(t, repo.Save(ctx, entities.Bookmark{UserID: "hodor", Name: "x"}))

	all, err := repo.GetByUser(ctx, "hodor", 100)
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryBookmarkRepo_GetByUserOrdersOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	offsets := map[string]int{"oldest": 0, "middle": 1, "newest": 2}
	// insertion order deliberately differs from creation order
	for _, id := range []string{"newest", "oldest", "middle"} {
		assert.NoError(t, repo.Save(ctx, entities.Bookmark{
			ID:          id,
			UserID:      "hodor",
			Name:        id,
			URL:         "http://example.com/" + id,
			DateCreated: base.Add(time.Duration(offsets[id]) * time.Hour),
		}))
	}

	all, err := repo.GetByUser(ctx, "hodor", 100)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "oldest", all[0].ID)
	assert.Equal(t, "middle", all[1].ID)
	assert.Equal(t, "newest", all[2].ID)
}

func TestMemoryBookmarkRepo_GetByUserAppliesLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.Save(ctx, entities.Bookmark{
			ID:          string(rune('a' + i)),
			UserID:      "hodor",
			Name:        "b",
			URL:         "http://example.com",
			DateCreated: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := repo.GetByUser(ctx, "hodor", 2)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}

func TestMemoryBookmarkRepo_GetByUserScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	assert.NoError(t, repo.Save(ctx, entities.Bookmark{ID: "id1", UserID: "hodor", Name: "a", URL: "http://a.com"}))
	assert.NoError(t, repo.Save(ctx, entities.Bookmark{ID: "id2", UserID: "bran", Name: "b", URL: "http://b.com"}))

	all, err := repo.GetByUser(ctx, "hodor", 100)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "id1", all[0].ID)
}

func TestMemoryBookmarkRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookmarkRepo()

	assert.NoError(t, repo.Save(ctx, entities.Bookmark{ID: "id1", UserID: "hodor", Name: "a", URL: "http://a.com"}))
	assert.NoError(t, repo.Delete(ctx, "id1"))
	assert.NoError(t, repo.Delete(ctx, "id1"))

	got, err := repo.Get(ctx, "id1")
	assert.NoError(t, err)
	assert.False(t, got.Exists())
}
