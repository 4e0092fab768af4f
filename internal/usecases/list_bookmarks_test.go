package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mpetrov/linkstash/internal/entities"
	"github.com/mpetrov/linkstash/internal/repositories"
	"github.com/mpetrov/linkstash/internal/usecases"
)

func TestListBookmarks_UnknownUser(t *testing.T) {
	uc := usecases.NewListBookmarksUseCase(
		repositories.NewMemoryUserRepo(), repositories.NewMemoryBookmarkRepo())

	err := uc.Execute(context.Background(), "nobody", "recent", usecases.NewListBookmarksPresenter())
	assert.ErrorIs(t, err, usecases.ErrUserNotFound)
}

func TestListBookmarks_EmptyForKnownUser(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepo()
	newUserFixture(t, users, "hodor")

	uc := usecases.NewListBookmarksUseCase(users, repositories.NewMemoryBookmarkRepo())

	p := usecases.NewListBookmarksPresenter()
	assert.NoError(t, uc.Execute(ctx, "hodor", "recent", p))
	assert.NotNil(t, p.Model())
	assert.Empty(t, p.Model())
}

func TestListBookmarks_OldestFirstWithDisplayDates(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepo()
	bookmarks := repositories.NewMemoryBookmarkRepo()
	newUserFixture(t, users, "hodor")

	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	// saved newest first so ordering cannot come from insertion order
	for _, offset := range []int{2, 0, 1} {
		assert.NoError(t, bookmarks.Save(ctx, entities.Bookmark{
			ID:          fmt.Sprintf("id%d", offset),
			UserID:      "hodor",
			Name:        fmt.Sprintf("Site %d", offset),
			URL:         "http://example.com",
			DateCreated: base.AddDate(0, 0, offset),
		}))
	}

	uc := usecases.NewListBookmarksUseCase(users, bookmarks)

	p := usecases.NewListBookmarksPresenter()
	assert.NoError(t, uc.Execute(ctx, "hodor", "recent", p))

	vm := p.Model()
	assert.Len(t, vm, 3)
	assert.Equal(t, "id0", vm[0].BookmarkID)
	assert.Equal(t, "id1", vm[1].BookmarkID)
	assert.Equal(t, "id2", vm[2].BookmarkID)
	assert.Equal(t, "May 1, 2026", vm[0].DateCreated)
	assert.Equal(t, "example.com", vm[0].Host)
}

func TestListBookmarks_FilterBounds(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepo()
	bookmarks := repositories.NewMemoryBookmarkRepo()
	newUserFixture(t, users, "hodor")

	base := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		assert.NoError(t, bookmarks.Save(ctx, entities.Bookmark{
			ID:          fmt.Sprintf("id%02d", i),
			UserID:      "hodor",
			Name:        "Site",
			URL:         "http://example.com",
			DateCreated: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	uc := usecases.NewListBookmarksUseCase(users, bookmarks)

	tests := []struct {
		filterKey string
		wantLen   int
	}{
		{"recent", 25},
		{"everything", 30},
		{"bogus", 25},
		{"", 25},
	}

	for _, tt := range tests {
		t.Run("filter "+tt.filterKey, func(t *testing.T) {
			p := usecases.NewListBookmarksPresenter()
			assert.NoError(t, uc.Execute(ctx, "hodor", tt.filterKey, p))
			assert.Len(t, p.Model(), tt.wantLen)
		})
	}
}

func TestListBookmarks_OnlyOwnBookmarks(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepo()
	bookmarks := repositories.NewMemoryBookmarkRepo()
	newUserFixture(t, users, "hodor")
	newUserFixture(t, users, "bran")

	assert.NoError(t, bookmarks.Save(ctx, entities.Bookmark{
		ID: "mine", UserID: "hodor", Name: "Mine", URL: "http://mine.com", DateCreated: time.Now(),
	}))
	assert.NoError(t, bookmarks.Save(ctx, entities.Bookmark{
		ID: "theirs", UserID: "bran", Name: "Theirs", URL: "http://theirs.com", DateCreated: time.Now(),
	}))

	uc := usecases.NewListBookmarksUseCase(users, bookmarks)

	p := usecases.NewListBookmarksPresenter()
	assert.NoError(t, uc.Execute(ctx, "hodor", "recent", p))

	vm := p.Model()
	assert.Len(t, vm, 1)
	assert.Equal(t, "mine", vm[0].BookmarkID)
}

func TestListBookmarks_DropsForeignRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := usecases.NewMockUserRepo(ctrl)
	users.EXPECT().Exists(gomock.Any(), "hodor").Return(true, nil)

	// a misbehaving repository that leaks another user's row
	bookmarks := usecases.NewMockBookmarkRepo(ctrl)
	bookmarks.EXPECT().
		GetByUser(gomock.Any(), "hodor", gomock.Any()).
		Return([]entities.Bookmark{
			{ID: "mine", UserID: "hodor", Name: "Mine", URL: "http://mine.com", DateCreated: time.Now()},
			{ID: "leaked", UserID: "bran", Name: "Leaked", URL: "http://leak.com", DateCreated: time.Now()},
		}, nil)

	uc := usecases.NewListBookmarksUseCase(users, bookmarks)

	p := usecases.NewListBookmarksPresenter()
	assert.NoError(t, uc.Execute(context.Background(), "hodor", "recent", p))

	vm := p.Model()
	assert.Len(t, vm, 1)
	assert.Equal(t, "mine", vm[0].BookmarkID)
}

func TestListBookmarks_RepositoryFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := usecases.NewMockUserRepo(ctrl)
	users.EXPECT().Exists(gomock.Any(), "hodor").Return(true, nil)

	bookmarks := usecases.NewMockBookmarkRepo(ctrl)
	bookmarks.EXPECT().
		GetByUser(gomock.Any(), "hodor", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	uc := usecases.NewListBookmarksUseCase(users, bookmarks)
	err := uc.Execute(context.Background(), "hodor", "recent", usecases.NewListBookmarksPresenter())
	assert.ErrorIs(t, err, usecases.ErrRepository)
}
