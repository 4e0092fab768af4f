package usecases_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpetrov/linkstash/internal/repositories"
	"github.com/mpetrov/linkstash/internal/usecases"
	"github.com/mpetrov/linkstash/internal/views"
)

// Drives the full controller / use case / presenter / view pipeline with the
// in-memory backend, the way a non-HTTP delivery would.
func TestControllerPipeline(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepo()
	bookmarks := repositories.NewMemoryBookmarkRepo()

	register := &usecases.CreateUserController{
		UseCase:   usecases.NewCreateUserUseCase(users, nil),
		Presenter: usecases.NewCreateUserPresenter(),
		View:      views.NewJSONView(),
	}

	out, err := register.Handle(ctx, usecases.Request{"username": "hodor", "password": "winterfell"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"user_created": true, "username": "hodor", "errors": {}}`, out)

	create := &usecases.CreateBookmarkController{
		UseCase:   usecases.NewCreateBookmarkUseCase(users, bookmarks, nil),
		Presenter: usecases.NewCreateBookmarkPresenter(),
		View:      views.NewJSONView(),
	}

	out, err = create.Handle(ctx, usecases.Request{
		"user_id": "hodor",
		"name":    "Google",
		"url":     "http://google.com",
	})
	assert.NoError(t, err)

	var created struct {
		BookmarkID string `json:"bookmark_id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.NotEmpty(t, created.BookmarkID)

	list := &usecases.ListBookmarksController{
		UseCase:   usecases.NewListBookmarksUseCase(users, bookmarks),
		Presenter: usecases.NewListBookmarksPresenter(),
		View:      views.NewJSONView(),
	}

	out, err = list.Handle(ctx, usecases.Request{"user_id": "hodor", "filterkey": "recent"})
	assert.NoError(t, err)

	var listed []map[string]any
	assert.NoError(t, json.Unmarshal([]byte(out), &listed))
	assert.Len(t, listed, 1)
	assert.Equal(t, created.BookmarkID, listed[0]["bookmark_id"])
	assert.Equal(t, "google.com", listed[0]["host"])
}

func TestControllerPipeline_UseCaseErrorShortCircuitsView(t *testing.T) {
	details := &usecases.BookmarkDetailsController{
		UseCase:   usecases.NewBookmarkDetailsUseCase(repositories.NewMemoryBookmarkRepo()),
		Presenter: usecases.NewBookmarkDetailsPresenter(),
		View:      views.NewJSONView(),
	}

	out, err := details.Handle(context.Background(), usecases.Request{
		"user_id":     "hodor",
		"bookmark_id": "missing",
	})
	assert.ErrorIs(t, err, usecases.ErrBookmarkNotFound)
	assert.Empty(t, out)
}
