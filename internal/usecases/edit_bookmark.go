package usecases

import (
	"context"
	"fmt"

	"github.com/mpetrov/linkstash/internal/audit"
	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/validation"
)

var editBookmarkSchema = map[string]validation.Schema{
	"name": {Required: true, MaxLength: bookmarkNameMaxLength},
	"url": {
		Required: true,
		Custom: []validation.Rule{
			{Check: validation.IsURL, Message: "Not a valid URL"},
		},
	},
}

// EditBookmarkResponse carries the field error map of a failed edit; an
// empty map means the edit was applied.
type EditBookmarkResponse struct {
	Errors map[string][]string
}

// EditBookmarkOutput is the presenter boundary for bookmark editing.
type EditBookmarkOutput interface {
	Present(response EditBookmarkResponse)
	ViewModel() any
}

// EditBookmarkUseCase updates the name and url of an owned bookmark.
type EditBookmarkUseCase struct {
	users     UserRepo
	bookmarks BookmarkRepo
	events    *audit.Publisher
}

// NewEditBookmarkUseCase creates the use case over the given repositories.
func NewEditBookmarkUseCase(users UserRepo, bookmarks BookmarkRepo, events *audit.Publisher) *EditBookmarkUseCase {
	return &EditBookmarkUseCase{users: users, bookmarks: bookmarks, events: events}
}

// Execute edits a bookmark. A missing bookmark or user is a structural
// ErrInvalidOperation failure. An ownership mismatch is an expected business
// outcome and is reported through the presenter as a Forbidden error field,
// with no write. Validation uses the same name/url rules as creation. On
// success the bookmark is mutated in place and re-saved as a full upsert.
func (uc *EditBookmarkUseCase) Execute(ctx context.Context, userID, bookmarkID, name, url string, presenter EditBookmarkOutput) error {
	bookmark, err := uc.bookmarks.Get(ctx, bookmarkID)
	if err != nil {
		logger.Log.Errorw("failed to get bookmark", "bookmark_id", bookmarkID, "err", err)
		return ErrRepository
	}
	if !bookmark.Exists() {
		return fmt.Errorf("%w: no such bookmark", ErrInvalidOperation)
	}

	user, err := uc.users.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return ErrRepository
	}
	if !user.Exists() {
		return fmt.Errorf("%w: no such user", ErrInvalidOperation)
	}

	response := EditBookmarkResponse{Errors: map[string][]string{}}

	if !bookmark.BelongsTo(userID) {
		logger.Log.Warnw("bookmark does not belong to user",
			"bookmark_id", bookmarkID, "user_id", userID)
		response.Errors = map[string][]string{"error": {"Forbidden"}}
		presenter.Present(response)
		return nil
	}

	request := map[string]string{"name": name, "url": url}
	ok, errs := validation.Validate(request, editBookmarkSchema)
	if !ok {
		response.Errors = errs
		presenter.Present(response)
		return nil
	}

	bookmark.Name = name
	bookmark.URL = url
	if err := uc.bookmarks.Save(ctx, bookmark); err != nil {
		logger.Log.Errorw("failed to save bookmark", "bookmark_id", bookmarkID, "err", err)
		return ErrRepository
	}

	uc.events.Publish(ctx, audit.KindBookmarkEdited, userID, bookmarkID)

	presenter.Present(response)
	return nil
}

// EditBookmarkViewModel is the rendering-agnostic result handed to views.
type EditBookmarkViewModel struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
}

// EditBookmarkPresenter builds the default view model.
type EditBookmarkPresenter struct {
	vm EditBookmarkViewModel
}

// NewEditBookmarkPresenter creates an empty presenter.
func NewEditBookmarkPresenter() *EditBookmarkPresenter {
	return &EditBookmarkPresenter{}
}

// Present translates the response into the view model. Success is derived
// from the absence of errors.
func (p *EditBookmarkPresenter) Present(response EditBookmarkResponse) {
	p.vm = EditBookmarkViewModel{
		Success: len(response.Errors) == 0,
		Errors:  response.Errors,
	}
}

// ViewModel returns the view model for a View to render.
func (p *EditBookmarkPresenter) ViewModel() any {
	return p.vm
}

// Model returns the typed view model for deliveries that branch on it.
func (p *EditBookmarkPresenter) Model() EditBookmarkViewModel {
	return p.vm
}

// EditBookmarkController drives the pipeline for a key-value request.
type EditBookmarkController struct {
	UseCase   *EditBookmarkUseCase
	Presenter EditBookmarkOutput
	View      View
}

// Handle runs the pipeline for one request and returns the rendered view.
func (c *EditBookmarkController) Handle(ctx context.Context, request Request) (string, error) {
	err := c.UseCase.Execute(ctx,
		request["user_id"], request["bookmark_id"], request["name"], request["url"], c.Presenter)
	if err != nil {
		return "", err
	}
	return c.View.GenerateView(c.Presenter.ViewModel())
}
