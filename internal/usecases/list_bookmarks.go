package usecases

import (
	"context"
	"fmt"

	"github.com/mpetrov/linkstash/internal/logger"
)

// Result-count limits selectable by filter key.
var listFilters = map[string]int{
	"recent":     25,
	"everything": 1000,
}

// Unknown filter keys fall back to the recent bound.
const defaultFilterKey = "recent"

// ListBookmarksOutput is the presenter boundary for bookmark listing.
type ListBookmarksOutput interface {
	Present(response []BookmarkDetails)
	ViewModel() any
}

// ListBookmarksUseCase lists a user's bookmarks shaped for display.
type ListBookmarksUseCase struct {
	users     UserRepo
	bookmarks BookmarkRepo
}

// NewListBookmarksUseCase creates the use case over the given repositories.
func NewListBookmarksUseCase(users UserRepo, bookmarks BookmarkRepo) *ListBookmarksUseCase {
	return &ListBookmarksUseCase{users: users, bookmarks: bookmarks}
}

// Execute lists up to the filter's bound of bookmarks for an existing user,
// oldest first. Repository faults surface as ErrRepository with the cause
// logged. Ownership is re-checked per bookmark even though the repository
// call is already scoped to the user.
func (uc *ListBookmarksUseCase) Execute(ctx context.Context, userID, filterKey string, presenter ListBookmarksOutput) error {
	limit, ok := listFilters[filterKey]
	if !ok {
		limit = listFilters[defaultFilterKey]
	}

	exists, err := uc.users.Exists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return ErrRepository
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	bookmarks, err := uc.bookmarks.GetByUser(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "user_id", userID, "err", err)
		return ErrRepository
	}

	details := make([]BookmarkDetails, 0, len(bookmarks))
	for _, b := range bookmarks {
		if !b.BelongsTo(userID) {
			logger.Log.Warnw("repository returned foreign bookmark",
				"bookmark_id", b.ID, "user_id", userID)
			continue
		}
		details = append(details, newBookmarkDetails(b))
	}

	presenter.Present(details)
	return nil
}

// ListBookmarksPresenter builds the default view model, a slice of
// per-bookmark view models.
type ListBookmarksPresenter struct {
	vm []BookmarkDetailsViewModel
}

// NewListBookmarksPresenter creates an empty presenter.
func NewListBookmarksPresenter() *ListBookmarksPresenter {
	return &ListBookmarksPresenter{}
}

// Present translates the response into the view model.
func (p *ListBookmarksPresenter) Present(response []BookmarkDetails) {
	p.vm = make([]BookmarkDetailsViewModel, 0, len(response))
	for _, d := range response {
		p.vm = append(p.vm, newBookmarkDetailsViewModel(d))
	}
}

// ViewModel returns the view model for a View to render.
func (p *ListBookmarksPresenter) ViewModel() any {
	return p.vm
}

// Model returns the typed view model for deliveries that branch on it.
func (p *ListBookmarksPresenter) Model() []BookmarkDetailsViewModel {
	return p.vm
}

// ListBookmarksController drives the pipeline for a key-value request.
type ListBookmarksController struct {
	UseCase   *ListBookmarksUseCase
	Presenter ListBookmarksOutput
	View      View
}

// Handle runs the pipeline for one request and returns the rendered view.
func (c *ListBookmarksController) Handle(ctx context.Context, request Request) (string, error) {
	if err := c.UseCase.Execute(ctx, request["user_id"], request["filterkey"], c.Presenter); err != nil {
		return "", err
	}
	return c.View.GenerateView(c.Presenter.ViewModel())
}
