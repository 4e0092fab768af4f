package usecases

import (
	"context"

	"github.com/mpetrov/linkstash/internal/entities"
	"github.com/mpetrov/linkstash/internal/formatting"
	"github.com/mpetrov/linkstash/internal/logger"
)

// BookmarkDetails carries one bookmark shaped for display.
type BookmarkDetails struct {
	BookmarkID     string
	Name           string
	URL            string
	Host           string
	DateCreated    string
	DateCreatedISO string
}

func newBookmarkDetails(b entities.Bookmark) BookmarkDetails {
	return BookmarkDetails{
		BookmarkID:     b.ID,
		Name:           b.Name,
		URL:            b.URL,
		Host:           formatting.HostFromURL(b.URL),
		DateCreated:    formatting.DisplayDate(b.DateCreated),
		DateCreatedISO: formatting.ISODate(b.DateCreated),
	}
}

// BookmarkDetailsOutput is the presenter boundary for bookmark details.
type BookmarkDetailsOutput interface {
	Present(response BookmarkDetails)
	ViewModel() any
}

// BookmarkDetailsUseCase fetches one owned bookmark shaped for display.
type BookmarkDetailsUseCase struct {
	bookmarks BookmarkRepo
}

// NewBookmarkDetailsUseCase creates the use case over the given repository.
func NewBookmarkDetailsUseCase(bookmarks BookmarkRepo) *BookmarkDetailsUseCase {
	return &BookmarkDetailsUseCase{bookmarks: bookmarks}
}

// Execute fetches the bookmark and checks ownership. An absent bookmark
// never belongs to anyone, so "not found" and "not yours" both surface as
// ErrBookmarkNotFound and the caller cannot probe other users' bookmarks.
func (uc *BookmarkDetailsUseCase) Execute(ctx context.Context, userID, bookmarkID string, presenter BookmarkDetailsOutput) error {
	bookmark, err := uc.bookmarks.Get(ctx, bookmarkID)
	if err != nil {
		logger.Log.Errorw("failed to get bookmark", "bookmark_id", bookmarkID, "err", err)
		return ErrRepository
	}

	if !bookmark.BelongsTo(userID) {
		return ErrBookmarkNotFound
	}

	presenter.Present(newBookmarkDetails(bookmark))
	return nil
}

// BookmarkDetailsViewModel is the rendering-agnostic result handed to views.
type BookmarkDetailsViewModel struct {
	BookmarkID     string `json:"bookmark_id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	Host           string `json:"host"`
	DateCreated    string `json:"date_created"`
	DateCreatedISO string `json:"date_created_iso"`
}

func newBookmarkDetailsViewModel(d BookmarkDetails) BookmarkDetailsViewModel {
	return BookmarkDetailsViewModel{
		BookmarkID:     d.BookmarkID,
		Name:           d.Name,
		URL:            d.URL,
		Host:           d.Host,
		DateCreated:    d.DateCreated,
		DateCreatedISO: d.DateCreatedISO,
	}
}

// BookmarkDetailsPresenter builds the default view model.
type BookmarkDetailsPresenter struct {
	vm BookmarkDetailsViewModel
}

// NewBookmarkDetailsPresenter creates an empty presenter.
func NewBookmarkDetailsPresenter() *BookmarkDetailsPresenter {
	return &BookmarkDetailsPresenter{}
}

// Present translates the response into the view model.
func (p *BookmarkDetailsPresenter) Present(response BookmarkDetails) {
	p.vm = newBookmarkDetailsViewModel(response)
}

// ViewModel returns the view model for a View to render.
func (p *BookmarkDetailsPresenter) ViewModel() any {
	return p.vm
}

// Model returns the typed view model for deliveries that branch on it.
func (p *BookmarkDetailsPresenter) Model() BookmarkDetailsViewModel {
	return p.vm
}

// BookmarkDetailsController drives the pipeline for a key-value request.
type BookmarkDetailsController struct {
	UseCase   *BookmarkDetailsUseCase
	Presenter BookmarkDetailsOutput
	View      View
}

// Handle runs the pipeline for one request and returns the rendered view.
func (c *BookmarkDetailsController) Handle(ctx context.Context, request Request) (string, error) {
	if err := c.UseCase.Execute(ctx, request["user_id"], request["bookmark_id"], c.Presenter); err != nil {
		return "", err
	}
	return c.View.GenerateView(c.Presenter.ViewModel())
}
