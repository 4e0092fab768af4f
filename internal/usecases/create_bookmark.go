package usecases

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrov/linkstash/internal/audit"
	"github.com/mpetrov/linkstash/internal/entities"
	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/validation"
)

const (
	bookmarkNameMaxLength = 400
	slugMaxLength         = 200
)

var createBookmarkSchema = map[string]validation.Schema{
	"user_id": {Required: true},
	"name":    {Required: true, MaxLength: bookmarkNameMaxLength},
	"url": {
		Required: true,
		Custom: []validation.Rule{
			{Check: validation.IsURL, Message: "Not a valid URL"},
		},
	},
}

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[-\s]+`)
)

// NewSlugID derives a URL-safe bookmark id from the bookmark name, prefixed
// with a short random token so bookmarks sharing a name still get distinct
// ids. It is the default id policy; tests inject their own.
func NewSlugID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	if len(s) > slugMaxLength {
		s = s[:slugMaxLength]
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return token + "-" + s
}

// CreateBookmarkResponse carries the new bookmark id, or the field error map
// when validation failed. BookmarkID is empty on every failure path.
type CreateBookmarkResponse struct {
	BookmarkID string
	Errors     map[string][]string
}

// CreateBookmarkOutput is the presenter boundary for bookmark creation.
type CreateBookmarkOutput interface {
	Present(response CreateBookmarkResponse)
	ViewModel() any
}

// CreateBookmarkUseCase stores a new bookmark for an existing user.
type CreateBookmarkUseCase struct {
	users     UserRepo
	bookmarks BookmarkRepo
	events    *audit.Publisher

	// GenerateID is the injected bookmark id policy.
	GenerateID func(name string) string

	now func() time.Time
}

// NewCreateBookmarkUseCase creates the use case with the slug id policy.
func NewCreateBookmarkUseCase(users UserRepo, bookmarks BookmarkRepo, events *audit.Publisher) *CreateBookmarkUseCase {
	return &CreateBookmarkUseCase{
		users:      users,
		bookmarks:  bookmarks,
		events:     events,
		GenerateID: NewSlugID,
		now:        time.Now,
	}
}

// Execute creates a bookmark. The owner must exist before anything else is
// checked; a missing owner is an ErrUserNotFound failure, not a validation
// error. Validation failures are presented as data with no write.
func (uc *CreateBookmarkUseCase) Execute(ctx context.Context, userID, name, url string, presenter CreateBookmarkOutput) error {
	exists, err := uc.users.Exists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return ErrRepository
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	response := CreateBookmarkResponse{Errors: map[string][]string{}}

	request := map[string]string{"user_id": userID, "name": name, "url": url}
	ok, errs := validation.Validate(request, createBookmarkSchema)
	if !ok {
		response.Errors = errs
		presenter.Present(response)
		return nil
	}

	bookmark := entities.Bookmark{
		ID:          uc.GenerateID(name),
		UserID:      userID,
		Name:        name,
		URL:         url,
		DateCreated: uc.now(),
	}
	if err := uc.bookmarks.Save(ctx, bookmark); err != nil {
		logger.Log.Errorw("failed to save bookmark", "bookmark_id", bookmark.ID, "err", err)
		return ErrRepository
	}

	uc.events.Publish(ctx, audit.KindBookmarkCreated, userID, bookmark.ID)

	response.BookmarkID = bookmark.ID
	presenter.Present(response)
	return nil
}

// CreateBookmarkViewModel is the rendering-agnostic result handed to views.
type CreateBookmarkViewModel struct {
	BookmarkID string              `json:"bookmark_id"`
	Errors     map[string][]string `json:"errors"`
}

// CreateBookmarkPresenter builds the default view model.
type CreateBookmarkPresenter struct {
	vm CreateBookmarkViewModel
}

// NewCreateBookmarkPresenter creates an empty presenter.
func NewCreateBookmarkPresenter() *CreateBookmarkPresenter {
	return &CreateBookmarkPresenter{}
}

// Present translates the response into the view model.
func (p *CreateBookmarkPresenter) Present(response CreateBookmarkResponse) {
	p.vm = CreateBookmarkViewModel{
		BookmarkID: response.BookmarkID,
		Errors:     response.Errors,
	}
}

// ViewModel returns the view model for a View to render.
func (p *CreateBookmarkPresenter) ViewModel() any {
	return p.vm
}

// Model returns the typed view model for deliveries that branch on it.
func (p *CreateBookmarkPresenter) Model() CreateBookmarkViewModel {
	return p.vm
}

// CreateBookmarkController drives the pipeline for a key-value request.
type CreateBookmarkController struct {
	UseCase   *CreateBookmarkUseCase
	Presenter CreateBookmarkOutput
	View      View
}

// Handle runs the pipeline for one request and returns the rendered view.
func (c *CreateBookmarkController) Handle(ctx context.Context, request Request) (string, error) {
	err := c.UseCase.Execute(ctx, request["user_id"], request["name"], request["url"], c.Presenter)
	if err != nil {
		return "", err
	}
	return c.View.GenerateView(c.Presenter.ViewModel())
}
