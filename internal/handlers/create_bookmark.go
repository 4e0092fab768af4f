package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/middlewares"
	"github.com/mpetrov/linkstash/internal/usecases"
)

// BookmarkCreator defines the interface that the creation use case must implement.
type BookmarkCreator interface {
	Execute(ctx context.Context, userID, name, url string, presenter usecases.CreateBookmarkOutput) error
}

// CreateBookmarkRequest represents the JSON body for bookmark creation
// swagger:model CreateBookmarkRequest
type CreateBookmarkRequest struct {
	// Bookmark name
	// required: true
	// default: Example
	Name string `json:"name"`

	// Bookmark URL
	// required: true
	// default: http://example.com
	URL string `json:"url"`
}

// CreateBookmarkResponse represents a successful creation response
// swagger:model CreateBookmarkResponse
type CreateBookmarkResponse struct {
	// Identifier of the new bookmark
	// default: 1a2b3c4d-example
	BookmarkID string `json:"bookmark_id"`
}

// CreateBookmarkErrorResponse represents a failed creation response
// swagger:model CreateBookmarkErrorResponse
type CreateBookmarkErrorResponse struct {
	// Per-field error messages
	Errors map[string][]string `json:"errors"`
}

// NewCreateBookmarkHandler returns an HTTP handler for bookmark creation.
// @Summary Create a bookmark
// @Description Stores a new bookmark for the authenticated user.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBookmarkRequest body handlers.CreateBookmarkRequest true "Bookmark creation request"
// @Success 201 {object} handlers.CreateBookmarkResponse "Bookmark created"
// @Failure 400 {object} handlers.CreateBookmarkErrorResponse "Validation failed"
// @Failure 401 "Missing or invalid token"
// @Failure 404 "User does not exist"
// @Router /bookmarks [post]
func NewCreateBookmarkHandler(svc BookmarkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserID(r.Context())

		var req CreateBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookmarkErrorResponse{
				Errors: map[string][]string{"request": {"invalid request body"}},
			})
			return
		}

		presenter := usecases.NewCreateBookmarkPresenter()
		if err := svc.Execute(r.Context(), userID, req.Name, req.URL, presenter); err != nil {
			switch {
			case errors.Is(err, usecases.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateBookmarkErrorResponse{
					Errors: map[string][]string{"error": {"Internal server error"}},
				})
			}
			return
		}

		vm := presenter.Model()
		if vm.BookmarkID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookmarkErrorResponse{Errors: vm.Errors})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBookmarkResponse{
			BookmarkID: vm.BookmarkID,
		})
	}
}
