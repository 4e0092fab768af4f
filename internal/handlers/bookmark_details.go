package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/middlewares"
	"github.com/mpetrov/linkstash/internal/usecases"
)

// BookmarkReader defines the interface that the details use case must implement.
type BookmarkReader interface {
	Execute(ctx context.Context, userID, bookmarkID string, presenter usecases.BookmarkDetailsOutput) error
}

// BookmarkDetailsErrorResponse represents an error response for details
// swagger:model BookmarkDetailsErrorResponse
type BookmarkDetailsErrorResponse struct {
	// Error message
	// default: Bookmark not found
	Error string `json:"error"`
}

// NewBookmarkDetailsHandler returns an HTTP handler for reading one bookmark.
// @Summary Bookmark details
// @Description Returns one bookmark owned by the authenticated user, shaped for display.
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param bookmark_id path string true "Bookmark identifier"
// @Success 200 {object} usecases.BookmarkDetailsViewModel "Bookmark details"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.BookmarkDetailsErrorResponse "Bookmark does not exist or is owned by another user"
// @Router /bookmarks/{bookmark_id} [get]
func NewBookmarkDetailsHandler(svc BookmarkReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserID(r.Context())
		bookmarkID := chi.URLParam(r, "bookmark_id")

		presenter := usecases.NewBookmarkDetailsPresenter()
		if err := svc.Execute(r.Context(), userID, bookmarkID, presenter); err != nil {
			switch {
			case errors.Is(err, usecases.ErrBookmarkNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookmarkDetailsErrorResponse{
					Error: "Bookmark not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookmarkDetailsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(presenter.Model())
	}
}
