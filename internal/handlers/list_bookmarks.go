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

// BookmarkLister defines the interface that the listing use case must implement.
type BookmarkLister interface {
	Execute(ctx context.Context, userID, filterKey string, presenter usecases.ListBookmarksOutput) error
}

// ListBookmarksErrorResponse represents an error response for listing
// swagger:model ListBookmarksErrorResponse
type ListBookmarksErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewListBookmarksHandler returns an HTTP handler for listing bookmarks.
// @Summary List bookmarks
// @Description Lists the authenticated user's bookmarks, oldest first. The filter query parameter selects how many: "recent" or "everything".
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Result filter" Enums(recent, everything)
// @Success 200 {array} usecases.BookmarkDetailsViewModel "Bookmarks"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.ListBookmarksErrorResponse "User does not exist"
// @Router /bookmarks [get]
func NewListBookmarksHandler(svc BookmarkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserID(r.Context())
		filterKey := r.URL.Query().Get("filter")

		presenter := usecases.NewListBookmarksPresenter()
		if err := svc.Execute(r.Context(), userID, filterKey, presenter); err != nil {
			switch {
			case errors.Is(err, usecases.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListBookmarksErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListBookmarksErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(presenter.Model())
	}
}
