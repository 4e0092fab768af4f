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

// BookmarkEditor defines the interface that the edit use case must implement.
type BookmarkEditor interface {
	Execute(ctx context.Context, userID, bookmarkID, name, url string, presenter usecases.EditBookmarkOutput) error
}

// EditBookmarkRequest represents the JSON body for bookmark editing
// swagger:model EditBookmarkRequest
type EditBookmarkRequest struct {
	// New bookmark name
	// required: true
	// default: Example
	Name string `json:"name"`

	// New bookmark URL
	// required: true
	// default: http://example.com
	URL string `json:"url"`
}

// EditBookmarkResponse represents a successful edit response
// swagger:model EditBookmarkResponse
type EditBookmarkResponse struct {
	// Whether the edit was applied
	// default: true
	Success bool `json:"success"`
}

// EditBookmarkErrorResponse represents a failed edit response
// swagger:model EditBookmarkErrorResponse
type EditBookmarkErrorResponse struct {
	// Per-field error messages
	Errors map[string][]string `json:"errors"`
}

func isForbidden(errs map[string][]string) bool {
	msgs, ok := errs["error"]
	return ok && len(msgs) == 1 && msgs[0] == "Forbidden"
}

// NewEditBookmarkHandler returns an HTTP handler for bookmark editing.
// @Summary Edit a bookmark
// @Description Updates the name and URL of a bookmark owned by the authenticated user.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookmark_id path string true "Bookmark identifier"
// @Param editBookmarkRequest body handlers.EditBookmarkRequest true "Bookmark edit request"
// @Success 200 {object} handlers.EditBookmarkResponse "Bookmark updated"
// @Failure 400 {object} handlers.EditBookmarkErrorResponse "Validation failed"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.EditBookmarkErrorResponse "Bookmark owned by another user"
// @Failure 404 "Bookmark or user does not exist"
// @Router /bookmarks/{bookmark_id} [put]
func NewEditBookmarkHandler(svc BookmarkEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserID(r.Context())
		bookmarkID := chi.URLParam(r, "bookmark_id")

		var req EditBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EditBookmarkErrorResponse{
				Errors: map[string][]string{"request": {"invalid request body"}},
			})
			return
		}

		presenter := usecases.NewEditBookmarkPresenter()
		if err := svc.Execute(r.Context(), userID, bookmarkID, req.Name, req.URL, presenter); err != nil {
			switch {
			case errors.Is(err, usecases.ErrInvalidOperation):
				w.WriteHeader(http.StatusNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(EditBookmarkErrorResponse{
					Errors: map[string][]string{"error": {"Internal server error"}},
				})
			}
			return
		}

		vm := presenter.Model()
		if !vm.Success {
			if isForbidden(vm.Errors) {
				w.WriteHeader(http.StatusForbidden)
			} else {
				w.WriteHeader(http.StatusBadRequest)
			}
			json.NewEncoder(w).Encode(EditBookmarkErrorResponse{Errors: vm.Errors})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EditBookmarkResponse{
			Success: true,
		})
	}
}
