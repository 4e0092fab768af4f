package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/usecases"
)

// UserCreator defines the interface that the registration use case must implement.
type UserCreator interface {
	Execute(ctx context.Context, username, password string, presenter usecases.CreateUserOutput) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Whether the user was created
	// default: true
	UserCreated bool `json:"user_created"`

	// Registered username
	// default: john_doe
	Username string `json:"username"`
}

// RegisterErrorResponse represents a failed registration response
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Per-field error messages
	Errors map[string][]string `json:"errors"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The username must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failed or username taken"
// @Router /register [post]
func NewRegisterHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Errors: map[string][]string{"request": {"invalid request body"}},
			})
			return
		}

		presenter := usecases.NewCreateUserPresenter()
		if err := svc.Execute(r.Context(), req.Username, req.Password, presenter); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Errors: map[string][]string{"error": {"Internal server error"}},
			})
			return
		}

		vm := presenter.Model()
		if !vm.UserCreated {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Errors: vm.Errors})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			UserCreated: true,
			Username:    vm.Username,
		})
	}
}
