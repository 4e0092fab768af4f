package usecases

import (
	"context"

	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/security"
)

// AuthenticateUserResponse reports the outcome of a credential check. The
// user id is echoed back so deliveries can establish a session.
type AuthenticateUserResponse struct {
	IsAuthenticated bool
	UserID          string
}

// AuthenticateUserOutput is the presenter boundary for authentication.
type AuthenticateUserOutput interface {
	Present(response AuthenticateUserResponse)
	ViewModel() any
}

// AuthenticateUserUseCase verifies a password against the stored hash.
type AuthenticateUserUseCase struct {
	users UserRepo
}

// NewAuthenticateUserUseCase creates the use case over the given repository.
func NewAuthenticateUserUseCase(users UserRepo) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{users: users}
}

// Execute checks the password. An absent user yields an empty hash, which
// CheckPassword rejects the same way it rejects a wrong password, so both
// failures share one path and the caller learns nothing about which it was.
// No side effects.
func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, userID, password string, presenter AuthenticateUserOutput) error {
	response := AuthenticateUserResponse{UserID: userID}

	hash, err := uc.users.GetPasswordHash(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get password hash", "user_id", userID, "err", err)
		return ErrRepository
	}

	response.IsAuthenticated = security.CheckPassword(password, hash)
	presenter.Present(response)
	return nil
}

// AuthenticateUserViewModel is the rendering-agnostic result handed to views.
type AuthenticateUserViewModel struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	UserID          string `json:"user_id"`
}

// AuthenticateUserPresenter builds the default view model.
type AuthenticateUserPresenter struct {
	vm AuthenticateUserViewModel
}

// NewAuthenticateUserPresenter creates an empty presenter.
func NewAuthenticateUserPresenter() *AuthenticateUserPresenter {
	return &AuthenticateUserPresenter{}
}

// Present translates the response into the view model.
func (p *AuthenticateUserPresenter) Present(response AuthenticateUserResponse) {
	p.vm = AuthenticateUserViewModel{
		IsAuthenticated: response.IsAuthenticated,
		UserID:          response.UserID,
	}
}

// ViewModel returns the view model for a View to render.
func (p *AuthenticateUserPresenter) ViewModel() any {
	return p.vm
}

// Model returns the typed view model for deliveries that branch on it.
func (p *AuthenticateUserPresenter) Model() AuthenticateUserViewModel {
	return p.vm
}

// AuthenticateUserController drives the pipeline for a key-value request.
type AuthenticateUserController struct {
	UseCase   *AuthenticateUserUseCase
	Presenter AuthenticateUserOutput
	View      View
}

// Handle runs the pipeline for one request and returns the rendered view.
func (c *AuthenticateUserController) Handle(ctx context.Context, request Request) (string, error) {
	if err := c.UseCase.Execute(ctx, request["username"], request["password"], c.Presenter); err != nil {
		return "", err
	}
	return c.View.GenerateView(c.Presenter.ViewModel())
}
