package usecases

import (
	"context"
	"fmt"

	"github.com/mpetrov/linkstash/internal/audit"
	"github.com/mpetrov/linkstash/internal/entities"
	"github.com/mpetrov/linkstash/internal/logger"
	"github.com/mpetrov/linkstash/internal/security"
	"github.com/mpetrov/linkstash/internal/validation"
)

const usernameMaxLength = 20

var createUserSchema = map[string]validation.Schema{
	"username": {
		Required:  true,
		MaxLength: usernameMaxLength,
		Custom: []validation.Rule{
			{Check: validation.IsValidUsername, Message: "Username is not allowed"},
		},
	},
}

// CreateUserResponse reports whether the user was created and carries the
// field error map when it was not.
type CreateUserResponse struct {
	UserCreated bool
	Username    string
	Errors      map[string][]string
}

// CreateUserOutput is the boundary a presenter implements to receive the
// response and expose the resulting view model.
type CreateUserOutput interface {
	Present(response CreateUserResponse)
	ViewModel() any
}

// CreateUserUseCase registers a new user with a hashed password.
type CreateUserUseCase struct {
	users  UserRepo
	events *audit.Publisher
}

// NewCreateUserUseCase creates the use case over the given repository.
func NewCreateUserUseCase(users UserRepo, events *audit.Publisher) *CreateUserUseCase {
	return &CreateUserUseCase{users: users, events: events}
}

// Execute validates the username, rejects duplicates, and persists the user
// with a hashed password. Validation and duplicate failures are reported
// through the presenter; only infrastructure faults return an error. The
// success path performs exactly one repository write, failure paths none.
func (uc *CreateUserUseCase) Execute(ctx context.Context, username, password string, presenter CreateUserOutput) error {
	response := CreateUserResponse{Username: username, Errors: map[string][]string{}}

	ok, errs := validation.Validate(map[string]string{"username": username}, createUserSchema)
	if !ok {
		response.Errors = errs
		presenter.Present(response)
		return nil
	}

	exists, err := uc.users.Exists(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return ErrRepository
	}
	if exists {
		logger.Log.Infow("username already taken", "username", username)
		response.Errors = map[string][]string{"username": {"That username is taken"}}
		presenter.Present(response)
		return nil
	}

	hash, err := security.CreatePasswordHash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.users.Save(ctx, entities.User{ID: username, PasswordHash: hash}); err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return ErrRepository
	}

	uc.events.Publish(ctx, audit.KindUserCreated, username, username)

	response.UserCreated = true
	presenter.Present(response)
	return nil
}

// CreateUserViewModel is the rendering-agnostic result handed to views.
type CreateUserViewModel struct {
	UserCreated bool                `json:"user_created"`
	Username    string              `json:"username"`
	Errors      map[string][]string `json:"errors"`
}

// CreateUserPresenter builds the default view model.
type CreateUserPresenter struct {
	vm CreateUserViewModel
}

// NewCreateUserPresenter creates an empty presenter.
func NewCreateUserPresenter() *CreateUserPresenter {
	return &CreateUserPresenter{}
}

// Present translates the response into the view model.
func (p *CreateUserPresenter) Present(response CreateUserResponse) {
	p.vm = CreateUserViewModel{
		UserCreated: response.UserCreated,
		Username:    response.Username,
		Errors:      response.Errors,
	}
}

// ViewModel returns the view model for a View to render.
func (p *CreateUserPresenter) ViewModel() any {
	return p.vm
}

// Model returns the typed view model for deliveries that branch on it.
func (p *CreateUserPresenter) Model() CreateUserViewModel {
	return p.vm
}

// CreateUserController adapts a key-value request into use case input and
// drives the use case / presenter / view pipeline.
type CreateUserController struct {
	UseCase   *CreateUserUseCase
	Presenter CreateUserOutput
	View      View
}

// Handle runs the pipeline for one request and returns the rendered view.
func (c *CreateUserController) Handle(ctx context.Context, request Request) (string, error) {
	if err := c.UseCase.Execute(ctx, request["username"], request["password"], c.Presenter); err != nil {
		return "", err
	}
	return c.View.GenerateView(c.Presenter.ViewModel())
}
