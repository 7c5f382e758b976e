package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/model"
	"marwood.io/WhiskeyVault/pkg/repository"
)

type authUserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
}

type AuthServer struct {
	users   authUserRepository
	manager *auth.Manager
	logger  *zap.Logger
}

func NewAuthServer(users authUserRepository, manager *auth.Manager, logger *zap.Logger) *AuthServer {
	return &AuthServer{users: users, manager: manager, logger: logger}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

// Login exchanges a form-encoded username/password for a bearer token.
// A missing user and a wrong password are indistinguishable to the caller.
func (a *AuthServer) Login(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		a.unauthorized(writer)

		return
	}

	email := request.PostFormValue("username")
	password := request.PostFormValue("password")

	user, err := a.users.GetUserByEmail(request.Context(), email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			a.logger.Error("error loading user for login", zap.Error(err))
		}

		a.unauthorized(writer)

		return
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		a.unauthorized(writer)

		return
	}

	if !user.IsActive {
		respondError(writer, http.StatusBadRequest, auth.ErrInactiveUser.Error())

		return
	}

	token, err := a.manager.IssueToken(user.Email)
	if err != nil {
		respondMapped(a.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (a *AuthServer) Register(writer http.ResponseWriter, request *http.Request) {
	var payload registerRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(a.logger, writer, err)

		return
	}

	if len(payload.Email) == 0 || len(payload.Password) == 0 {
		respondError(writer, http.StatusBadRequest, "email and password are required")

		return
	}

	_, err := a.users.GetUserByEmail(request.Context(), payload.Email)
	if err == nil {
		respondMapped(a.logger, writer, ErrDuplicateEmail)

		return
	}

	if !errors.Is(err, repository.ErrNotFound) {
		respondMapped(a.logger, writer, err)

		return
	}

	digest, err := auth.HashPassword(payload.Password)
	if err != nil {
		respondMapped(a.logger, writer, err)

		return
	}

	user, err := a.users.CreateUser(request.Context(), model.User{
		Email:          payload.Email,
		FullName:       payload.FullName,
		HashedPassword: digest,
		IsActive:       true,
	})
	if err != nil {
		respondMapped(a.logger, writer, err)

		return
	}

	respond(writer, http.StatusCreated, user)
}

func (a *AuthServer) unauthorized(writer http.ResponseWriter) {
	writer.Header().Set("WWW-Authenticate", "Bearer")
	respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
}
