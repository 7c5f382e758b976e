package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marwood.io/WhiskeyVault/configs"
	"marwood.io/WhiskeyVault/pkg/model"
)

type UserKey struct{}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInactiveUser       = errors.New("inactive_user")
)

type userSource interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	users  userSource
	logger *zap.Logger
}

func NewManager(conf *configs.Config, users userSource, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// VerifyPassword returns false on any mismatch, including a malformed digest.
func VerifyPassword(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

func (m *Manager) IssueToken(email string) (string, error) {
	lifetime := time.Duration(m.conf.Auth.TokenLifetimeMinutes) * time.Minute
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(m.conf.Auth.SecretKey))
}

// ResolveToken verifies signature and expiry and returns the subject email.
func (m *Manager) ResolveToken(tokenString string) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidCredentials, token.Header["alg"])
		}

		return []byte(m.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return "", fmt.Errorf("%w: invalid token", ErrInvalidCredentials)
	}

	email, found := claims["sub"].(string)
	if !found {
		return "", fmt.Errorf("%w: no subject in token", ErrInvalidCredentials)
	}

	return email, nil
}

// Middleware resolves the bearer token to an active user and stores it in the
// request context. A record that cannot be resolved is a 401; a resolved but
// deactivated account is a 400.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		accessToken, err := extractTokenFromHeader(request.Header)
		if err != nil {
			m.unauthorized(writer, err)

			return
		}

		email, err := m.ResolveToken(accessToken)
		if err != nil {
			m.logger.Error("error resolving token", zap.Error(err))
			m.unauthorized(writer, err)

			return
		}

		user, err := m.users.GetUserByEmail(request.Context(), email)
		if err != nil || user == nil {
			m.unauthorized(writer, ErrInvalidCredentials)

			return
		}

		if !user.IsActive {
			writeError(writer, http.StatusBadRequest, ErrInactiveUser.Error())

			return
		}

		ctx := context.WithValue(request.Context(), UserKey{}, user)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, found := ctx.Value(UserKey{}).(*model.User)

	return user, found
}

func (m *Manager) unauthorized(writer http.ResponseWriter, err error) {
	m.logger.Debug("rejecting request", zap.Error(err))
	writer.Header().Set("WWW-Authenticate", "Bearer")
	writeError(writer, http.StatusUnauthorized, ErrInvalidCredentials.Error())
}

func writeError(writer http.ResponseWriter, status int, detail string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{"detail": detail})
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", fmt.Errorf("%w: authorization header not found", ErrInvalidCredentials)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrInvalidCredentials)
	}

	return token, nil
}
