package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/model"
)

type userRepository interface {
	GetUser(ctx context.Context, userID uint) (*model.User, error)
	ListUsers(ctx context.Context, offset int, limit int) ([]*model.User, error)
	UpdateUser(ctx context.Context, userID uint, mutate func(*model.User)) (*model.User, error)
}

type UserServer struct {
	users  userRepository
	logger *zap.Logger
}

func NewUserServer(users userRepository, logger *zap.Logger) *UserServer {
	return &UserServer{users: users, logger: logger}
}

func (u *UserServer) Me(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	respond(writer, http.StatusOK, user)
}

func (u *UserServer) UpdateMe(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	u.update(writer, request, user.ID)
}

func (u *UserServer) List(writer http.ResponseWriter, request *http.Request) {
	offset, limit := pagination(request)

	users, err := u.users.ListUsers(request.Context(), offset, limit)
	if err != nil {
		respondMapped(u.logger, writer, err)

		return
	}

	if users == nil {
		users = []*model.User{}
	}

	respond(writer, http.StatusOK, users)
}

func (u *UserServer) Get(writer http.ResponseWriter, request *http.Request) {
	userID, err := pathID(request, "id")
	if err != nil {
		respondMapped(u.logger, writer, err)

		return
	}

	user, err := u.users.GetUser(request.Context(), userID)
	if err != nil {
		respondMapped(u.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, user)
}

func (u *UserServer) Update(writer http.ResponseWriter, request *http.Request) {
	userID, err := pathID(request, "id")
	if err != nil {
		respondMapped(u.logger, writer, err)

		return
	}

	u.update(writer, request, userID)
}

// update merges a partial payload into the stored user. A password in the
// payload is hashed here; the plaintext never reaches the repository.
func (u *UserServer) update(writer http.ResponseWriter, request *http.Request, userID uint) {
	var patch model.UserPatch
	if err := decodeBody(request, &patch); err != nil {
		respondMapped(u.logger, writer, err)

		return
	}

	digest := ""

	if patch.Password != nil {
		hashed, err := auth.HashPassword(*patch.Password)
		if err != nil {
			respondMapped(u.logger, writer, err)

			return
		}

		digest = hashed
	}

	user, err := u.users.UpdateUser(request.Context(), userID, func(user *model.User) {
		patch.Apply(user)

		if len(digest) > 0 {
			user.HashedPassword = digest
		}
	})
	if err != nil {
		respondMapped(u.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, user)
}
