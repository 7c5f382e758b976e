package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/model"
)

type collectionRepository interface {
	GetUserWhiskey(ctx context.Context, entryID uint, userID uint) (*model.UserWhiskey, error)
	ListUserWhiskeys(ctx context.Context, userID uint, offset int, limit int) ([]*model.UserWhiskey, error)
	CreateUserWhiskey(ctx context.Context, entry model.UserWhiskey, userID uint) (*model.UserWhiskey, error)
	UpdateUserWhiskey(ctx context.Context, entryID uint, userID uint, patch model.UserWhiskeyPatch) (*model.UserWhiskey, error)
	DeleteUserWhiskey(ctx context.Context, entryID uint, userID uint) (*model.UserWhiskey, error)
}

type entryTastingLister interface {
	ListTastingsForUserWhiskey(ctx context.Context, userWhiskeyID uint, userID uint, offset int, limit int) ([]*model.Tasting, error)
}

type CollectionServer struct {
	entries  collectionRepository
	tastings entryTastingLister
	logger   *zap.Logger
}

func NewCollectionServer(entries collectionRepository, tastings entryTastingLister, logger *zap.Logger) *CollectionServer {
	return &CollectionServer{entries: entries, tastings: tastings, logger: logger}
}

type userWhiskeyCreateRequest struct {
	WhiskeyID        uint       `json:"whiskey_id"`
	IsOwned          *bool      `json:"is_owned,omitempty"`
	IsFavorite       bool       `json:"is_favorite"`
	PurchaseDate     *time.Time `json:"purchase_date,omitempty"`
	BottleSizeML     *int       `json:"bottle_size_ml,omitempty"`
	RemainingPercent *int       `json:"remaining_percent,omitempty"`
}

func (c *CollectionServer) List(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	offset, limit := pagination(request)

	entries, err := c.entries.ListUserWhiskeys(request.Context(), user.ID, offset, limit)
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	if entries == nil {
		entries = []*model.UserWhiskey{}
	}

	respond(writer, http.StatusOK, entries)
}

func (c *CollectionServer) Get(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	entryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	entry, err := c.entries.GetUserWhiskey(request.Context(), entryID, user.ID)
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, entry)
}

// Create adds a catalog whiskey to the caller's collection. The owner is
// always the authenticated user; a user id in the payload is ignored.
func (c *CollectionServer) Create(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	var payload userWhiskeyCreateRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	if payload.WhiskeyID == 0 {
		respondError(writer, http.StatusBadRequest, "whiskey_id is required")

		return
	}

	entry := model.UserWhiskey{
		WhiskeyID:        payload.WhiskeyID,
		IsOwned:          true,
		IsFavorite:       payload.IsFavorite,
		PurchaseDate:     payload.PurchaseDate,
		BottleSizeML:     payload.BottleSizeML,
		RemainingPercent: 100,
	}

	if payload.IsOwned != nil {
		entry.IsOwned = *payload.IsOwned
	}

	if payload.RemainingPercent != nil {
		if err := validateRemainingPercent(*payload.RemainingPercent); err != nil {
			respondMapped(c.logger, writer, err)

			return
		}

		entry.RemainingPercent = *payload.RemainingPercent
	}

	created, err := c.entries.CreateUserWhiskey(request.Context(), entry, user.ID)
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	respond(writer, http.StatusCreated, created)
}

func (c *CollectionServer) Update(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	entryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	var patch model.UserWhiskeyPatch
	if err = decodeBody(request, &patch); err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	if patch.RemainingPercent != nil {
		if err = validateRemainingPercent(*patch.RemainingPercent); err != nil {
			respondMapped(c.logger, writer, err)

			return
		}
	}

	entry, err := c.entries.UpdateUserWhiskey(request.Context(), entryID, user.ID, patch)
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, entry)
}

func (c *CollectionServer) Delete(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	entryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	entry, err := c.entries.DeleteUserWhiskey(request.Context(), entryID, user.ID)
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, entry)
}

// ListTastings serves the tastings recorded against one collection entry.
// The entry lookup itself is owner-scoped, so a foreign entry is a 404.
func (c *CollectionServer) ListTastings(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	entryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	if _, err = c.entries.GetUserWhiskey(request.Context(), entryID, user.ID); err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	offset, limit := pagination(request)

	tastings, err := c.tastings.ListTastingsForUserWhiskey(request.Context(), entryID, user.ID, offset, limit)
	if err != nil {
		respondMapped(c.logger, writer, err)

		return
	}

	if tastings == nil {
		tastings = []*model.Tasting{}
	}

	respond(writer, http.StatusOK, tastings)
}
