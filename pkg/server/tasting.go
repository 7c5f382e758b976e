package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/model"
)

type tastingRepository interface {
	GetTasting(ctx context.Context, tastingID uint, userID uint) (*model.Tasting, error)
	ListTastings(ctx context.Context, userID uint, offset int, limit int) ([]*model.Tasting, error)
	CreateTasting(ctx context.Context, tasting model.Tasting, userID uint) (*model.Tasting, error)
	UpdateTasting(ctx context.Context, tastingID uint, userID uint, patch model.TastingPatch) (*model.Tasting, error)
	DeleteTasting(ctx context.Context, tastingID uint, userID uint) (*model.Tasting, error)
}

type entrySource interface {
	GetUserWhiskey(ctx context.Context, entryID uint, userID uint) (*model.UserWhiskey, error)
}

type TastingServer struct {
	tastings tastingRepository
	entries  entrySource
	logger   *zap.Logger
}

func NewTastingServer(tastings tastingRepository, entries entrySource, logger *zap.Logger) *TastingServer {
	return &TastingServer{tastings: tastings, entries: entries, logger: logger}
}

type tastingCreateRequest struct {
	UserWhiskeyID uint       `json:"user_whiskey_id"`
	TastingDate   *time.Time `json:"tasting_date,omitempty"`
	Rating        int        `json:"rating"`
	ColorNotes    *string    `json:"color_notes,omitempty"`
	NoseNotes     *string    `json:"nose_notes,omitempty"`
	PalateNotes   *string    `json:"palate_notes,omitempty"`
	FinishNotes   *string    `json:"finish_notes,omitempty"`
	WaterNotes    *string    `json:"water_notes,omitempty"`
	PersonalNotes *string    `json:"personal_notes,omitempty"`
	Shared        bool       `json:"shared"`
	Setting       *string    `json:"setting,omitempty"`
}

func (t *TastingServer) List(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	offset, limit := pagination(request)

	tastings, err := t.tastings.ListTastings(request.Context(), user.ID, offset, limit)
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	if tastings == nil {
		tastings = []*model.Tasting{}
	}

	respond(writer, http.StatusOK, tastings)
}

func (t *TastingServer) Get(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	tastingID, err := pathID(request, "id")
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	tasting, err := t.tastings.GetTasting(request.Context(), tastingID, user.ID)
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, tasting)
}

// Create records a tasting against one of the caller's collection entries.
// The entry lookup is owner-scoped, so a foreign entry yields a 404 rather
// than revealing it exists.
func (t *TastingServer) Create(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	var payload tastingCreateRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	if payload.UserWhiskeyID == 0 {
		respondError(writer, http.StatusBadRequest, "user_whiskey_id is required")

		return
	}

	if err := validateRating(payload.Rating); err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	if _, err := t.entries.GetUserWhiskey(request.Context(), payload.UserWhiskeyID, user.ID); err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	tastingDate := time.Now()
	if payload.TastingDate != nil {
		tastingDate = *payload.TastingDate
	}

	tasting, err := t.tastings.CreateTasting(request.Context(), model.Tasting{
		UserWhiskeyID: payload.UserWhiskeyID,
		TastingDate:   tastingDate,
		Rating:        payload.Rating,
		ColorNotes:    payload.ColorNotes,
		NoseNotes:     payload.NoseNotes,
		PalateNotes:   payload.PalateNotes,
		FinishNotes:   payload.FinishNotes,
		WaterNotes:    payload.WaterNotes,
		PersonalNotes: payload.PersonalNotes,
		Shared:        payload.Shared,
		Setting:       payload.Setting,
	}, user.ID)
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	respond(writer, http.StatusCreated, tasting)
}

func (t *TastingServer) Update(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	tastingID, err := pathID(request, "id")
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	var patch model.TastingPatch
	if err = decodeBody(request, &patch); err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	if patch.Rating != nil {
		if err = validateRating(*patch.Rating); err != nil {
			respondMapped(t.logger, writer, err)

			return
		}
	}

	if patch.UserWhiskeyID != nil {
		if _, err = t.entries.GetUserWhiskey(request.Context(), *patch.UserWhiskeyID, user.ID); err != nil {
			respondMapped(t.logger, writer, err)

			return
		}
	}

	tasting, err := t.tastings.UpdateTasting(request.Context(), tastingID, user.ID, patch)
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, tasting)
}

func (t *TastingServer) Delete(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	tastingID, err := pathID(request, "id")
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	tasting, err := t.tastings.DeleteTasting(request.Context(), tastingID, user.ID)
	if err != nil {
		respondMapped(t.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, tasting)
}
