package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/model"
)

type whiskeyRepository interface {
	GetWhiskey(ctx context.Context, whiskeyID uint) (*model.Whiskey, error)
	ListWhiskeys(ctx context.Context, offset int, limit int) ([]*model.Whiskey, error)
	CreateWhiskey(ctx context.Context, whiskey model.Whiskey) (*model.Whiskey, error)
	UpdateWhiskey(ctx context.Context, whiskeyID uint, patch model.WhiskeyPatch) (*model.Whiskey, error)
	DeleteWhiskey(ctx context.Context, whiskeyID uint) (*model.Whiskey, error)
}

type WhiskeyServer struct {
	whiskeys whiskeyRepository
	logger   *zap.Logger
}

func NewWhiskeyServer(whiskeys whiskeyRepository, logger *zap.Logger) *WhiskeyServer {
	return &WhiskeyServer{whiskeys: whiskeys, logger: logger}
}

type whiskeyCreateRequest struct {
	Name         string   `json:"name"`
	DistilleryID *uint    `json:"distillery_id,omitempty"`
	Region       *string  `json:"region,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Type         *string  `json:"type,omitempty"`
	ABV          *float64 `json:"abv,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
}

func (w *WhiskeyServer) List(writer http.ResponseWriter, request *http.Request) {
	offset, limit := pagination(request)

	whiskeys, err := w.whiskeys.ListWhiskeys(request.Context(), offset, limit)
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	if whiskeys == nil {
		whiskeys = []*model.Whiskey{}
	}

	respond(writer, http.StatusOK, whiskeys)
}

func (w *WhiskeyServer) Get(writer http.ResponseWriter, request *http.Request) {
	whiskeyID, err := pathID(request, "id")
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	whiskey, err := w.whiskeys.GetWhiskey(request.Context(), whiskeyID)
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, whiskey)
}

func (w *WhiskeyServer) Create(writer http.ResponseWriter, request *http.Request) {
	var payload whiskeyCreateRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	if len(payload.Name) == 0 {
		respondError(writer, http.StatusBadRequest, "name is required")

		return
	}

	whiskey, err := w.whiskeys.CreateWhiskey(request.Context(), model.Whiskey{
		Name:         payload.Name,
		DistilleryID: payload.DistilleryID,
		Region:       payload.Region,
		Age:          payload.Age,
		Type:         payload.Type,
		ABV:          payload.ABV,
		Price:        payload.Price,
		Notes:        payload.Notes,
		ImageURL:     payload.ImageURL,
	})
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	respond(writer, http.StatusCreated, whiskey)
}

func (w *WhiskeyServer) Update(writer http.ResponseWriter, request *http.Request) {
	whiskeyID, err := pathID(request, "id")
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	var patch model.WhiskeyPatch
	if err = decodeBody(request, &patch); err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	whiskey, err := w.whiskeys.UpdateWhiskey(request.Context(), whiskeyID, patch)
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, whiskey)
}

func (w *WhiskeyServer) Delete(writer http.ResponseWriter, request *http.Request) {
	whiskeyID, err := pathID(request, "id")
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	whiskey, err := w.whiskeys.DeleteWhiskey(request.Context(), whiskeyID)
	if err != nil {
		respondMapped(w.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, whiskey)
}
