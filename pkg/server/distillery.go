package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/configs"
	"marwood.io/WhiskeyVault/pkg/integrations"
	"marwood.io/WhiskeyVault/pkg/model"
	"marwood.io/WhiskeyVault/pkg/repository"
)

type distilleryRepository interface {
	GetDistillery(ctx context.Context, distilleryID uint) (*model.Distillery, error)
	GetDistilleryByName(ctx context.Context, name string) (*model.Distillery, error)
	ListDistilleries(ctx context.Context, offset int, limit int) ([]*model.Distillery, error)
	CreateDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error)
	UpdateDistillery(ctx context.Context, distilleryID uint, patch model.DistilleryPatch) (*model.Distillery, error)
	DeleteDistillery(ctx context.Context, distilleryID uint) (*model.Distillery, error)
}

type DistilleryServer struct {
	distilleries distilleryRepository
	config       *configs.Config
	logger       *zap.Logger
}

func NewDistilleryServer(distilleries distilleryRepository, config *configs.Config, logger *zap.Logger) *DistilleryServer {
	return &DistilleryServer{distilleries: distilleries, config: config, logger: logger}
}

type distilleryCreateRequest struct {
	Name        string  `json:"name"`
	Region      *string `json:"region,omitempty"`
	Country     *string `json:"country,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Website     *string `json:"website,omitempty"`
}

func (d *DistilleryServer) List(writer http.ResponseWriter, request *http.Request) {
	offset, limit := pagination(request)

	distilleries, err := d.distilleries.ListDistilleries(request.Context(), offset, limit)
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	if distilleries == nil {
		distilleries = []*model.Distillery{}
	}

	respond(writer, http.StatusOK, distilleries)
}

func (d *DistilleryServer) Get(writer http.ResponseWriter, request *http.Request) {
	distilleryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	distillery, err := d.distilleries.GetDistillery(request.Context(), distilleryID)
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, distillery)
}

func (d *DistilleryServer) Create(writer http.ResponseWriter, request *http.Request) {
	var payload distilleryCreateRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	if len(payload.Name) == 0 {
		respondError(writer, http.StatusBadRequest, "name is required")

		return
	}

	if err := d.rejectDuplicateName(request.Context(), payload.Name, 0); err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	distillery, err := d.distilleries.CreateDistillery(request.Context(), model.Distillery{
		Name:        payload.Name,
		Region:      payload.Region,
		Country:     payload.Country,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		Website:     payload.Website,
		IsActive:    true,
	})
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	respond(writer, http.StatusCreated, distillery)
}

func (d *DistilleryServer) Update(writer http.ResponseWriter, request *http.Request) {
	distilleryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	var patch model.DistilleryPatch
	if err = decodeBody(request, &patch); err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	if patch.Name != nil {
		if err = d.rejectDuplicateName(request.Context(), *patch.Name, distilleryID); err != nil {
			respondMapped(d.logger, writer, err)

			return
		}
	}

	distillery, err := d.distilleries.UpdateDistillery(request.Context(), distilleryID, patch)
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, distillery)
}

func (d *DistilleryServer) Delete(writer http.ResponseWriter, request *http.Request) {
	distilleryID, err := pathID(request, "id")
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	distillery, err := d.distilleries.DeleteDistillery(request.Context(), distilleryID)
	if err != nil {
		respondMapped(d.logger, writer, err)

		return
	}

	respond(writer, http.StatusOK, distillery)
}

// Search fans out to the configured scrapers. A failing integration is
// logged and skipped; the response is whatever the others produced.
func (d *DistilleryServer) Search(writer http.ResponseWriter, request *http.Request) {
	name := request.URL.Query().Get("name")
	if len(name) == 0 {
		respondError(writer, http.StatusBadRequest, "name query parameter is required")

		return
	}

	results := []model.Distillery{}

	for _, integration := range d.config.Integrations.Distillery {
		search := integrations.GetDistillerySearch(integration, d.logger)
		if search == nil {
			d.logger.Warn("unknown distillery integration", zap.String("integration", integration))

			continue
		}

		found, err := search.FindDistillery(name)
		if err != nil {
			d.logger.Error("failed distillery search", zap.String("integration", integration), zap.Error(err))

			continue
		}

		results = append(results, found...)
	}

	respond(writer, http.StatusOK, results)
}

// Name comparison is case-sensitive, matching the unique index.
func (d *DistilleryServer) rejectDuplicateName(ctx context.Context, name string, allowID uint) error {
	existing, err := d.distilleries.GetDistilleryByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return err
	}

	if existing.ID == allowID {
		return nil
	}

	return ErrDuplicateName
}
