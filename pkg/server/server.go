package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

var (
	ErrInvalidInput   = errors.New("bad request")
	ErrDuplicateName  = errors.New("duplicate_name")
	ErrDuplicateEmail = errors.New("duplicate_email")
)

func respond(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

func respondError(writer http.ResponseWriter, status int, detail string) {
	respond(writer, status, map[string]string{"detail": detail})
}

// respondMapped translates repository and validation failures to the status
// codes the API promises. An absent record and a record owned by somebody
// else both surface here as ErrNotFound.
func respondMapped(logger *zap.Logger, writer http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(writer, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrInvalidInput):
		respondError(writer, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		respondError(writer, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

func pathID(request *http.Request, name string) (uint, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, name, raw)
	}

	return uint(id), nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 10 {
		return fmt.Errorf("%w: rating must be between 1 and 10", ErrInvalidInput)
	}

	return nil
}

func validateRemainingPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: remaining_percent must be between 0 and 100", ErrInvalidInput)
	}

	return nil
}

// pagination reads skip/limit query parameters. Out-of-range values fall
// back to the defaults rather than erroring, matching the list contract.
func pagination(request *http.Request) (int, int) {
	offset := 0
	limit := defaultListLimit

	if raw := request.URL.Query().Get("skip"); len(raw) > 0 {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			offset = value
		}
	}

	if raw := request.URL.Query().Get("limit"); len(raw) > 0 {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 && value <= maxListLimit {
			limit = value
		}
	}

	return offset, limit
}
