package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/integrations"
	"marwood.io/WhiskeyVault/pkg/model"
)

type collectionLister interface {
	ListUserWhiskeys(ctx context.Context, userID uint, offset int, limit int) ([]*model.UserWhiskey, error)
}

// InsightServer wraps the free-text enrichment integration. Every handler
// degrades to a found:false response when the collaborator is missing or
// failing; a broken integration never turns into a 5xx.
type InsightServer struct {
	insight integrations.Insight
	entries collectionLister
	logger  *zap.Logger
}

func NewInsightServer(insight integrations.Insight, entries collectionLister, logger *zap.Logger) *InsightServer {
	return &InsightServer{insight: insight, entries: entries, logger: logger}
}

type whiskeyInsightRequest struct {
	Query string `json:"query"`
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
	Found    bool   `json:"found"`
}

type recommendationRequest struct {
	Preferences string `json:"preferences"`
}

type recommendationResponse struct {
	Recommendation string `json:"recommendation"`
	Found          bool   `json:"found"`
}

func (i *InsightServer) Whiskey(writer http.ResponseWriter, request *http.Request) {
	var payload whiskeyInsightRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(i.logger, writer, err)

		return
	}

	if len(payload.Query) == 0 {
		respondError(writer, http.StatusBadRequest, "query is required")

		return
	}

	if i.insight == nil {
		respond(writer, http.StatusOK, &model.WhiskeyInfo{Name: payload.Query, Found: false})

		return
	}

	info, err := i.insight.LookupWhiskey(request.Context(), payload.Query)
	if err != nil {
		i.logger.Error("whiskey insight unavailable", zap.String("query", payload.Query), zap.Error(err))
		respond(writer, http.StatusOK, &model.WhiskeyInfo{Name: payload.Query, Found: false})

		return
	}

	respond(writer, http.StatusOK, info)
}

func (i *InsightServer) Analysis(writer http.ResponseWriter, request *http.Request) {
	user, found := auth.UserFromContext(request.Context())
	if !found {
		respondError(writer, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())

		return
	}

	entries, err := i.entries.ListUserWhiskeys(request.Context(), user.ID, 0, maxListLimit)
	if err != nil {
		respondMapped(i.logger, writer, err)

		return
	}

	if len(entries) == 0 || i.insight == nil {
		respond(writer, http.StatusOK, analysisResponse{Found: false})

		return
	}

	analysis, err := i.insight.AnalyzeCollection(request.Context(), summarizeCollection(entries))
	if err != nil {
		i.logger.Error("collection analysis unavailable", zap.Error(err))
		respond(writer, http.StatusOK, analysisResponse{Found: false})

		return
	}

	respond(writer, http.StatusOK, analysisResponse{Analysis: analysis, Found: true})
}

func (i *InsightServer) Recommendation(writer http.ResponseWriter, request *http.Request) {
	var payload recommendationRequest
	if err := decodeBody(request, &payload); err != nil {
		respondMapped(i.logger, writer, err)

		return
	}

	if len(payload.Preferences) == 0 {
		respondError(writer, http.StatusBadRequest, "preferences is required")

		return
	}

	if i.insight == nil {
		respond(writer, http.StatusOK, recommendationResponse{Found: false})

		return
	}

	recommendation, err := i.insight.Recommend(request.Context(), payload.Preferences)
	if err != nil {
		i.logger.Error("recommendation unavailable", zap.Error(err))
		respond(writer, http.StatusOK, recommendationResponse{Found: false})

		return
	}

	respond(writer, http.StatusOK, recommendationResponse{Recommendation: recommendation, Found: true})
}

func summarizeCollection(entries []*model.UserWhiskey) string {
	var builder strings.Builder

	for _, entry := range entries {
		if entry.Whiskey == nil {
			continue
		}

		builder.WriteString("- " + entry.Whiskey.Name)

		if entry.Whiskey.Region != nil {
			builder.WriteString(", " + *entry.Whiskey.Region)
		}

		if entry.Whiskey.Type != nil {
			builder.WriteString(", " + *entry.Whiskey.Type)
		}

		if entry.Whiskey.Age != nil {
			builder.WriteString(fmt.Sprintf(", %d years", *entry.Whiskey.Age))
		}

		builder.WriteString("\n")
	}

	return builder.String()
}
