package integrations

import (
	"context"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/configs"
	"marwood.io/WhiskeyVault/pkg/integrations/openai"
	"marwood.io/WhiskeyVault/pkg/integrations/whiskybase"
	"marwood.io/WhiskeyVault/pkg/model"
)

// Insight is the free-text enrichment collaborator. Callers treat it as
// best-effort: any error is converted to a degraded response, never a 5xx.
type Insight interface {
	LookupWhiskey(ctx context.Context, query string) (*model.WhiskeyInfo, error)
	AnalyzeCollection(ctx context.Context, summary string) (string, error)
	Recommend(ctx context.Context, preferences string) (string, error)
}

type DistillerySearch interface {
	FindDistillery(name string) ([]model.Distillery, error)
}

func GetInsight(name string, conf *configs.Config, logger *zap.Logger) Insight {
	if name == openai.IntegrationName {
		return openai.NewClient(conf.Integrations.OpenAI, logger)
	}

	return nil
}

func GetDistillerySearch(name string, logger *zap.Logger) DistillerySearch {
	if name == whiskybase.IntegrationName {
		return whiskybase.NewWhiskybaseIntegration(logger)
	}

	return nil
}
