package whiskybase

import "go.uber.org/zap"

const IntegrationName = "whiskybase"

type WhiskybaseIntegration struct {
	logger *zap.Logger
}

func NewWhiskybaseIntegration(logger *zap.Logger) *WhiskybaseIntegration {
	return &WhiskybaseIntegration{logger: logger}
}
