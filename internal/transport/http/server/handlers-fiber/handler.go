// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"context"

	"users-insights/internal/entities"
	"users-insights/internal/usecase"

	"go.uber.org/zap"
)

// Evaluator runs the self evaluation of the report endpoints.
type Evaluator interface {
	Evaluate(ctx context.Context) (entities.Evaluation, error)
}

// Handler serves the HTTP API using service layer interfaces.
type Handler struct {
	log  *zap.SugaredLogger
	uc   usecase.InterfaceUsecase
	eval Evaluator
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, eval Evaluator) *Handler {
	return &Handler{
		log:  log.Named("http"),
		uc:   usecase,
		eval: eval,
	}
}
