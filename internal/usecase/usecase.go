package usecase

import (
	"context"
	"time"

	"users-insights/internal/analytics"
	"users-insights/internal/repository"
	"users-insights/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	ReportUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	engine *analytics.Engine,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, engine, timeout)
}
