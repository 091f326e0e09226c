package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"users-insights/internal/analytics"
	"users-insights/internal/entities"
	"users-insights/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	engine  *analytics.Engine
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	engine *analytics.Engine,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		engine:  engine,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// budgetErr maps an expired or canceled request context to entities.ErrTimeout.
func budgetErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", entities.ErrTimeout, err)
	}
	return err
}
