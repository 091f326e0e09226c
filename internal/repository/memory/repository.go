package memory

import (
	"context"
	"fmt"

	"users-insights/internal/entities"
	"users-insights/internal/metrics"

	"go.uber.org/zap"
)

// Repository exposes the snapshot store through the repository interfaces.
type Repository struct {
	log   *zap.SugaredLogger
	store *Store
}

// New creates an in-memory repository with an empty dataset.
func New(_ context.Context, log *zap.SugaredLogger, withMetrics bool) *Repository {
	r := &Repository{log: log.Named("repo.memory")}
	opts := []Option{WithLogger(r.log)}
	if withMetrics {
		opts = append(opts,
			WithInstallHook(func(_ uint64, users int) { metrics.GenerationInstalled(users) }),
			WithReclaimHook(func(uint64, int) { metrics.GenerationReclaimed() }),
		)
	}
	r.store = NewStore(opts...)
	return r
}

// OnStart has nothing to prepare: the store starts with an empty dataset.
func (r *Repository) OnStart(_ context.Context) error {
	r.log.Infow("memory store ready", "generation", r.store.Current())
	return nil
}

// OnStop releases the current dataset.
func (r *Repository) OnStop(_ context.Context) error {
	r.store.Close()
	r.log.Infow("memory store closed", "live_generations", r.store.Live())
	return nil
}

// ReplaceUsers installs users as the whole dataset and returns how many were accepted.
func (r *Repository) ReplaceUsers(ctx context.Context, users []entities.User) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("replace users: %w", err)
	}

	prev := r.store.Replace(users)

	r.log.Infow("dataset replaced", "users", len(users), "previous_generation", prev)
	return len(users), nil
}

// Snapshot acquires the current dataset. Callers must Release it.
func (r *Repository) Snapshot(ctx context.Context) (entities.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("acquire snapshot: %w", err)
	}
	return r.store.Acquire(), nil
}
