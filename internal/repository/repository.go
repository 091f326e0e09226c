// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"users-insights/config"
	"users-insights/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all storage interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(ctx, log, cfg.Metrics.Enabled), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
