// Package repository contains repository interfaces for storage layers.
package repository

import (
	"context"

	"users-insights/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// Snapshot is a read handle on one dataset generation.
type Snapshot = entities.Snapshot

// UserInterface exposes dataset operations.
type UserInterface interface {
	ReplaceUsers(ctx context.Context, users []entities.User) (int, error)
	Snapshot(ctx context.Context) (Snapshot, error)
}
