// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"time"

	"users-insights/internal/entities"
)

// Ingest replaces the whole dataset and returns the number of accepted users.
func (u *Usecase) Ingest(ctx context.Context, users []entities.User) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	n, err := u.repo.ReplaceUsers(ctx, users)
	if err != nil {
		u.log.Errorw("failed to replace users", "error", err)
		return 0, budgetErr(err)
	}

	u.log.Infow("users ingested", "user_count", n, "duration_ms", time.Since(start).Milliseconds())
	return n, nil
}
