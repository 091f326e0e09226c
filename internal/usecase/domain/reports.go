// Package domain contains application Usecases orchestrating domain logic by report.
package domain

import (
	"context"
	"fmt"

	"users-insights/internal/entities"
)

// snapshot acquires the current dataset within the request budget.
// The returned release func must be called once the report is built.
func (u *Usecase) snapshot(ctx context.Context) ([]entities.User, func(), error) {
	snap, err := u.repo.Snapshot(ctx)
	if err != nil {
		return nil, nil, budgetErr(err)
	}
	if err := ctx.Err(); err != nil {
		snap.Release()
		return nil, nil, budgetErr(err)
	}
	u.log.Debugw("snapshot acquired", "generation", snap.Generation(), "users", snap.Len())
	return snap.Users(), snap.Release, nil
}

// Superusers returns active users with score >= 900.
func (u *Usecase) Superusers(ctx context.Context) (entities.SuperusersReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, release, err := u.snapshot(ctx)
	if err != nil {
		return entities.SuperusersReport{}, err
	}
	defer release()

	return u.engine.Superusers(users), nil
}

// TopCountries returns the five countries with most users.
func (u *Usecase) TopCountries(ctx context.Context) (entities.TopCountriesReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, release, err := u.snapshot(ctx)
	if err != nil {
		return entities.TopCountriesReport{}, err
	}
	defer release()

	return u.engine.TopCountries(users), nil
}

// TeamInsights returns per-team aggregates.
func (u *Usecase) TeamInsights(ctx context.Context) (entities.TeamInsightsReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, release, err := u.snapshot(ctx)
	if err != nil {
		return entities.TeamInsightsReport{}, err
	}
	defer release()

	return u.engine.TeamInsights(users), nil
}

// LoginsPerDay returns login counts per date, keeping dates with at least minTotal logins.
func (u *Usecase) LoginsPerDay(ctx context.Context, minTotal int) (entities.LoginsPerDayReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if minTotal < 0 {
		return entities.LoginsPerDayReport{}, fmt.Errorf("%w: min must not be negative", entities.ErrInvalidArgument)
	}

	users, release, err := u.snapshot(ctx)
	if err != nil {
		return entities.LoginsPerDayReport{}, err
	}
	defer release()

	return u.engine.LoginsPerDay(users, minTotal), nil
}
