package usecase

import (
	"context"

	"users-insights/internal/entities"
)

// UserUsecaseInterface abstracts dataset ingestion for delivery layer.
type UserUsecaseInterface interface {
	Ingest(ctx context.Context, users []entities.User) (int, error)
}

// ReportUsecaseInterface abstracts analytic reports.
type ReportUsecaseInterface interface {
	Superusers(ctx context.Context) (entities.SuperusersReport, error)
	TopCountries(ctx context.Context) (entities.TopCountriesReport, error)
	TeamInsights(ctx context.Context) (entities.TeamInsightsReport, error)
	LoginsPerDay(ctx context.Context, minTotal int) (entities.LoginsPerDayReport, error)
}
