// Package analytics computes reports over an immutable users dataset.
//
// Every function is pure: inputs are never modified and results are built into
// fresh containers, so a dataset shared between concurrent readers is safe to use.
package analytics

import (
	"time"

	"users-insights/internal/entities"
	"users-insights/internal/metrics"
)

// TopCountriesLimit is the number of countries returned by the ranking report.
const TopCountriesLimit = 5

// Report names used for duration metrics.
const (
	ReportSuperusers   = "superusers"
	ReportTopCountries = "top_countries"
	ReportTeamInsights = "team_insights"
	ReportLoginsPerDay = "logins_per_day"
)

// Engine wraps the aggregations with timing.
type Engine struct {
	now     func() time.Time
	observe func(report string, d time.Duration)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithObserver replaces the prometheus duration histogram.
func WithObserver(fn func(report string, d time.Duration)) Option {
	return func(e *Engine) { e.observe = fn }
}

// NewEngine returns an engine timing reports with the wall clock.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now, observe: metrics.ObserveReport}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) measure(report string, fn func()) entities.Measurement {
	start := e.now()
	fn()
	elapsed := e.now().Sub(start)
	if e.observe != nil {
		e.observe(report, elapsed)
	}
	return entities.Measurement{GeneratedAt: e.now(), Elapsed: elapsed}
}

// Superusers builds the superusers report.
func (e *Engine) Superusers(users []entities.User) entities.SuperusersReport {
	var res []entities.User
	m := e.measure(ReportSuperusers, func() { res = Superusers(users) })
	return entities.SuperusersReport{Measurement: m, Users: res}
}

// TopCountries builds the country ranking report.
func (e *Engine) TopCountries(users []entities.User) entities.TopCountriesReport {
	var res []entities.CountryTotal
	m := e.measure(ReportTopCountries, func() { res = TopCountries(users, TopCountriesLimit) })
	return entities.TopCountriesReport{Measurement: m, Countries: res}
}

// TeamInsights builds the team insights report.
func (e *Engine) TeamInsights(users []entities.User) entities.TeamInsightsReport {
	var res []entities.TeamInsight
	m := e.measure(ReportTeamInsights, func() { res = TeamInsights(users) })
	return entities.TeamInsightsReport{Measurement: m, Teams: res}
}

// LoginsPerDay builds the per-day login counts report, keeping dates with at least minTotal entries.
func (e *Engine) LoginsPerDay(users []entities.User, minTotal int) entities.LoginsPerDayReport {
	var res []entities.DayLogins
	m := e.measure(ReportLoginsPerDay, func() { res = LoginsPerDay(users, minTotal) })
	return entities.LoginsPerDayReport{Measurement: m, Logins: res}
}
