// Package entities contains core business entities.
package entities

import "time"

// Measurement is attached to every report: when it was produced and how long the computation took.
type Measurement struct {
	GeneratedAt time.Time
	Elapsed     time.Duration
}

// SuperusersReport lists superusers in dataset order.
type SuperusersReport struct {
	Measurement
	Users []User
}

// CountryTotal is the number of users of a country.
type CountryTotal struct {
	Country string
	Total   int
}

// TopCountriesReport ranks countries by number of users.
type TopCountriesReport struct {
	Measurement
	Countries []CountryTotal
}

// TeamInsight aggregates the memberships sharing a team name.
type TeamInsight struct {
	Team              string
	TotalMembers      int
	Leaders           int
	CompletedProjects int
	ActiveMembers     int
	// ActivePercentage is truncated to one decimal place after every added member.
	ActivePercentage float64
}

// TeamInsightsReport holds one insight per team name.
type TeamInsightsReport struct {
	Measurement
	Teams []TeamInsight
}

// DayLogins is the number of log entries recorded on a date.
type DayLogins struct {
	Date  string
	Total int
}

// LoginsPerDayReport counts log entries per date.
type LoginsPerDayReport struct {
	Measurement
	Logins []DayLogins
}

// EndpointResult is the outcome of one self evaluation call.
type EndpointResult struct {
	Status        int
	TimeMs        int64
	ValidResponse bool
}

// Evaluation maps tested endpoint paths to their results.
type Evaluation struct {
	Endpoints map[string]EndpointResult
}
