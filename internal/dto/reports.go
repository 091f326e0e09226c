package dto

// CreateUsersResponse acknowledges an ingest.
type CreateUsersResponse struct {
	Message   string `json:"message"`
	UserCount int    `json:"user_count"`
}

// SuperusersResponse is the body of GET /superusers.
type SuperusersResponse struct {
	Timestamp       string `json:"timestamp"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
	UserCount       int    `json:"user_count"`
	Data            []User `json:"data"`
}

// CountrySummary is one entry of the country ranking.
type CountrySummary struct {
	Country string `json:"country"`
	Total   int    `json:"total"`
}

// TopCountriesResponse is the body of GET /top-countries.
type TopCountriesResponse struct {
	Timestamp       string           `json:"timestamp"`
	ExecutionTimeMs int64            `json:"execution_time_ms"`
	Countries       []CountrySummary `json:"countries"`
}

// TeamInsight is the wire format of a team aggregate.
type TeamInsight struct {
	Team              string  `json:"team"`
	TotalMembers      int     `json:"total_members"`
	Leaders           int     `json:"leaders"`
	CompletedProjects int     `json:"completed_projects"`
	ActivePercentage  float64 `json:"active_percentage"`
}

// TeamInsightsResponse is the body of GET /team-insights.
type TeamInsightsResponse struct {
	Timestamp       string        `json:"timestamp"`
	ExecutionTimeMs int64         `json:"execution_time_ms"`
	Teams           []TeamInsight `json:"teams"`
}

// ActiveUserLogin is the number of logins on a date.
type ActiveUserLogin struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// ActiveUsersResponse is the body of GET /active-users-per-day.
type ActiveUsersResponse struct {
	Timestamp       string            `json:"timestamp"`
	ExecutionTimeMs int64             `json:"execution_time_ms"`
	Logins          []ActiveUserLogin `json:"logins"`
}

// RouteMetric is the self evaluation result of one endpoint.
type RouteMetric struct {
	Status        int   `json:"status"`
	TimeMs        int64 `json:"time_ms"`
	ValidResponse bool  `json:"valid_response"`
}

// EvaluationResponse is the body of GET /evaluation.
type EvaluationResponse struct {
	TestedEndpoints map[string]RouteMetric `json:"tested_endpoints"`
}
