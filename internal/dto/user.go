// Package dto holds the JSON wire representations of the HTTP API.
package dto

// User is the ingest and superusers wire format of a user.
// Every field must be present; empty strings are accepted.
type User struct {
	ID      *string `json:"id" validate:"required"`
	Name    *string `json:"name" validate:"required"`
	Age     *int    `json:"age" validate:"required,min=0,max=255"`
	Score   *int    `json:"score" validate:"required,min=0,max=65535"`
	Active  *bool   `json:"active" validate:"required"`
	Country *string `json:"country" validate:"required"`
	Team    *Team   `json:"team" validate:"required"`
	Logs    []Log   `json:"logs" validate:"required,dive"`
}

// Team is the wire format of a team membership.
type Team struct {
	Name     *string   `json:"name" validate:"required"`
	Leader   *bool     `json:"leader" validate:"required"`
	Projects []Project `json:"projects" validate:"required,dive"`
}

// Project is the wire format of a team project.
type Project struct {
	Name      *string `json:"name" validate:"required"`
	Completed *bool   `json:"completed" validate:"required"`
}

// Log is the wire format of a login log entry.
type Log struct {
	Date   *string `json:"date" validate:"required"`
	Action *string `json:"action" validate:"required"`
}
