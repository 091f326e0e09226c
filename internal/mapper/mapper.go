// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"users-insights/internal/dto"
	"users-insights/internal/entities"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

// TimestampLayout is the format of report timestamps.
const TimestampLayout = time.RFC3339Nano

var validate = validator.New()

// DecodeUsers parses and validates an ingest payload: a JSON array of users.
// Every failure is reported as *entities.DecodeError.
func DecodeUsers(data []byte) ([]entities.User, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &entities.DecodeError{Op: "decode users", Err: errors.New("expected a JSON array of users")}
	}

	var in []dto.User
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return nil, &entities.DecodeError{Op: "decode users", Err: err}
	}

	users := make([]entities.User, 0, len(in))
	for i := range in {
		if err := validate.Struct(&in[i]); err != nil {
			return nil, &entities.DecodeError{Op: fmt.Sprintf("validate user %d", i), Err: err}
		}
		users = append(users, FromDTOUser(in[i]))
	}
	return users, nil
}

// FromDTOUser maps a validated transport user to entities.User.
func FromDTOUser(src dto.User) entities.User {
	u := entities.User{
		ID:      deref(src.ID),
		Name:    deref(src.Name),
		Age:     uint8(deref(src.Age)),
		Score:   uint16(deref(src.Score)),
		Active:  deref(src.Active),
		Country: deref(src.Country),
	}
	if src.Team != nil {
		u.Team = entities.UserTeam{
			Name:     deref(src.Team.Name),
			Leader:   deref(src.Team.Leader),
			Projects: make([]entities.Project, 0, len(src.Team.Projects)),
		}
		for _, p := range src.Team.Projects {
			u.Team.Projects = append(u.Team.Projects, entities.Project{Name: deref(p.Name), Completed: deref(p.Completed)})
		}
	}
	u.Logs = make([]entities.LoginLog, 0, len(src.Logs))
	for _, l := range src.Logs {
		u.Logs = append(u.Logs, entities.LoginLog{Date: deref(l.Date), Action: deref(l.Action)})
	}
	return u
}

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u entities.User) dto.User {
	projects := make([]dto.Project, 0, len(u.Team.Projects))
	for _, p := range u.Team.Projects {
		projects = append(projects, dto.Project{Name: ptr(p.Name), Completed: ptr(p.Completed)})
	}
	logs := make([]dto.Log, 0, len(u.Logs))
	for _, l := range u.Logs {
		logs = append(logs, dto.Log{Date: ptr(l.Date), Action: ptr(l.Action)})
	}

	return dto.User{
		ID:      ptr(u.ID),
		Name:    ptr(u.Name),
		Age:     ptr(int(u.Age)),
		Score:   ptr(int(u.Score)),
		Active:  ptr(u.Active),
		Country: ptr(u.Country),
		Team:    &dto.Team{Name: ptr(u.Team.Name), Leader: ptr(u.Team.Leader), Projects: projects},
		Logs:    logs,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func ptr[T any](v T) *T {
	return &v
}

func timestamp(m entities.Measurement) string {
	return m.GeneratedAt.Local().Format(TimestampLayout)
}

// ToSuperusersResponse maps the superusers report to transport model.
func ToSuperusersResponse(src entities.SuperusersReport) dto.SuperusersResponse {
	data := make([]dto.User, 0, len(src.Users))
	for _, u := range src.Users {
		data = append(data, ToDTOUser(u))
	}
	return dto.SuperusersResponse{
		Timestamp:       timestamp(src.Measurement),
		ExecutionTimeMs: src.Elapsed.Milliseconds(),
		UserCount:       len(data),
		Data:            data,
	}
}

// ToTopCountriesResponse maps the country ranking to transport model.
func ToTopCountriesResponse(src entities.TopCountriesReport) dto.TopCountriesResponse {
	countries := make([]dto.CountrySummary, 0, len(src.Countries))
	for _, c := range src.Countries {
		countries = append(countries, dto.CountrySummary{Country: c.Country, Total: c.Total})
	}
	return dto.TopCountriesResponse{
		Timestamp:       timestamp(src.Measurement),
		ExecutionTimeMs: src.Elapsed.Milliseconds(),
		Countries:       countries,
	}
}

// ToTeamInsightsResponse maps team insights to transport model.
func ToTeamInsightsResponse(src entities.TeamInsightsReport) dto.TeamInsightsResponse {
	teams := make([]dto.TeamInsight, 0, len(src.Teams))
	for _, t := range src.Teams {
		teams = append(teams, dto.TeamInsight{
			Team:              t.Team,
			TotalMembers:      t.TotalMembers,
			Leaders:           t.Leaders,
			CompletedProjects: t.CompletedProjects,
			ActivePercentage:  t.ActivePercentage,
		})
	}
	return dto.TeamInsightsResponse{
		Timestamp:       timestamp(src.Measurement),
		ExecutionTimeMs: src.Elapsed.Milliseconds(),
		Teams:           teams,
	}
}

// ToActiveUsersResponse maps per-day login counts to transport model.
func ToActiveUsersResponse(src entities.LoginsPerDayReport) dto.ActiveUsersResponse {
	logins := make([]dto.ActiveUserLogin, 0, len(src.Logins))
	for _, l := range src.Logins {
		logins = append(logins, dto.ActiveUserLogin{Date: l.Date, Total: l.Total})
	}
	return dto.ActiveUsersResponse{
		Timestamp:       timestamp(src.Measurement),
		ExecutionTimeMs: src.Elapsed.Milliseconds(),
		Logins:          logins,
	}
}

// ToEvaluationResponse maps a self evaluation to transport model.
func ToEvaluationResponse(src entities.Evaluation) dto.EvaluationResponse {
	tested := make(map[string]dto.RouteMetric, len(src.Endpoints))
	for path, r := range src.Endpoints {
		tested[path] = dto.RouteMetric{Status: r.Status, TimeMs: r.TimeMs, ValidResponse: r.ValidResponse}
	}
	return dto.EvaluationResponse{TestedEndpoints: tested}
}
