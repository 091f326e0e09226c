package analytics

import "users-insights/internal/entities"

// TeamInsightAccumulator folds memberships of one team.
//
// The active percentage is kept in tenths of a percent and recomputed with integer
// division after each member, so it is truncated (not rounded) at every step.
type TeamInsightAccumulator struct {
	team              string
	members           int
	active            int
	leaders           int
	completedProjects int
	activeTenths      int
}

// NewTeamInsightAccumulator starts an empty accumulator for the team.
func NewTeamInsightAccumulator(team string) *TeamInsightAccumulator {
	return &TeamInsightAccumulator{team: team}
}

// Add folds one user into the team and returns the running active percentage.
func (a *TeamInsightAccumulator) Add(u entities.User) float64 {
	a.members++
	if u.Active {
		a.active++
	}
	if u.Team.Leader {
		a.leaders++
	}
	a.completedProjects += u.Team.CompletedProjects()
	a.activeTenths = a.active * 1000 / a.members
	return a.percentage()
}

func (a *TeamInsightAccumulator) percentage() float64 {
	return float64(a.activeTenths) / 10
}

// Insight returns the current state of the accumulator.
func (a *TeamInsightAccumulator) Insight() entities.TeamInsight {
	return entities.TeamInsight{
		Team:              a.team,
		TotalMembers:      a.members,
		Leaders:           a.leaders,
		CompletedProjects: a.completedProjects,
		ActiveMembers:     a.active,
		ActivePercentage:  a.percentage(),
	}
}

// TeamInsights groups users by team name, in order of first appearance.
func TeamInsights(users []entities.User) []entities.TeamInsight {
	byTeam := make(map[string]*TeamInsightAccumulator)
	order := make([]*TeamInsightAccumulator, 0)

	for _, u := range users {
		acc, ok := byTeam[u.Team.Name]
		if !ok {
			acc = NewTeamInsightAccumulator(u.Team.Name)
			byTeam[u.Team.Name] = acc
			order = append(order, acc)
		}
		acc.Add(u)
	}

	res := make([]entities.TeamInsight, 0, len(order))
	for _, acc := range order {
		res = append(res, acc.Insight())
	}
	return res
}
