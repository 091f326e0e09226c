// Package entities contains core business entities.
package entities

// UserTeam is the team membership owned by a user. Many users share a team name.
type UserTeam struct {
	Name     string
	Leader   bool
	Projects []Project
}

// Project is a team project.
type Project struct {
	Name      string
	Completed bool
}

// CompletedProjects counts completed projects of the membership.
func (t UserTeam) CompletedProjects() int {
	n := 0
	for _, p := range t.Projects {
		if p.Completed {
			n++
		}
	}
	return n
}
