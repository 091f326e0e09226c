// Package entities contains core business entities.
package entities

// User is a single record of the ingested dataset.
type User struct {
	ID      string
	Name    string
	Age     uint8
	Score   uint16
	Active  bool
	Country string
	Team    UserTeam
	Logs    []LoginLog
}

// LoginLog is one activity entry of a user; Date has day granularity and compares as a string.
type LoginLog struct {
	Date   string
	Action string
}

// IsSuperuser reports whether the user has a high score and is active.
func (u User) IsSuperuser() bool {
	return u.Score >= SuperuserMinScore && u.Active
}

// SuperuserMinScore is the lowest score a superuser can have.
const SuperuserMinScore = 900
