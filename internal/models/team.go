package models

// Team labels one of the two sides a group is split into
type Team string

const (
	// TeamA is the first side
	TeamA Team = "Team A"

	// TeamB is the second side
	TeamB Team = "Team B"
)

// Teams lists every team in display order
var Teams = []Team{TeamA, TeamB}

// Valid reports whether t is one of the known teams
func (t Team) Valid() bool {
	for _, team := range Teams {
		if t == team {
			return true
		}
	}
	return false
}
