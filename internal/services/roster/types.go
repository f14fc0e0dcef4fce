package roster

import (
	"log/slog"

	"github.com/KirkDiggler/teams/internal/models"
	groupRepo "github.com/KirkDiggler/teams/internal/repositories/group"
	playerRepo "github.com/KirkDiggler/teams/internal/repositories/player"
)

// Config holds configuration for the roster service
type Config struct {
	// Repository dependencies
	GroupRepo  groupRepo.Repository
	PlayerRepo playerRepo.Repository

	// Logger receives one record per mutation. Defaults to slog.Default().
	Logger *slog.Logger
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	// Name is the group name, unique and case-sensitive
	Name string
}

// RemoveGroupInput contains parameters for removing a group
type RemoveGroupInput struct {
	Name string
}

// ListGroupsOutput contains every group name
type ListGroupsOutput struct {
	Groups []string
}

// AddPlayerInput contains parameters for adding a player to a group
type AddPlayerInput struct {
	// GroupName is the group the player joins
	GroupName string

	// PlayerName is the display name of the player
	PlayerName string

	// Team is the side the player is put on
	Team models.Team
}

// RemovePlayerInput contains parameters for removing a player from a group
type RemovePlayerInput struct {
	GroupName  string
	PlayerName string
}

// PlayersByGroupInput contains parameters for listing a group's players
type PlayersByGroupInput struct {
	GroupName string
}

// PlayersByTeamInput contains parameters for listing one team of a group
type PlayersByTeamInput struct {
	GroupName string
	Team      models.Team
}

// PlayersOutput contains players in the order they were added
type PlayersOutput struct {
	Players []*models.Player
}
