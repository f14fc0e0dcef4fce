package player

import (
	"github.com/KirkDiggler/teams/internal/models"
	"github.com/KirkDiggler/teams/internal/repositories/kv"
)

// Config holds configuration for the key-value player repository
type Config struct {
	// Store is the key-value primitive the per-group lists are kept in
	Store kv.Store
}

// ListByGroupInput contains parameters for listing a group's players
type ListByGroupInput struct {
	GroupName string
}

// ListByGroupAndTeamInput contains parameters for listing one team of a group
type ListByGroupAndTeamInput struct {
	GroupName string
	Team      models.Team
}

// ListPlayersOutput contains players in insertion order
type ListPlayersOutput struct {
	Players []*models.Player
}

// AddToGroupInput contains parameters for adding a player
type AddToGroupInput struct {
	GroupName string
	Player    *models.Player
}

// RemoveFromGroupInput contains parameters for removing a player by name
type RemoveFromGroupInput struct {
	GroupName  string
	PlayerName string
}

// RemoveAllForGroupInput contains parameters for dropping a group's players
type RemoveAllForGroupInput struct {
	GroupName string
}

// storedPlayer is the JSON shape of one list entry
type storedPlayer struct {
	Name string `json:"name"`
	Team string `json:"team"`
}
