package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/teams/internal/repositories/player Repository

import (
	"context"
)

// Repository defines the interface for players kept per group
type Repository interface {
	// ListByGroup returns a group's players in insertion order
	ListByGroup(ctx context.Context, input *ListByGroupInput) (*ListPlayersOutput, error)

	// ListByGroupAndTeam returns a group's players on one team in insertion order
	ListByGroupAndTeam(ctx context.Context, input *ListByGroupAndTeamInput) (*ListPlayersOutput, error)

	// AddToGroup appends a player to a group
	AddToGroup(ctx context.Context, input *AddToGroupInput) error

	// RemoveFromGroup removes every player with the given name from a group
	RemoveFromGroup(ctx context.Context, input *RemoveFromGroupInput) error

	// RemoveAllForGroup deletes all of a group's players
	RemoveAllForGroup(ctx context.Context, input *RemoveAllForGroupInput) error
}
