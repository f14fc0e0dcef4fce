package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/teams/internal/services/roster Service

import "context"

// Service defines the operations UI collaborators use to manage groups and teams
type Service interface {
	// CreateGroup creates a new, uniquely named group
	CreateGroup(ctx context.Context, input *CreateGroupInput) error

	// RemoveGroup removes a group together with all of its players
	RemoveGroup(ctx context.Context, input *RemoveGroupInput) error

	// ListGroups returns every group in creation order
	ListGroups(ctx context.Context) (*ListGroupsOutput, error)

	// AddPlayer puts a person on a team inside a group
	AddPlayer(ctx context.Context, input *AddPlayerInput) error

	// RemovePlayer takes a person out of a group, whatever their team
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) error

	// PlayersByGroup returns every player of a group
	PlayersByGroup(ctx context.Context, input *PlayersByGroupInput) (*PlayersOutput, error)

	// PlayersByTeam returns the players of one team in a group
	PlayersByTeam(ctx context.Context, input *PlayersByTeamInput) (*PlayersOutput, error)
}
