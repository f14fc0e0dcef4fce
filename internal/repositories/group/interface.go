package group

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/teams/internal/repositories/group Repository

import (
	"context"
)

// Repository defines the interface for the collection of group names
type Repository interface {
	// ListGroups returns every group name in creation order
	ListGroups(ctx context.Context) (*ListGroupsOutput, error)

	// CreateGroup adds a new, uniquely named group
	CreateGroup(ctx context.Context, input *CreateGroupInput) error

	// RemoveGroup removes a group name. Removing an unknown name is a no-op.
	RemoveGroup(ctx context.Context, input *RemoveGroupInput) error
}
