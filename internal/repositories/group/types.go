package group

import "github.com/KirkDiggler/teams/internal/repositories/kv"

// Config holds configuration for the key-value group repository
type Config struct {
	// Store is the key-value primitive the collection is kept in
	Store kv.Store
}

// ListGroupsOutput contains every stored group name
type ListGroupsOutput struct {
	Groups []string
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	Name string
}

// RemoveGroupInput contains parameters for removing a group
type RemoveGroupInput struct {
	Name string
}
