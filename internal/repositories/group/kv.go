package group

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/KirkDiggler/teams/internal/common/apperr"
	"github.com/KirkDiggler/teams/internal/common/keylock"
	"github.com/KirkDiggler/teams/internal/repositories/kv"
)

// Key under which the whole list of group names is stored
const groupsKey = "@teams:groups"

const (
	opListGroups  = "list groups"
	opCreateGroup = "create group"
	opRemoveGroup = "remove group"
)

// Messages shown to users
const (
	MessageNameEmpty   = "the group name cannot be empty"
	MessageGroupExists = "a group with that name already exists"
)

// kvRepository implements the Repository interface on a single key-value entry
type kvRepository struct {
	store kv.Store
	locks *keylock.Locker
}

// NewKV creates a group repository backed by a key-value store
func NewKV(cfg *Config) (*kvRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &kvRepository{
		store: cfg.Store,
		locks: keylock.New(),
	}, nil
}

// ListGroups reads the group list. A missing key is an empty list.
func (r *kvRepository) ListGroups(ctx context.Context) (*ListGroupsOutput, error) {
	groups, err := r.load(ctx, opListGroups)
	if err != nil {
		return nil, err
	}

	return &ListGroupsOutput{
		Groups: groups,
	}, nil
}

// CreateGroup appends a new group name unless one with the exact same name
// exists. Surrounding whitespace is not part of the name.
func (r *kvRepository) CreateGroup(ctx context.Context, input *CreateGroupInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return apperr.Validation(opCreateGroup, MessageNameEmpty)
	}
	name := strings.TrimSpace(input.Name)

	unlock := r.locks.Lock(groupsKey)
	defer unlock()

	groups, err := r.load(ctx, opCreateGroup)
	if err != nil {
		return err
	}

	if slices.Contains(groups, name) {
		return apperr.Duplicate(opCreateGroup, MessageGroupExists)
	}

	if err := kv.SetJSON(ctx, r.store, groupsKey, append(groups, name)); err != nil {
		return apperr.Storage(opCreateGroup, err)
	}

	return nil
}

// RemoveGroup drops every entry equal to the name and writes the rest back
func (r *kvRepository) RemoveGroup(ctx context.Context, input *RemoveGroupInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return apperr.Validation(opRemoveGroup, MessageNameEmpty)
	}
	target := strings.TrimSpace(input.Name)

	unlock := r.locks.Lock(groupsKey)
	defer unlock()

	groups, err := r.load(ctx, opRemoveGroup)
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(groups))
	for _, name := range groups {
		if name != target {
			remaining = append(remaining, name)
		}
	}

	// Nothing matched, leave the stored value as it is
	if len(remaining) == len(groups) {
		return nil
	}

	if err := kv.SetJSON(ctx, r.store, groupsKey, remaining); err != nil {
		return apperr.Storage(opRemoveGroup, err)
	}

	return nil
}

func (r *kvRepository) load(ctx context.Context, op string) ([]string, error) {
	var groups []string
	if _, err := kv.GetJSON(ctx, r.store, groupsKey, &groups); err != nil {
		return nil, apperr.Storage(op, err)
	}

	if groups == nil {
		groups = []string{}
	}

	return groups, nil
}
