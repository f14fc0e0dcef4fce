package player

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/KirkDiggler/teams/internal/common/apperr"
	"github.com/KirkDiggler/teams/internal/common/keylock"
	"github.com/KirkDiggler/teams/internal/models"
	"github.com/KirkDiggler/teams/internal/repositories/kv"
)

// Prefix of the per-group player list keys
const playersKeyPrefix = "@teams:players-"

const (
	opListPlayers  = "list players"
	opAddPlayer    = "add player"
	opRemovePlayer = "remove player"
	opRemoveAll    = "remove group players"
)

// Messages shown to users
const (
	MessageGroupEmpty    = "the group name cannot be empty"
	MessagePlayerEmpty   = "enter the name of the person to add"
	MessageInvalidTeam   = "choose Team A or Team B"
	MessagePlayerExists  = "this person is already on a team in this group"
	MessagePlayerMissing = "the name of the person to remove cannot be empty"
)

// kvRepository implements the Repository interface with one key per group
type kvRepository struct {
	store kv.Store
	locks *keylock.Locker
}

// NewKV creates a player repository backed by a key-value store
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

// playersKey derives a group's key. Query escaping is injective, so two
// distinct group names never share a key whatever characters they contain.
// Surrounding whitespace is dropped first, as it is when groups are created.
func playersKey(groupName string) string {
	return playersKeyPrefix + url.QueryEscape(strings.TrimSpace(groupName))
}

// ListByGroup reads a group's players. A missing key is an empty list.
func (r *kvRepository) ListByGroup(ctx context.Context, input *ListByGroupInput) (*ListPlayersOutput, error) {
	if input == nil || strings.TrimSpace(input.GroupName) == "" {
		return nil, apperr.Validation(opListPlayers, MessageGroupEmpty)
	}

	stored, err := r.load(ctx, opListPlayers, input.GroupName)
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(stored))
	for _, p := range stored {
		players = append(players, toModel(p))
	}

	return &ListPlayersOutput{
		Players: players,
	}, nil
}

// ListByGroupAndTeam reads a group's players and keeps those on the team
func (r *kvRepository) ListByGroupAndTeam(ctx context.Context, input *ListByGroupAndTeamInput) (*ListPlayersOutput, error) {
	if input == nil {
		return nil, apperr.Validation(opListPlayers, MessageGroupEmpty)
	}

	all, err := r.ListByGroup(ctx, &ListByGroupInput{
		GroupName: input.GroupName,
	})
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(all.Players))
	for _, p := range all.Players {
		if p.Team == input.Team {
			players = append(players, p)
		}
	}

	return &ListPlayersOutput{
		Players: players,
	}, nil
}

// AddToGroup appends a player unless the group already has someone with that name
func (r *kvRepository) AddToGroup(ctx context.Context, input *AddToGroupInput) error {
	if input == nil || strings.TrimSpace(input.GroupName) == "" {
		return apperr.Validation(opAddPlayer, MessageGroupEmpty)
	}

	if input.Player == nil || strings.TrimSpace(input.Player.Name) == "" {
		return apperr.Validation(opAddPlayer, MessagePlayerEmpty)
	}

	if !input.Player.Team.Valid() {
		return apperr.Validation(opAddPlayer, MessageInvalidTeam)
	}

	key := playersKey(input.GroupName)
	unlock := r.locks.Lock(key)
	defer unlock()

	stored, err := r.load(ctx, opAddPlayer, input.GroupName)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(input.Player.Name)
	for _, p := range stored {
		if p.Name == name {
			return apperr.Duplicate(opAddPlayer, MessagePlayerExists)
		}
	}

	stored = append(stored, storedPlayer{
		Name: name,
		Team: string(input.Player.Team),
	})

	if err := kv.SetJSON(ctx, r.store, key, stored); err != nil {
		return apperr.Storage(opAddPlayer, err)
	}

	return nil
}

// RemoveFromGroup drops every entry with the player's name, on any team
func (r *kvRepository) RemoveFromGroup(ctx context.Context, input *RemoveFromGroupInput) error {
	if input == nil || strings.TrimSpace(input.GroupName) == "" {
		return apperr.Validation(opRemovePlayer, MessageGroupEmpty)
	}

	if strings.TrimSpace(input.PlayerName) == "" {
		return apperr.Validation(opRemovePlayer, MessagePlayerMissing)
	}

	key := playersKey(input.GroupName)
	unlock := r.locks.Lock(key)
	defer unlock()

	stored, err := r.load(ctx, opRemovePlayer, input.GroupName)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(input.PlayerName)
	remaining := make([]storedPlayer, 0, len(stored))
	for _, p := range stored {
		if p.Name != name {
			remaining = append(remaining, p)
		}
	}

	// Nobody by that name, leave the stored value as it is
	if len(remaining) == len(stored) {
		return nil
	}

	if err := kv.SetJSON(ctx, r.store, key, remaining); err != nil {
		return apperr.Storage(opRemovePlayer, err)
	}

	return nil
}

// RemoveAllForGroup deletes the group's key
func (r *kvRepository) RemoveAllForGroup(ctx context.Context, input *RemoveAllForGroupInput) error {
	if input == nil || strings.TrimSpace(input.GroupName) == "" {
		return apperr.Validation(opRemoveAll, MessageGroupEmpty)
	}

	key := playersKey(input.GroupName)
	unlock := r.locks.Lock(key)
	defer unlock()

	if err := r.store.Delete(ctx, key); err != nil {
		return apperr.Storage(opRemoveAll, err)
	}

	return nil
}

func (r *kvRepository) load(ctx context.Context, op, groupName string) ([]storedPlayer, error) {
	var stored []storedPlayer
	if _, err := kv.GetJSON(ctx, r.store, playersKey(groupName), &stored); err != nil {
		return nil, apperr.Storage(op, err)
	}

	return stored, nil
}

func toModel(p storedPlayer) *models.Player {
	return &models.Player{
		Name: p.Name,
		Team: models.Team(p.Team),
	}
}
