package roster

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/teams/internal/common/apperr"
	"github.com/KirkDiggler/teams/internal/models"
	groupRepo "github.com/KirkDiggler/teams/internal/repositories/group"
	playerRepo "github.com/KirkDiggler/teams/internal/repositories/player"
)

// service implements the Service interface
type service struct {
	groupRepo  groupRepo.Repository
	playerRepo playerRepo.Repository
	logger     *slog.Logger
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		groupRepo:  cfg.GroupRepo,
		playerRepo: cfg.PlayerRepo,
		logger:     logger,
	}, nil
}

// CreateGroup creates a new group
func (s *service) CreateGroup(ctx context.Context, input *CreateGroupInput) error {
	if input == nil {
		return apperr.Validation("create group", groupRepo.MessageNameEmpty)
	}

	if err := s.groupRepo.CreateGroup(ctx, &groupRepo.CreateGroupInput{
		Name: input.Name,
	}); err != nil {
		s.logFailure(ctx, "create group", err, slog.String("group", input.Name))
		return err
	}

	s.logger.Info("group created", slog.String("group", input.Name))
	return nil
}

// RemoveGroup deletes the group's players first and then the group record.
// A failure between the two steps leaves an empty group behind, never players
// without a group. AddPlayer refuses groups that are not listed.
func (s *service) RemoveGroup(ctx context.Context, input *RemoveGroupInput) error {
	if input == nil {
		return apperr.Validation("remove group", groupRepo.MessageNameEmpty)
	}

	if err := s.playerRepo.RemoveAllForGroup(ctx, &playerRepo.RemoveAllForGroupInput{
		GroupName: input.Name,
	}); err != nil {
		s.logFailure(ctx, "remove group", err, slog.String("group", input.Name), slog.String("step", "players"))
		return err
	}

	if err := s.groupRepo.RemoveGroup(ctx, &groupRepo.RemoveGroupInput{
		Name: input.Name,
	}); err != nil {
		s.logFailure(ctx, "remove group", err, slog.String("group", input.Name), slog.String("step", "group"))
		return err
	}

	s.logger.Info("group removed", slog.String("group", input.Name))
	return nil
}

// ListGroups returns every group name
func (s *service) ListGroups(ctx context.Context) (*ListGroupsOutput, error) {
	output, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		s.logFailure(ctx, "list groups", err)
		return nil, err
	}

	return &ListGroupsOutput{
		Groups: output.Groups,
	}, nil
}

// AddPlayer adds a player to a group
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil {
		return apperr.Validation("add player", playerRepo.MessagePlayerEmpty)
	}

	// Blank group names are left to the repository to reject
	if strings.TrimSpace(input.GroupName) != "" {
		exists, err := s.groupExists(ctx, input.GroupName)
		if err != nil {
			s.logFailure(ctx, "add player", err, slog.String("group", input.GroupName))
			return err
		}
		if !exists {
			err := apperr.Validation("add player", MessageGroupMissing)
			s.logFailure(ctx, "add player", err, slog.String("group", input.GroupName))
			return err
		}
	}

	if err := s.playerRepo.AddToGroup(ctx, &playerRepo.AddToGroupInput{
		GroupName: input.GroupName,
		Player: &models.Player{
			Name: input.PlayerName,
			Team: input.Team,
		},
	}); err != nil {
		s.logFailure(ctx, "add player", err,
			slog.String("group", input.GroupName),
			slog.String("player", input.PlayerName),
			slog.String("team", string(input.Team)),
		)
		return err
	}

	s.logger.Info("player added",
		slog.String("group", input.GroupName),
		slog.String("player", input.PlayerName),
		slog.String("team", string(input.Team)),
	)
	return nil
}

// RemovePlayer removes a player from a group
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil {
		return apperr.Validation("remove player", playerRepo.MessagePlayerMissing)
	}

	if err := s.playerRepo.RemoveFromGroup(ctx, &playerRepo.RemoveFromGroupInput{
		GroupName:  input.GroupName,
		PlayerName: input.PlayerName,
	}); err != nil {
		s.logFailure(ctx, "remove player", err,
			slog.String("group", input.GroupName),
			slog.String("player", input.PlayerName),
		)
		return err
	}

	s.logger.Info("player removed",
		slog.String("group", input.GroupName),
		slog.String("player", input.PlayerName),
	)
	return nil
}

// PlayersByGroup lists every player of a group
func (s *service) PlayersByGroup(ctx context.Context, input *PlayersByGroupInput) (*PlayersOutput, error) {
	if input == nil {
		return nil, apperr.Validation("list players", playerRepo.MessageGroupEmpty)
	}

	output, err := s.playerRepo.ListByGroup(ctx, &playerRepo.ListByGroupInput{
		GroupName: input.GroupName,
	})
	if err != nil {
		s.logFailure(ctx, "list players", err, slog.String("group", input.GroupName))
		return nil, err
	}

	return &PlayersOutput{
		Players: output.Players,
	}, nil
}

// PlayersByTeam lists the players of one team in a group
func (s *service) PlayersByTeam(ctx context.Context, input *PlayersByTeamInput) (*PlayersOutput, error) {
	if input == nil {
		return nil, apperr.Validation("list players", playerRepo.MessageGroupEmpty)
	}

	output, err := s.playerRepo.ListByGroupAndTeam(ctx, &playerRepo.ListByGroupAndTeamInput{
		GroupName: input.GroupName,
		Team:      input.Team,
	})
	if err != nil {
		s.logFailure(ctx, "list players", err,
			slog.String("group", input.GroupName),
			slog.String("team", string(input.Team)),
		)
		return nil, err
	}

	return &PlayersOutput{
		Players: output.Players,
	}, nil
}

// groupExists reports whether the group list holds the name, ignoring
// surrounding whitespace as the repositories do
func (s *service) groupExists(ctx context.Context, groupName string) (bool, error) {
	output, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		return false, err
	}

	return slices.Contains(output.Groups, strings.TrimSpace(groupName)), nil
}

// logFailure records storage failures at error level and rejected input at debug level
func (s *service) logFailure(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if kind := apperr.KindOf(err); kind == apperr.KindValidation || kind == apperr.KindDuplicate {
		level = slog.LevelDebug
	}

	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("op", op), slog.Any("error", err))
	for _, attr := range attrs {
		args = append(args, attr)
	}

	s.logger.Log(ctx, level, "roster operation failed", args...)
}
