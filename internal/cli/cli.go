// Package cli implements the local command line front end of the roster.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/teams/internal/models"
	"github.com/KirkDiggler/teams/internal/services/roster"
)

var (
	// ErrUsage is returned when the arguments do not name a known command
	ErrUsage = errors.New("usage error")

	// ErrNotConfirmed is returned when a group removal lacks --yes
	ErrNotConfirmed = errors.New("group removal not confirmed")
)

// Usage describes every command
const Usage = `usage:
  teams groups
  teams group create NAME
  teams group remove NAME --yes
  teams player add GROUP NAME TEAM
  teams player remove GROUP NAME
  teams players GROUP [TEAM]

TEAM is "Team A" or "Team B" (or the short form A / B).
`

// Run executes one command and writes its result to out
func Run(ctx context.Context, svc roster.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch {
	case len(args) == 1 && args[0] == "groups":
		output, err := svc.ListGroups(ctx)
		if err != nil {
			return err
		}
		if len(output.Groups) == 0 {
			fmt.Fprintln(out, "no groups yet")
			return nil
		}
		for _, name := range output.Groups {
			fmt.Fprintln(out, name)
		}
		return nil

	case len(args) == 3 && args[0] == "group" && args[1] == "create":
		if err := svc.CreateGroup(ctx, &roster.CreateGroupInput{Name: args[2]}); err != nil {
			return err
		}
		fmt.Fprintf(out, "created group %q\n", args[2])
		return nil

	case (len(args) == 3 || len(args) == 4) && args[0] == "group" && args[1] == "remove":
		if len(args) == 3 || !isYes(args[3]) {
			if len(args) == 4 {
				return ErrUsage
			}
			fmt.Fprintf(out, "Want to remove the group %q? Run the command again with --yes.\n", args[2])
			return ErrNotConfirmed
		}
		if err := svc.RemoveGroup(ctx, &roster.RemoveGroupInput{Name: args[2]}); err != nil {
			return err
		}
		fmt.Fprintf(out, "removed group %q\n", args[2])
		return nil

	case len(args) == 5 && args[0] == "player" && args[1] == "add":
		team := parseTeam(args[4])
		if err := svc.AddPlayer(ctx, &roster.AddPlayerInput{
			GroupName:  args[2],
			PlayerName: args[3],
			Team:       team,
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "added %q to %s in %q\n", args[3], team, args[2])
		return nil

	case len(args) == 4 && args[0] == "player" && args[1] == "remove":
		if err := svc.RemovePlayer(ctx, &roster.RemovePlayerInput{
			GroupName:  args[2],
			PlayerName: args[3],
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "removed %q from %q\n", args[3], args[2])
		return nil

	case len(args) == 2 && args[0] == "players":
		output, err := svc.PlayersByGroup(ctx, &roster.PlayersByGroupInput{GroupName: args[1]})
		if err != nil {
			return err
		}
		printTeams(out, models.Teams, output.Players)
		return nil

	case len(args) == 3 && args[0] == "players":
		team := parseTeam(args[2])
		output, err := svc.PlayersByTeam(ctx, &roster.PlayersByTeamInput{
			GroupName: args[1],
			Team:      team,
		})
		if err != nil {
			return err
		}
		printTeams(out, []models.Team{team}, output.Players)
		return nil
	}

	return ErrUsage
}

func isYes(arg string) bool {
	return arg == "--yes" || arg == "-y"
}

// parseTeam accepts the full label or its last letter, case-insensitively
func parseTeam(value string) models.Team {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "A", "TEAM A":
		return models.TeamA
	case "B", "TEAM B":
		return models.TeamB
	}
	return models.Team(value)
}

func printTeams(out io.Writer, teams []models.Team, players []*models.Player) {
	for _, team := range teams {
		var names []string
		for _, p := range players {
			if p.Team == team {
				names = append(names, p.Name)
			}
		}

		fmt.Fprintf(out, "%s (%d)\n", team, len(names))
		if len(names) == 0 {
			fmt.Fprintln(out, "  there is no one on this team")
		}
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
}
