package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/teams/internal/common/apperr"
	"github.com/KirkDiggler/teams/internal/models"
	"github.com/KirkDiggler/teams/internal/services/roster"
	"github.com/bwmarrin/discordgo"
)

// Subcommand names
const (
	SubcommandGroupCreate  = "group-create"
	SubcommandGroupRemove  = "group-remove"
	SubcommandGroups       = "groups"
	SubcommandPlayerAdd    = "player-add"
	SubcommandPlayerRemove = "player-remove"
	SubcommandPlayers      = "players"
)

// Option names
const (
	optionName    = "name"
	optionGroup   = "group"
	optionTeam    = "team"
	optionConfirm = "confirm"
)

// TeamsCommand handles the /teams command
type TeamsCommand struct {
	BaseCommand
	rosterService roster.Service
}

// reply is what a subcommand wants sent back to the user
type reply struct {
	content   string
	embed     *discordgo.MessageEmbed
	ephemeral bool
	// notice replies are ephemeral but not errors
	notice bool
}

// NewTeamsCommand creates a new teams command handler
func NewTeamsCommand(rosterService roster.Service) *TeamsCommand {
	groupOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optionGroup,
			Description: description,
			Required:    true,
		}
	}

	return &TeamsCommand{
		BaseCommand: BaseCommand{
			Name:        "teams",
			Description: "Organize people into groups and split them into two teams",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandGroupCreate,
					Description: "Create a new group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "Group name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandGroupRemove,
					Description: "Remove a group and everyone in it",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "Group name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        optionConfirm,
							Description: "Set to True to remove the group and its people",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandGroups,
					Description: "List every group",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandPlayerAdd,
					Description: "Add a person to a team",
					Options: []*discordgo.ApplicationCommandOption{
						groupOption("Group to add the person to"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "Person's name",
							Required:    true,
						},
						teamOption(true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandPlayerRemove,
					Description: "Remove a person from a group",
					Options: []*discordgo.ApplicationCommandOption{
						groupOption("Group to remove the person from"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "Person's name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandPlayers,
					Description: "Show the teams of a group",
					Options: []*discordgo.ApplicationCommandOption{
						groupOption("Group to show"),
						teamOption(false),
					},
				},
			},
		},
		rosterService: rosterService,
	}
}

func teamOption(required bool) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Teams))
	for _, team := range models.Teams {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(team),
			Value: string(team),
		})
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionTeam,
		Description: "Team",
		Required:    required,
		Choices:     choices,
	}
}

// Handle processes a Discord interaction for the teams command
func (c *TeamsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	subcommand := data.Options[0]
	values := make(map[string]string, len(subcommand.Options))
	for _, opt := range subcommand.Options {
		values[opt.Name] = optionValue(opt)
	}

	r := c.execute(context.Background(), subcommand.Name, values)

	switch {
	case r.embed != nil:
		return RespondWithEmbed(s, i, r.embed)
	case r.notice:
		return RespondWithEphemeralMessage(s, i, r.content)
	case r.ephemeral:
		return RespondWithError(s, i, r.content)
	default:
		return RespondWithMessage(s, i, r.content)
	}
}

// execute runs one subcommand against the roster service
func (c *TeamsCommand) execute(ctx context.Context, subcommand string, values map[string]string) *reply {
	switch subcommand {
	case SubcommandGroupCreate:
		name := values[optionName]
		if err := c.rosterService.CreateGroup(ctx, &roster.CreateGroupInput{Name: name}); err != nil {
			return errorReply(err)
		}
		return &reply{content: fmt.Sprintf("Group **%s** created. Add people with `/teams %s`.", name, SubcommandPlayerAdd)}

	case SubcommandGroupRemove:
		name := values[optionName]
		if values[optionConfirm] != "true" {
			return &reply{
				content: fmt.Sprintf("Want to remove the group **%s**? Run `/teams %s` again with %s set to True.", name, SubcommandGroupRemove, optionConfirm),
				notice:  true,
			}
		}
		if err := c.rosterService.RemoveGroup(ctx, &roster.RemoveGroupInput{Name: name}); err != nil {
			return errorReply(err)
		}
		return &reply{content: fmt.Sprintf("Group **%s** removed.", name)}

	case SubcommandGroups:
		output, err := c.rosterService.ListGroups(ctx)
		if err != nil {
			return errorReply(err)
		}
		return &reply{embed: renderGroups(output.Groups)}

	case SubcommandPlayerAdd:
		groupName, name := values[optionGroup], values[optionName]
		team := models.Team(values[optionTeam])
		if err := c.rosterService.AddPlayer(ctx, &roster.AddPlayerInput{
			GroupName:  groupName,
			PlayerName: name,
			Team:       team,
		}); err != nil {
			return errorReply(err)
		}
		return &reply{content: fmt.Sprintf("**%s** joined %s in **%s**.", name, team, groupName)}

	case SubcommandPlayerRemove:
		groupName, name := values[optionGroup], values[optionName]
		if err := c.rosterService.RemovePlayer(ctx, &roster.RemovePlayerInput{
			GroupName:  groupName,
			PlayerName: name,
		}); err != nil {
			return errorReply(err)
		}
		return &reply{content: fmt.Sprintf("**%s** is no longer in **%s**.", name, groupName)}

	case SubcommandPlayers:
		groupName := values[optionGroup]
		if team := models.Team(values[optionTeam]); team != "" {
			output, err := c.rosterService.PlayersByTeam(ctx, &roster.PlayersByTeamInput{
				GroupName: groupName,
				Team:      team,
			})
			if err != nil {
				return errorReply(err)
			}
			return &reply{embed: renderPlayers(groupName, []models.Team{team}, output.Players)}
		}

		output, err := c.rosterService.PlayersByGroup(ctx, &roster.PlayersByGroupInput{GroupName: groupName})
		if err != nil {
			return errorReply(err)
		}
		return &reply{embed: renderPlayers(groupName, models.Teams, output.Players)}

	default:
		return &reply{content: fmt.Sprintf("Unknown subcommand: %s", subcommand), ephemeral: true}
	}
}

// optionValue flattens an option to the string execute works with
func optionValue(opt *discordgo.ApplicationCommandInteractionDataOption) string {
	if opt.Type == discordgo.ApplicationCommandOptionBoolean {
		return strconv.FormatBool(opt.BoolValue())
	}
	return opt.StringValue()
}

func errorReply(err error) *reply {
	return &reply{content: apperr.UserMessage(err), ephemeral: true}
}
