package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/teams/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x00ff00 // Green
	colorError   = 0xff0000 // Red
)

// renderGroups lists group names, one per line
func renderGroups(groups []string) *discordgo.MessageEmbed {
	description := "No groups yet. Create one with `/teams " + SubcommandGroupCreate + "`."
	if len(groups) > 0 {
		lines := make([]string, 0, len(groups))
		for _, name := range groups {
			lines = append(lines, "• "+name)
		}
		description = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "Groups",
		Description: description,
		Color:       colorSuccess,
	}
}

// renderPlayers shows one field per team with the team's players in the order they joined
func renderPlayers(groupName string, teams []models.Team, players []*models.Player) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(teams))
	for _, team := range teams {
		var names []string
		for _, p := range players {
			if p.Team == team {
				names = append(names, p.Name)
			}
		}

		value := "There is no one on this team."
		if len(names) > 0 {
			value = strings.Join(names, "\n")
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%d)", team, len(names)),
			Value:  value,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       groupName,
		Description: "Add people and separate teams",
		Color:       colorSuccess,
		Fields:      fields,
	}
}

// renderError wraps a user-facing error message
func renderError(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}
