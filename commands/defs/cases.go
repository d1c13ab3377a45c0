package defs

import "github.com/bwmarrin/discordgo"

var caseTypeChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Ban", Value: "BAN"},
	{Name: "Unban", Value: "UNBAN"},
	{Name: "Kick", Value: "KICK"},
	{Name: "Timeout", Value: "TIMEOUT"},
	{Name: "Untimeout", Value: "UNTIMEOUT"},
	{Name: "Warn", Value: "WARN"},
	{Name: "Jail", Value: "JAIL"},
	{Name: "Unjail", Value: "UNJAIL"},
}

var Cases = &discordgo.ApplicationCommand{
	Name:        "cases",
	Description: "Manage moderation cases in the server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "view",
			Description: "View a case by number, or list cases with filters",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "case_number",
					Description: "Case number to view",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Filter by case type",
					Required:    false,
					Choices:     caseTypeChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "target",
					Description: "Filter by target user",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "moderator",
					Description: "Filter by moderator",
					Required:    false,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "modify",
			Description: "Modify a case's reason or status",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "case_number",
					Description: "Case number to modify",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "New reason",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "status",
					Description: "New status",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Active", Value: "active"},
						{Name: "Inactive", Value: "inactive"},
					},
				},
			},
		},
	},
}
