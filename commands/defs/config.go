package defs

import "github.com/bwmarrin/discordgo"

var permLevelChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Level 0 (e.g. Member)", Value: 0},
	{Name: "Level 1 (e.g. Support)", Value: 1},
	{Name: "Level 2 (e.g. Junior Mod)", Value: 2},
	{Name: "Level 3 (e.g. Mod)", Value: 3},
	{Name: "Level 4 (e.g. Senior Mod)", Value: 4},
	{Name: "Level 5 (e.g. Admin)", Value: 5},
	{Name: "Level 6 (e.g. Head Admin)", Value: 6},
	{Name: "Level 7 (e.g. Server Owner)", Value: 7},
}

var ConfigSetPerms = &discordgo.ApplicationCommand{
	Name:        "config_set_perms",
	Description: "Set the role for a permission level",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "level",
			Description: "Which permission level to configure",
			Required:    true,
			Choices:     permLevelChoices,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to set for the permission level",
			Required:    true,
		},
	},
}

var ConfigSetJailRole = &discordgo.ApplicationCommand{
	Name:        "config_set_jail_role",
	Description: "Set the role assigned to jailed members",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The jail role",
			Required:    true,
		},
	},
}

var ConfigSetModLog = &discordgo.ApplicationCommand{
	Name:        "config_set_modlog",
	Description: "Set the channel receiving moderation log messages",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The moderation log channel",
			Required:    true,
		},
	},
}
