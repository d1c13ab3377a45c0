package defs

import "github.com/bwmarrin/discordgo"

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "target",
		Description: description,
		Required:    true,
	}
}

func reasonOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "Reason for the action",
		Required:    true,
	}
}

var Ban = &discordgo.ApplicationCommand{
	Name:        "ban",
	Description: "Ban a user from the server and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to ban"),
		reasonOption(),
	},
}

var Unban = &discordgo.ApplicationCommand{
	Name:        "unban",
	Description: "Lift a ban and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user_id",
			Description: "ID of the banned user",
			Required:    true,
		},
		reasonOption(),
	},
}

var Kick = &discordgo.ApplicationCommand{
	Name:        "kick",
	Description: "Kick a user from the server and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to kick"),
		reasonOption(),
	},
}

var Warn = &discordgo.ApplicationCommand{
	Name:        "warn",
	Description: "Warn a user and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to warn"),
		reasonOption(),
	},
}

var Timeout = &discordgo.ApplicationCommand{
	Name:        "timeout",
	Description: "Time a user out and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to time out"),
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Timeout duration, e.g. 10m, 2h, 1d",
			Required:    true,
		},
		reasonOption(),
	},
}

var Untimeout = &discordgo.ApplicationCommand{
	Name:        "untimeout",
	Description: "Remove a user's timeout and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to release"),
		reasonOption(),
	},
}

var Jail = &discordgo.ApplicationCommand{
	Name:        "jail",
	Description: "Assign the jail role to a user and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to jail"),
		reasonOption(),
	},
}

var Unjail = &discordgo.ApplicationCommand{
	Name:        "unjail",
	Description: "Remove the jail role from a user and record a case",
	Options: []*discordgo.ApplicationCommandOption{
		userOption("User to release"),
		reasonOption(),
	},
}
