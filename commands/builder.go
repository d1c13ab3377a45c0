package commands

import (
	"moderation-bot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns the full slash command set registered for a
// guild. Permission gating happens at dispatch, not at registration, so
// every guild gets the same set.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Ban,
		defs.Unban,
		defs.Kick,
		defs.Warn,
		defs.Timeout,
		defs.Untimeout,
		defs.Jail,
		defs.Unjail,
		defs.Cases,
		defs.ConfigSetPerms,
		defs.ConfigSetJailRole,
		defs.ConfigSetModLog,
		defs.BotInfo,
	}
}
