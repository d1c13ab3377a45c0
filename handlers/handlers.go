package handlers

import (
	"log"
	"strings"

	"moderation-bot/bot"
	"moderation-bot/handlers/cases"
	"moderation-bot/handlers/guildconfig"
	mod "moderation-bot/handlers/moderation"
	"moderation-bot/model"
	"moderation-bot/moderation"
	"moderation-bot/utils"
	"moderation-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// requiredLevels gates each privileged command on the permission
// ladder. Commands absent from the map are open to everyone.
var requiredLevels = map[string]int{
	"warn":                 1,
	"kick":                 2,
	"timeout":              2,
	"untimeout":            2,
	"jail":                 2,
	"unjail":               2,
	"ban":                  3,
	"unban":                3,
	"cases":                2,
	"config_set_perms":     model.MaxPermLevel,
	"config_set_jail_role": model.MaxPermLevel,
	"config_set_modlog":    model.MaxPermLevel,
}

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	b.ComponentHandlers = componentHandlers(b)
	addHandlers(b)
}

// gate wraps a handler with the authorization check for its command.
// Rejection happens before the handler runs, so a denied actor never
// reaches any mutating operation.
func gate(b *bot.Bot, name string, h func(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil || i.Member.User == nil {
			utils.SendErrorResponse(s, i, "This command can only be used in a server.")
			return
		}

		required, gated := requiredLevels[name]
		if gated {
			settings, err := database.GetGuildSettings(b.DB, i.GuildID)
			if err != nil {
				log.Printf("Failed to load guild settings for %s: %v", i.GuildID, err)
				utils.SendErrorResponse(s, i, "Failed to load server configuration.")
				return
			}
			ownerID := guildOwnerID(s, i.GuildID)
			cfg := b.GetConfig()
			if !moderation.Authorize(i.Member.User.ID, i.Member.Roles, ownerID, cfg.SysAdminUserIDs, settings.PermLevelRoles, required) {
				utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
				return
			}
		}

		h(s, i, b)
	}
}

func guildOwnerID(s *discordgo.Session, guildID string) string {
	if g, err := s.State.Guild(guildID); err == nil && g.OwnerID != "" {
		return g.OwnerID
	}
	g, err := s.Guild(guildID)
	if err != nil {
		log.Printf("Failed to fetch guild %s for owner lookup: %v", guildID, err)
		return ""
	}
	return g.OwnerID
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	handlers := map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot){
		"ban":                  mod.HandleBanCommand,
		"unban":                mod.HandleUnbanCommand,
		"kick":                 mod.HandleKickCommand,
		"warn":                 mod.HandleWarnCommand,
		"timeout":              mod.HandleTimeoutCommand,
		"untimeout":            mod.HandleUntimeoutCommand,
		"jail":                 mod.HandleJailCommand,
		"unjail":               mod.HandleUnjailCommand,
		"cases":                cases.HandleCasesCommand,
		"config_set_perms":     guildconfig.HandleSetPermsCommand,
		"config_set_jail_role": guildconfig.HandleSetJailRoleCommand,
		"config_set_modlog":    guildconfig.HandleSetModLogCommand,
	}

	wrapped := make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate), len(handlers)+1)
	for name, h := range handlers {
		wrapped[name] = gate(b, name, h)
	}
	wrapped["botinfo"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		SystemInfoHandler(s, i, b)
	}
	return wrapped
}

func componentHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		cases.NavPrefix: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			cases.HandleCasesComponent(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			customID := i.MessageComponentData().CustomID
			for prefix, h := range b.ComponentHandlers {
				if strings.HasPrefix(customID, prefix+":") {
					h(s, i)
					return
				}
			}
		}
	})
}
