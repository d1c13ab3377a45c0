package guildconfig

import (
	"fmt"
	"log"

	"moderation-bot/bot"
	"moderation-bot/utils"
	"moderation-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

func HandleSetPermsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var level int64
	var role *discordgo.Role
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "level":
			level = opt.IntValue()
		case "role":
			role = opt.RoleValue(s, i.GuildID)
		}
	}
	if role == nil {
		utils.SendErrorResponse(s, i, "Role not found.")
		return
	}

	if err := database.SetPermLevelRole(b.DB, i.GuildID, int(level), role.ID); err != nil {
		log.Printf("Failed to set perm level role: %v", err)
		utils.SendErrorResponse(s, i, "Failed to store the permission mapping.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("Perm level %d role set to %s.", level, role.Mention()))
}

func HandleSetJailRoleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var role *discordgo.Role
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "role" {
			role = opt.RoleValue(s, i.GuildID)
		}
	}
	if role == nil {
		utils.SendErrorResponse(s, i, "Role not found.")
		return
	}

	if err := database.SetJailRole(b.DB, i.GuildID, role.ID); err != nil {
		log.Printf("Failed to set jail role: %v", err)
		utils.SendErrorResponse(s, i, "Failed to store the jail role.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("Jail role set to %s.", role.Mention()))
}

func HandleSetModLogCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var channel *discordgo.Channel
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channel = opt.ChannelValue(s)
		}
	}
	if channel == nil {
		utils.SendErrorResponse(s, i, "Channel not found.")
		return
	}

	if err := database.SetModLogChannel(b.DB, i.GuildID, channel.ID); err != nil {
		log.Printf("Failed to set mod log channel: %v", err)
		utils.SendErrorResponse(s, i, "Failed to store the mod log channel.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("Moderation log channel set to <#%s>.", channel.ID))
}
