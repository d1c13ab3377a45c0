package moderation

import (
	"log"

	"moderation-bot/bot"
	"moderation-bot/model"
	"moderation-bot/utils"
	"moderation-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

func jailRole(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) (string, bool) {
	settings, err := database.GetGuildSettings(b.DB, i.GuildID)
	if err != nil {
		log.Printf("Failed to load guild settings for %s: %v", i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to load server configuration.")
		return "", false
	}
	if settings.JailRoleID == "" {
		utils.SendFollowUpError(s, i.Interaction, "No jail role configured. Use /config_set_jail_role first.")
		return "", false
	}
	return settings.JailRoleID, true
}

func HandleJailCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	roleID, ok := jailRole(s, i, b)
	if !ok {
		return
	}

	sendActionDM(s, i.GuildID, opts.TargetID, "jailed", opts.Reason)

	if err := s.GuildMemberRoleAdd(i.GuildID, opts.TargetID, roleID); err != nil {
		log.Printf("Failed to jail %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to assign the jail role.")
		return
	}

	recordCase(s, i, b, model.CaseTypeJail, opts.TargetID, opts.Reason)
}

func HandleUnjailCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	roleID, ok := jailRole(s, i, b)
	if !ok {
		return
	}

	if err := s.GuildMemberRoleRemove(i.GuildID, opts.TargetID, roleID); err != nil {
		log.Printf("Failed to unjail %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to remove the jail role.")
		return
	}

	recordCase(s, i, b, model.CaseTypeUnjail, opts.TargetID, opts.Reason)
}
