package moderation

import (
	"log"

	"moderation-bot/bot"
	"moderation-bot/model"
	"moderation-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func HandleBanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	sendActionDM(s, i.GuildID, opts.TargetID, "banned", opts.Reason)

	if err := s.GuildBanCreateWithReason(i.GuildID, opts.TargetID, opts.Reason, 0); err != nil {
		log.Printf("Failed to ban %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to ban the user.")
		return
	}

	recordCase(s, i, b, model.CaseTypeBan, opts.TargetID, opts.Reason)
}

func HandleUnbanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	if err := s.GuildBanDelete(i.GuildID, opts.TargetID); err != nil {
		log.Printf("Failed to unban %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to unban the user. Are they banned?")
		return
	}

	recordCase(s, i, b, model.CaseTypeUnban, opts.TargetID, opts.Reason)
}
