package moderation

import (
	"log"

	"moderation-bot/bot"
	"moderation-bot/model"
	"moderation-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func HandleKickCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	sendActionDM(s, i.GuildID, opts.TargetID, "kicked", opts.Reason)

	if err := s.GuildMemberDeleteWithReason(i.GuildID, opts.TargetID, opts.Reason); err != nil {
		log.Printf("Failed to kick %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to kick the user.")
		return
	}

	recordCase(s, i, b, model.CaseTypeKick, opts.TargetID, opts.Reason)
}

func HandleWarnCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	// A warn has no Discord-side action; the DM and the case are the
	// whole operation.
	sendActionDM(s, i.GuildID, opts.TargetID, "warned", opts.Reason)

	recordCase(s, i, b, model.CaseTypeWarn, opts.TargetID, opts.Reason)
}
