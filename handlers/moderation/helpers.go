package moderation

import (
	"fmt"
	"log"

	"moderation-bot/bot"
	"moderation-bot/handlers/cases"
	"moderation-bot/model"
	"moderation-bot/utils"
	"moderation-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// actionOptions carries the parsed slash command input shared by every
// moderation action.
type actionOptions struct {
	TargetID string
	Target   *discordgo.User // nil when only an id was supplied (unban)
	Reason   string
	Duration string
}

func parseActionOptions(s *discordgo.Session, i *discordgo.InteractionCreate) actionOptions {
	opts := actionOptions{}
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "target":
			opts.Target = opt.UserValue(s)
			if opts.Target != nil {
				opts.TargetID = opts.Target.ID
			}
		case "user_id":
			opts.TargetID = opt.StringValue()
		case "reason":
			opts.Reason = opt.StringValue()
		case "duration":
			opts.Duration = opt.StringValue()
		}
	}
	return opts
}

// checkTarget rejects self-moderation and actions against bots before
// any state is touched.
func checkTarget(s *discordgo.Session, i *discordgo.InteractionCreate, opts actionOptions) bool {
	if opts.TargetID == i.Member.User.ID {
		utils.SendFollowUpError(s, i.Interaction, "You cannot moderate yourself.")
		return false
	}
	if opts.TargetID == s.State.User.ID {
		utils.SendFollowUpError(s, i.Interaction, "You cannot moderate the bot.")
		return false
	}
	if opts.Target != nil && opts.Target.Bot {
		utils.SendFollowUpError(s, i.Interaction, "You cannot moderate another bot.")
		return false
	}
	return true
}

// sendActionDM notifies the target before the action lands, so the
// message still reaches them when the action removes them from the
// guild. Failures are expected (closed DMs, already gone) and only
// logged.
func sendActionDM(s *discordgo.Session, guildID, targetID, verb, reason string) {
	guildName := "the server"
	if g, err := s.State.Guild(guildID); err == nil {
		guildName = g.Name
	}

	channel, err := s.UserChannelCreate(targetID)
	if err != nil {
		log.Printf("Could not open DM with %s: %v", targetID, err)
		return
	}
	_, err = s.ChannelMessageSend(channel.ID, fmt.Sprintf("You have been %s in %s.\nReason: %s", verb, guildName, reason))
	if err != nil {
		log.Printf("Could not DM %s: %v", targetID, err)
	}
}

// recordCase persists the case for an already-executed Discord action
// and delivers the response. The action is never re-attempted: if the
// insert fails the handler reports that the action succeeded but went
// unrecorded.
func recordCase(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, caseType model.CaseType, targetID, reason string) {
	record, err := b.Cases.CreateCase(i.GuildID, targetID, i.Member.User.ID, caseType, reason)
	if err != nil {
		log.Printf("Error saving case for %s in guild %s: %v", caseType, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "The action was applied but the case could not be recorded.")
		return
	}

	embed := cases.BuildCaseEmbed(b.Identities, record, "created")
	utils.SendFollowUpEmbed(s, i.Interaction, embed, nil)
	logToModChannel(s, b, i.GuildID, embed)
}

func logToModChannel(s *discordgo.Session, b *bot.Bot, guildID string, embed *discordgo.MessageEmbed) {
	settings, err := database.GetGuildSettings(b.DB, guildID)
	if err != nil {
		log.Printf("Failed to load guild settings for mod log: %v", err)
		return
	}
	if settings.ModLogChannelID == "" {
		return
	}
	if _, err := s.ChannelMessageSendEmbed(settings.ModLogChannelID, embed); err != nil {
		log.Printf("Failed to send mod log message: %v", err)
	}
}
