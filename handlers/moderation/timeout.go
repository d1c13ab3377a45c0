package moderation

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"moderation-bot/bot"
	"moderation-bot/model"
	"moderation-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const maxTimeout = 28 * 24 * time.Hour // Discord's communication timeout ceiling

// parseTimeoutDuration accepts Go duration syntax plus a day suffix,
// e.g. 30m, 2h, 1d.
func parseTimeoutDuration(input string) (time.Duration, error) {
	if strings.HasSuffix(input, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(input, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", input)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(input)
}

func HandleTimeoutCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	duration, err := parseTimeoutDuration(opts.Duration)
	if err != nil || duration <= 0 || duration > maxTimeout {
		utils.SendFollowUpError(s, i.Interaction, "Invalid duration. Use formats like 30m, 2h or 1d, up to 28d.")
		return
	}

	sendActionDM(s, i.GuildID, opts.TargetID, "timed out for "+opts.Duration, opts.Reason)

	until := time.Now().Add(duration)
	if err := s.GuildMemberTimeout(i.GuildID, opts.TargetID, &until); err != nil {
		log.Printf("Failed to time out %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to time the user out.")
		return
	}

	recordCase(s, i, b, model.CaseTypeTimeout, opts.TargetID, opts.Reason)
}

func HandleUntimeoutCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	opts := parseActionOptions(s, i)
	if !checkTarget(s, i, opts) {
		return
	}

	if err := s.GuildMemberTimeout(i.GuildID, opts.TargetID, nil); err != nil {
		log.Printf("Failed to clear timeout for %s in guild %s: %v", opts.TargetID, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to remove the timeout.")
		return
	}

	recordCase(s, i, b, model.CaseTypeUntimeout, opts.TargetID, opts.Reason)
}
