package cases

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"moderation-bot/bot"
	"moderation-bot/model"
	"moderation-bot/moderation"
	"moderation-bot/utils"
	casesdb "moderation-bot/utils/database/cases"

	"github.com/bwmarrin/discordgo"
)

// NavPrefix is the custom-id prefix of the case list pagination
// buttons. The full id carries the page plus the active filters:
// cases_nav:<page|end>:<type>:<target>:<moderator>.
const NavPrefix = "cases_nav"

func HandleCasesCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]

	switch sub.Name {
	case "view":
		handleView(s, i, b, sub.Options)
	case "modify":
		handleModify(s, i, b, sub.Options)
	}
}

func handleView(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var caseNumber int64
	var filters casesdb.Filters

	for _, opt := range options {
		switch opt.Name {
		case "case_number":
			caseNumber = opt.IntValue()
		case "type":
			filters.CaseType = model.CaseType(opt.StringValue())
		case "target":
			filters.TargetID = opt.UserValue(nil).ID
		case "moderator":
			filters.ModeratorID = opt.UserValue(nil).ID
		}
	}

	if caseNumber > 0 {
		viewSingleCase(s, i, b, caseNumber)
		return
	}
	listCases(s, i, b, filters, 1)
}

func viewSingleCase(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, caseNumber int64) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	record, err := b.Cases.ViewCase(i.GuildID, caseNumber)
	if errors.Is(err, moderation.ErrCaseNotFound) {
		utils.SendFollowUpError(s, i.Interaction, "Case not found.")
		return
	}
	if err != nil {
		log.Printf("Error viewing case %d in guild %s: %v", caseNumber, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to look up the case.")
		return
	}

	embed := BuildCaseEmbed(b.Identities, record, "viewed")
	utils.SendFollowUpEmbed(s, i.Interaction, embed, nil)
}

func listCases(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, filters casesdb.Filters, page int) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	matched, total, err := b.Cases.ListCases(i.GuildID, filters)
	if err != nil {
		log.Printf("Error listing cases for guild %s: %v", i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to query cases.")
		return
	}

	pages := moderation.Paginate(matched, b.Cases.PageSize(), total)
	if page < 1 {
		page = 1
	}
	if page > len(pages) {
		page = len(pages)
	}

	embed := BuildCaseListEmbed(s, i.GuildID, pages[page-1])
	components := utils.CreatePaginationComponents(page, len(pages), NavPrefix,
		string(filters.CaseType), filters.TargetID, filters.ModeratorID)
	utils.SendFollowUpEmbed(s, i.Interaction, embed, components)
}

func handleModify(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var caseNumber int64
	var reason *string
	var status *model.CaseStatus

	for _, opt := range options {
		switch opt.Name {
		case "case_number":
			caseNumber = opt.IntValue()
		case "reason":
			v := opt.StringValue()
			reason = &v
		case "status":
			v := model.CaseStatus(opt.StringValue())
			status = &v
		}
	}

	if reason == nil && status == nil {
		utils.SendErrorResponse(s, i, "Provide a new reason or status to modify the case.")
		return
	}

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	record, err := b.Cases.UpdateCase(i.GuildID, caseNumber, reason, status)
	if errors.Is(err, moderation.ErrCaseNotFound) {
		utils.SendFollowUpError(s, i.Interaction, "Case not found.")
		return
	}
	if err != nil {
		log.Printf("Error updating case %d in guild %s: %v", caseNumber, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Failed to update the case.")
		return
	}

	embed := BuildCaseEmbed(b.Identities, record, "updated")
	utils.SendFollowUpEmbed(s, i.Interaction, embed, nil)
}

// HandleCasesComponent services the pagination buttons under a case
// listing. The end button strips the components and closes the session;
// back/next re-query with the encoded filters and re-render.
func HandleCasesComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 5 {
		log.Printf("Malformed case nav custom id: %s", i.MessageComponentData().CustomID)
		return
	}

	if parts[1] == "end" {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     i.Message.Embeds,
				Components: []discordgo.MessageComponent{},
			},
		})
		if err != nil {
			log.Printf("Error closing case list session: %v", err)
		}
		return
	}

	page, err := strconv.Atoi(parts[1])
	if err != nil {
		log.Printf("Invalid case nav page %q: %v", parts[1], err)
		return
	}
	filters := casesdb.Filters{
		CaseType:    model.CaseType(parts[2]),
		TargetID:    parts[3],
		ModeratorID: parts[4],
	}

	matched, total, err := b.Cases.ListCases(i.GuildID, filters)
	if err != nil {
		log.Printf("Error listing cases for guild %s: %v", i.GuildID, err)
		return
	}

	pages := moderation.Paginate(matched, b.Cases.PageSize(), total)
	if page < 1 {
		page = 1
	}
	if page > len(pages) {
		page = len(pages)
	}

	embed := BuildCaseListEmbed(s, i.GuildID, pages[page-1])
	components := utils.CreatePaginationComponents(page, len(pages), NavPrefix,
		string(filters.CaseType), filters.TargetID, filters.ModeratorID)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Printf("Error updating case list page: %v", err)
	}
}
