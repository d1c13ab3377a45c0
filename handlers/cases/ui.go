package cases

import (
	"fmt"
	"log"
	"time"

	"moderation-bot/model"
	"moderation-bot/moderation"

	"github.com/bwmarrin/discordgo"
)

const colorCase = 0x2B2D31

// Presentation glyphs for the case taxonomy. A type the classifier
// rejects renders the placeholder instead of breaking the listing.
const placeholderGlyph = "❔"

var categoryGlyphs = map[string]string{
	"ban":     "🔨",
	"kick":    "👢",
	"timeout": "⏳",
	"warn":    "⚠️",
	"jail":    "🔒",
}

var polarityGlyphs = map[moderation.Polarity]string{
	moderation.PolarityApplied: "➕",
	moderation.PolarityRevoked: "➖",
}

func statusGlyph(status model.CaseStatus) string {
	switch status {
	case model.CaseStatusActive:
		return "🟢"
	case model.CaseStatusInactive:
		return "⚪"
	default:
		return "▪️"
	}
}

func typeGlyphs(t model.CaseType) string {
	c, err := moderation.Classify(t)
	if err != nil {
		log.Printf("Classification gap: %v", err)
		return placeholderGlyph
	}
	return polarityGlyphs[c.Polarity] + " " + categoryGlyphs[c.Category]
}

// displayName resolves an id for embed fields, degrading to "unknown
// user" when the identity is gone rather than failing the view.
func displayName(resolver *moderation.IdentityResolver, guildID, userID string) string {
	identity, err := resolver.Resolve(guildID, userID)
	if err != nil {
		if !moderation.Unresolvable(err) {
			log.Printf("Identity lookup failed for %s: %v", userID, err)
		}
		return "unknown user"
	}
	return identity.Username
}

// BuildCaseEmbed renders a single case for a view/update response.
func BuildCaseEmbed(resolver *moderation.IdentityResolver, record *model.CaseRecord, action string) *discordgo.MessageEmbed {
	moderatorName := displayName(resolver, record.GuildID, record.ModeratorID)
	targetName := displayName(resolver, record.GuildID, record.TargetID)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Case #%04d (%s) %s", record.CaseNumber, record.CaseType, action),
		Color: colorCase,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Moderator",
				Value:  fmt.Sprintf("__%s__\n`%s`", moderatorName, record.ModeratorID),
				Inline: true,
			},
			{
				Name:   "Target",
				Value:  fmt.Sprintf("__%s__\n`%s`", targetName, record.TargetID),
				Inline: true,
			},
			{
				Name:  "Reason",
				Value: "> " + record.Reason,
			},
		},
		Timestamp: time.Unix(record.CreatedAt, 0).Format(time.RFC3339),
	}

	if record.CaseType.Revocable() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Status",
			Value:  statusGlyph(record.Status) + " " + string(record.Status),
			Inline: true,
		})
	}

	return embed
}

// BuildCaseListEmbed renders one page of a case listing. The title
// always carries the guild's full case count, even for filtered views.
func BuildCaseListEmbed(s *discordgo.Session, guildID string, page moderation.Page) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: page.Header,
		Color: colorCase,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d/%d", page.Index+1, page.Count),
		},
	}

	if g, err := s.State.Guild(guildID); err == nil {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: g.Name, IconURL: g.IconURL("")}
	}

	if page.Empty {
		embed.Description = "No cases found."
		return embed
	}

	description := "**Case**    **Type**   **Date**\n"
	for _, record := range page.Cases {
		description += fmt.Sprintf("%s `%04d`  %s  *<t:%d:R>*\n",
			statusGlyph(record.Status), record.CaseNumber, typeGlyphs(record.CaseType), record.CreatedAt)
	}
	embed.Description = description

	return embed
}
