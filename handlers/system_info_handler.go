package handlers

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"moderation-bot/bot"
	casesdb "moderation-bot/utils/database/cases"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	// Get CPU info
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)

	// Get memory info
	vm, _ := mem.VirtualMemory()

	// Get host info
	hostInfo, _ := host.Info()

	// Get database size
	var dbSizeMB int64
	if stat, err := os.Stat(b.GetConfig().DatabasePath); err == nil {
		dbSizeMB = stat.Size() / 1024 / 1024
	}

	guilds := len(s.State.Guilds)
	totalCases := 0
	for _, g := range s.State.Guilds {
		count, err := casesdb.CountCases(b.DB, g.ID)
		if err != nil {
			log.Printf("Failed to count cases for guild %s: %v", g.ID, err)
			continue
		}
		totalCases += count
	}

	usage := 0.0
	if len(cpuPercent) > 0 {
		usage = cpuPercent[0]
	}
	uptime := time.Duration(hostInfo.Uptime) * time.Second

	embed := &discordgo.MessageEmbed{
		Title: "Bot Info",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "OS", Value: fmt.Sprintf("%s (%s)", hostInfo.Platform, runtime.GOARCH), Inline: true},
			{Name: "CPU", Value: fmt.Sprintf("%d cores, %.1f%%", cpuCount, usage), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%% of %d MB", vm.UsedPercent, vm.Total/1024/1024), Inline: true},
			{Name: "Host Uptime", Value: uptime.Truncate(time.Minute).String(), Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d", guilds), Inline: true},
			{Name: "Cases Recorded", Value: fmt.Sprintf("%d", totalCases), Inline: true},
			{Name: "Database Size", Value: fmt.Sprintf("%d MB", dbSizeMB), Inline: true},
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending system info response: %v", err)
	}
}
