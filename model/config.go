package model

// MaxPermLevel is the highest rank in the per-guild permission ladder.
// Guild owners and configured sysadmins always resolve to it.
const MaxPermLevel = 7

// GuildSettings holds the per-guild configuration stored in the guild
// database: the permission ladder and the channel/role ids the
// moderation commands need. It is read fresh for every privileged
// interaction so config edits take effect immediately.
type GuildSettings struct {
	GuildID         string
	Name            string
	PermLevelRoles  map[int]string // permission level -> role ID
	JailRoleID      string
	ModLogChannelID string
}

// Config stores the process-level configuration.
type Config struct {
	BotToken        string
	AppID           string
	LogChannelID    string
	SysAdminUserIDs []string
	DatabasePath    string
	CasesPageSize   int
}
