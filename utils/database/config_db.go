package database

import (
	"database/sql"
	"errors"
	"fmt"

	"moderation-bot/model"

	"github.com/jmoiron/sqlx"
)

// CreateGuildTables ensures the guild settings tables exist. These
// tables are the bot's guild configuration store: one row per guild
// plus one row per (guild, permission level) mapping.
func CreateGuildTables(db *sqlx.DB) error {
	createGuildsTableSQL := `CREATE TABLE IF NOT EXISTS guild_configs (
		"guild_id" TEXT NOT NULL PRIMARY KEY,
		"name" TEXT,
		"jail_role_id" TEXT DEFAULT '',
		"mod_log_channel_id" TEXT DEFAULT ''
	);`
	if _, err := db.Exec(createGuildsTableSQL); err != nil {
		return fmt.Errorf("failed to create guild_configs table: %w", err)
	}

	createPermLevelsTableSQL := `CREATE TABLE IF NOT EXISTS guild_perm_levels (
		"guild_id" TEXT NOT NULL,
		"level" INTEGER NOT NULL,
		"role_id" TEXT NOT NULL,
		PRIMARY KEY (guild_id, level)
	);`
	if _, err := db.Exec(createPermLevelsTableSQL); err != nil {
		return fmt.Errorf("failed to create guild_perm_levels table: %w", err)
	}

	return nil
}

// GetGuildSettings reads the settings for a guild. Settings are read on
// every privileged interaction rather than cached, so role mapping
// changes apply immediately. A guild with no stored rows yields empty
// settings, which resolve every member to level 0.
func GetGuildSettings(db *sqlx.DB, guildID string) (*model.GuildSettings, error) {
	settings := &model.GuildSettings{
		GuildID:        guildID,
		PermLevelRoles: make(map[int]string),
	}

	var name, jailRole, modLog sql.NullString
	row := db.QueryRow("SELECT name, jail_role_id, mod_log_channel_id FROM guild_configs WHERE guild_id = ?", guildID)
	err := row.Scan(&name, &jailRole, &modLog)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load guild config for %s: %w", guildID, err)
	}
	settings.Name = name.String
	settings.JailRoleID = jailRole.String
	settings.ModLogChannelID = modLog.String

	rows, err := db.Query("SELECT level, role_id FROM guild_perm_levels WHERE guild_id = ?", guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load perm levels for %s: %w", guildID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var level int
		var roleID string
		if err := rows.Scan(&level, &roleID); err != nil {
			return nil, fmt.Errorf("failed to scan perm level row: %w", err)
		}
		settings.PermLevelRoles[level] = roleID
	}
	return settings, rows.Err()
}

func ensureGuildRow(db *sqlx.DB, guildID string) error {
	_, err := db.Exec(`INSERT INTO guild_configs (guild_id) VALUES (?) ON CONFLICT(guild_id) DO NOTHING`, guildID)
	return err
}

// SetPermLevelRole maps a permission level to a role for a guild.
func SetPermLevelRole(db *sqlx.DB, guildID string, level int, roleID string) error {
	if err := ensureGuildRow(db, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild row for %s: %w", guildID, err)
	}
	_, err := db.Exec(`INSERT INTO guild_perm_levels (guild_id, level, role_id) VALUES (?, ?, ?)
		ON CONFLICT(guild_id, level) DO UPDATE SET role_id = excluded.role_id`, guildID, level, roleID)
	if err != nil {
		return fmt.Errorf("failed to set perm level %d for guild %s: %w", level, guildID, err)
	}
	return nil
}

// SetJailRole stores the role swapped onto jailed members.
func SetJailRole(db *sqlx.DB, guildID, roleID string) error {
	if err := ensureGuildRow(db, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild row for %s: %w", guildID, err)
	}
	_, err := db.Exec("UPDATE guild_configs SET jail_role_id = ? WHERE guild_id = ?", roleID, guildID)
	if err != nil {
		return fmt.Errorf("failed to set jail role for guild %s: %w", guildID, err)
	}
	return nil
}

// SetModLogChannel stores the channel receiving moderation log embeds.
func SetModLogChannel(db *sqlx.DB, guildID, channelID string) error {
	if err := ensureGuildRow(db, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild row for %s: %w", guildID, err)
	}
	_, err := db.Exec("UPDATE guild_configs SET mod_log_channel_id = ? WHERE guild_id = ?", channelID, guildID)
	if err != nil {
		return fmt.Errorf("failed to set mod log channel for guild %s: %w", guildID, err)
	}
	return nil
}
