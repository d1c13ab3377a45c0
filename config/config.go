package config

import (
	"log"
	"os"
	"strings"

	"moderation-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables and config.yaml.
// Secrets and deployment ids come from the environment; tunable defaults
// (database path, listing page size) come from the config file.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, logging will be disabled")
	}

	var sysAdmins []string
	if raw := os.Getenv("SYSADMIN_USER_IDS"); raw != "" {
		sysAdmins = strings.Split(raw, ",")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("data")
	v.AddConfigPath(".")
	v.SetDefault("database_path", "data/moderation.db")
	v.SetDefault("cases_page_size", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("Warning: config.yaml not found, using defaults")
	}

	cfg := &model.Config{
		BotToken:        token,
		AppID:           appID,
		LogChannelID:    logChannelID,
		SysAdminUserIDs: sysAdmins,
		DatabasePath:    v.GetString("database_path"),
		CasesPageSize:   v.GetInt("cases_page_size"),
	}

	return cfg, nil
}
