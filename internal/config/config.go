package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Library
		AI
		ExpirySweep
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Library struct {
		Dir string
	}
	AI struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	ExpirySweep struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8288)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("library_dir", DefaultLibraryDir)
	v.SetDefault("ai_base_url", "https://api.openai.com/v1")
	v.SetDefault("ai_api_key", "")
	v.SetDefault("ai_model", "gpt-4o-mini")
	v.SetDefault("expiry_sweep_enabled", true)
	v.SetDefault("expiry_sweep_schedule", "0 * * * *") // Hourly at :00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Library: Library{
			Dir: v.GetString("LIBRARY_DIR"),
		},
		AI: AI{
			BaseURL: v.GetString("AI_BASE_URL"),
			APIKey:  v.GetString("AI_API_KEY"),
			Model:   v.GetString("AI_MODEL"),
		},
		ExpirySweep: ExpirySweep{
			Enabled:  v.GetBool("EXPIRY_SWEEP_ENABLED"),
			Schedule: v.GetString("EXPIRY_SWEEP_SCHEDULE"),
		},
	}
}
