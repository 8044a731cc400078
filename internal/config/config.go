package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Data     DataConfig
	OCR      OCRConfig
	Schedule ScheduleConfig
	// Stakes overrides the assumed cost per simple wager, keyed by game id.
	Stakes   map[string]float64
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// AdminConfig holds the single admin account allowed to trigger runs
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// DataConfig holds the data directory layout shared with the frontend
type DataConfig struct {
	BetsDir    string
	DrawsDir   string
	ResultsDir string
	UploadsDir string
}

// OCRConfig holds the slip-extraction API configuration
type OCRConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	MockAPI bool
}

// ScheduleConfig holds the automatic verification schedule
type ScheduleConfig struct {
	Enabled bool
	Cron    string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Admin.Username", "admin")
	viper.SetDefault("Data.BetsDir", "apostas")
	viper.SetDefault("Data.DrawsDir", "dados")
	viper.SetDefault("Data.ResultsDir", "resultados")
	viper.SetDefault("Data.UploadsDir", "uploads")
	viper.SetDefault("OCR.BaseURL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("OCR.Model", "gemini-2.0-flash")
	viper.SetDefault("OCR.MockAPI", true)
	viper.SetDefault("Schedule.Enabled", false)
	viper.SetDefault("Schedule.Cron", "0 22 * * *")
	viper.SetDefault("LogLevel", "info")
}
