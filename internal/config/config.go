package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	Bot      BotConfig      `json:"bot"`
	Network  NetworkConfig  `json:"network"`
	Registry RegistryConfig `json:"registry"`
	Logging  LoggingConfig  `json:"logging"`
}

type BotConfig struct {
	Token   string `json:"token"`
	GuildID string `json:"guild_id"`
}

type NetworkConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	HTTPPoolSize int    `json:"http_pool_size"`
	PageSize     int    `json:"page_size"`
}

type RegistryConfig struct {
	ChannelCapacity int `json:"channel_capacity"`
	StageCapacity   int `json:"stage_capacity"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

var globalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		cfg.Bot.Token = token
	}
	if guildID := os.Getenv("GUILD_ID"); guildID != "" {
		cfg.Bot.GuildID = guildID
	}

	globalConfig = &cfg
	return &cfg, nil
}

func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = DefaultConfig()
		if token := os.Getenv("DISCORD_TOKEN"); token != "" {
			cfg.Bot.Token = token
		}
		if guildID := os.Getenv("GUILD_ID"); guildID != "" {
			cfg.Bot.GuildID = guildID
		}
		globalConfig = cfg
	}
	return cfg
}

func DefaultConfig() *Config {
	return &Config{
		Network: NetworkConfig{
			APIBaseURL:   "https://discord.com/api/v10",
			HTTPPoolSize: 4,
			PageSize:     100,
		},
		Registry: RegistryConfig{
			ChannelCapacity: 4096,
			StageCapacity:   512,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func Get() *Config {
	if globalConfig == nil {
		return DefaultConfig()
	}
	return globalConfig
}
