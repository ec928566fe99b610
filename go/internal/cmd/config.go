package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Game struct {
		AuctionWindowMinutes int   `yaml:"auction_window_minutes"`
		AuctionLotSize       int   `yaml:"auction_lot_size"`
		AuctionMaxDraws      int   `yaml:"auction_max_draws"`
		TickIntervalSeconds  int   `yaml:"tick_interval_seconds"`
		StartingBudget       int64 `yaml:"starting_budget"`
		StartingCoins        int64 `yaml:"starting_coins"`
		RaceLaps             int   `yaml:"race_laps"`
	} `yaml:"game"`
	Auth struct {
		SessionTTLHours int `yaml:"session_ttl_hours"`
	} `yaml:"auth"`
}

func defaultConfig() *Config {
	var config Config
	config.Game.AuctionWindowMinutes = 20
	config.Game.AuctionLotSize = 10
	config.Game.AuctionMaxDraws = 50
	config.Game.TickIntervalSeconds = 60
	config.Game.StartingBudget = 10_000_000
	config.Game.StartingCoins = 50
	config.Game.RaceLaps = 10
	config.Auth.SessionTTLHours = 24
	return &config
}

func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

func (c *Config) auctionWindow() time.Duration {
	return time.Duration(c.Game.AuctionWindowMinutes) * time.Minute
}

func (c *Config) tickInterval() time.Duration {
	return time.Duration(c.Game.TickIntervalSeconds) * time.Second
}

func (c *Config) sessionTTL() time.Duration {
	return time.Duration(c.Auth.SessionTTLHours) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
