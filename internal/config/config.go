package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Network   NetworkConfig   `toml:"network"`
	Game      GameConfig      `toml:"game"`
	Logging   LoggingConfig   `toml:"logging"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	ID        int    `toml:"id"`
	StartTime int64  // set at boot, not from config
}

type NetworkConfig struct {
	BindAddress  string        `toml:"bind_address"`
	InQueueSize  int           `toml:"in_queue_size"`
	OutQueueSize int           `toml:"out_queue_size"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	PingInterval time.Duration `toml:"ping_interval"`
}

// GameConfig holds server-wide defaults for match administration that
// aren't part of the per-game option catalog (§4.H covers those).
type GameConfig struct {
	ForceEndTurnTimeout time.Duration `toml:"force_end_turn_timeout"`
	MaxGames            int           `toml:"max_games"`
	AllowPractice       bool          `toml:"allow_practice"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type RateLimitConfig struct {
	Enabled                bool `toml:"enabled"`
	LoginAttemptsPerMinute int  `toml:"login_attempts_per_minute"`
	MessagesPerSecond      int  `toml:"messages_per_second"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "catanserver",
			ID:   1,
		},
		Network: NetworkConfig{
			BindAddress:  "0.0.0.0:8880",
			InQueueSize:  64,
			OutQueueSize: 256,
			WriteTimeout: 10 * time.Second,
			ReadTimeout:  5 * time.Minute,
			PingInterval: 30 * time.Second,
		},
		Game: GameConfig{
			ForceEndTurnTimeout: 2 * time.Minute,
			MaxGames:            512,
			AllowPractice:       true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		RateLimit: RateLimitConfig{
			Enabled:                true,
			LoginAttemptsPerMinute: 10,
			MessagesPerSecond:      20,
		},
	}
}
