package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Alerts   AlertsConfig   `koanf:"alerts"`
	Notify   NotifyConfig   `koanf:"notify"`
	Draft    DraftConfig    `koanf:"draft"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

type AlertsConfig struct {
	TaskPollSeconds  int    `koanf:"task_poll_seconds"`
	EventPollSeconds int    `koanf:"event_poll_seconds"`
	DefaultSound     string `koanf:"default_sound"`
}

type NotifyConfig struct {
	Desktop  bool   `koanf:"desktop"`
	Sound    bool   `koanf:"sound"`
	SoundDir string `koanf:"sound_dir"`
	EmailTo  string `koanf:"email_to"`
	SMSTo    string `koanf:"sms_to"`
}

type DraftConfig struct {
	APIKey    string `koanf:"api_key"`
	Model     string `koanf:"model"`
	MaxTokens int    `koanf:"max_tokens"`
	Timeout   int    `koanf:"timeout"`
}

// Load builds the config from defaults, an optional YAML file, and
// DAYDASH_-prefixed environment variables, in that order of precedence.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// Sections are single words, so the first underscore splits section
	// from key and later underscores stay in the key:
	// DAYDASH_ALERTS_TASK_POLL_SECONDS -> alerts.task_poll_seconds.
	if err := k.Load(env.Provider("DAYDASH_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "DAYDASH_"))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// Convenience env vars that don't follow the koanf key shape.
	if apiKey := os.Getenv("DAYDASH_DEEPSEEK_API_KEY"); apiKey != "" {
		k.Set("draft.api_key", apiKey)
	}
	if dbPath := os.Getenv("DAYDASH_DB_PATH"); dbPath != "" {
		k.Set("database.path", dbPath)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.Notify.SoundDir = expandPath(cfg.Notify.SoundDir)

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Alerts.TaskPollSeconds <= 0 {
		return fmt.Errorf("task_poll_seconds must be positive")
	}

	if c.Alerts.EventPollSeconds <= 0 {
		return fmt.Errorf("event_poll_seconds must be positive")
	}

	if c.Draft.MaxTokens <= 0 {
		return fmt.Errorf("draft max_tokens must be positive")
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
