package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"database": map[string]interface{}{
			"path": "~/.daydash/daydash.db",
		},
		"alerts": map[string]interface{}{
			"task_poll_seconds":  2,
			"event_poll_seconds": 10,
			"default_sound":      "chime",
		},
		"notify": map[string]interface{}{
			"desktop":   true,
			"sound":     true,
			"sound_dir": "~/.daydash/sounds",
			"email_to":  "",
			"sms_to":    "",
		},
		"draft": map[string]interface{}{
			"api_key":    "",
			"model":      "deepseek-chat",
			"max_tokens": 2048,
			"timeout":    60,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.daydash/config.yaml"
}
