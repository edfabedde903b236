package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log       Log       `yaml:"log"`
	Assistant Assistant `yaml:"assistant"`
	UI        UI        `yaml:"ui"`
}

type Assistant struct {
	// Base delay before a reply is shown, in milliseconds
	ReplyDelayMs int `yaml:"reply_delay_ms" example:"1000"`
	// Random extra delay added on top of the base delay, in milliseconds
	ReplyJitterMs int `yaml:"reply_jitter_ms" example:"2000"`
}

type UI struct {
	// Tool selected on startup, empty shows the picker
	DefaultTool string `yaml:"default_tool" example:"a3"`
	// Show the assistant pane on form screens
	GuidedMode *bool `yaml:"guided_mode" example:"true"`
}

type Log struct {
	// Minimum log level: debug, info, warn or error
	Level string `yaml:"level" example:"debug"`
	// Runtime log file, the terminal belongs to the UI once it starts
	File string `yaml:"file" example:"kiisuite.log"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, oops.Errorf("failed to read config file: %w", err)
		}
	} else if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Log.Level == "" {
		result.Log.Level = "debug"
	}
	if result.Log.File == "" {
		result.Log.File = "kiisuite.log"
	}
	if result.Assistant.ReplyDelayMs == 0 {
		result.Assistant.ReplyDelayMs = 1000
	}
	if result.Assistant.ReplyJitterMs == 0 {
		result.Assistant.ReplyJitterMs = 2000
	}
	if result.UI.GuidedMode == nil {
		enabled := true
		result.UI.GuidedMode = &enabled
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

func (c *Config) GuidedModeEnabled() bool {
	return c.UI.GuidedMode == nil || *c.UI.GuidedMode
}
