// Package config loads settings from the environment and a dotenv file and
// resolves the configuration directory.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application directory name.
	AppName = "goaltask"

	// EnvFile is the dotenv filename looked up in the config dir, then the working dir.
	EnvFile = ".env"

	// OAuthClientFile is the Google OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored Google OAuth token filename.
	TokenFile = "token.json"
)

// Placeholder values shipped as defaults. They must be replaced before a run.
const (
	GoalsPagePlaceholder    = "your-goals-page-id-here"
	TodoDatabasePlaceholder = "your-todo-database-id-here"
)

// Task destinations.
const (
	DestinationNotion = "notion"
	DestinationGTasks = "gtasks"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"-"`

	NotionToken    string `mapstructure:"notion_token" env:"NOTION_TOKEN" validate:"required"`
	NotionVersion  string `mapstructure:"notion_version" env:"NOTION_VERSION" validate:"required"`
	NotionBaseURL  string `mapstructure:"notion_base_url" env:"NOTION_BASE_URL" validate:"required,url"`
	GoalsPageID    string `mapstructure:"goals_page_id" env:"GOALS_PAGE_ID" validate:"configured"`
	TodoDatabaseID string `mapstructure:"todo_database_id" env:"TODO_DATABASE_ID"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key" env:"OPENAI_API_KEY" validate:"required"`
	OpenAIModel   string `mapstructure:"openai_model" env:"OPENAI_MODEL" validate:"required"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" env:"OPENAI_BASE_URL" validate:"omitempty,url"`

	// Destination selects the task sink: "notion" or "gtasks".
	Destination string `mapstructure:"task_destination" env:"TASK_DESTINATION" validate:"oneof=notion gtasks"`

	// GTasksList is the Google Tasks list name; "@default" is the user's default list.
	GTasksList string `mapstructure:"gtasks_list" env:"GTASKS_LIST" validate:"required"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout" env:"HTTP_TIMEOUT" validate:"gte=0"`
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
