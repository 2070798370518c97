package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// settings maps viper keys to the environment variables they are bound to.
var settings = []struct {
	key    string
	envVar string
}{
	{"notion_token", "NOTION_TOKEN"},
	{"notion_version", "NOTION_VERSION"},
	{"notion_base_url", "NOTION_BASE_URL"},
	{"goals_page_id", "GOALS_PAGE_ID"},
	{"todo_database_id", "TODO_DATABASE_ID"},
	{"openai_api_key", "OPENAI_API_KEY"},
	{"openai_model", "OPENAI_MODEL"},
	{"openai_base_url", "OPENAI_BASE_URL"},
	{"task_destination", "TASK_DESTINATION"},
	{"gtasks_list", "GTASKS_LIST"},
	{"http_timeout", "HTTP_TIMEOUT"},
}

// Load builds a Config from defaults, an optional dotenv file and the process
// environment, in increasing order of precedence. If configDir is empty the
// default directory is used. Load does not validate; call Validate before
// touching the network.
func Load(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetDefault("notion_version", "2022-06-28")
	v.SetDefault("notion_base_url", "https://api.notion.com")
	v.SetDefault("goals_page_id", GoalsPagePlaceholder)
	v.SetDefault("todo_database_id", TodoDatabasePlaceholder)
	v.SetDefault("openai_model", "gpt-3.5-turbo")
	v.SetDefault("task_destination", DestinationNotion)
	v.SetDefault("gtasks_list", "@default")
	v.SetDefault("http_timeout", 30*time.Second)

	if path := findEnvFile(dir); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	for _, s := range settings {
		if err := v.BindEnv(s.key, s.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", s.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Dir = dir

	return &cfg, nil
}

// findEnvFile returns the first existing dotenv file, or "".
func findEnvFile(dir string) string {
	for _, path := range []string{filepath.Join(dir, EnvFile), EnvFile} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
