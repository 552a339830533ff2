package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingKey indicates a required configuration key is absent or empty.
var ErrMissingKey = errors.New("missing configuration key")

// ClockworkConfig holds the Clockwork API settings.
type ClockworkConfig struct {
	Endpoint string
	Token    string
}

// JiraConfig holds the Jira API settings. Endpoint is a URL template
// containing "{}" where the issue identifier is substituted.
type JiraConfig struct {
	AccountID   string
	Token       string
	AccountName string
	Endpoint    string
}

// DBConfig holds the local store settings.
type DBConfig struct {
	Name string // filesystem path to the SQLite database
}

// Config is the immutable configuration for one invocation, populated
// once at startup from the INI file.
type Config struct {
	Clockwork ClockworkConfig
	Jira      JiraConfig
	DB        DBConfig
}

// Load reads and validates the INI configuration file at the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := &Config{
		Clockwork: ClockworkConfig{
			Endpoint: v.GetString("clockwork.endpoint"),
			Token:    v.GetString("clockwork.token"),
		},
		Jira: JiraConfig{
			AccountID:   v.GetString("jira.account_id"),
			Token:       v.GetString("jira.token"),
			AccountName: v.GetString("jira.account_name"),
			Endpoint:    v.GetString("jira.endpoint"),
		},
		DB: DBConfig{
			Name: v.GetString("db.name"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"clockwork.endpoint", c.Clockwork.Endpoint},
		{"clockwork.token", c.Clockwork.Token},
		{"jira.account_id", c.Jira.AccountID},
		{"jira.token", c.Jira.Token},
		{"jira.account_name", c.Jira.AccountName},
		{"jira.endpoint", c.Jira.Endpoint},
		{"db.name", c.DB.Name},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingKey, r.key)
		}
	}
	if !strings.Contains(c.Jira.Endpoint, "{}") {
		return fmt.Errorf("jira.endpoint must contain an issue placeholder {}: %q", c.Jira.Endpoint)
	}
	return nil
}
