package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sirius2k/jira-mcp/internal/common"
)

// Config holds all jira-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Jira    JiraConfig           `toml:"jira"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// JiraConfig holds the Jira connection settings. URL, Username, and APIToken
// must be present before a client can be constructed; see Validate.
type JiraConfig struct {
	URL            string `toml:"url"`
	Username       string `toml:"username"`
	APIToken       string `toml:"api_token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the per-request timeout as a duration.
func (c *JiraConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files. Missing files are skipped, so the
// server can run from environment variables alone.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// The JIRA_* names match what the hosted Jira integrations document.
func applyEnvOverrides(config *Config) {
	if url := os.Getenv("JIRA_URL"); url != "" {
		config.Jira.URL = url
	}
	if user := os.Getenv("JIRA_USERNAME"); user != "" {
		config.Jira.Username = user
	}
	if token := os.Getenv("JIRA_API_TOKEN"); token != "" {
		config.Jira.APIToken = token
	}
	if timeout := os.Getenv("JIRA_TIMEOUT"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			config.Jira.TimeoutSeconds = t
		}
	}
	if port := os.Getenv("JIRA_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("JIRA_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that the settings required to reach Jira are present.
// Called at startup, before the client is constructed.
func (c *Config) Validate() error {
	if c.Jira.URL == "" {
		return fmt.Errorf("jira url is required (set JIRA_URL or [jira] url)")
	}
	if c.Jira.Username == "" {
		return fmt.Errorf("jira username is required (set JIRA_USERNAME or [jira] username)")
	}
	if c.Jira.APIToken == "" {
		return fmt.Errorf("jira api token is required (set JIRA_API_TOKEN or [jira] api_token)")
	}
	return nil
}
