package config

import "github.com/sirius2k/jira-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values.
// Jira credentials have no defaults; they must come from a config file or
// the JIRA_URL / JIRA_USERNAME / JIRA_API_TOKEN environment variables.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "jira-mcp",
			Port: "8090",
		},
		Jira: JiraConfig{
			TimeoutSeconds: 30,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/jira-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
