package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/sirius2k/jira-mcp/internal/common"
	"github.com/sirius2k/jira-mcp/internal/config"
	"github.com/sirius2k/jira-mcp/internal/jira"
	"github.com/sirius2k/jira-mcp/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version information")
	flag.Parse()

	// Load version
	common.LoadVersionFromFile()

	if *showVersion {
		fmt.Printf("jira-mcp version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified.
	// Binary-relative paths are tried first so the config is found even when
	// the working directory differs from the binary location.
	configPath := *configFile
	if configPath == "" {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
	}

	var files []string
	if configPath != "" {
		files = append(files, configPath)
	}
	cfg, err := config.LoadFromFiles(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := jira.NewClient(cfg.Jira, logger)
	dispatcher := mcp.NewDispatcher(client, logger)

	mcpServer := mcp.NewServer(dispatcher, cfg.Server.Name, common.GetVersion())

	logger.Info().
		Str("version", common.GetFullVersion()).
		Str("jira_url", client.BaseURL()).
		Int("tools", len(dispatcher.Tools())).
		Msg("jira-mcp starting")

	if *stdio {
		// Stdio transport reads stdin and writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport listens on the configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", port).Msg("starting MCP Streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried first, with the working directory after.
// Paths are deduplicated via filepath.Abs.
func configSearchPaths() []string {
	candidates := []string{"jira-mcp.toml"}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}

	paths := []string{filepath.Join(filepath.Dir(exe), "jira-mcp.toml")}
	paths = append(paths, candidates...)

	// Deduplicate via absolute path.
	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
