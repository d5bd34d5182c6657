package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"influencerfinder/pkg/auth"
	"influencerfinder/pkg/config"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ui"
)

// defaultConfigFile is where 'config init' writes without --config.
const defaultConfigFile = ".influencerfinder.yaml"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage Influencer Finder configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables, including .env files
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as '.influencerfinder.yaml'
unless a different path is specified with the --config flag.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration after merging every source.

Sensitive values like the RapidAPI key will be masked.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Load the configuration from every source and check it.

This command checks:
  - YAML syntax
  - Mode, ports and limits
  - Cache backend settings
  - Live mode credentials`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

const exampleConfig = `# Influencer Finder configuration
#
# Every option can also be set through environment variables or a .env
# file, for example MODE=live, PORT=8080 or RAPIDAPI_KEY=...

# Profile source: demo (built-in catalog) or live (RapidAPI)
mode: demo

# HTTP API
server:
  port: 3000
  # Allowed CORS origins
  origins: ["*"]
  read_timeout: 15s
  write_timeout: 60s
  shutdown_timeout: 30s

# Live data source. Prefer 'influencerfinder auth login' over putting the
# key in this file.
rapidapi:
  key: ""
  host: ""
  timeout: 10s
  # Profiles enriched per search
  max_profiles: 20
  # Hashtag searches per query
  max_hashtags: 1
  posts_per_profile: 12
  requests_per_second: 5
  burst: 5
  max_retries: 2

# Per client limit on /api routes
rate_limit:
  window_ms: 900000
  max: 100

# Live response cache: none, memory, redis or memcached
cache:
  backend: none
  addr: ""
  ttl: 10m

# Concurrent post fetches per search
enrichment:
  workers: 4

storage:
  # Last search and shortlist database. Default: user config directory
  # data_dir: ~/.config/influencerfinder
  # shortlist_db: ~/.config/influencerfinder/shortlists.db
  # Where 'export' writes files
  export_dir: "."

# Prometheus metrics. An empty addr serves /metrics on the API port.
metrics:
  enabled: true
  addr: ""

logging:
  # Log level: debug, info, warn, error
  level: info
  # Log format: console, json
  format: console
  # Optional rotating JSON log file
  file: ""
  max_size: 100
  max_backups: 3
  max_age: 7
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(exampleConfig), 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	ui.PrintSuccess("Configuration file created: " + path)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it, then check it with 'influencerfinder config validate'.")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, commandFlags())
	if err != nil {
		return err
	}
	if cfg.IsLive() {
		resolveCredentials(cfg, logger.NewNopLogger())
	}

	masked := *cfg
	if masked.RapidAPI.Key != "" {
		masked.RapidAPI.Key = auth.MaskKey(masked.RapidAPI.Key)
	}
	if masked.Cache.Password != "" {
		masked.Cache.Password = "********"
	}

	data, err := yaml.Marshal(&masked)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, commandFlags())
	if err != nil {
		return err
	}

	if cfg.IsLive() {
		resolveCredentials(cfg, logger.NewNopLogger())
		if err := cfg.RequireLiveCredentials(); err != nil {
			return err
		}
	}

	ui.PrintSuccess("Configuration is valid")
	ui.PrintInfo("Mode", cfg.Mode)
	ui.PrintInfo("Data directory", cfg.Storage.DataDir)
	return nil
}
