package cmd

import (
	"fmt"

	"github.com/nrqlkit/nrqltutor/internal/config"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nrqltutor",
	Short: "Interactive NRQL tutorial for the terminal",
	Long: "nrqltutor walks through New Relic Query Language lessons with live, " +
		"charted sample queries. Without a NerdGraph API key it runs in demo mode " +
		"against a built-in offline engine.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/nrqltutor/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides NRQLTUTOR_DB env var)")
	pf.Int("account", 0, "New Relic account ID to run sample queries against")
	pf.String("region", "", "NerdGraph region: US or EU")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Log file path (default $XDG_STATE_HOME/nrqltutor/nrqltutor.log)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges defaults, the config file, env vars and explicitly set
// flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path (--db, NRQLTUTOR_DB or
// the config file), falling back to the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the event store. Callers close the store.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, s, nil
}
