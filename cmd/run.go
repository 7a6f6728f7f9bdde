package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/app"
	"github.com/nrqlkit/nrqltutor/internal/config"
	"github.com/nrqlkit/nrqltutor/internal/explain"
	"github.com/nrqlkit/nrqltutor/internal/llm"
	"github.com/nrqlkit/nrqltutor/internal/logging"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/selfupdate"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	eventRepo := st.EventRepo()
	querier, err := nerdgraph.NewQuerier(querierConfig(cfg), eventRepo, logger)
	if err != nil {
		return err
	}

	opts := app.Options{
		Config:        cfg,
		Querier:       querier,
		EventRepo:     eventRepo,
		Bookmarks:     st.BookmarkRepo(),
		Logger:        logger,
		LatestVersion: selfupdate.NewChecker().Latest(version),
	}

	llmCfg, ok := llm.Resolve(llm.Settings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if ok {
		provider, err := llm.NewProvider(ctx, llmCfg, eventRepo, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		} else {
			opts.Explainer = explain.NewService(provider, explain.DefaultConfig())
		}
	}
	if opts.Explainer == nil {
		logger.Info("query explanations disabled, no LLM provider configured")
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.Bool("demo", cfg.Demo()),
		zap.String("engine", querier.Engine()),
	)
	return app.Run(opts)
}

// newLogger writes to the configured log file, or the default state file
// when none is set.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	file := cfg.Log.File
	if file == "" {
		def, err := logging.DefaultFile()
		if err != nil {
			return nil, err
		}
		file = def
	}
	logger, err := logging.New(logging.Config{File: file, Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func querierConfig(cfg *config.Config) nerdgraph.Config {
	nc := nerdgraph.DefaultConfig()
	nc.APIKey = cfg.NerdGraph.APIKey
	nc.Region = cfg.NerdGraph.Region
	nc.Endpoint = cfg.NerdGraph.Endpoint
	if cfg.NerdGraph.Timeout > 0 {
		nc.Timeout = cfg.NerdGraph.Timeout
	}
	return nc
}
