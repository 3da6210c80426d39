// ABOUTME: Root cobra command and shared client construction for the CLI
// ABOUTME: Loads configuration, picks a cache backend and builds the library client

package main

import (
	"fmt"
	"os"

	cosmos "cosmos-api/cosmos-lib"
	"cosmos-api/pkg/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	jsonOutput bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cosmos",
		Short: "Search news and the web from the terminal",
		Long: `cosmos queries the news article API and the conversational web search API
concurrently and prints one merged, sorted result list.

API keys are read from NEWS_API_KEY and PERPLEXITY_API_KEY or from the
config file given with --config.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("COSMOS_CONFIG"), "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log upstream calls to stderr")

	cmd.AddCommand(
		newSearchCmd(opts),
		newHeadlinesCmd(opts),
		newSourcesCmd(opts),
	)
	return cmd
}

// newClient builds a library client from the config file and environment
func newClient(opts *rootOptions) (*cosmos.Client, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	clientOpts := []cosmos.Option{cosmos.FromConfig(cfg)}
	if opts.verbose {
		logCfg := cfg.Log
		logCfg.Format = "text"
		logCfg.Level = "debug"
		clientOpts = append(clientOpts, cosmos.WithLogConfig(logCfg))
	} else {
		clientOpts = append(clientOpts, cosmos.WithQuietMode())
	}

	switch cfg.Cache.Type {
	case "sqlite":
		clientOpts = append(clientOpts, cosmos.WithCacheOption(cosmos.CacheOption{
			Type:     cosmos.CacheTypeSQLite,
			FilePath: cfg.Cache.SQLite.Path,
		}))
	case "redis":
		clientOpts = append(clientOpts, cosmos.WithCacheOption(cosmos.CacheOption{
			Type:  cosmos.CacheTypeRedis,
			Redis: cfg.Cache.Redis,
		}))
	}

	return cosmos.NewClient(clientOpts...)
}
