// Package cli implements the wordlookup command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlookup/internal/app"
	"github.com/heartmarshall/wordlookup/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wordlookup",
		Short: "Look up English words: definitions, phonetics and pronunciation",
		Long: `wordlookup queries the Free Dictionary API for a word and shows its
definitions, examples, synonyms, antonyms, phonetics and etymology.

When the API is unreachable a small built-in dictionary answers for a few
common words. Recent searches are remembered between runs.

Examples:
  wordlookup define serendipity
  wordlookup repl
  wordlookup serve --addr 127.0.0.1:8080`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newDefineCmd(opts),
		newReplCmd(opts),
		newServeCmd(opts),
		newHistoryCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line with ctx as the base context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// bootstrap loads configuration and wires the application.
func bootstrap(ctx context.Context, opts *rootOptions) (*app.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	logger := app.NewLogger(cfg.Log)
	logger.DebugContext(ctx, "configuration loaded",
		slog.String("version", app.BuildVersion()),
		slog.String("history_backend", cfg.History.Backend),
	)

	a, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return a, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wordlookup "+app.BuildVersion())
		},
	}
}
