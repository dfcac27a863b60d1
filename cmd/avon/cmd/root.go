package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/store"
)

var (
	cfgFile string
	verbose bool
	cfg     *model.AppConfig
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "avon",
	Short: "Three-pane terminal mailbox",
	Long: `avon is a terminal mailbox with a resizable three-pane layout:
category navigation, message list and message detail.

Pane sizes and the navigation rail state are remembered between sessions
in a local preferences database. Run without a subcommand to open the UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = model.DefaultConfigPath()
		}

		var err error
		cfg, err = model.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context,
// enabling graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newLogger builds a text logger at the configured level. --verbose
// forces debug.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// configPath returns the config file in effect.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return model.DefaultConfigPath()
}

// openStore opens the preferences database, creating its directory on
// first use.
func openStore() (*store.SQLiteStore, error) {
	dir := filepath.Dir(cfg.Store.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	s, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open preferences %s: %w", cfg.Store.Path, err)
	}
	return s, nil
}

// layoutDefaults returns the layout used when nothing is persisted.
func layoutDefaults() model.LayoutPreferences {
	defaults := model.DefaultLayoutPreferences()
	if len(cfg.Layout.DefaultSizes) == model.PaneCount {
		defaults.PaneSizes = append([]float64(nil), cfg.Layout.DefaultSizes...)
	}
	defaults.NavCollapsed = cfg.Layout.DefaultCollapsed
	return defaults
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/avon/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
