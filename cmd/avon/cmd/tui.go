package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/avon/internal/app"
	"github.com/nhle/avon/internal/fixtures"
	"github.com/nhle/avon/internal/store"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	Long: `Open the mailbox. This is also what running avon without a
subcommand does.

Navigation:
  j/k         Move through messages
  Enter       Open the message under the cursor
  Esc         Close the message
  Tab         Switch between All mail and Unread
  h/l         Focus the navigation or the main pane
  < >         Move the handle next to the focused pane
  [           Collapse or expand the navigation rail
  =           Reset the layout
  p           Edit layout preferences
  1/2/3       Mailbox, Job Tracker, Spreadsheet
  :           Command palette
  q           Quit

With mouse support enabled, drag a │ handle to resize panes.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI, so logs go to a file.
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.File, "avon")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := newLogger(logFile, cfg.Log.Level)

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	messages, err := fixtures.Load(cfg.Fixtures.Dir, log)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	m := app.New(app.Options{
		Messages: messages,
		Gateway:  store.NewGateway(s, log),
		Layout:   cfg.Layout,
		Mouse:    cfg.Display.Mouse,
		Logger:   log,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if cfg.Display.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	log.Info("starting ui", slog.Int("messages", len(messages)), slog.String("store", cfg.Store.Path))

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
