package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/store"
	"github.com/nhle/avon/internal/ui/mailbox"
)

var resetYes bool

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect or reset the saved pane layout",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the pane layout the next session will start with",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		g := store.NewGateway(s, logger)
		saved := store.LoadPreferences(g, layoutDefaults(), logger)
		prefs := mailbox.EffectiveLayout(saved, cfg.Layout.NavCollapsedSize)

		source := "saved"
		if _, ok := g.Read(store.LayoutKey); !ok {
			source = "default"
		}

		rows, err := s.GetPreferences(cmd.Context())
		if err != nil {
			return fmt.Errorf("list preferences: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Navigation: %g%%\n", prefs.PaneSizes[model.PaneNav])
		fmt.Fprintf(out, "List:       %g%%\n", prefs.PaneSizes[model.PaneList])
		fmt.Fprintf(out, "Detail:     %g%%\n", prefs.PaneSizes[model.PaneDetail])
		fmt.Fprintf(out, "Collapsed:  %t\n", prefs.NavCollapsed)
		fmt.Fprintf(out, "Source:     %s (%s)\n", source, cfg.Store.Path)
		if len(rows) == 0 {
			fmt.Fprintln(out, "Stored:     none")
		} else {
			fmt.Fprintln(out, "Stored:")
			for _, row := range rows {
				fmt.Fprintf(out, "  %s = %s (updated %s)\n", row.Key, row.Value, row.UpdatedAt)
			}
		}
		return nil
	},
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved pane layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			confirmed := false
			err := huh.NewConfirm().
				Title("Forget the saved layout?").
				Description("The next session starts with the default pane sizes.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return fmt.Errorf("confirm reset: %w", err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		for _, key := range []string{store.LayoutKey, store.CollapsedKey} {
			if err := s.DeletePreference(ctx, key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		logger.Debug("layout reset", "store", cfg.Store.Path)
		fmt.Fprintln(cmd.OutOrStdout(), "Layout reset.")
		return nil
	},
}

func init() {
	layoutResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
	layoutCmd.AddCommand(layoutShowCmd, layoutResetCmd)
	rootCmd.AddCommand(layoutCmd)
}
