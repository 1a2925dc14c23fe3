package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/riparto/internal/tui"
)

// RootCmd is the root Cobra command that gets called from the main func.
// Without a subcommand it starts the interactive UI.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "riparto",
		Short:        "riparto splits units and an amount across agents in proportion to their balance.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}
	cmd.PersistentFlags().String("lang", "", "output language, it or es (defaults to the configured one)")

	cmd.AddCommand(
		allocateCmd(),
		rosterCmd(),
		historyCmd(),
		resetCmd(),
	)
	return cmd
}

func runTUI(ctx context.Context) error {
	return withEnvironment(ctx, func(env *environment) error {
		model := tui.New(ctx, env.cfg, tui.Services{Roster: env.roster, Allocation: env.allocation}, env.log)
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
}
