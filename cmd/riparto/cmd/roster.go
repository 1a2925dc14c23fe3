package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/riparto/internal/cli"
)

func rosterCmd() *cobra.Command {
	return rosterCmdWithApp(cli.New())
}

// Takes a caller-supplied app struct; useful for testing.
func rosterCmdWithApp(a *cli.App) *cobra.Command {
	var closer io.Closer
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print the stored agents",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			closer, err = initApp(cmd, a)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer closeApp(closer)
			exportPath, err := cmd.Flags().GetString("export")
			if err != nil {
				return fmt.Errorf("error reading export: %s", err)
			}
			importPath, err := cmd.Flags().GetString("import")
			if err != nil {
				return fmt.Errorf("error reading import: %s", err)
			}
			switch {
			case importPath != "":
				return a.ImportRoster(cmd.Context(), importPath)
			case exportPath != "":
				return a.ExportRoster(cmd.Context(), exportPath)
			}
			return a.ShowRoster(cmd.Context())
		},
	}
	cmd.Flags().String("export", "", "write the stored roster to this JSON file")
	cmd.Flags().String("import", "", "replace the stored roster with this JSON file")
	cmd.MarkFlagsMutuallyExclusive("export", "import")
	return cmd
}

func historyCmd() *cobra.Command {
	return historyCmdWithApp(cli.New())
}

// Takes a caller-supplied app struct; useful for testing.
func historyCmdWithApp(a *cli.App) *cobra.Command {
	var closer io.Closer
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print stored allocation runs, newest first",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			closer, err = initApp(cmd, a)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer closeApp(closer)
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("error reading limit: %s", err)
			}
			return a.ShowHistory(cmd.Context(), limit)
		},
	}
	cmd.Flags().Int("limit", 20, "number of runs to show (0 shows all)")
	return cmd
}

func resetCmd() *cobra.Command {
	return resetCmdWithApp(cli.New())
}

// Takes a caller-supplied app struct; useful for testing.
func resetCmdWithApp(a *cli.App) *cobra.Command {
	var closer io.Closer
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all agents and runs and restore the sample roster",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			closer, err = initApp(cmd, a)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer closeApp(closer)
			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("error reading yes: %s", err)
			}
			return a.Reset(cmd.Context(), yes)
		},
	}
	cmd.Flags().Bool("yes", false, "confirm the reset")
	return cmd
}
