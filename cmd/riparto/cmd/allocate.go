package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/riparto/internal/cli"
	"github.com/jask/riparto/internal/money"
)

func allocateCmd() *cobra.Command {
	return allocateCmdWithApp(cli.New())
}

// Takes a caller-supplied app struct; useful for testing.
func allocateCmdWithApp(a *cli.App) *cobra.Command {
	var closer io.Closer
	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Split units and an amount across agents",
		Long: `Splits the total units and the total amount across the agents in proportion
to their balance, using the largest remainder method for both.

Agents are given as repeated --agent "Nome,Cognome,Saldo" flags. Without any
--agent the stored roster is used.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			closer, err = initApp(cmd, a)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer closeApp(closer)

			units, err := cmd.Flags().GetString("units")
			if err != nil {
				return fmt.Errorf("error reading units: %s", err)
			}
			amount, err := cmd.Flags().GetString("amount")
			if err != nil {
				return fmt.Errorf("error reading amount: %s", err)
			}
			specs, err := cmd.Flags().GetStringArray("agent")
			if err != nil {
				return fmt.Errorf("error reading agent: %s", err)
			}
			save, err := cmd.Flags().GetBool("save")
			if err != nil {
				return fmt.Errorf("error reading save: %s", err)
			}

			p := cli.AllocateParams{Save: save}
			if p.Units, err = money.ParseUnits(units); err != nil {
				return fmt.Errorf("invalid units: %w", err)
			}
			if p.Amount, err = money.Parse(amount); err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			for _, s := range specs {
				agent, err := cli.ParseAgentSpec(s)
				if err != nil {
					return err
				}
				p.Agents = append(p.Agents, agent)
			}
			return a.Allocate(cmd.Context(), p)
		},
	}
	cmd.Flags().String("units", "", "total units to split")
	cmd.Flags().String("amount", "", "total amount to split, e.g. 1000 or 1.234,50")
	cmd.Flags().StringArray("agent", nil, `agent as "Nome,Cognome,Saldo"; repeat for each agent`)
	cmd.Flags().Bool("save", false, "store the run in the history")
	_ = cmd.MarkFlagRequired("units")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
