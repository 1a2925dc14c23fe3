package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/riparto/internal/cli"
)

// initApp bootstraps the environment and attaches its services to a. The
// returned closer releases the database and log file.
func initApp(cmd *cobra.Command, a *cli.App) (io.Closer, error) {
	env, err := bootstrap(cmd.Context())
	if err != nil {
		return nil, err
	}
	lang, _ := cmd.Flags().GetString("lang")
	*a = *env.cliApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), lang)
	return env, nil
}

func closeApp(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
