package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	serve := newServeCmd()

	cmd := &cobra.Command{
		Use:          "signup",
		Short:        "Weekly Sunday signup service",
		SilenceUsage: true,
		// Without a subcommand the server starts, like `signup serve`
		RunE: serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(newSignupsCmd())
	cmd.AddCommand(newPauseCmd())
	cmd.AddCommand(newResumeCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd
}
