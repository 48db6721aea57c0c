package cli

import (
	"fmt"
	"strings"

	"github.com/diegoclair/weekly-signup/internal/config"
	"github.com/diegoclair/weekly-signup/internal/pause"
	"github.com/spf13/cobra"
)

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause <message...>",
		Short: "Pause signups and show a message instead",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := pause.NewFileSource(config.Load().PauseFile)
			if err := src.Pause(strings.Join(args, " ")); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signups paused (%s)\n", src.Path())
			return nil
		},
	}
}

func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume signups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resumed, err := pause.NewFileSource(config.Load().PauseFile).Resume()
			if err != nil {
				return err
			}
			if !resumed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signups were not paused")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signups resumed")
			return nil
		},
	}
}
