package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsageInformationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage-information",
		Short: "Show character usage for the current billing period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			usage, err := client.UsageInformation(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Character count: %d\n", usage.CharacterCount)
			fmt.Fprintf(out, "Character limit: %d\n", usage.CharacterLimit)
			if usage.CharacterLimit > 0 {
				percent := float64(usage.CharacterCount) / float64(usage.CharacterLimit) * 100
				fmt.Fprintf(out, "Usage: %.1f%%\n", percent)
			}
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
