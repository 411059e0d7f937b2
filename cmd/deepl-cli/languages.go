package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

type languagesOptions struct {
	langType string
}

func newLanguagesCmd() *cobra.Command {
	opts := languagesOptions{}
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages supported by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanguages(cmd, &opts)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&opts.langType, "type", "target", "Listing type (source or target)")
	return cmd
}

func runLanguages(cmd *cobra.Command, opts *languagesOptions) error {
	if opts.langType != "source" && opts.langType != "target" {
		return fmt.Errorf("invalid type %q. Must be 'source' or 'target'", opts.langType)
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	var languages map[string]string
	if opts.langType == "source" {
		languages, err = client.SourceLanguages(ctx)
	} else {
		languages, err = client.TargetLanguages(ctx)
	}
	if err != nil {
		return err
	}

	printLanguages(cmd, opts.langType, languages)
	return nil
}

func printLanguages(cmd *cobra.Command, langType string, languages map[string]string) {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Supported %s languages:\n", langType)
	for _, code := range codes {
		fmt.Fprintf(out, "  %-7s %s\n", code, languages[code])
	}
}
