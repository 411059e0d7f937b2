package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/taulin/deepl-cli/internal/apperrors"
	"github.com/taulin/deepl-cli/internal/logger"
	"github.com/taulin/deepl-cli/internal/version"
)

func execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apperrors.PublicMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var logFile string

	cmd := &cobra.Command{
		Use:   "deepl-cli",
		Short: "Command-line client for the DeepL translation API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logger.LevelInfo
			if debug {
				level = logger.LevelDebug
			}
			var w io.Writer
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("opening log file %s: %w", logFile, err)
				}
				w = f
			}
			if debug || w != nil {
				logger.Init(level, w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSONL logs to a file")

	cmd.AddCommand(
		newAboutCmd(),
		newUsageInformationCmd(),
		newLanguagesCmd(),
		newTranslateCmd(),
		newEnvCmd(),
	)

	return cmd
}
