package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taulin/deepl-cli/internal/auth"
	"github.com/taulin/deepl-cli/internal/config"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the API key in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.AddCommand(
		newEnvSetupCmd(),
		newEnvDeleteCmd(),
		newEnvStatusCmd(),
	)
	return cmd
}

func newEnvSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save the API key to the keychain (prompt only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := auth.PromptForAPIKey("DeepL API Key: ")
			if err != nil {
				return fmt.Errorf("error reading key: %w", err)
			}
			if key == "" {
				return errors.New("API key is required for setup")
			}
			if err := auth.SaveKey(key); err != nil {
				return fmt.Errorf("error saving key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved DeepL API key to keychain.")
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newEnvDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the API key from the keychain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.DeleteKey(); err != nil {
				return fmt.Errorf("error deleting key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted DeepL API key from keychain.")
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newEnvStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show key status (default if no action given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runEnvStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if _, ok := getKeychainKey(); ok {
		fmt.Fprintln(out, "DeepL API Key: Found (source=Keychain)")
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.HasAuthKey() {
		fmt.Fprintln(out, "DeepL API Key: Found (source=Environment Variable)")
		return nil
	}
	fmt.Fprintln(out, "DeepL API Key: Not Found (keychain empty, DEEPL_AUTH_KEY not set)")
	return nil
}
