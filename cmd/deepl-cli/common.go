package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taulin/deepl-cli/internal/auth"
	"github.com/taulin/deepl-cli/internal/config"
	"github.com/taulin/deepl-cli/internal/deepl"
	"github.com/taulin/deepl-cli/internal/httpclient"
	"github.com/taulin/deepl-cli/internal/logger"
	"golang.org/x/term"
)

// errNoAPIKey is the CLI-level missing-key failure, distinct from the
// library's authorization error for an empty key.
var errNoAPIKey = errors.New("DEEPL_AUTH_KEY is not set and no key was found in the keychain")

var (
	isTerminal     = term.IsTerminal
	getKeychainKey = auth.GetKeychainKey
	promptForKey   = auth.PromptForAPIKey
)

// resolveAPIKey finds the account key: keychain first, then the
// environment, then an interactive prompt when attached to a terminal.
func resolveAPIKey(cfg *config.Config) (string, string, error) {
	if key, ok := getKeychainKey(); ok {
		return key, "Keychain", nil
	}
	if cfg.HasAuthKey() {
		return cfg.AuthKey, "Environment Variable", nil
	}
	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForKey("DeepL API Key: ")
		if err != nil {
			return "", "", fmt.Errorf("error reading API key: %w", err)
		}
		if key != "" {
			return key, "Terminal Prompt", nil
		}
	}
	return "", "", errNoAPIKey
}

// newAPIClient loads environment configuration and builds the DeepL client.
func newAPIClient() (*deepl.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	key, source, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved API key", "source", source)

	if cfg.Timeout > 0 {
		httpclient.Configure(cfg.Timeout)
	}

	var opts []deepl.Option
	if cfg.ServerURL != "" {
		opts = append(opts, deepl.WithServerURL(cfg.ServerURL))
	}
	return deepl.NewClient(key, opts...)
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Cancellation requested")
		cancel()
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
