package main

import (
	"bytes"
	"io"
	"testing"
)

func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// stubKeyLookup pins the key resolution path for a test: no keychain entry,
// no terminal prompt, environment only.
func stubKeyLookup(t *testing.T) {
	t.Helper()

	prevKeychain := getKeychainKey
	prevTerminal := isTerminal
	prevPrompt := promptForKey

	getKeychainKey = func() (string, bool) { return "", false }
	isTerminal = func(fd int) bool { return false }
	promptForKey = func(prompt string) (string, error) {
		t.Fatal("prompt must not be reached in tests")
		return "", nil
	}

	t.Cleanup(func() {
		getKeychainKey = prevKeychain
		isTerminal = prevTerminal
		promptForKey = prevPrompt
	})
}

func stubKeychainKey(t *testing.T, key string) {
	t.Helper()
	prev := getKeychainKey
	getKeychainKey = func() (string, bool) { return key, key != "" }
	t.Cleanup(func() { getKeychainKey = prev })
}
