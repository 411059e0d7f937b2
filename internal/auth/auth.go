package auth

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName = "deepl-cli"
	account     = "deepl-auth-key"
)

// GetKeychainKey retrieves the DeepL key from the OS keychain.
func GetKeychainKey() (string, bool) {
	key, err := keyring.Get(serviceName, account)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", false
	}
	return strings.TrimSpace(key), true
}

// SaveKey stores the key in the OS keychain.
func SaveKey(key string) error {
	return keyring.Set(serviceName, account, strings.TrimSpace(key))
}

// DeleteKey removes the key from the OS keychain.
func DeleteKey() error {
	return keyring.Delete(serviceName, account)
}

// PromptForAPIKey securely prompts the user for their API key.
func PromptForAPIKey(prompt string) (string, error) {
	fmt.Print(prompt)
	byteKey, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(byteKey)), nil
}
