package main

import (
	"strings"
	"testing"
)

func TestEnvStatus_Keychain(t *testing.T) {
	stubKeychainKey(t, "279a2e9d-83b3-c416-7e65-f0bc8f6a958f:fx")

	out, err := executeCommand(t, nil, "env", "status")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Found (source=Keychain)") {
		t.Fatalf("expected keychain source, got: %s", out)
	}
	if strings.Contains(out, "279a2e9d") {
		t.Fatalf("output leaked the key: %s", out)
	}
}

func TestEnvStatus_Environment(t *testing.T) {
	stubKeychainKey(t, "")
	t.Setenv("DEEPL_AUTH_KEY", "env-key")
	t.Setenv("DEEPL_SERVER_URL", "")
	t.Setenv("DEEPL_TIMEOUT", "0")

	out, err := executeCommand(t, nil, "env", "status")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Found (source=Environment Variable)") {
		t.Fatalf("expected environment source, got: %s", out)
	}
}

func TestEnvStatus_NotFound(t *testing.T) {
	stubKeychainKey(t, "")
	t.Setenv("DEEPL_AUTH_KEY", "")
	t.Setenv("DEEPL_SERVER_URL", "")
	t.Setenv("DEEPL_TIMEOUT", "0")

	out, err := executeCommand(t, nil, "env", "status")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Not Found") {
		t.Fatalf("expected not-found status, got: %s", out)
	}
}

func TestEnv_DefaultsToStatus(t *testing.T) {
	stubKeychainKey(t, "some-key")

	out, err := executeCommand(t, nil, "env")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "DeepL API Key:") {
		t.Fatalf("expected status output, got: %s", out)
	}
}
