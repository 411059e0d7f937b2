package deepl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/taulin/deepl-cli/internal/apperrors"
)

func TestNewClient_RequiresKey(t *testing.T) {
	for _, key := range []string{"", "   ", "\t"} {
		_, err := NewClient(key)
		if err == nil {
			t.Fatalf("NewClient(%q) succeeded, want authorization error", key)
		}
		if !apperrors.IsAuth(err) {
			t.Errorf("NewClient(%q) error kind = %v, want auth", key, err)
		}
		if err.Error() != apperrors.AuthMessage {
			t.Errorf("NewClient(%q) message = %q, want %q", key, err.Error(), apperrors.AuthMessage)
		}
	}

	client, err := NewClient("any-nonempty-key")
	if err != nil {
		t.Fatalf("NewClient with non-empty key failed: %v", err)
	}
	if client.serverURL != DefaultServerURL {
		t.Errorf("serverURL = %q, want %q", client.serverURL, DefaultServerURL)
	}
}

func TestWithServerURL_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("key", WithServerURL("https://api-free.deepl.com/v2/"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.serverURL != "https://api-free.deepl.com/v2" {
		t.Errorf("serverURL = %q, want trailing slash removed", client.serverURL)
	}
}

func TestAPICall_Classification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    apperrors.Kind
		wantMessage string
	}{
		{
			name:        "401 unauthorized",
			status:      http.StatusUnauthorized,
			body:        "",
			wantKind:    apperrors.KindAuth,
			wantMessage: apperrors.AuthMessage,
		},
		{
			name:        "403 forbidden",
			status:      http.StatusForbidden,
			body:        "",
			wantKind:    apperrors.KindAuth,
			wantMessage: apperrors.AuthMessage,
		},
		{
			// Auth status wins even when the body carries a vendor message.
			name:        "403 with message body",
			status:      http.StatusForbidden,
			body:        `{"message": "Wrong endpoint. Use https://api-free.deepl.com"}`,
			wantKind:    apperrors.KindAuth,
			wantMessage: apperrors.AuthMessage,
		},
		{
			name:        "456 quota exceeded with message",
			status:      456,
			body:        `{"message": "Quota Exceeded"}`,
			wantKind:    apperrors.KindServer,
			wantMessage: "An error occurred while communicating with the DeepL server: 'Quota Exceeded'.",
		},
		{
			name:        "500 with unparseable body",
			status:      http.StatusInternalServerError,
			body:        "Internal Server Error",
			wantKind:    apperrors.KindServer,
			wantMessage: "500",
		},
		{
			name:        "503 parseable body without message field",
			status:      http.StatusServiceUnavailable,
			body:        `{"detail": "maintenance"}`,
			wantKind:    apperrors.KindServer,
			wantMessage: "503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client, err := NewClient("test-key", WithServerURL(server.URL))
			if err != nil {
				t.Fatalf("NewClient failed: %v", err)
			}

			_, err = client.apiCall(context.Background(), "/usage", url.Values{})
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			kind, ok := apperrors.KindOf(err)
			if !ok || kind != tt.wantKind {
				t.Errorf("error kind = (%q, %v), want %q", kind, ok, tt.wantKind)
			}
			if err.Error() != tt.wantMessage {
				t.Errorf("error message = %q, want %q", err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestAPICall_SendsAuthKeyAsFormField(t *testing.T) {
	var gotForm url.Values
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm failed: %v", err)
		}
		gotForm = r.PostForm
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client, err := NewClient("secret-key", WithServerURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	payload := url.Values{}
	payload.Set("type", "source")
	if _, err := client.apiCall(context.Background(), "/languages", payload); err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form encoding", gotContentType)
	}
	if got := gotForm.Get("auth_key"); got != "secret-key" {
		t.Errorf("auth_key = %q, want %q", got, "secret-key")
	}
	if got := gotForm.Get("type"); got != "source" {
		t.Errorf("type = %q, want %q", got, "source")
	}
}

func TestAPICall_TransportErrorIsNotClassified(t *testing.T) {
	client, err := NewClient("key", WithServerURL("http://127.0.0.1:0"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	_, err = client.apiCall(context.Background(), "/usage", url.Values{})
	if err == nil {
		t.Fatal("Expected transport error, got nil")
	}
	if _, ok := apperrors.KindOf(err); ok {
		t.Errorf("transport error was classified into the taxonomy: %v", err)
	}
	if !strings.Contains(err.Error(), "/usage") {
		t.Errorf("transport error should name the endpoint, got %q", err.Error())
	}
}
