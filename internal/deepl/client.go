package deepl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/taulin/deepl-cli/internal/apperrors"
	"github.com/taulin/deepl-cli/internal/httpclient"
)

// DefaultServerURL is the versioned base path of the DeepL REST API.
const DefaultServerURL = "https://api.deepl.com/v2"

// Client is a thin binding over the DeepL HTTP API. It holds no mutable
// state after construction and is safe for concurrent use.
type Client struct {
	authKey   string
	serverURL string
}

// Option adjusts a Client during construction.
type Option func(*Client)

// WithServerURL points the client at a different API base, e.g. the
// free-plan endpoint or a test server.
func WithServerURL(serverURL string) Option {
	return func(c *Client) {
		c.serverURL = strings.TrimRight(serverURL, "/")
	}
}

// NewClient builds a client for the given account key. No network call is
// made; an empty key fails immediately with an authorization error.
func NewClient(authKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(authKey) == "" {
		return nil, apperrors.Auth(errors.New("no API key provided"))
	}
	c := &Client{
		authKey:   authKey,
		serverURL: DefaultServerURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// apiCall issues one form-encoded POST and classifies the response.
// Classification is a strict priority chain: auth status first, then the
// vendor message, then the bare status code. 200 bodies are returned raw
// for field-level interpretation by the caller.
func (c *Client) apiCall(ctx context.Context, endpoint string, payload url.Values) ([]byte, error) {
	form := url.Values{}
	for key, values := range payload {
		form[key] = values
	}
	form.Set("auth_key", c.authKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	requestID := uuid.NewString()
	client := httpclient.GetDefaultClient()
	body, resp, err := httpclient.DoAndRead(client, req)
	if err != nil {
		// Transport failures stay outside the error taxonomy.
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}

	slog.Debug("DeepL API response", "endpoint", endpoint, "status", resp.StatusCode, "request_id", requestID)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.Auth(fmt.Errorf("deepl status=%d endpoint=%s", resp.StatusCode, endpoint))
	case resp.StatusCode != http.StatusOK:
		return nil, classifyServerError(resp.StatusCode, endpoint, body)
	}
	return body, nil
}

func classifyServerError(statusCode int, endpoint string, body []byte) error {
	cause := fmt.Errorf("deepl status=%d endpoint=%s", statusCode, endpoint)

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		msg := fmt.Sprintf("An error occurred while communicating with the DeepL server: '%s'.", envelope.Message)
		return apperrors.Server(msg, cause)
	}
	return apperrors.Server(strconv.Itoa(statusCode), cause)
}
