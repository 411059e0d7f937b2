package deepl

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/taulin/deepl-cli/internal/apperrors"
)

type languageType string

const (
	sourceLanguages languageType = "source"
	targetLanguages languageType = "target"
)

type languageEntry struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// SourceLanguages lists the language codes accepted as translation input,
// mapped to their display names.
func (c *Client) SourceLanguages(ctx context.Context) (map[string]string, error) {
	return c.languages(ctx, sourceLanguages)
}

// TargetLanguages lists the language codes accepted as translation output,
// mapped to their display names.
func (c *Client) TargetLanguages(ctx context.Context) (map[string]string, error) {
	return c.languages(ctx, targetLanguages)
}

func (c *Client) languages(ctx context.Context, langType languageType) (map[string]string, error) {
	payload := url.Values{}
	payload.Set("type", string(langType))

	body, err := c.apiCall(ctx, "/languages", payload)
	if err != nil {
		return nil, err
	}

	var entries []languageEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, apperrors.Deserialization("failed to parse languages response", err)
	}
	if len(entries) == 0 || entries[0].Language == "" {
		return nil, apperrors.Deserialization("languages response is empty or malformed", nil)
	}

	// Duplicate codes are a vendor invariant, not validated here: last wins.
	languages := make(map[string]string, len(entries))
	for _, entry := range entries {
		languages[entry.Language] = entry.Name
	}
	return languages, nil
}
