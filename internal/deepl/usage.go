package deepl

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/taulin/deepl-cli/internal/apperrors"
)

// UsageInformation reports character consumption for the current billing period.
type UsageInformation struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// UsageInformation queries the account quota. The result is produced fresh
// on every call, never cached.
func (c *Client) UsageInformation(ctx context.Context) (*UsageInformation, error) {
	body, err := c.apiCall(ctx, "/usage", url.Values{})
	if err != nil {
		return nil, err
	}

	var usage UsageInformation
	if err := json.Unmarshal(body, &usage); err != nil {
		return nil, apperrors.Deserialization("failed to parse usage response", err)
	}
	return &usage, nil
}
