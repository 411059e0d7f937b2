package deepl

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/taulin/deepl-cli/internal/apperrors"
)

// SplitSentences controls how the service segments input before translating.
type SplitSentences int

const (
	SplitNone SplitSentences = iota
	SplitPunctuation
	SplitPunctuationAndNewlines
)

func (s SplitSentences) wireValue() string {
	switch s {
	case SplitNone:
		return "0"
	case SplitPunctuation:
		return "nonewlines"
	default:
		return "1"
	}
}

// Formality selects the register of the translated text. The zero value is
// the vendor default.
type Formality int

const (
	FormalityDefault Formality = iota
	FormalityLess
	FormalityMore
)

func (f Formality) wireValue() string {
	switch f {
	case FormalityLess:
		return "less"
	case FormalityMore:
		return "more"
	default:
		return "default"
	}
}

// TranslateOptions describes one translation request. TargetLang and Text
// are required. Unset optional fields are omitted from the wire form
// entirely; the API treats an explicitly empty value differently from an
// absent one.
type TranslateOptions struct {
	SourceLang string
	TargetLang string
	// SplitSentences is left to the vendor default when nil.
	SplitSentences *SplitSentences
	// PreserveFormatting defaults to true when nil.
	PreserveFormatting *bool
	Formality          Formality
	Text               []string
}

// Translation is one translated chunk, paired with the source language the
// service detected for it.
type Translation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
}

type translationsResponse struct {
	Translations *[]Translation `json:"translations"`
}

// Translate submits the text chunks for translation. Results come back in
// input order: result[i] corresponds to opts.Text[i].
func (c *Client) Translate(ctx context.Context, opts TranslateOptions) ([]Translation, error) {
	if opts.TargetLang == "" {
		return nil, errors.New("target language is required")
	}
	if len(opts.Text) == 0 {
		return nil, errors.New("at least one text is required")
	}

	payload := url.Values{}
	payload.Set("target_lang", opts.TargetLang)
	for _, text := range opts.Text {
		payload.Add("text", text)
	}
	if opts.SourceLang != "" {
		payload.Set("source_lang", opts.SourceLang)
	}
	if opts.SplitSentences != nil {
		payload.Set("split_sentences", opts.SplitSentences.wireValue())
	}
	preserve := "1"
	if opts.PreserveFormatting != nil && !*opts.PreserveFormatting {
		preserve = "0"
	}
	payload.Set("preserve_formatting", preserve)
	payload.Set("formality", opts.Formality.wireValue())

	body, err := c.apiCall(ctx, "/translate", payload)
	if err != nil {
		return nil, err
	}

	var response translationsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apperrors.Deserialization("failed to parse translate response", err)
	}
	if response.Translations == nil {
		return nil, apperrors.Deserialization("translate response is missing the translations field", nil)
	}
	return *response.Translations, nil
}
