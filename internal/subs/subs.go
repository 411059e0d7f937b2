package subs

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"
)

// Document wraps a parsed subtitle file so its dialogue can be translated
// in place while timing and cue structure stay untouched.
type Document struct {
	subs *astisub.Subtitles
}

// IsSubtitlePath reports whether the path looks like a subtitle file.
func IsSubtitlePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		return true
	}
	return false
}

// Load reads a subtitle file; the format is detected from the extension.
func Load(path string) (*Document, error) {
	parsed, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subtitle file %s: %w", path, err)
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("no subtitles found in %s", path)
	}
	return &Document{subs: parsed}, nil
}

// Texts returns one text chunk per cue, in display order. Multi-line cues
// keep their embedded newlines so translation can preserve the line layout.
func (d *Document) Texts() []string {
	texts := make([]string, 0, len(d.subs.Items))
	for _, item := range d.subs.Items {
		lines := make([]string, 0, len(item.Lines))
		for _, line := range item.Lines {
			lines = append(lines, line.String())
		}
		texts = append(texts, strings.Join(lines, "\n"))
	}
	return texts
}

// Apply replaces cue texts with their translations, one per cue in the
// same order Texts returned them.
func (d *Document) Apply(translated []string) error {
	if len(translated) != len(d.subs.Items) {
		return fmt.Errorf("translation count mismatch: got %d, want %d", len(translated), len(d.subs.Items))
	}
	for i, text := range translated {
		item := d.subs.Items[i]
		item.Lines = item.Lines[:0]
		for _, line := range strings.Split(text, "\n") {
			item.Lines = append(item.Lines, astisub.Line{
				Items: []astisub.LineItem{{Text: line}},
			})
		}
	}
	return nil
}

// Write renders the document in the format implied by the destination path.
func (d *Document) Write(w io.Writer, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return d.subs.WriteToWebVTT(w)
	default:
		return d.subs.WriteToSRT(w)
	}
}
