package subs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,000
Guten Tag

2
00:00:04,000 --> 00:00:06,500
Wie geht es dir?
Mir geht es gut.
`

func writeSampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.srt")
	if err := os.WriteFile(path, []byte(sampleSRT), 0600); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}
	return path
}

func TestIsSubtitlePath(t *testing.T) {
	if !IsSubtitlePath("movie.srt") || !IsSubtitlePath("movie.SRT") || !IsSubtitlePath("movie.vtt") {
		t.Error("expected subtitle extensions to be recognized")
	}
	if IsSubtitlePath("notes.txt") || IsSubtitlePath("movie") {
		t.Error("expected non-subtitle paths to be rejected")
	}
}

func TestLoadTextsApplyWrite(t *testing.T) {
	doc, err := Load(writeSampleFile(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	texts := doc.Texts()
	if len(texts) != 2 {
		t.Fatalf("len(texts) = %d, want 2", len(texts))
	}
	if texts[0] != "Guten Tag" {
		t.Errorf("texts[0] = %q", texts[0])
	}
	if texts[1] != "Wie geht es dir?\nMir geht es gut." {
		t.Errorf("texts[1] = %q, want embedded newline preserved", texts[1])
	}

	if err := doc.Apply([]string{"Good day", "How are you?\nI am fine."}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf, "out.srt"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Good day") || !strings.Contains(out, "How are you?") {
		t.Errorf("output missing translated text: %q", out)
	}
	if !strings.Contains(out, "00:00:04,000 --> 00:00:06,500") {
		t.Errorf("output lost cue timing: %q", out)
	}
}

func TestApply_CountMismatch(t *testing.T) {
	doc, err := Load(writeSampleFile(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := doc.Apply([]string{"only one"}); err == nil {
		t.Fatal("expected count mismatch error")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.srt")
	if err := os.WriteFile(path, []byte("\n"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for subtitle file without cues")
	}
}
