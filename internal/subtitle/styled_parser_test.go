package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const styledFixture = `[
  {
    "startTimestamp": 1000,
    "endTimestamp": 4000,
    "words": [
      {"text": "Hello", "font": "Georgia", "size": 24, "color": "white"},
      {"text": "world", "font": "Georgia", "size": 24, "color": "#ff0000", "strokeWidth": 2}
    ]
  },
  {
    "startTimestamp": 4000,
    "endTimestamp": 6000,
    "words": [
      {"text": "Bye", "font": "Arial", "size": 18, "color": "yellow", "backgroundColor": "black"}
    ]
  }
]`

func TestParseStyledFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.json")
	if err := os.WriteFile(path, []byte(styledFixture), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cues, styles, err := ParseStyledFile(path, nil)
	if err != nil {
		t.Fatalf("failed to parse styled file: %v", err)
	}

	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}

	if cues[0].Interval.Start != time.Second {
		t.Errorf("cue 0: expected start 1s, got %v", cues[0].Interval.Start)
	}
	if cues[0].Interval.End != 4*time.Second {
		t.Errorf("cue 0: expected end 4s, got %v", cues[0].Interval.End)
	}

	// word texts are padded and concatenated
	if cues[0].Text != "Hello world " {
		t.Errorf("cue 0: expected 'Hello world ', got %q", cues[0].Text)
	}

	words, ok := styles[cues[0]]
	if !ok {
		t.Fatal("cue 0 has no style table entry")
	}
	if len(words) != 2 {
		t.Fatalf("cue 0: expected 2 word styles, got %d", len(words))
	}
	if words[0].Text != "Hello " {
		t.Errorf("word 0: expected padded text 'Hello ', got %q", words[0].Text)
	}
	if words[0].StrokeWidth != 1 {
		t.Errorf("word 0: expected default stroke width 1, got %v", words[0].StrokeWidth)
	}
	if words[0].Background != "transparent" {
		t.Errorf("word 0: expected default background transparent, got %q", words[0].Background)
	}
	if words[1].StrokeWidth != 2 {
		t.Errorf("word 1: expected stroke width 2, got %v", words[1].StrokeWidth)
	}

	if _, ok := styles[cues[1]]; !ok {
		t.Error("cue 1 has no style table entry")
	}
}

func TestParseStyledKeyIdentity(t *testing.T) {
	cues, styles, err := ParseStyled(strings.NewReader(styledFixture), nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// a structurally equal cue built elsewhere must hit the same entry
	rebuilt := Cue{
		Interval: Interval{Start: time.Second, End: 4 * time.Second},
		Text:     "Hello world ",
	}
	if _, ok := styles[rebuilt]; !ok {
		t.Error("structurally equal cue missed the style table")
	}
	if rebuilt != cues[0] {
		t.Error("expected rebuilt cue to equal parsed cue")
	}
}

func TestParseStyledMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", "{not json"},
		{"empty list", "[]"},
		{"line without words", `[{"startTimestamp": 0, "endTimestamp": 1000, "words": []}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseStyled(strings.NewReader(tt.content), nil)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}
