package subtitle

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00,000"},
		{time.Second, "00:00:01,000"},
		{59*time.Second + 999*time.Millisecond, "00:00:59,999"},
		{time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond, "01:02:03,450"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.d); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	cues := []Cue{
		{Interval: Interval{Start: time.Second, End: 4 * time.Second}, Text: "Hello, world!"},
		{Interval: Interval{Start: 5 * time.Second, End: 8 * time.Second}, Text: "Two\nlines"},
	}

	want := "00:00:01,000 - 00:00:04,000\nHello, world!\n\n" +
		"00:00:05,000 - 00:00:08,000\nTwo\nlines"
	if got := Export(cues); got != want {
		t.Errorf("Export mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportRoundTrip(t *testing.T) {
	content := `00:00:01,000 --> 00:00:04,000
Hello, world!

00:00:05,500 --> 00:00:08,200
This is a test.
`
	cues, err := ParsePlain(strings.NewReader(content), nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	reparsed, err := ParsePlain(strings.NewReader(Export(cues)), nil)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	if !reflect.DeepEqual(cues, reparsed) {
		t.Errorf("round trip changed cues:\nfirst:  %+v\nsecond: %+v", cues, reparsed)
	}
}

func TestWriteSRT(t *testing.T) {
	cues := []Cue{
		{Interval: Interval{Start: time.Second, End: 4 * time.Second}, Text: "Hello"},
		{Interval: Interval{Start: 5 * time.Second, End: 8 * time.Second}, Text: "Bye"},
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.srt")
	if err := WriteSRT(cues, path); err != nil {
		t.Fatalf("WriteSRT failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "1\n00:00:01,000 --> 00:00:04,000\nHello\n\n" +
		"2\n00:00:05,000 --> 00:00:08,000\nBye\n\n"
	if string(data) != want {
		t.Errorf("SRT output mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestWriteFileRereads(t *testing.T) {
	cues := []Cue{
		{Interval: Interval{Start: 2 * time.Second, End: 4 * time.Second}, Text: "only cue"},
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "out.txt")
	if err := WriteFile(cues, path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reparsed, err := ParsePlainFile(path, nil)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !reflect.DeepEqual(cues, reparsed) {
		t.Errorf("file round trip changed cues: %+v vs %+v", cues, reparsed)
	}
}
