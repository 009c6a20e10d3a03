package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FormatTimestamp renders a cue boundary as HH:MM:SS,mmm.
func FormatTimestamp(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// Export serializes cues in order as "start - end" plus text blocks separated
// by a blank line. The output parses back through ParsePlain.
func Export(cues []Cue) string {
	blocks := make([]string, 0, len(cues))
	for _, c := range cues {
		blocks = append(blocks, fmt.Sprintf("%s - %s\n%s",
			FormatTimestamp(c.Interval.Start),
			FormatTimestamp(c.Interval.End),
			c.Text))
	}
	return strings.Join(blocks, "\n\n")
}

// WriteFile persists the exported representation.
func WriteFile(cues []Cue, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Export(cues)), 0644)
}

// WriteSRT persists cues as numbered SRT blocks for players and ffmpeg.
func WriteSRT(cues []Cue, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, c := range cues {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(c.Interval.Start),
			FormatTimestamp(c.Interval.End)))

		// text
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
