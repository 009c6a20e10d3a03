package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// defines interface for burning subtitles into video
type Burner interface {
	Burn(
		ctx context.Context,
		videoPath, subtitlePath, outputPath string,
		opts BurnOptions,
	) error
}

// holds options for the subtitle burn-in filter
type BurnOptions struct {
	FontSize int // Rendered font size
	MarginV  int // Vertical margin from the bottom edge
}

// returns sensible defaults for burn-in
func DefaultBurnOptions() BurnOptions {
	return BurnOptions{
		FontSize: 24,
		MarginV:  20,
	}
}

// default implementation using ffmpeg
type FFmpegBurner struct{}

func NewBurner() *FFmpegBurner {
	return &FFmpegBurner{}
}

// composites a subtitle file onto the video track
func (b *FFmpegBurner) Burn(
	ctx context.Context,
	videoPath, subtitlePath, outputPath string,
	opts BurnOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	style := fmt.Sprintf("FontSize=%d,MarginV=%d", opts.FontSize, opts.MarginV)
	vf := fmt.Sprintf("subtitles=%s:force_style='%s'",
		escapeFilterPath(subtitlePath), style)

	kwargs := ffmpeg.KwArgs{
		"vf":  vf,
		"c:a": "copy", // Audio passes through untouched
	}

	err := ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg burn-in failed: %w", err)
	}

	return nil
}

// escapeFilterPath quotes characters the ffmpeg filter parser treats as
// separators.
func escapeFilterPath(path string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`:`, `\:`,
		`'`, `\'`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(path)
}
