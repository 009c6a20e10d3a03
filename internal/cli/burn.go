package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subtrack/subtrack/internal/subtitle"
	"github.com/subtrack/subtrack/internal/video"
)

var burnCmd = &cobra.Command{
	Use:   "burn [video_file]",
	Short: "Burn a subtitle track into a video",
	Long: `Burn a subtitle track into a video file with ffmpeg. The track is
exported to SRT first, so styled JSON input works too.

Examples:
  subtrack burn video.mp4 --subs subs.srt
  subtrack burn video.mp4 --subs words.json -o video_subbed.mp4
  subtrack burn video.mp4 --subs subs.srt --font-size 32`,
	Args: cobra.ExactArgs(1),
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)

	burnCmd.Flags().StringP("subs", "s", "", "Subtitle file to burn in")
	burnCmd.Flags().Int("font-size", 24, "Rendered font size")
	burnCmd.Flags().Int("margin", 20, "Vertical margin from the bottom edge")
	burnCmd.MarkFlagRequired("subs")
}

func runBurn(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	subsPath, _ := cmd.Flags().GetString("subs")
	fontSize, _ := cmd.Flags().GetInt("font-size")
	margin, _ := cmd.Flags().GetInt("margin")
	outputPath, _ := cmd.Flags().GetString("output")
	encName, _ := cmd.Flags().GetString("encoding")

	if outputPath == "" {
		ext := filepath.Ext(videoPath)
		outputPath = defaultOutputPath(videoPath, ".subbed"+ext)
	}

	tl, err := loadTimeline(subsPath, encName)
	if err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "subtrack-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	srtPath := filepath.Join(tempDir, "track.srt")
	if err := subtitle.WriteSRT(tl.Cues(), srtPath); err != nil {
		return fmt.Errorf("failed to stage SRT file: %w", err)
	}

	logger.Infow("Burning subtitles",
		"video", videoPath,
		"subs", subsPath,
		"output", outputPath,
		"cues", tl.Len(),
	)

	burner := video.NewBurner()
	opts := video.BurnOptions{
		FontSize: fontSize,
		MarginV:  margin,
	}

	ctx := context.Background()
	if err := burner.Burn(ctx, videoPath, srtPath, outputPath, opts); err != nil {
		return fmt.Errorf("burn-in failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles burned successfully: %s\n", absOutput)

	return nil
}
