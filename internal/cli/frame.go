package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subtrack/subtrack/internal/render"
	"github.com/subtrack/subtrack/internal/track"
)

var frameCmd = &cobra.Command{
	Use:   "frame [subtitle_file]",
	Short: "Rasterize the cue active at a query time to a PNG",
	Long: `Resolve the cue active at a query time, render it through the track's
cache, and write the frame (or its alpha mask) as a PNG. When no cue is
active the output is the one-pixel blank sentinel.

Examples:
  subtrack frame subs.srt --at 12.5
  subtrack frame words.json --at 3 --mask -o mask.png`,
	Args: cobra.ExactArgs(1),
	RunE: runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)

	frameCmd.Flags().Float64("at", 0, "Query time in seconds")
	frameCmd.Flags().Bool("mask", false, "Write the alpha mask instead of the frame")
	frameCmd.MarkFlagRequired("at")
}

func runFrame(cmd *cobra.Command, args []string) error {
	path := args[0]

	at, _ := cmd.Flags().GetFloat64("at")
	asMask, _ := cmd.Flags().GetBool("mask")
	outputPath, _ := cmd.Flags().GetString("output")
	encName, _ := cmd.Flags().GetString("encoding")

	if outputPath == "" {
		outputPath = defaultOutputPath(path, ".png")
	}

	tl, err := loadTimeline(path, encName)
	if err != nil {
		return err
	}

	session, err := track.NewSession(tl, render.New(render.DefaultOptions()))
	if err != nil {
		return fmt.Errorf("failed to start render session: %w", err)
	}

	t := track.Seconds(at)
	logger.Infow("Resolving frame",
		"input", path,
		"at", t.String(),
		"mask", asMask,
	)

	var img image.Image
	if asMask {
		if !session.HasMask() {
			return fmt.Errorf("renderer has no mask channel")
		}
		img, err = session.MaskAt(t)
	} else {
		img, err = session.FrameAt(t)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve frame: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Frame written: %s (%dx%d)\n",
		absOutput, img.Bounds().Dx(), img.Bounds().Dy())

	return nil
}
