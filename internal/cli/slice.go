package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subtrack/subtrack/internal/subtitle"
	"github.com/subtrack/subtrack/internal/track"
)

var sliceCmd = &cobra.Command{
	Use:   "slice [subtitle_file]",
	Short: "Extract the cues overlapping a time range",
	Long: `List every cue overlapping a time range, with the boundary cues clamped
to the range edges. Omitting --from or --to leaves that side open.

Times are in seconds.

Examples:
  subtrack slice subs.srt --from 3 --to 12
  subtrack slice subs.srt --from 60
  subtrack slice words.json --to 90 -o head.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().Float64("from", 0, "Range start in seconds")
	sliceCmd.Flags().Float64("to", 0, "Range end in seconds")
}

func runSlice(cmd *cobra.Command, args []string) error {
	path := args[0]

	encName, _ := cmd.Flags().GetString("encoding")
	outputPath, _ := cmd.Flags().GetString("output")

	from := track.Open
	if cmd.Flags().Changed("from") {
		v, _ := cmd.Flags().GetFloat64("from")
		from = track.At(track.Seconds(v))
	}
	to := track.Open
	if cmd.Flags().Changed("to") {
		v, _ := cmd.Flags().GetFloat64("to")
		to = track.At(track.Seconds(v))
	}

	tl, err := loadTimeline(path, encName)
	if err != nil {
		return err
	}

	cues := tl.SubRange(from, to)
	logger.Infow("Sliced track",
		"input", path,
		"cues", len(cues),
	)

	if len(cues) == 0 {
		fmt.Println("No cues in range.")
		return nil
	}

	if outputPath == "" {
		fmt.Println(subtitle.Export(cues))
		return nil
	}
	if err := subtitle.WriteFile(cues, outputPath); err != nil {
		return fmt.Errorf("failed to write slice: %w", err)
	}

	fmt.Printf("Slice written: %s (%d cues)\n", outputPath, len(cues))
	return nil
}
