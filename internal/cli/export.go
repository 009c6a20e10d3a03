package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subtrack/subtrack/internal/subtitle"
)

var exportCmd = &cobra.Command{
	Use:   "export [subtitle_file]",
	Short: "Export a subtitle track as timestamped text",
	Long: `Export a subtitle track as plain timestamped text blocks.

Styled JSON input (.json) is flattened to its cue text. By default the output
uses "start - end" header lines; --srt writes numbered SRT blocks instead.

Examples:
  subtrack export subs.srt
  subtrack export words.json -o track.txt
  subtrack export subs.srt --srt -o subs_clean.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		Bool("srt", false, "Write numbered SRT blocks instead of the plain representation")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	encName, _ := cmd.Flags().GetString("encoding")
	asSRT, _ := cmd.Flags().GetBool("srt")

	tl, err := loadTimeline(path, encName)
	if err != nil {
		return err
	}

	logger.Infow("Exporting track",
		"input", path,
		"cues", tl.Len(),
		"duration", tl.Duration().String(),
	)

	if outputPath == "" {
		if asSRT {
			return fmt.Errorf("--srt requires an output path")
		}
		fmt.Println(tl.Export())
		return nil
	}

	if asSRT {
		err = subtitle.WriteSRT(tl.Cues(), outputPath)
	} else {
		err = subtitle.WriteFile(tl.Cues(), outputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write track: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Track exported successfully: %s\n", absOutput)

	return nil
}

// defaultOutputPath swaps the input extension.
func defaultOutputPath(inputPath, ext string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}
