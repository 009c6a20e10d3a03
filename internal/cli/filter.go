package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/subtrack/subtrack/internal/subtitle"
)

var filterCmd = &cobra.Command{
	Use:   "filter [subtitle_file]",
	Short: "Derive a track keeping only cues matching a pattern",
	Long: `Filter a subtitle track down to the cues whose text matches a regular
expression, preserving the original order.

Examples:
  subtrack filter subs.srt --pattern "hello"
  subtrack filter words.json -p "(?i)chorus" -o chorus.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().
		StringP("pattern", "p", "", "Regular expression matched against cue text")
	filterCmd.MarkFlagRequired("pattern")
}

func runFilter(cmd *cobra.Command, args []string) error {
	path := args[0]

	pattern, _ := cmd.Flags().GetString("pattern")
	outputPath, _ := cmd.Flags().GetString("output")
	encName, _ := cmd.Flags().GetString("encoding")

	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	tl, err := loadTimeline(path, encName)
	if err != nil {
		return err
	}

	filtered, err := tl.Filter(re)
	if err != nil {
		return fmt.Errorf("no cues match %q", pattern)
	}

	logger.Infow("Filtered track",
		"input", path,
		"pattern", pattern,
		"kept", filtered.Len(),
		"of", tl.Len(),
	)

	if outputPath == "" {
		fmt.Println(filtered.Export())
		return nil
	}
	if err := subtitle.WriteFile(filtered.Cues(), outputPath); err != nil {
		return fmt.Errorf("failed to write filtered track: %w", err)
	}

	fmt.Printf("Filtered track written: %s (%d cues)\n", outputPath, filtered.Len())
	return nil
}
