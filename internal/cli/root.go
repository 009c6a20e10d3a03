package cli

import (
	"github.com/spf13/cobra"

	"github.com/subtrack/subtrack/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subtrack",
	Short: "Lazy-rendered subtitle track toolkit",
	Long: `Subtrack works with time-stamped subtitle cue tracks.

It parses plain timestamped text and styled word-level JSON, resolves the
active cue for any query time with a memoized render cache, and can export,
filter, slice, rasterize or burn a track.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("encoding", "e", "", "Input text encoding (IANA name, default UTF-8)")
}
