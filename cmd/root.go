package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bs2352/youtube-script-search/internal/logging"
	"github.com/rs/zerolog"
)

// debugFlag enables verbose debug logging for all commands
var debugFlag bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yts",
	Short: "Summarize and query YouTube video transcripts",
	Long: `yts fetches a YouTube video's transcript and uses an LLM to produce
a concise summary, a time-segmented detailed summary, and interactive
question answering over the transcript.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the command-level logger honoring the --debug flag
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debugFlag {
		level = zerolog.DebugLevel
	}
	return logging.New(level)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
}
