package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "interview-analyzer",
	Short: "Analyze interview recordings and transcripts for delivery quality",
	Long: `Interview Analyzer computes heuristic quality metrics for a spoken
interview: speaking pace, filler-word usage, sentiment, keyword coverage,
composite scores, tone, a summary with improvement suggestions, and key
points. Audio is transcribed through a whisper-compatible service; plain
transcripts are analyzed directly. Results are written as a JSON report.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
