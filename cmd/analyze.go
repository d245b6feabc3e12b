package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/thirumal-kumar/interview-analyzer/internal/analysis"
	"github.com/thirumal-kumar/interview-analyzer/internal/config"
	"github.com/thirumal-kumar/interview-analyzer/internal/worker"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Analyze an interview recording or transcript",
	Long: `Analyze an interview and write a JSON report of heuristic quality
metrics. Pass an audio/video file to transcribe it through the configured
whisper service first, or use --transcript to analyze existing text
directly (use "-" to read it from stdin).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	transcriptPath string
	keywordsFlag   string
	roundFlag      string
	language       string
	output         string
	saveTranscript bool
	asrURL         string
	noAsync        bool
	maxConcurrent  int
	maxRetries     int
	rateLimit      int
	splitDuration  int
	maxKeyPoints   int
)

func init() {
	defaults := config.Default()

	analyzeCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "analyze a plain-text transcript instead of audio ('-' for stdin)")
	analyzeCmd.Flags().StringVarP(&keywordsFlag, "keywords", "k", strings.Join(defaults.DefaultKeywords, ","), "comma-separated keywords to check coverage for")
	analyzeCmd.Flags().StringVarP(&roundFlag, "round", "r", defaults.DefaultRound, "interview round: General, Technical, Managerial, HR, Group Discussion")
	analyzeCmd.Flags().StringVarP(&language, "language", "l", "en", "transcription language code (ISO), or auto")
	analyzeCmd.Flags().StringVarP(&output, "output", "o", "", "report path (default: <input>.report.json, '-' for stdout)")
	analyzeCmd.Flags().BoolVar(&saveTranscript, "save-transcript", false, "save the transcript as a .txt next to the report")
	analyzeCmd.Flags().StringVar(&asrURL, "asr-url", defaults.ASRBaseURL, "base URL of the whisper transcription service")
	analyzeCmd.Flags().BoolVar(&noAsync, "no-async", false, "disable concurrent chunk transcription")
	analyzeCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", defaults.MaxConcurrentChunks, "max concurrent chunk uploads")
	analyzeCmd.Flags().IntVar(&maxRetries, "max-retries", defaults.MaxRetries, "max retries per chunk")
	analyzeCmd.Flags().IntVar(&rateLimit, "rate-limit", defaults.APIRateLimitPerMin, "transcription requests per minute")
	analyzeCmd.Flags().IntVar(&splitDuration, "split-duration", defaults.SplitDurationMin, "audio split threshold in minutes")
	analyzeCmd.Flags().IntVar(&maxKeyPoints, "max-key-points", defaults.MaxKeyPoints, "maximum key points to extract")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Config file values apply wherever the flag was left at its default.
	flags := cmd.Flags()
	if !flags.Changed("asr-url") {
		asrURL = cfg.ASRBaseURL
	}
	if !flags.Changed("keywords") {
		keywordsFlag = strings.Join(cfg.DefaultKeywords, ",")
	}
	if !flags.Changed("round") {
		roundFlag = cfg.DefaultRound
	}
	if !flags.Changed("max-concurrent") {
		maxConcurrent = cfg.MaxConcurrentChunks
	}
	if !flags.Changed("max-retries") {
		maxRetries = cfg.MaxRetries
	}
	if !flags.Changed("rate-limit") {
		rateLimit = cfg.APIRateLimitPerMin
	}
	if !flags.Changed("split-duration") {
		splitDuration = cfg.SplitDurationMin
	}
	if !flags.Changed("max-key-points") {
		maxKeyPoints = cfg.MaxKeyPoints
	}

	opts := worker.Options{
		TranscriptPath:   transcriptPath,
		OutputPath:       output,
		Language:         language,
		Keywords:         analysis.ParseKeywords(keywordsFlag),
		Round:            analysis.ParseRound(roundFlag),
		MaxKeyPoints:     maxKeyPoints,
		SaveTranscript:   saveTranscript,
		NoAsync:          noAsync,
		MaxConcurrent:    maxConcurrent,
		MaxRetries:       maxRetries,
		RateLimitPerMin:  rateLimit,
		SplitDurationMin: splitDuration,
		ASRBaseURL:       asrURL,
		UploadTimeout:    cfg.UploadTimeout(),
	}

	switch {
	case transcriptPath != "":
		if len(args) > 0 {
			return fmt.Errorf("pass either an audio file or --transcript, not both")
		}
	case len(args) == 1:
		absPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", args[0])
		}

		ext := strings.ToLower(filepath.Ext(absPath))
		validExts := map[string]bool{
			".mp3": true, ".m4a": true, ".wav": true, ".flac": true,
			".ogg": true, ".aac": true, ".mp4": true, ".mov": true,
			".mkv": true, ".avi": true, ".flv": true, ".webm": true,
		}
		if !validExts[ext] {
			return fmt.Errorf("unsupported file type: %s", ext)
		}
		opts.InputPath = absPath
	default:
		return fmt.Errorf("provide an audio/video file or --transcript")
	}

	// Graceful cancellation on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Run(ctx, opts)
}
