package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thirumal-kumar/interview-analyzer/internal/analysis"
	"github.com/thirumal-kumar/interview-analyzer/internal/api"
	"github.com/thirumal-kumar/interview-analyzer/internal/ffmpeg"
)

// Options configures the worker.
type Options struct {
	InputPath        string // audio/video input; empty when TranscriptPath is set
	TranscriptPath   string // plain-text transcript file; "-" reads stdin
	OutputPath       string // report path; "-" writes to stdout
	Language         string
	Keywords         []string
	Round            analysis.Round
	MaxKeyPoints     int
	SaveTranscript   bool
	NoAsync          bool
	MaxConcurrent    int
	MaxRetries       int
	RateLimitPerMin  int
	SplitDurationMin int
	ASRBaseURL       string
	UploadTimeout    time.Duration
}

// apiOptions maps worker options onto the transcription client.
func apiOptions(opts Options) api.Options {
	return api.Options{
		BaseURL:  opts.ASRBaseURL,
		Language: opts.Language,
		Timeout:  opts.UploadTimeout,
	}
}

// applyTimeOffset adds an offset (in seconds) to all segment timestamps,
// rounding to millisecond precision.
func applyTimeOffset(segments []analysis.Segment, offsetSec float64) {
	for i := range segments {
		segments[i].Start = math.Round((segments[i].Start+offsetSec)*1000) / 1000
		segments[i].End = math.Round((segments[i].End+offsetSec)*1000) / 1000
	}
}

// Run is the top-level orchestrator: resolve the input to a transcript,
// analyze it, and write the report.
func Run(ctx context.Context, opts Options) error {
	scorer := analysis.NewVADERScorer()

	if opts.TranscriptPath != "" {
		return runTranscriptFile(opts, scorer)
	}
	return runAudioFile(ctx, opts, scorer)
}

// runTranscriptFile analyzes a pasted/saved transcript. There is no timing
// information, so duration stays unknown and the segment list is empty.
func runTranscriptFile(opts Options, scorer analysis.Scorer) error {
	var (
		data []byte
		err  error
		name string
	)
	if opts.TranscriptPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(opts.TranscriptPath)
		name = filepath.Base(opts.TranscriptPath)
	}
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	transcript := strings.TrimSpace(string(data))
	if transcript == "" {
		return fmt.Errorf("transcript is empty")
	}

	slog.Info("analyzing transcript", "source", opts.TranscriptPath, "chars", len(transcript))

	report := analysis.Analyze(analysis.Input{
		Transcript:   transcript,
		Keywords:     opts.Keywords,
		Round:        opts.Round,
		MaxKeyPoints: opts.MaxKeyPoints,
	}, scorer)
	report.File = name

	outPath := opts.OutputPath
	if outPath == "" {
		if opts.TranscriptPath == "-" {
			outPath = "-"
		} else {
			outPath = strings.TrimSuffix(opts.TranscriptPath, filepath.Ext(opts.TranscriptPath)) + ".report.json"
		}
	}

	return writeOutputs(report, outPath, opts.SaveTranscript)
}

// runAudioFile converts, transcribes, and analyzes an audio/video recording.
func runAudioFile(ctx context.Context, opts Options, scorer analysis.Scorer) error {
	inputPath := opts.InputPath

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".report.json"
	}

	slog.Info("processing file", "input", filepath.Base(inputPath))

	info := ffmpeg.LogMediaInfo(ctx, inputPath)
	probedDuration := 0.0
	if info != nil {
		probedDuration = info.Duration
	}

	workingPath := inputPath
	if ffmpeg.Available() {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		tempWAV := filepath.Join(filepath.Dir(inputPath), "temp_audio_"+base+"_16k.wav")
		if err := ffmpeg.ConvertToWAV16k(ctx, inputPath, tempWAV); err != nil {
			return fmt.Errorf("convert audio: %w", err)
		}
		workingPath = tempWAV
		defer os.Remove(tempWAV)
	} else {
		if ffmpeg.IsVideoExtension(filepath.Ext(inputPath)) {
			return fmt.Errorf("ffmpeg is required to process video input")
		}
		slog.Warn("ffmpeg not found, uploading original file without conversion")
	}

	splitDurationSec := opts.SplitDurationMin * 60
	var combined *analysis.TranscriptResponse

	if probedDuration > float64(splitDurationSec) && ffmpeg.Available() {
		slog.Info("file duration exceeds split threshold, splitting",
			"duration_min", int(probedDuration/60), "threshold_min", opts.SplitDurationMin)

		chunks, err := ffmpeg.SplitAudio(ctx, workingPath, filepath.Dir(workingPath), splitDurationSec)
		if err != nil {
			return fmt.Errorf("split audio: %w", err)
		}
		defer cleanupChunks(chunks)

		slog.Info("split into chunks", "count", len(chunks))

		if !opts.NoAsync && len(chunks) > 1 {
			combined, err = processConcurrent(ctx, chunks, splitDurationSec, opts)
		} else {
			combined, err = processSequential(ctx, chunks, splitDurationSec, opts)
		}
		if err != nil {
			return err
		}
	} else {
		slog.Info("processing as single file")
		transcript, err := transcribeWithProgress(ctx, workingPath, opts)
		if err != nil {
			return fmt.Errorf("transcribe: %w", err)
		}
		combined = transcript
	}

	if combined == nil || (len(combined.Segments) == 0 && combined.Text == "") {
		return fmt.Errorf("empty transcript received")
	}

	// Prefer the service-reported duration; fall back to the probe.
	var duration *float64
	switch {
	case combined.Duration > 0:
		duration = &combined.Duration
	case probedDuration > 0:
		duration = &probedDuration
	}

	slog.Info("running analysis", "segments", len(combined.Segments))

	report := analysis.Analyze(analysis.Input{
		Transcript:   strings.TrimSpace(combined.Text),
		Segments:     combined.Segments,
		Duration:     duration,
		Keywords:     opts.Keywords,
		Round:        opts.Round,
		MaxKeyPoints: opts.MaxKeyPoints,
	}, scorer)
	report.File = filepath.Base(inputPath)

	return writeOutputs(report, outPath, opts.SaveTranscript)
}

// writeOutputs serializes the report (and optionally the bare transcript)
// and logs the headline metrics.
func writeOutputs(report *analysis.Report, outPath string, saveTranscript bool) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if outPath == "-" {
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	} else {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		slog.Info("report saved", "path", outPath)

		if saveTranscript {
			txtPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".txt"
			if err := os.WriteFile(txtPath, []byte(report.Transcript+"\n"), 0644); err != nil {
				slog.Warn("failed to save transcript", "err", err)
			} else {
				slog.Info("transcript saved", "path", txtPath)
			}
		}
	}

	slog.Info("analysis complete",
		"overall_score", report.OverallScore,
		"confidence_score", report.ConfidenceScore,
		"tone", report.Tone,
		"total_words", report.TotalWords,
		"filler_total", report.Filler.Total)
	return nil
}

func transcribeWithProgress(ctx context.Context, path string, opts Options) (*analysis.TranscriptResponse, error) {
	progress := func(read, total int64) {
		pct := 0.0
		if total > 0 {
			pct = math.Min(float64(read)/float64(total)*100, 100)
		}
		slog.Debug("upload progress", "percent", fmt.Sprintf("%.1f%%", pct))
	}

	return api.Transcribe(ctx, apiOptions(opts), path, progress)
}

func cleanupChunks(chunks []string) {
	for _, chunk := range chunks {
		if err := os.Remove(chunk); err != nil && !os.IsNotExist(err) {
			slog.Debug("cleanup chunk", "file", filepath.Base(chunk), "err", err)
		}
	}
	slog.Debug("temp chunk cleanup complete")
}
