package worker

import (
	"testing"

	"github.com/thirumal-kumar/interview-analyzer/internal/analysis"
)

func TestApplyTimeOffset(t *testing.T) {
	segments := []analysis.Segment{
		{Start: 0, End: 1.5, Text: "a"},
		{Start: 2, End: 3.25, Text: "b"},
	}

	applyTimeOffset(segments, 90)

	if segments[0].Start != 90 || segments[0].End != 91.5 {
		t.Errorf("segment 0 = [%v, %v], want [90, 91.5]", segments[0].Start, segments[0].End)
	}
	if segments[1].Start != 92 || segments[1].End != 93.25 {
		t.Errorf("segment 1 = [%v, %v], want [92, 93.25]", segments[1].Start, segments[1].End)
	}
}

func TestApplyTimeOffset_RoundsToMilliseconds(t *testing.T) {
	segments := []analysis.Segment{{Start: 0.0004, End: 0.0006}}
	applyTimeOffset(segments, 0)
	if segments[0].Start != 0 {
		t.Errorf("start = %v, want 0", segments[0].Start)
	}
	if segments[0].End != 0.001 {
		t.Errorf("end = %v, want 0.001", segments[0].End)
	}
}

func TestMergeResults_SortsByIndex(t *testing.T) {
	results := []chunkResult{
		{Index: 1, Transcript: &analysis.TranscriptResponse{
			Text:     "second chunk",
			Duration: 30,
			Segments: []analysis.Segment{{Start: 60, End: 90, Text: "second chunk"}},
		}},
		{Index: 0, Transcript: &analysis.TranscriptResponse{
			Language: "en",
			Text:     "first chunk",
			Duration: 60,
			Segments: []analysis.Segment{{Start: 0, End: 60, Text: "first chunk"}},
		}},
	}

	combined := mergeResults(results)

	if combined.Text != "first chunk second chunk" {
		t.Errorf("text = %q, want chunks joined in order", combined.Text)
	}
	if combined.Duration != 90 {
		t.Errorf("duration = %v, want summed 90", combined.Duration)
	}
	if len(combined.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(combined.Segments))
	}
	if combined.Segments[0].Start != 0 || combined.Segments[1].Start != 60 {
		t.Errorf("segments out of order: %+v", combined.Segments)
	}
	if combined.Language != "en" {
		t.Errorf("language = %q, want en from the first chunk", combined.Language)
	}
}

func TestMergeResults_SingleChunk(t *testing.T) {
	results := []chunkResult{
		{Index: 0, Transcript: &analysis.TranscriptResponse{Text: "only", Duration: 10}},
	}
	combined := mergeResults(results)
	if combined.Text != "only" || combined.Duration != 10 {
		t.Errorf("combined = %+v, want passthrough of the single chunk", combined)
	}
}
