package analysis

import (
	"strings"
	"testing"
)

func TestSummary_TechnicalRound(t *testing.T) {
	got := Summary(140, SentimentScore{Compound: 0.5}, 2, ParseRound("Technical"))
	want := "This appears to be a Technical interview. The candidate spoke in a well-paced manner " +
		"with minimal filler usage. Overall sentiment was positive. " +
		"Responses could benefit from more concrete technical examples and clarity on design choices."
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestSummary_Descriptors(t *testing.T) {
	tests := []struct {
		name     string
		wpm      float64
		compound float64
		filler   int
		contains []string
	}{
		{"fast negative high", 200, -0.5, 25, []string{"fast-paced", "high filler usage", "negative"}},
		{"slow neutral moderate", 90, 0.0, 10, []string{"slow-paced", "moderate filler usage", "neutral"}},
		{"well positive minimal", 130, 0.4, 3, []string{"well-paced", "minimal filler usage", "positive"}},
	}

	for _, tt := range tests {
		got := Summary(tt.wpm, SentimentScore{Compound: tt.compound}, tt.filler, ParseRound("General"))
		for _, want := range tt.contains {
			if !strings.Contains(got, want) {
				t.Errorf("%s: summary %q missing %q", tt.name, got, want)
			}
		}
	}
}

func TestSummary_UnrecognizedRoundHasNoHint(t *testing.T) {
	got := Summary(140, SentimentScore{}, 0, ParseRound("Quiz Show"))
	if !strings.HasSuffix(got, "Overall sentiment was neutral.") {
		t.Errorf("summary %q should end at the sentiment sentence", got)
	}
	if !strings.Contains(got, "Quiz Show interview") {
		t.Errorf("summary %q should name the round tag verbatim", got)
	}
}

func TestSummary_HRHint(t *testing.T) {
	got := Summary(140, SentimentScore{}, 0, ParseRound("behavioral"))
	if !strings.Contains(got, "STAR") {
		t.Errorf("summary %q missing the behavioral storytelling hint", got)
	}
}

func TestSuggestions_NoneFiredGivesFallback(t *testing.T) {
	got := Suggestions(140, 3, SentimentScore{Compound: 0.0})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if !strings.Contains(got[0], "Good communication") {
		t.Errorf("fallback = %q, want the generic affirmation", got[0])
	}
}

func TestSuggestions_OrderPaceFillerSentiment(t *testing.T) {
	got := Suggestions(200, 20, SentimentScore{Compound: -0.5})
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3: %v", len(got), got)
	}
	if !strings.Contains(got[0], "Reduce speaking speed") {
		t.Errorf("first = %q, want the pace suggestion", got[0])
	}
	if !strings.Contains(got[1], "removing filler words") {
		t.Errorf("second = %q, want the filler suggestion", got[1])
	}
	if !strings.Contains(got[2], "positive and confident tone") {
		t.Errorf("third = %q, want the tone suggestion", got[2])
	}
}

func TestSuggestions_SlowPace(t *testing.T) {
	got := Suggestions(90, 0, SentimentScore{})
	if len(got) != 1 || !strings.Contains(got[0], "speak slightly faster") {
		t.Errorf("got %v, want only the slow-pace suggestion", got)
	}
}

func TestSuggestions_ModerateFillers(t *testing.T) {
	got := Suggestions(140, 10, SentimentScore{})
	if len(got) != 1 || !strings.Contains(got[0], "Be mindful of filler words") {
		t.Errorf("got %v, want only the moderate filler suggestion", got)
	}
}

func TestSuggestions_PositiveToneAffirmed(t *testing.T) {
	got := Suggestions(140, 0, SentimentScore{Compound: 0.7})
	if len(got) != 1 || !strings.Contains(got[0], "tone is positive") {
		t.Errorf("got %v, want only the positive-tone affirmation", got)
	}
}
