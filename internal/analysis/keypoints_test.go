package analysis

import (
	"reflect"
	"testing"
)

func TestExtractKeyPoints_Empty(t *testing.T) {
	if got := ExtractKeyPoints("", 5); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
	if got := ExtractKeyPoints("   \n  ", 5); len(got) != 0 {
		t.Errorf("got %v for whitespace, want none", got)
	}
}

func TestExtractKeyPoints_KeywordRanking(t *testing.T) {
	transcript := "We designed a system. It worked well. The project improved results significantly."
	got := ExtractKeyPoints(transcript, 5)

	want := []string{
		"The project improved results significantly.", // 5 words + 2 keywords = 15
		"We designed a system.",                       // 4 words + 1 keyword = 9
		"It worked well.",                             // 3 words
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key points = %v, want %v", got, want)
	}
}

func TestExtractKeyPoints_MaxPointsTruncates(t *testing.T) {
	transcript := "We designed a system. It worked well. The project improved results significantly."
	got := ExtractKeyPoints(transcript, 1)
	if len(got) != 1 {
		t.Fatalf("got %d points, want 1", len(got))
	}
	if got[0] != "The project improved results significantly." {
		t.Errorf("top point = %q, want the highest-scoring sentence", got[0])
	}
}

func TestExtractKeyPoints_TiesKeepTranscriptOrder(t *testing.T) {
	// All sentences score 3 (three words, no keywords); the stable sort must
	// preserve their original order.
	transcript := "One two three. Four five six. Seven eight nine."
	got := ExtractKeyPoints(transcript, 5)
	want := []string{"One two three.", "Four five six.", "Seven eight nine."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key points = %v, want transcript order %v", got, want)
	}
}

func TestExtractKeyPoints_NoTrailingPunctuation(t *testing.T) {
	got := ExtractKeyPoints("a single statement without sentence punctuation", 5)
	if len(got) != 1 {
		t.Fatalf("got %d points, want 1", len(got))
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Hello. World", []string{"Hello.", "World"}},
		{"One! Two? Three.", []string{"One!", "Two?", "Three."}},
		{"No boundary here", []string{"No boundary here"}},
		{"Trailing. ", []string{"Trailing."}},
		{"A.. B", []string{"A..", "B"}},
		{"Dots.between.words stay", []string{"Dots.between.words stay"}},
	}

	for _, tt := range tests {
		got := splitSentences(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitSentences(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
