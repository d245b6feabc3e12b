package analysis

import "testing"

func TestCountWords_Empty(t *testing.T) {
	count, tokens := CountWords("")
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if len(tokens) != 0 {
		t.Errorf("tokens = %v, want none", tokens)
	}
}

func TestCountWords_WhitespaceOnly(t *testing.T) {
	count, _ := CountWords("   \n\t  ")
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestCountWords_Sentence(t *testing.T) {
	count, tokens := CountWords("We used data and algorithms.")
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
	if tokens[0] != "We" || tokens[4] != "algorithms" {
		t.Errorf("tokens = %v, want first 'We' and last 'algorithms'", tokens)
	}
}

func TestCountWords_PunctuationIgnored(t *testing.T) {
	count, _ := CountWords("one, two... three!")
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestWordsPerMinute(t *testing.T) {
	tests := []struct {
		words    int
		duration float64
		want     float64
	}{
		{0, 60, 0.0},
		{140, 60, 140.0},
		{140, 0, 0.0},
		{140, -5, 0.0},
		{70, 30, 140.0},
		{100, 120, 50.0},
	}

	for _, tt := range tests {
		got := WordsPerMinute(tt.words, tt.duration)
		if got != tt.want {
			t.Errorf("WordsPerMinute(%d, %v) = %v, want %v", tt.words, tt.duration, got, tt.want)
		}
	}
}
