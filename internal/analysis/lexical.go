package analysis

import "regexp"

// wordRE matches a run of word characters (letters, digits, underscore).
var wordRE = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// CountWords tokenizes text on word-character runs and returns the token
// count along with the tokens themselves. Empty or whitespace-only text
// yields (0, nil).
func CountWords(text string) (int, []string) {
	tokens := wordRE.FindAllString(text, -1)
	return len(tokens), tokens
}

// WordsPerMinute derives a pace metric from a word count and an elapsed
// duration in seconds. A missing or non-positive duration yields 0.
func WordsPerMinute(totalWords int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0.0
	}
	return float64(totalWords) / (durationSeconds / 60.0)
}
