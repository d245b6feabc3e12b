package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxKeyPoints is the number of key points extracted when the caller
// doesn't ask for a specific limit.
const DefaultMaxKeyPoints = 5

// keyPointKeywords boosts sentences that talk about concrete work and
// outcomes.
var keyPointKeywords = []string{
	"project", "designed", "implemented", "led", "improved",
	"reduced", "increased", "result", "achieve",
}

// ExtractKeyPoints splits the transcript into sentences and returns up to
// maxPoints of them, ranked by word count plus a fixed bonus for every
// outcome keyword present. The sort is stable, so sentences with equal
// scores keep transcript order; earlier sentences win when maxPoints
// truncates a tie.
func ExtractKeyPoints(transcript string, maxPoints int) []string {
	trimmed := strings.TrimSpace(transcript)
	if trimmed == "" {
		return []string{}
	}
	if maxPoints < 0 {
		maxPoints = 0
	}

	type candidate struct {
		score int
		text  string
	}

	var candidates []candidate
	for _, s := range splitSentences(trimmed) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		score := len(strings.Fields(s))
		lower := strings.ToLower(s)
		for _, k := range keyPointKeywords {
			if strings.Contains(lower, k) {
				score += 5
			}
		}
		candidates = append(candidates, candidate{score: score, text: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if maxPoints > len(candidates) {
		maxPoints = len(candidates)
	}
	out := make([]string, 0, maxPoints)
	for _, c := range candidates[:maxPoints] {
		out = append(out, c.text)
	}
	return out
}

// splitSentences breaks text at '.', '!' or '?' followed by whitespace.
// Abbreviations are not special-cased; a punctuation run ends the sentence
// at its last character.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				sentences = append(sentences, string(runes[start:i+1]))
				j := i + 1
				for j < len(runes) && unicode.IsSpace(runes[j]) {
					j++
				}
				start = j
				i = j - 1
			}
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}
