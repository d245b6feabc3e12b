package analysis

import "strings"

// fillerPhrases is the fixed detection vocabulary. Matching is plain
// substring counting, not word-boundary counting: "so" also matches inside
// "also". The score thresholds were tuned against this behavior, so it
// must not be tightened silently.
var fillerPhrases = []string{
	"um", "uh", "like", "you know", "i mean", "so", "actually",
	"basically", "right", "well", "hmm", "huh", "erm",
}

// CountFillers scans the transcript for filler words and phrases,
// case-insensitively, and returns the total count plus a per-phrase
// breakdown of non-overlapping occurrences.
func CountFillers(text string) FillerStats {
	lower := strings.ToLower(text)
	stats := FillerStats{ByWord: map[string]int{}}
	for _, phrase := range fillerPhrases {
		if c := strings.Count(lower, phrase); c > 0 {
			stats.ByWord[phrase] = c
			stats.Total += c
		}
	}
	return stats
}
