package analysis

import "math"

// OverallScore combines pace, filler count, and sentiment into a single
// 0-100 score, rounded to one decimal.
//
// Starting from a base of 50: pace contributes up to 20 points, full marks
// for 120-160 wpm and a linear falloff from the 140 wpm center elsewhere;
// each filler costs 2 points, capped at 20; the compound sentiment adds up
// to +/-10.
func OverallScore(wpm float64, fillerTotal int, compound float64) float64 {
	score := 50.0

	if wpm > 0 {
		if wpm >= 120 && wpm <= 160 {
			score += 20
		} else {
			d := math.Min(math.Abs(wpm-140), 100)
			score += math.Max(0, 20-d/5.0)
		}
	}

	score -= math.Min(20, float64(fillerTotal)*2)
	score += math.Max(-10, math.Min(10, compound*10))

	score = math.Max(0, math.Min(100, score))
	return math.Round(score*10) / 10
}

// ConfidenceScore derives a 0-100 confidence estimate: fewer fillers,
// positive sentiment, and a reasonable pace all raise it. The weighting is
// deliberately independent of OverallScore; the two are separate heuristics.
func ConfidenceScore(fillerTotal int, sentiment SentimentScore, wpm float64) int {
	score := 60

	score -= min(20, fillerTotal)
	score += int(sentiment.Compound * 20)

	if wpm < 110 || wpm > 180 {
		score -= 8
	} else {
		score += 5
	}

	return min(100, max(0, score))
}

// ToneLabel maps sentiment and filler usage to a coarse delivery label.
// Rules are checked in priority order; the first match wins.
func ToneLabel(sentiment SentimentScore, fillerTotal int) string {
	switch {
	case sentiment.Compound > 0.4 && fillerTotal < 10:
		return "Confident"
	case sentiment.Compound < -0.2 && fillerTotal > 10:
		return "Nervous"
	case fillerTotal > 25:
		return "Uncertain"
	default:
		return "Neutral"
	}
}
