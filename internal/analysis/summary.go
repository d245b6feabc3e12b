package analysis

import "fmt"

// Summary produces a one-paragraph description of the delivery: pace,
// filler usage, overall mood, plus a role-specific hint for recognized
// round types.
func Summary(wpm float64, sentiment SentimentScore, fillerTotal int, round Round) string {
	mood := "negative"
	if sentiment.Compound > 0.2 {
		mood = "positive"
	} else if sentiment.Compound > -0.2 {
		mood = "neutral"
	}

	pace := "well-paced"
	if wpm > 160 {
		pace = "fast-paced"
	} else if wpm < 110 {
		pace = "slow-paced"
	}

	filler := "minimal filler usage"
	if fillerTotal > 20 {
		filler = "high filler usage"
	} else if fillerTotal > 5 {
		filler = "moderate filler usage"
	}

	summary := fmt.Sprintf(
		"This appears to be a %s interview. The candidate spoke in a %s manner with %s. Overall sentiment was %s.",
		round.Tag, pace, filler, mood,
	)
	if hint := round.Hint(); hint != "" {
		summary += " " + hint
	}
	return summary
}

// Suggestions returns ordered improvement advice: pace first, then fillers,
// then tone. Each block is independently evaluated, so several can fire at
// once; when none do, a single generic affirmation is returned.
func Suggestions(wpm float64, fillerTotal int, sentiment SentimentScore) []string {
	var out []string

	if wpm > 160 {
		out = append(out, "Reduce speaking speed to improve clarity and allow listeners to follow.")
	} else if wpm < 110 {
		out = append(out, "Try to speak slightly faster and add more energy to your delivery.")
	}

	if fillerTotal > 15 {
		out = append(out, "Work on removing filler words such as 'um', 'uh', and 'like'; practice pauses instead.")
	} else if fillerTotal > 5 {
		out = append(out, "Be mindful of filler words; aim to reduce them with focused practice.")
	}

	if sentiment.Compound < -0.2 {
		out = append(out, "Aim for a more positive and confident tone when responding.")
	} else if sentiment.Compound > 0.5 {
		out = append(out, "Your tone is positive; maintain this while balancing clarity.")
	}

	if len(out) == 0 {
		out = append(out, "Good communication. Small refinements (pauses, clarity) may help make it stronger.")
	}
	return out
}
