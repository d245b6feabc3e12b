package analysis

import "github.com/jonreiter/govader"

// Scorer produces polarity scores for a piece of text. Implementations are
// expected to be stateless after construction so a single instance can be
// reused across an entire analysis run.
type Scorer interface {
	Score(text string) SentimentScore
}

// VADERScorer scores text with the VADER sentiment lexicon.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADERScorer builds the lexicon once; the returned scorer is cheap to
// call repeatedly.
func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VADERScorer) Score(text string) SentimentScore {
	s := v.analyzer.PolarityScores(text)
	return SentimentScore{
		Neg:      s.Negative,
		Neu:      s.Neutral,
		Pos:      s.Positive,
		Compound: s.Compound,
	}
}

// ScoreSegments applies the scorer to each segment's text, preserving the
// segment timing alongside the result.
func ScoreSegments(scorer Scorer, segments []Segment) []SegmentSentiment {
	out := make([]SegmentSentiment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, SegmentSentiment{Segment: seg, Sentiment: scorer.Score(seg.Text)})
	}
	return out
}
