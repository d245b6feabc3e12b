package analysis

// Analyze runs every metric over the transcript and bundles the results
// into a single report. Inputs are read-only; calling Analyze twice with
// the same input and scorer yields identical reports.
func Analyze(in Input, scorer Scorer) *Report {
	totalWords, _ := CountWords(in.Transcript)

	var dur float64
	if in.Duration != nil {
		dur = *in.Duration
	}
	wpm := WordsPerMinute(totalWords, dur)

	filler := CountFillers(in.Transcript)
	sentiment := scorer.Score(in.Transcript)

	maxPoints := in.MaxKeyPoints
	if maxPoints <= 0 {
		maxPoints = DefaultMaxKeyPoints
	}

	segments := in.Segments
	if segments == nil {
		segments = []Segment{}
	}

	return &Report{
		Duration:               in.Duration,
		TotalWords:             totalWords,
		WPM:                    wpm,
		Filler:                 filler,
		Sentiment:              sentiment,
		Keywords:               Coverage(in.Keywords, in.Transcript),
		OverallScore:           OverallScore(wpm, filler.Total, sentiment.Compound),
		ConfidenceScore:        ConfidenceScore(filler.Total, sentiment, wpm),
		Tone:                   ToneLabel(sentiment, filler.Total),
		Summary:                Summary(wpm, sentiment, filler.Total, in.Round),
		ImprovementSuggestions: Suggestions(wpm, filler.Total, sentiment),
		KeyPoints:              ExtractKeyPoints(in.Transcript, maxPoints),
		Transcript:             in.Transcript,
		Segments:               segments,
		SegmentSentiment:       ScoreSegments(scorer, segments),
	}
}
