package analysis

// Segment is a time-bounded slice of the transcript produced by the
// transcription service. Start <= End whenever timing information exists.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// SentimentScore holds VADER-style polarity scores. Compound is in [-1, 1].
type SentimentScore struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// SegmentSentiment pairs a segment with its sentiment score.
type SegmentSentiment struct {
	Segment
	Sentiment SentimentScore `json:"sentiment"`
}

// FillerStats reports filler usage. Total equals the sum of ByWord values;
// phrases that never occur are absent from ByWord.
type FillerStats struct {
	Total  int            `json:"total"`
	ByWord map[string]int `json:"by_word"`
}

// KeywordCoverage partitions the user's keyword list into the keywords that
// appear in the transcript and those that don't, preserving input order.
type KeywordCoverage struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// TranscriptResponse is the top-level JSON structure from the whisper
// transcription service.
type TranscriptResponse struct {
	Task     string    `json:"task,omitempty"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
	Text     string    `json:"text"`
}

// Input bundles everything a single analysis run consumes.
type Input struct {
	Transcript   string
	Segments     []Segment
	Duration     *float64 // seconds; nil when unknown (e.g. pasted transcript)
	Keywords     []string
	Round        Round
	MaxKeyPoints int // <= 0 means DefaultMaxKeyPoints
}

// Report is the aggregate analysis output. Field names and units are part of
// the report format and must not change.
type Report struct {
	File                   string             `json:"file,omitempty"`
	Duration               *float64           `json:"duration"`
	TotalWords             int                `json:"total_words"`
	WPM                    float64            `json:"wpm"`
	Filler                 FillerStats        `json:"filler"`
	Sentiment              SentimentScore     `json:"sentiment"`
	Keywords               KeywordCoverage    `json:"keywords"`
	OverallScore           float64            `json:"overall_score"`
	ConfidenceScore        int                `json:"confidence_score"`
	Tone                   string             `json:"tone"`
	Summary                string             `json:"summary"`
	ImprovementSuggestions []string           `json:"improvement_suggestions"`
	KeyPoints              []string           `json:"key_points"`
	Transcript             string             `json:"transcript"`
	Segments               []Segment          `json:"segments"`
	SegmentSentiment       []SegmentSentiment `json:"segment_sentiment,omitempty"`
}
