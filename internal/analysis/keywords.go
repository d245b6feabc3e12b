package analysis

import "strings"

// Coverage checks each keyword for case-insensitive substring presence in
// the transcript. Keywords are trimmed before matching but reported in
// their original form, preserving input order within each list.
func Coverage(keywords []string, transcript string) KeywordCoverage {
	lower := strings.ToLower(transcript)
	cov := KeywordCoverage{Found: []string{}, Missing: []string{}}
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(strings.TrimSpace(k))) {
			cov.Found = append(cov.Found, k)
		} else {
			cov.Missing = append(cov.Missing, k)
		}
	}
	return cov
}

// ParseKeywords splits a comma-separated keyword list, trimming whitespace
// and dropping blank entries.
func ParseKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
