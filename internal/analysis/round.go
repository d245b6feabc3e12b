package analysis

import "strings"

// RoundKind identifies the interview round category used to tailor summary
// phrasing. Unrecognized tags map to RoundUnknown, which carries no hint.
type RoundKind int

const (
	RoundUnknown RoundKind = iota
	RoundGeneral
	RoundTechnical
	RoundHR
	RoundManagerial
	RoundGroup
)

// Round pairs the user-supplied tag with its parsed kind. The original tag
// is kept verbatim for display in the summary text.
type Round struct {
	Tag  string
	Kind RoundKind
}

// ParseRound matches a free-text round tag against the known menu,
// case-insensitively.
func ParseRound(tag string) Round {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "general":
		return Round{Tag: tag, Kind: RoundGeneral}
	case "technical", "tech":
		return Round{Tag: tag, Kind: RoundTechnical}
	case "hr", "behavioral":
		return Round{Tag: tag, Kind: RoundHR}
	case "managerial":
		return Round{Tag: tag, Kind: RoundManagerial}
	case "group discussion", "group":
		return Round{Tag: tag, Kind: RoundGroup}
	default:
		return Round{Tag: tag, Kind: RoundUnknown}
	}
}

// Hint returns the role-specific advice sentence for the round, or "" when
// the round carries none.
func (r Round) Hint() string {
	switch r.Kind {
	case RoundTechnical:
		return "Responses could benefit from more concrete technical examples and clarity on design choices."
	case RoundHR:
		return "Consider focusing on structured storytelling (STAR) for behavioral answers."
	case RoundManagerial:
		return "Consider emphasizing leadership decisions, outcomes, and stakeholder impact."
	}
	return ""
}
