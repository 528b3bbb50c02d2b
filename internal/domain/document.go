package domain

import "strings"

// RegionKind tags the three structural region types of a LaTeX document.
type RegionKind int

const (
	Preamble RegionKind = iota
	Section
	Epilogue
)

func (k RegionKind) String() string {
	switch k {
	case Preamble:
		return "preamble"
	case Section:
		return "section"
	case Epilogue:
		return "epilogue"
	}
	return "unknown"
}

// Region is a contiguous, typed span of a document. Concatenating Raw for
// every region in order reproduces the original document byte for byte.
type Region struct {
	Kind RegionKind

	// RawTitle is the untouched text between the section-marker braces.
	// Title is RawTitle with formatting commands stripped; it is the lookup
	// key used by callers. Both are empty for Preamble/Epilogue regions.
	RawTitle string
	Title    string

	// Content is the text between this region's marker and the next marker,
	// whitespace preserved. Raw is marker+Content for sections; for
	// Preamble/Epilogue regions Raw equals Content.
	Content string
	Raw     string
}

// TrimmedContent returns Content with surrounding whitespace removed.
func (r Region) TrimmedContent() string {
	return strings.TrimSpace(r.Content)
}

// HealthReport is the result of the structural health check. The score is a
// heuristic 0-100 estimate, not a correctness proof.
type HealthReport struct {
	Healthy bool     `json:"is_healthy"`
	Score   int      `json:"score"`
	Issues  []string `json:"issues"`
}

// DocumentUpdate is the normalized shape of an AI edit response.
type DocumentUpdate struct {
	LatexCode          string `json:"latex_code"`
	SummaryOfChanges   string `json:"summary_of_changes"`
	IsCompleteDocument bool   `json:"is_complete_document"`
}

// ScoreReport is the ATS match result for a resume against a job description.
type ScoreReport struct {
	TotalScore      float64  `json:"total_score"`
	SemanticMatch   float64  `json:"semantic_match"`
	KeywordMatch    float64  `json:"keyword_match"`
	MissingKeywords []string `json:"missing_keywords"`
	MatchedKeywords []string `json:"matched_keywords"`
}
