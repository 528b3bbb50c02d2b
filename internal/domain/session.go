package domain

import "time"

// DraftVariant is one of several alternative AI-generated edits offered for
// a single user instruction.
type DraftVariant struct {
	ID        string `json:"id"`
	LatexCode string `json:"latex_code"`
	Summary   string `json:"summary"`
	Intent    string `json:"intent"` // e.g. "Standard", "Creative", "Concise"
}

// RefinementProposal holds the variant set produced for one edit request,
// together with the document it was derived from. Sessions are owned
// exclusively by the store; callers only read by (sessionID, variantID).
type RefinementProposal struct {
	SessionID     string         `json:"session_id"`
	OriginalLatex string         `json:"original_latex"`
	SectionName   string         `json:"section_name,omitempty"`
	Variants      []DraftVariant `json:"variants"`
	CreatedAt     time.Time      `json:"created_at"`
}
