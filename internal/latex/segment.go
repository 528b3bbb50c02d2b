// Package latex implements the structural document model: lexical
// segmentation of a LaTeX source into ordered regions, in-place section
// patching, and a lightweight structural health check.
//
// This is deliberately not a LaTeX grammar. Markers are matched with a
// regular expression that tolerates one level of nested braces inside
// section titles and nothing more; malformed markers are treated as literal
// content rather than rejected.
package latex

import (
	"regexp"
	"strings"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// EndMarker terminates the document body. Everything from its first
// occurrence after the last section is the epilogue region.
const EndMarker = `\end{document}`

// sectionMarkerRE matches \section{Title} where Title may contain one level
// of nested brace groups (e.g. \section{\textbf{Skills}}). An unterminated
// marker simply fails to match and stays part of the surrounding content.
var sectionMarkerRE = regexp.MustCompile(`\\section\{((?:[^{}]|\{[^{}]*\})+)\}`)

// titleCommandRE strips backslash-led commands that open a brace group, and
// stray closing braces, from a raw section title. Surface-level only; no
// macro evaluation.
var titleCommandRE = regexp.MustCompile(`\\[^{}]+\{|\}`)

// CleanTitle reduces a raw section title to the lookup key callers use:
// formatting commands removed, whitespace trimmed.
func CleanTitle(rawTitle string) string {
	return strings.TrimSpace(titleCommandRE.ReplaceAllString(rawTitle, ""))
}

// Segment splits a document into ordered regions. The concatenation of every
// region's Raw reproduces the input exactly.
//
// A document without any section marker comes back as a single Preamble
// region and nothing else; downstream code relies on that shape to detect
// "no sections".
func Segment(doc string) []domain.Region {
	markers := sectionMarkerRE.FindAllStringSubmatchIndex(doc, -1)
	if len(markers) == 0 {
		return []domain.Region{{Kind: domain.Preamble, Content: doc, Raw: doc}}
	}

	regions := make([]domain.Region, 0, len(markers)+2)
	regions = append(regions, domain.Region{
		Kind:    domain.Preamble,
		Content: doc[:markers[0][0]],
		Raw:     doc[:markers[0][0]],
	})

	epilogueStart := -1
	for i, m := range markers {
		markerStart, markerEnd := m[0], m[1]
		rawTitle := doc[m[2]:m[3]]

		contentEnd := len(doc)
		if i+1 < len(markers) {
			contentEnd = markers[i+1][0]
		} else if idx := strings.Index(doc[markerEnd:], EndMarker); idx >= 0 {
			// The last section's content stops where the epilogue begins.
			epilogueStart = markerEnd + idx
			contentEnd = epilogueStart
		}

		regions = append(regions, domain.Region{
			Kind:     domain.Section,
			RawTitle: rawTitle,
			Title:    CleanTitle(rawTitle),
			Content:  doc[markerEnd:contentEnd],
			Raw:      doc[markerStart:contentEnd],
		})
	}

	if epilogueStart >= 0 {
		regions = append(regions, domain.Region{
			Kind:    domain.Epilogue,
			Content: doc[epilogueStart:],
			Raw:     doc[epilogueStart:],
		})
	}
	return regions
}

// Sections returns the cleaned-title -> trimmed-content mapping for every
// section region. When a title repeats, the first occurrence wins.
func Sections(doc string) map[string]string {
	out := map[string]string{}
	for _, r := range Segment(doc) {
		if r.Kind != domain.Section {
			continue
		}
		if _, seen := out[r.Title]; seen {
			continue
		}
		out[r.Title] = r.TrimmedContent()
	}
	return out
}
