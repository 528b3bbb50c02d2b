package latex

import (
	"strings"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// ReplaceSection swaps the content of the first section whose cleaned title
// equals title, leaving every other region byte-exact. The new content is
// framed deterministically: one newline before, two after, so repeated
// application with the same arguments is a no-op after the first.
//
// When no section matches, the section is inserted immediately before the
// epilogue instead of failing. Only a document with no epilogue at all (no
// \end{document} anywhere to anchor the insert) yields a StructuralError.
func ReplaceSection(doc, title, newContent string) (string, error) {
	regions := Segment(doc)

	var b strings.Builder
	b.Grow(len(doc) + len(newContent) + 64)
	replaced := false
	for _, r := range regions {
		if !replaced && r.Kind == domain.Section && r.Title == title {
			// Marker is the prefix of Raw that precedes the content.
			b.WriteString(r.Raw[:len(r.Raw)-len(r.Content)])
			writeFramed(&b, newContent)
			replaced = true
			continue
		}
		b.WriteString(r.Raw)
	}
	if replaced {
		return b.String(), nil
	}

	// Insert before the epilogue. A section-less document has no epilogue
	// region, so fall back to the first end marker in the raw text.
	last := regions[len(regions)-1]
	at := -1
	if last.Kind == domain.Epilogue {
		at = len(doc) - len(last.Raw)
	} else if idx := strings.Index(doc, EndMarker); idx >= 0 {
		at = idx
	}
	if at < 0 {
		return "", &domain.StructuralError{
			Reason: "no " + EndMarker + " marker to insert section before",
		}
	}

	b.Reset()
	b.Grow(len(doc) + len(newContent) + len(title) + 64)
	b.WriteString(doc[:at])
	b.WriteString(`\section{` + title + `}`)
	writeFramed(&b, newContent)
	b.WriteString(doc[at:])
	return b.String(), nil
}

func writeFramed(b *strings.Builder, content string) {
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n\n")
}
