package latex

import (
	"strings"
	"testing"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

const sampleDoc = `\documentclass{article}
\usepackage{geometry}
\begin{document}
\section{Experience}
Backend engineer at Acme.
\section{\textbf{Skills}}
Go, Postgres, Kubernetes.
\section{Education}
BSc, Somewhere.
\end{document}
`

func roundTrip(regions []domain.Region) string {
	var b strings.Builder
	for _, r := range regions {
		b.WriteString(r.Raw)
	}
	return b.String()
}

func TestSegment_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no sections", "just some text\nwith no markers\n"},
		{"empty document", ""},
		{"one section", "\\begin{document}\n\\section{Only}\nbody\n\\end{document}\n"},
		{"many sections", sampleDoc},
		{"no end marker", "\\section{A}\none\n\\section{B}\ntwo\n"},
		{"unterminated marker", "before \\section{broken\nafter\n\\end{document}\n"},
		{"nested brace title", "\\section{\\emph{Deep {not} allowed}}\nbody\n\\end{document}\n"},
		{"duplicate titles", "\\section{Skills}\nfirst\n\\section{Skills}\nsecond\n\\end{document}\n"},
		{"marker at start", "\\section{First}\nbody\n\\end{document}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(Segment(tt.doc))
			if got != tt.doc {
				t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, tt.doc)
			}
		})
	}
}

func TestSegment_Shape(t *testing.T) {
	regions := Segment(sampleDoc)

	kinds := make([]domain.RegionKind, 0, len(regions))
	for _, r := range regions {
		kinds = append(kinds, r.Kind)
	}
	want := []domain.RegionKind{domain.Preamble, domain.Section, domain.Section, domain.Section, domain.Epilogue}
	if len(kinds) != len(want) {
		t.Fatalf("got %d regions (%v), want %d", len(kinds), kinds, len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("region %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}

	if got := regions[1].Title; got != "Experience" {
		t.Errorf("first section title = %q, want Experience", got)
	}
	if got := regions[2].Title; got != "Skills" {
		t.Errorf("cleaned title = %q, want Skills", got)
	}
	if got := regions[2].RawTitle; got != `\textbf{Skills}` {
		t.Errorf("raw title = %q, want \\textbf{Skills}", got)
	}
	if got := regions[1].TrimmedContent(); got != "Backend engineer at Acme." {
		t.Errorf("section content = %q", got)
	}
	if !strings.HasPrefix(regions[4].Raw, EndMarker) {
		t.Errorf("epilogue should start with end marker, got %q", regions[4].Raw)
	}
}

func TestSegment_NoSections(t *testing.T) {
	regions := Segment("plain text without markers")
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want exactly 1", len(regions))
	}
	if regions[0].Kind != domain.Preamble {
		t.Errorf("kind = %v, want Preamble", regions[0].Kind)
	}
}

func TestSegment_UnterminatedMarkerIsContent(t *testing.T) {
	doc := "intro\n\\section{never closed\nmore text\n"
	regions := Segment(doc)
	if len(regions) != 1 || regions[0].Kind != domain.Preamble {
		t.Fatalf("malformed marker must stay literal content, got %d regions", len(regions))
	}
}

func TestSegment_NoEndMarkerNoEpilogue(t *testing.T) {
	regions := Segment("\\section{A}\nbody runs to the end")
	last := regions[len(regions)-1]
	if last.Kind != domain.Section {
		t.Fatalf("last region = %v, want Section (no epilogue without end marker)", last.Kind)
	}
	if !strings.HasSuffix(last.Content, "runs to the end") {
		t.Errorf("last section content should run to EOF, got %q", last.Content)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Experience", "Experience"},
		{`\textbf{Skills}`, "Skills"},
		{"  Padded  ", "Padded"},
		{`\emph{Work History}`, "Work History"},
		{`Mixed \textit{Styles}`, "Mixed Styles"},
	}
	for _, tt := range tests {
		if got := CleanTitle(tt.raw); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSections_FirstOccurrenceWins(t *testing.T) {
	doc := "\\section{Skills}\nfirst\n\\section{Skills}\nsecond\n\\end{document}\n"
	got := Sections(doc)
	if got["Skills"] != "first" {
		t.Errorf("Sections[Skills] = %q, want the first occurrence", got["Skills"])
	}
}
