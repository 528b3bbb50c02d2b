package latex

import (
	"errors"
	"strings"
	"testing"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

func TestReplaceSection_Existing(t *testing.T) {
	got, err := ReplaceSection(sampleDoc, "Skills", "Rust, TLA+.")
	if err != nil {
		t.Fatalf("ReplaceSection: %v", err)
	}
	if !strings.Contains(got, "\\section{\\textbf{Skills}}\nRust, TLA+.\n\n") {
		t.Errorf("replaced section not framed as expected:\n%s", got)
	}
	if strings.Contains(got, "Go, Postgres, Kubernetes.") {
		t.Errorf("old content still present")
	}
	// untouched regions stay byte-exact
	if !strings.Contains(got, "Backend engineer at Acme.") {
		t.Errorf("unrelated section was modified")
	}
	if !strings.HasPrefix(got, `\documentclass{article}`) {
		t.Errorf("preamble was modified")
	}
}

func TestReplaceSection_Idempotent(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		title   string
		content string
	}{
		{"replace existing", sampleDoc, "Experience", "New experience text."},
		{"insert missing", sampleDoc, "Awards", "Best engineer 2025."},
		{"sectionless template", "\\documentclass{article}\n\\begin{document}\n\\end{document}\n", "Summary", "Hello."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once, err := ReplaceSection(tt.doc, tt.title, tt.content)
			if err != nil {
				t.Fatalf("first call: %v", err)
			}
			twice, err := ReplaceSection(once, tt.title, tt.content)
			if err != nil {
				t.Fatalf("second call: %v", err)
			}
			if once != twice {
				t.Errorf("not idempotent:\nfirst:  %q\nsecond: %q", once, twice)
			}
		})
	}
}

func TestReplaceSection_InsertOnMiss(t *testing.T) {
	got, err := ReplaceSection(sampleDoc, "NewSection", "X")
	if err != nil {
		t.Fatalf("ReplaceSection: %v", err)
	}

	regions := Segment(got)
	count := 0
	var idx int
	for i, r := range regions {
		if r.Kind == domain.Section && r.Title == "NewSection" {
			count++
			idx = i
		}
	}
	if count != 1 {
		t.Fatalf("got %d sections titled NewSection, want 1", count)
	}
	if regions[idx].TrimmedContent() != "X" {
		t.Errorf("inserted content = %q, want X", regions[idx].TrimmedContent())
	}
	if regions[idx+1].Kind != domain.Epilogue {
		t.Errorf("inserted section must sit immediately before the epilogue, followed by %v", regions[idx+1].Kind)
	}
}

func TestReplaceSection_DuplicateTitlesFirstOnly(t *testing.T) {
	doc := "\\section{Skills}\nfirst\n\\section{Skills}\nsecond\n\\end{document}\n"
	got, err := ReplaceSection(doc, "Skills", "updated")
	if err != nil {
		t.Fatalf("ReplaceSection: %v", err)
	}
	if !strings.Contains(got, "updated") {
		t.Errorf("first occurrence not updated")
	}
	if !strings.Contains(got, "second") {
		t.Errorf("later duplicate must stay untouched")
	}
	if strings.Contains(got, "first") {
		t.Errorf("first occurrence content should be gone")
	}
}

func TestReplaceSection_NoEndMarker(t *testing.T) {
	_, err := ReplaceSection("no structure here at all", "Anything", "X")
	var serr *domain.StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StructuralError", err)
	}
}

func TestReplaceSection_SectionlessTemplate(t *testing.T) {
	doc := "\\documentclass{article}\n\\begin{document}\n\\end{document}\n"
	got, err := ReplaceSection(doc, "Summary", "Short summary.")
	if err != nil {
		t.Fatalf("ReplaceSection: %v", err)
	}
	regions := Segment(got)
	found := false
	for _, r := range regions {
		if r.Kind == domain.Section && r.Title == "Summary" {
			found = true
			if r.TrimmedContent() != "Short summary." {
				t.Errorf("content = %q", r.TrimmedContent())
			}
		}
	}
	if !found {
		t.Fatalf("section not inserted into section-less template:\n%s", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), EndMarker) {
		t.Errorf("end marker must remain terminal:\n%s", got)
	}
}
