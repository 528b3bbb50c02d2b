package latex

import (
	"strings"
	"testing"
)

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantScore   int
		wantHealthy bool
		wantIssue   string
	}{
		{
			name:        "balanced document",
			doc:         "\\begin{document}\ntext {grouped}\n\\end{document}\n",
			wantScore:   100,
			wantHealthy: true,
		},
		{
			name:        "one unclosed brace",
			doc:         "\\begin{document}\n\\textbf{oops\n\\end{document}\n",
			wantScore:   60,
			wantHealthy: false,
			wantIssue:   "Unclosed brace",
		},
		{
			name:        "unexpected closing brace",
			doc:         "\\begin{document}\noops}\n\\end{document}\n",
			wantScore:   60,
			wantHealthy: false,
			wantIssue:   "Unexpected closing brace",
		},
		{
			name:        "environment mismatch",
			doc:         "\\begin{document}\n\\begin{itemize}\n\\end{document}\n",
			wantScore:   60,
			wantHealthy: false,
			wantIssue:   "Environment mismatch: 2 begins vs 1 ends",
		},
		{
			name:        "both checks fail",
			doc:         "\\begin{itemize}\n\\item {broken\n",
			wantScore:   20,
			wantHealthy: false,
		},
		{
			name:        "empty document",
			doc:         "",
			wantScore:   100,
			wantHealthy: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckHealth(tt.doc)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (issues: %v)", got.Score, tt.wantScore, got.Issues)
			}
			if got.Healthy != tt.wantHealthy {
				t.Errorf("healthy = %v, want %v", got.Healthy, tt.wantHealthy)
			}
			if tt.wantIssue != "" {
				found := false
				for _, is := range got.Issues {
					if strings.Contains(is, tt.wantIssue) {
						found = true
					}
				}
				if !found {
					t.Errorf("issues %v missing %q", got.Issues, tt.wantIssue)
				}
			}
		})
	}
}

func TestBraceBalance_ReportsIndex(t *testing.T) {
	_, msg := braceBalance("ab}cd")
	if msg != "Unexpected closing brace at index 2" {
		t.Errorf("msg = %q", msg)
	}
	_, msg = braceBalance("a{b{c}")
	if msg != "Unclosed brace at index 1" {
		t.Errorf("msg = %q", msg)
	}
}
