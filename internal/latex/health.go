package latex

import (
	"fmt"
	"strings"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// CheckHealth runs two independent structural checks and returns a 0-100
// score. Each failed check costs 40 points; the document is considered
// healthy above 70. This is a heuristic: environment pairing is checked by
// count only, not by nesting.
func CheckHealth(doc string) domain.HealthReport {
	score := 100
	var issues []string

	if ok, msg := braceBalance(doc); !ok {
		score -= 40
		issues = append(issues, msg)
	}

	begins := strings.Count(doc, `\begin{`)
	ends := strings.Count(doc, `\end{`)
	if begins != ends {
		score -= 40
		issues = append(issues, fmt.Sprintf("Environment mismatch: %d begins vs %d ends", begins, ends))
	}

	if score < 0 {
		score = 0
	}
	return domain.HealthReport{
		Healthy: score > 70,
		Score:   score,
		Issues:  issues,
	}
}

// braceBalance scans the document with a stack of open-brace indexes. It
// reports the index of the first unmatched closing brace, or of the
// innermost brace left open at end of input.
func braceBalance(doc string) (bool, string) {
	var stack []int
	for i := 0; i < len(doc); i++ {
		switch doc[i] {
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				return false, fmt.Sprintf("Unexpected closing brace at index %d", i)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return false, fmt.Sprintf("Unclosed brace at index %d", stack[len(stack)-1])
	}
	return true, ""
}
