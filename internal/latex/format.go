package latex

import "strings"

// Format re-indents a document with two spaces per environment level: lines
// after a \begin{...} are indented one level deeper until the matching-count
// \end{...}. Purely line based; it never reflows content.
func Format(doc string) string {
	lines := strings.Split(doc, "\n")
	formatted := make([]string, 0, len(lines))
	level := 0

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			formatted = append(formatted, "")
			continue
		}

		if strings.HasPrefix(stripped, `\end{`) && level > 0 {
			level--
		}
		formatted = append(formatted, strings.Repeat("  ", level)+stripped)
		if strings.HasPrefix(stripped, `\begin{`) && !strings.Contains(stripped, `\end{`) {
			level++
		}
	}
	return strings.Join(formatted, "\n")
}
