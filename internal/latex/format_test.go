package latex

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "indents environment bodies",
			in:   "\\begin{document}\n\\begin{itemize}\n\\item one\n\\end{itemize}\n\\end{document}",
			want: "\\begin{document}\n  \\begin{itemize}\n    \\item one\n  \\end{itemize}\n\\end{document}",
		},
		{
			name: "blank lines preserved empty",
			in:   "\\begin{document}\n\n text \n\\end{document}",
			want: "\\begin{document}\n\n  text\n\\end{document}",
		},
		{
			name: "single line begin end does not indent",
			in:   "\\begin{center}x\\end{center}\nnext",
			want: "\\begin{center}x\\end{center}\nnext",
		},
		{
			name: "stray end never goes negative",
			in:   "\\end{itemize}\ntext",
			want: "\\end{itemize}\ntext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}
