// texlint checks the structural health of a .tex file and optionally
// rewrites it with normalized indentation.
//
//	texlint resume.tex          report brace/environment issues
//	texlint -w resume.tex       also reformat the file in place
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ayush99392003/resume-maker/internal/domain"
	"github.com/Ayush99392003/resume-maker/internal/latex"
)

func main() {
	write := flag.Bool("w", false, "rewrite the file with normalized indentation")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: texlint [-w] <file.tex>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texlint: %v\n", err)
		os.Exit(1)
	}
	doc := string(b)

	report := latex.CheckHealth(doc)
	fmt.Printf("%s: score %d/100\n", path, report.Score)
	for _, issue := range report.Issues {
		fmt.Printf("  - %s\n", issue)
	}

	sections := 0
	for _, r := range latex.Segment(doc) {
		if r.Kind == domain.Section {
			sections++
		}
	}
	fmt.Printf("  %d section(s)\n", sections)

	if *write {
		formatted := latex.Format(doc)
		if formatted != doc {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "texlint: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("  reformatted")
		}
	}

	if !report.Healthy {
		os.Exit(1)
	}
}
