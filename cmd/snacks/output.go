package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cato-001/snacks/parse"
	"github.com/daviddengcn/go-colortext"
)

// printMatches prints one match per line, optionally prefixed with its
// line and column in src.
func printMatches(w io.Writer, src string, matches []parse.String, positions bool) {
	for _, m := range matches {
		if positions {
			fmt.Fprintf(w, "%s\t%s\n", parse.PositionOf(src, m.Offset()), m)
		} else {
			fmt.Fprintln(w, m)
		}
	}
}

type location struct {
	start, end int
}

func locations(matches []parse.String) []location {
	locs := make([]location, len(matches))
	for i, m := range matches {
		locs[i] = location{start: m.Offset(), end: m.Offset() + m.Len()}
	}
	return locs
}

// markLines prints every line of src that overlaps a location, with the
// overlapping parts passed through mark.
func markLines(w io.Writer, src string, locs []location, mark func(io.Writer, string)) {
	lineStart := 0
	li := 0
	for ln, line := range strings.SplitAfter(src, "\n") {
		lineEnd := lineStart + len(line)
		text := strings.TrimSuffix(line, "\n")

		var inLine []location
		for li < len(locs) && locs[li].start < lineEnd {
			inLine = append(inLine, locs[li])
			if locs[li].end > lineEnd {
				break
			}
			li++
		}
		if len(inLine) > 0 {
			fmt.Fprintf(w, "%4d: ", ln+1)
			p := 0
			for _, loc := range inLine {
				start := max(loc.start-lineStart, p)
				end := min(loc.end-lineStart, len(text))
				if start > p {
					io.WriteString(w, text[p:start])
				}
				if end > start {
					mark(w, text[start:end])
					p = end
				}
			}
			if p < len(text) {
				io.WriteString(w, text[p:])
			}
			fmt.Fprintln(w)
		}
		lineStart = lineEnd
	}
}

func colorMark(w io.Writer, s string) {
	ct.ChangeColor(ct.Green, true, ct.None, false)
	io.WriteString(w, s)
	ct.ResetColor()
}
