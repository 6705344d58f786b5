package lsp

import (
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/cato-001/snacks"
	"github.com/cato-001/snacks/parse"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// FindLinks returns a document link for every web link in text.
func FindLinks(text string) []protocol.DocumentLink {
	_, found, err := snacks.FindAll("http", snacks.Weblink[parse.String])(parse.NewString(text))
	if err != nil || len(found) == 0 {
		return nil
	}

	idx := newLineIndex(text)
	links := make([]protocol.DocumentLink, 0, len(found))
	for _, link := range found {
		target := protocol.DocumentUri(link.String())
		links = append(links, protocol.DocumentLink{
			Range: protocol.Range{
				Start: idx.position(link.Offset()),
				End:   idx.position(link.Offset() + link.Len()),
			},
			Target: &target,
		})
	}
	return links
}

// lineIndex converts byte offsets into LSP positions, which count UTF-16
// code units within a line.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{text: text, starts: starts}
}

func (li *lineIndex) position(offset int) protocol.Position {
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Len(li.text[li.starts[line]:offset])),
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// uriToPath strips the file scheme for log messages.
func uriToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
