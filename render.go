package justext

import (
	"strings"

	"golang.org/x/net/html"
)

// Normalize collapses runs of whitespace into single spaces and trims
// both ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MinimalHTML renders the blocks that are not boilerplate as one element
// per line, named after the block's tag.
func MinimalHTML(blocks []*Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		if blk.IsBoilerplate() {
			continue
		}
		text := Normalize(blk.Text)
		if text == "" {
			continue
		}
		tag := blk.Tag()
		b.WriteString("<" + tag + ">")
		b.WriteString(html.EscapeString(text))
		b.WriteString("</" + tag + ">\n")
	}
	return b.String()
}

// PlainText renders the text of the blocks that are not boilerplate, one
// block per line.
func PlainText(blocks []*Block) string {
	lines := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		if blk.IsBoilerplate() {
			continue
		}
		text := strings.TrimSpace(html.UnescapeString(Normalize(blk.Text)))
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
