// Package goquery splits HTML documents into text blocks using goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/justext"
	"golang.org/x/net/html"
)

// Ensure Parser implements justext.BlockParser at compile time.
var _ justext.BlockParser = (*Parser)(nil)

// RemovedSelector matches the elements dropped before blocks are built.
const RemovedSelector = "head, script, style, noscript, .hidden, embedded"

// blockTags are the elements that start a new block.
var blockTags = map[string]bool{
	"body": true, "blockquote": true, "caption": true, "center": true,
	"col": true, "colgroup": true, "dd": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "form": true, "legend": true,
	"optgroup": true, "option": true, "p": true, "pre": true,
	"table": true, "td": true, "textarea": true, "tfoot": true,
	"th": true, "thead": true, "tr": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"article": true, "section": true, "header": true, "footer": true,
	"nav": true, "aside": true, "main": true, "figure": true,
	"figcaption": true, "address": true,
}

// Parser splits HTML into the text runs of its block-level elements.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the blocks of rawHTML in document order.
func (p *Parser) Parse(rawHTML string) ([]*justext.Block, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, justext.Errorf(justext.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(RemovedSelector).Remove()

	var b builder
	for _, n := range doc.Nodes {
		b.walk(n)
	}
	b.flush()
	return b.blocks, nil
}

// builder accumulates text into blocks while walking the DOM.
type builder struct {
	path       []string // element names from the root to the current node
	blockPath  []string // path of the block being accumulated
	text       strings.Builder
	linkText   strings.Builder // anchor text of the current link
	linkLength int             // collapsed anchor text of closed links
	inLink     int
	blocks     []*justext.Block
}

func (b *builder) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.text.WriteString(n.Data)
		if b.inLink > 0 {
			b.linkText.WriteString(n.Data)
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		b.element(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

func (b *builder) element(n *html.Node) {
	name := n.Data
	if name == "br" {
		b.flush()
		return
	}
	b.path = append(b.path, name)

	isBlock := blockTags[name]
	if isBlock {
		b.flush()
	}
	if name == "a" {
		b.inLink++
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}

	if name == "a" {
		b.inLink--
		if b.inLink == 0 {
			b.closeLink()
		}
	}
	b.path = b.path[:len(b.path)-1]
	if isBlock {
		b.flush()
	}
}

// flush closes the current block and starts a new one at the current path.
// Blocks without text are discarded.
func (b *builder) flush() {
	b.closeLink()
	text := justext.Normalize(b.text.String())
	if text != "" {
		linkLength := b.linkLength
		if n := utf8.RuneCountInString(text); linkLength > n {
			linkLength = n
		}
		path := b.blockPath
		var last string
		if len(path) > 0 {
			last = path[len(path)-1]
		}
		b.blocks = append(b.blocks, &justext.Block{
			Index:      len(b.blocks),
			Text:       text,
			TagPath:    path,
			LinkLength: linkLength,
			Heading:    justext.IsHeadingTag(last),
		})
	}
	b.text.Reset()
	b.linkLength = 0
	b.blockPath = append([]string(nil), b.path...)
}

// closeLink adds the whitespace-collapsed length of the pending anchor text
// to the link length of the current block.
func (b *builder) closeLink() {
	b.linkLength += utf8.RuneCountInString(justext.Normalize(b.linkText.String()))
	b.linkText.Reset()
}
