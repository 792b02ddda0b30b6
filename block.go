package justext

import (
	"strings"
	"unicode/utf8"
)

// Class is the classification of a block.
type Class string

// Class constants.
const (
	ClassGood     Class = "good"
	ClassBad      Class = "bad"
	ClassShort    Class = "short"
	ClassNearGood Class = "neargood"
)

// Block is a run of text belonging to the nearest enclosing block-level
// element of an HTML document.
type Block struct {
	// Index is the position of the block in document order.
	Index int `json:"index"`

	// Text is the whitespace-normalized text content.
	Text string `json:"text"`

	// TagPath is the chain of element names from the document root to the
	// enclosing block-level element, e.g. ["html", "body", "div", "p"].
	TagPath []string `json:"tagPath"`

	// LinkLength is the number of characters of Text inside anchors.
	LinkLength int `json:"linkLength"`

	// Heading reports whether the enclosing element is h1 through h6.
	Heading bool `json:"heading"`

	// ContextFreeClass is assigned once from the block's own features.
	ContextFreeClass Class `json:"contextFreeClass"`

	// Class is the final class after neighbours have been considered.
	Class Class `json:"class"`
}

// Length returns the number of characters in the block text.
func (b *Block) Length() int {
	return utf8.RuneCountInString(b.Text)
}

// LinkDensity returns the fraction of the text that is link text.
func (b *Block) LinkDensity() float64 {
	n := b.Length()
	if n == 0 {
		return 0
	}
	return float64(b.LinkLength) / float64(n)
}

// StopwordDensity returns the fraction of case-folded whitespace-delimited
// words that appear in stopwords.
func (b *Block) StopwordDensity(stopwords StopwordSet) float64 {
	if stopwords.Len() == 0 {
		return 0
	}
	words := strings.Fields(strings.ToLower(b.Text))
	if len(words) == 0 {
		return 0
	}
	var n int
	for _, w := range words {
		if stopwords.Contains(w) {
			n++
		}
	}
	return float64(n) / float64(len(words))
}

// Tag returns the element name used when rendering the block.
// Blocks directly inside the document body render as paragraphs.
func (b *Block) Tag() string {
	if len(b.TagPath) == 0 {
		return "p"
	}
	switch tag := b.TagPath[len(b.TagPath)-1]; tag {
	case "", "html", "body":
		return "p"
	default:
		return tag
	}
}

// IsBoilerplate reports whether the block was classified as boilerplate.
func (b *Block) IsBoilerplate() bool {
	return b.Class == ClassBad
}

// IsHeadingTag reports whether tag names a heading element.
func IsHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// StopwordSet is a set of lower-case stopwords.
type StopwordSet map[string]struct{}

// NewStopwordSet returns a set containing the lower-cased, trimmed words.
// Empty entries are ignored.
func NewStopwordSet(words ...string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set. Word must already be lower case.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s StopwordSet) Len() int {
	return len(s)
}
