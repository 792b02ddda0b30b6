package justext

// BlockParser splits an HTML document into blocks.
type BlockParser interface {
	// Parse returns the text blocks of the document in document order.
	// Malformed HTML is parsed leniently; empty input yields no blocks.
	Parse(html string) ([]*Block, error)
}
