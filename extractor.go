package justext

// ExtractResult holds the content extracted from an HTML document.
type ExtractResult struct {
	// Title is the document title, if the extractor found one.
	Title string

	// ContentHTML is the main content as minimal HTML.
	// Boilerplate has been removed.
	ContentHTML string

	// Text is the main content as plain text.
	Text string

	// Blocks are the classified blocks, when the extractor produces them.
	Blocks []*Block
}

// Retained returns the number of blocks that are not boilerplate.
func (r *ExtractResult) Retained() int {
	var n int
	for _, b := range r.Blocks {
		if !b.IsBoilerplate() {
			n++
		}
	}
	return n
}

// Extractor extracts main content from HTML documents, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
