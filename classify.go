package justext

import "strings"

// ClassifyBlocks assigns the context-free class and the final class of
// every block. Blocks must be in document order.
func ClassifyBlocks(blocks []*Block, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ClassifyContextFree(blocks, cfg)
	ReclassifyContextSensitive(blocks, cfg.MaxHeadingDistance)
	return nil
}

// ClassifyContextFree assigns each block a class from its own length,
// link density and stopword density. The result for one block does not
// depend on any other block.
func ClassifyContextFree(blocks []*Block, cfg Config) {
	cfg = cfg.effective()
	for _, b := range blocks {
		b.ContextFreeClass = contextFreeClass(b, cfg)
		b.Class = b.ContextFreeClass
	}
}

func contextFreeClass(b *Block, cfg Config) Class {
	length := b.Length()
	switch {
	case b.LinkDensity() > cfg.MaxLinkDensity:
		return ClassBad
	case hasCopyright(b.Text):
		return ClassBad
	case length < cfg.LengthLow:
		if b.LinkLength > 0 {
			return ClassBad
		}
		return ClassShort
	}

	density := b.StopwordDensity(cfg.Stopwords)
	switch {
	case density >= cfg.StopwordsHigh:
		if length > cfg.LengthHigh {
			return ClassGood
		}
		return ClassNearGood
	case density >= cfg.StopwordsLow:
		return ClassNearGood
	default:
		return ClassBad
	}
}

// hasCopyright reports whether text carries a copyright marker, either
// decoded or as a literal escape left in the source.
func hasCopyright(text string) bool {
	return strings.ContainsRune(text, '©') ||
		strings.Contains(text, `\xa9`) ||
		strings.Contains(text, "&copy")
}

// ReclassifyContextSensitive derives the final class of every block from
// its context-free class and the classes of its neighbours. Every block
// ends up either good or bad.
func ReclassifyContextSensitive(blocks []*Block, maxHeadingDistance int) {
	r := newReclassifier(blocks, maxHeadingDistance)
	r.promoteShortHeadings()
	r.resolveShort()
	r.resolveNearGood()
	r.restoreHeadings()
	for i, b := range blocks {
		b.Class = r.classes[i]
	}
}

// reclassifier holds the working state of one document's
// context-sensitive pass.
type reclassifier struct {
	blocks             []*Block
	classes            []Class
	offsets            []int // offsets[i] is the total length of blocks[:i]
	maxHeadingDistance int
}

func newReclassifier(blocks []*Block, maxHeadingDistance int) *reclassifier {
	r := &reclassifier{
		blocks:             blocks,
		classes:            make([]Class, len(blocks)),
		offsets:            make([]int, len(blocks)+1),
		maxHeadingDistance: maxHeadingDistance,
	}
	for i, b := range blocks {
		r.classes[i] = b.ContextFreeClass
		r.offsets[i+1] = r.offsets[i] + b.Length()
	}
	return r
}

// promoteShortHeadings marks short headings followed closely by good
// content as near-good.
func (r *reclassifier) promoteShortHeadings() {
	nextGood := r.nextGood()
	for i, b := range r.blocks {
		if b.Heading && r.classes[i] == ClassShort && r.goodWithin(i, nextGood) {
			r.classes[i] = ClassNearGood
		}
	}
}

// resolveShort decides every short block from its neighbours. All
// neighbours are taken from the classes as they were before this pass.
func (r *reclassifier) resolveShort() {
	decided := scanNeighbours(r.classes, true)
	all := scanNeighbours(r.classes, false)
	for i, c := range r.classes {
		if c != ClassShort {
			continue
		}
		prev, next := decided.prev[i], decided.next[i]
		switch {
		case prev == ClassGood && next == ClassGood:
			r.classes[i] = ClassGood
		case prev == ClassBad && next == ClassBad:
			r.classes[i] = ClassBad
		case prev == ClassBad && all.prev[i] == ClassNearGood,
			next == ClassBad && all.next[i] == ClassNearGood:
			r.classes[i] = ClassGood
		default:
			r.classes[i] = ClassBad
		}
	}
}

// resolveNearGood decides every near-good block in document order. A
// block sees the decisions already made for the blocks before it.
func (r *reclassifier) resolveNearGood() {
	next := scanNeighbours(r.classes, true).next
	prev := ClassBad
	for i, c := range r.classes {
		if c == ClassNearGood {
			if prev == ClassBad && next[i] == ClassBad {
				r.classes[i] = ClassBad
			} else {
				r.classes[i] = ClassGood
			}
		}
		if isDecided(r.classes[i]) {
			prev = r.classes[i]
		}
	}
}

// restoreHeadings marks as good the headings that were demoted to bad by
// an earlier pass but are followed closely by good content.
func (r *reclassifier) restoreHeadings() {
	nextGood := r.nextGood()
	for i, b := range r.blocks {
		if !b.Heading || r.classes[i] != ClassBad || b.ContextFreeClass == ClassBad {
			continue
		}
		if r.goodWithin(i, nextGood) {
			r.classes[i] = ClassGood
		}
	}
}

// nextGood returns, for every index, the index of the first good block
// after it or -1.
func (r *reclassifier) nextGood() []int {
	next := make([]int, len(r.classes))
	j := -1
	for i := len(r.classes) - 1; i >= 0; i-- {
		next[i] = j
		if r.classes[i] == ClassGood {
			j = i
		}
	}
	return next
}

// goodWithin reports whether a good block follows block i with at most
// maxHeadingDistance characters of text in between.
func (r *reclassifier) goodWithin(i int, nextGood []int) bool {
	j := nextGood[i]
	if j < 0 {
		return false
	}
	return r.offsets[j]-r.offsets[i+1] <= r.maxHeadingDistance
}

// neighbours holds the nearest qualifying class on each side of every
// block. The document boundary counts as bad.
type neighbours struct {
	prev []Class
	next []Class
}

func scanNeighbours(classes []Class, ignoreNearGood bool) neighbours {
	nb := neighbours{
		prev: make([]Class, len(classes)),
		next: make([]Class, len(classes)),
	}
	last := ClassBad
	for i, c := range classes {
		nb.prev[i] = last
		if qualifies(c, ignoreNearGood) {
			last = c
		}
	}
	last = ClassBad
	for i := len(classes) - 1; i >= 0; i-- {
		nb.next[i] = last
		if qualifies(classes[i], ignoreNearGood) {
			last = classes[i]
		}
	}
	return nb
}

func qualifies(c Class, ignoreNearGood bool) bool {
	if c == ClassNearGood {
		return !ignoreNearGood
	}
	return isDecided(c)
}

func isDecided(c Class) bool {
	return c == ClassGood || c == ClassBad
}
