package mock

import "github.com/fwojciec/justext"

var _ justext.BlockParser = (*BlockParser)(nil)

// BlockParser is a mock implementation of justext.BlockParser.
type BlockParser struct {
	ParseFn func(html string) ([]*justext.Block, error)
}

func (p *BlockParser) Parse(html string) ([]*justext.Block, error) {
	return p.ParseFn(html)
}
