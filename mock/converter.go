package mock

import "github.com/fwojciec/justext"

var _ justext.Converter = (*Converter)(nil)

// Converter is a mock implementation of justext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
