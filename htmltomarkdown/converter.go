// Package htmltomarkdown renders extracted content as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/justext"
)

// Ensure Converter implements justext.Converter at compile time.
var _ justext.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert minimal HTML to Markdown.
// Tables are supported for the output of the alternative engines.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. A document without
// content, such as one that was entirely boilerplate, converts to "".
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", justext.Errorf(justext.EINVALID, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(result), nil
}
