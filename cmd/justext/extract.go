package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/fs"
	"golang.org/x/sync/errgroup"
)

// stdinSource names the document read from standard input.
const stdinSource = "-"

// formatExt maps output formats to the extension of written files.
var formatExt = map[string]string{
	"text":     ".txt",
	"html":     ".html",
	"markdown": ".md",
	"json":     ".json",
	"blocks":   ".tsv",
}

// extraction holds the outcome for one source.
type extraction struct {
	source string
	result *justext.ExtractResult
	output string
	err    error
}

// jsonDocument is the JSON line written per source.
type jsonDocument struct {
	Source   string `json:"source"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text"`
	HTML     string `json:"html"`
	Blocks   int    `json:"blocks"`
	Retained int    `json:"retained"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Format == "blocks" && c.Engine != EngineJusText {
		err := justext.Errorf(justext.EINVALID, "blocks format requires the %s engine", EngineJusText)
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	extractor, err := newExtractor(deps, c.Engine, c.Lang, &c.ThresholdFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	sources := c.Sources
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	results := make([]extraction, len(sources))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, source := range sources {
		g.Go(func() error {
			results[i] = c.extract(deps, extractor, source)
			// Per-source failures are reported, not fatal.
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var writer *fs.Writer
	if c.Output != "" {
		writer = fs.NewWriter(c.Output, formatExt[c.Format], c.Frontmatter)
	}

	var firstErr error
	for i, r := range results {
		if r.err == nil && writer != nil {
			var path string
			if path, r.err = writer.Write(outputName(r.source, i), r.result, r.output); r.err == nil {
				fmt.Fprintf(deps.Stdout, "%s -> %s\n", r.source, path)
				continue
			}
		}
		if r.err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.source, justext.ErrorMessage(r.err))
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if len(results) > 1 && c.Format != "json" {
			fmt.Fprintf(deps.Stdout, "==> %s <==\n", r.source)
		}
		fmt.Fprint(deps.Stdout, r.output)
		if r.output != "" && !strings.HasSuffix(r.output, "\n") {
			fmt.Fprintln(deps.Stdout)
		}
	}

	return firstErr
}

func (c *ExtractCmd) extract(deps *Dependencies, extractor justext.Extractor, source string) extraction {
	r := extraction{source: source}

	html, err := readSource(deps, source)
	if err != nil {
		r.err = err
		return r
	}

	if r.result, r.err = extractor.Extract(html); r.err != nil {
		return r
	}
	r.output, r.err = c.render(deps, source, r.result)
	return r
}

func (c *ExtractCmd) render(deps *Dependencies, source string, result *justext.ExtractResult) (string, error) {
	switch c.Format {
	case "html":
		return result.ContentHTML, nil
	case "markdown":
		return deps.Converter.Convert(result.ContentHTML)
	case "json":
		data, err := json.Marshal(jsonDocument{
			Source:   source,
			Title:    result.Title,
			Text:     result.Text,
			HTML:     result.ContentHTML,
			Blocks:   len(result.Blocks),
			Retained: result.Retained(),
		})
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case "blocks":
		return formatBlocks(result.Blocks), nil
	default:
		return result.Text, nil
	}
}

// formatBlocks lists each block with its classes, tag and link density.
func formatBlocks(blocks []*justext.Block) string {
	var b strings.Builder
	for _, block := range blocks {
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
			block.Index,
			block.ContextFreeClass,
			block.Class,
			block.Tag(),
			block.LinkDensity(),
			block.Text,
		)
	}
	return b.String()
}

// readSource returns the HTML of a URL, a file, or standard input.
func readSource(deps *Dependencies, source string) (string, error) {
	switch {
	case source == stdinSource:
		if deps.Stdin == nil {
			return "", justext.Errorf(justext.EINVALID, "no input on stdin")
		}
		data, err := io.ReadAll(deps.Stdin)
		return string(data), err
	case isURL(source):
		if deps.Fetcher == nil {
			return "", justext.Errorf(justext.EINTERNAL, "no fetcher configured")
		}
		return deps.Fetcher.Fetch(deps.Ctx, source)
	default:
		data, err := os.ReadFile(source)
		if os.IsNotExist(err) {
			return "", justext.Errorf(justext.ENOTFOUND, "file %q not found", source)
		}
		return string(data), err
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// outputName gives standard input a file name when writing to a directory.
func outputName(source string, i int) string {
	if source == stdinSource {
		return fmt.Sprintf("stdin-%d", i+1)
	}
	return source
}
