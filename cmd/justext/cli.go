package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Verbose   bool
	Parser    justext.BlockParser
	Stopwords justext.StopwordLoader
	Detector  justext.LanguageDetector
	Fetcher   justext.Fetcher
	Converter justext.Converter
	Codec     justext.ContainerCodec
	Documents justext.CleanedDocumentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every operation at debug level"`

	Extract   ExtractCmd   `cmd:"" help:"Extract main content from URLs, files, or stdin"`
	Clean     CleanCmd     `cmd:"" help:"Remove boilerplate from a directory of query-result containers"`
	Prune     PruneCmd     `cmd:"" help:"Drop ranked results without content from containers"`
	Results   ResultsCmd   `cmd:"" help:"List indexed cleaned documents"`
	Languages LanguagesCmd `cmd:"" help:"List languages with stopword lists"`
}

// ThresholdFlags override the classification thresholds.
// Unset flags keep the value from the config file or the default.
type ThresholdFlags struct {
	Config             string   `help:"YAML file with classification thresholds" type:"path"`
	LengthLow          *int     `help:"Length below which a block is short"`
	LengthHigh         *int     `help:"Length above which a stopword-rich block is good"`
	StopwordsLow       *float64 `help:"Stopword density below which a block is bad"`
	StopwordsHigh      *float64 `help:"Stopword density above which a long block is good"`
	MaxLinkDensity     *float64 `help:"Link density above which a block is bad"`
	MaxHeadingDistance *int     `help:"Distance in characters searched for content after a heading"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Sources     []string      `arg:"" optional:"" help:"URLs or files to extract (stdin when omitted)"`
	Lang        string        `default:"en" help:"Stopword language: a code, 'auto', or '' for language-independent mode"`
	Format      string        `short:"f" default:"text" enum:"text,html,markdown,json,blocks" help:"Output format (text, html, markdown, json, blocks)"`
	Engine      string        `short:"e" default:"justext" enum:"justext,trafilatura,readability" help:"Extraction engine (justext, trafilatura, readability)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent extraction limit"`
	RPS         float64       `default:"2" help:"Requests per second per host (0 disables the limit)"`
	Timeout     time.Duration `default:"30s" help:"HTTP request timeout"`
	Render      bool          `help:"Render URLs in headless Chrome before extraction"`
	Output      string        `short:"o" type:"path" help:"Write one file per source to this directory instead of stdout"`
	Frontmatter bool          `help:"Prefix written files with YAML frontmatter"`

	ThresholdFlags `embed:""`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Input        string `arg:"" type:"existingdir" help:"Directory of container XML files"`
	Output       string `arg:"" type:"path" help:"Directory to write cleaned containers to"`
	KeepOriginal bool   `default:"true" negatable:"" help:"Keep the original HTML in cleaned containers"`
	Lang         string `help:"Stopword language: a code or 'auto' (language-independent mode when empty)"`
	Engine       string `short:"e" default:"justext" enum:"justext,trafilatura,readability" help:"Extraction engine (justext, trafilatura, readability)"`
	Index        bool   `help:"Record cleaned documents in the index database"`
	DB           string `type:"path" help:"Index database path (defaults to JUSTEXT_DB or ~/.justext/justext.db)"`
	Concurrency  int    `short:"c" default:"4" help:"Concurrent container limit"`

	ThresholdFlags `embed:""`
}

// PruneCmd is the "prune" subcommand.
type PruneCmd struct {
	Input       string `arg:"" type:"existingdir" help:"Directory of cleaned container XML files"`
	Output      string `arg:"" type:"path" help:"Directory to write pruned containers to"`
	Crop        bool   `help:"Keep at most --crop-size results per container"`
	CropSize    int    `default:"93" help:"Maximum results per container when cropping"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent container limit"`
}

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	Query  string `short:"q" help:"Only show documents of this query ID"`
	Engine string `short:"e" help:"Only show documents cleaned by this engine"`
	Limit  int    `short:"n" default:"20" help:"Maximum documents to show (0 for all)"`
	DB     string `type:"path" help:"Index database path (defaults to JUSTEXT_DB or ~/.justext/justext.db)"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}
