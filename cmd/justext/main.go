package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/etree"
	"github.com/fwojciec/justext/goquery"
	"github.com/fwojciec/justext/htmltomarkdown"
	justexthttp "github.com/fwojciec/justext/http"
	"github.com/fwojciec/justext/lingua"
	"github.com/fwojciec/justext/rod"
	jslog "github.com/fwojciec/justext/slog"
	"github.com/fwojciec/justext/sqlite"
	"github.com/fwojciec/justext/stopwords"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path of the cleaned-document index. Set before calling Run().
	DBPath string

	// Stdin is read by extract when no source is given.
	Stdin io.Reader

	// SQLite database used by the cleaned-document index.
	DB *sqlite.DB

	fetcher justext.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		_ = m.fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("justext"),
		kong.Description("Remove boilerplate from HTML documents and query-result corpora."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'justext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Selected().Name

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Verbose = cli.Verbose

	// Core services
	loader := stopwords.NewLoader()
	deps.Parser = goquery.NewParser()
	deps.Stopwords = loader
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Codec = etree.NewCodec()
	defer m.Close()

	if usesAutoLanguage(cmd, cli) {
		detector, err := lingua.NewDetector(loader.Languages()...)
		if err != nil {
			return fmt.Errorf("failed to create language detector: %w", err)
		}
		deps.Detector = detector
	}

	if cmd == "extract" {
		fetcher, err := newFetcher(&cli.Extract, deps.Logger)
		if err != nil {
			return err
		}
		if cli.Verbose {
			fetcher = jslog.NewLoggingFetcher(fetcher, deps.Logger)
		}
		m.fetcher = fetcher
		deps.Fetcher = fetcher
	}

	if dbPath, ok := indexPath(cmd, cli); ok {
		if dbPath == "" {
			dbPath = m.DBPath
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JUSTEXT_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		deps.Documents = sqlite.NewCleanedDocumentService(m.DB)
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the headless browser fetcher with --render and the
// rate-limited HTTP fetcher otherwise.
func newFetcher(cmd *ExtractCmd, logger *slog.Logger) (justext.Fetcher, error) {
	if cmd.Render {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cmd.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}
	return justexthttp.NewFetcher(
		justexthttp.WithTimeout(cmd.Timeout),
		justexthttp.WithRateLimit(cmd.RPS),
		justexthttp.WithRetryDelays(justexthttp.DefaultRetryDelays()),
		justexthttp.WithRetryLogger(func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}),
	), nil
}

// usesAutoLanguage reports whether the selected command detects languages.
func usesAutoLanguage(cmd string, cli *CLI) bool {
	switch cmd {
	case "extract":
		return cli.Extract.Lang == justext.LanguageAuto
	case "clean":
		return cli.Clean.Lang == justext.LanguageAuto
	}
	return false
}

// indexPath returns the database path override of commands that use the
// cleaned-document index.
func indexPath(cmd string, cli *CLI) (string, bool) {
	switch cmd {
	case "clean":
		return cli.Clean.DB, cli.Clean.Index
	case "results":
		return cli.Results.DB, true
	}
	return "", false
}

func defaultDBPath() string {
	if path := os.Getenv("JUSTEXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "justext.db"
	}
	dir := filepath.Join(home, ".justext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "justext.db")
}
