package justext

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Ensure Remover implements Extractor at compile time.
var _ Extractor = (*Remover)(nil)

// Remover classifies HTML documents and filters out their boilerplate.
// It is safe for concurrent use once configured.
type Remover struct {
	Parser    BlockParser
	Stopwords StopwordLoader

	// Detector is used when the language is LanguageAuto.
	Detector LanguageDetector

	// Config holds the thresholds. Its stopword set is replaced by the
	// list for the requested language. A zero Config uses DefaultConfig.
	Config Config

	// Language is the language used by Extract.
	Language string

	mu    sync.Mutex
	cache map[string]StopwordSet
}

// NewRemover returns a Remover with the default thresholds.
func NewRemover(parser BlockParser, stopwords StopwordLoader) *Remover {
	return &Remover{
		Parser:    parser,
		Stopwords: stopwords,
		Config:    DefaultConfig(),
	}
}

// Classify parses html and classifies its blocks using cfg as given.
func (r *Remover) Classify(html string, cfg Config) ([]*Block, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	blocks, err := r.Parser.Parse(html)
	if err != nil {
		return nil, err
	}
	if err := ClassifyBlocks(blocks, cfg); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ClassifyLanguage parses html and classifies its blocks using the
// stopwords for lang. An empty lang selects language-independent mode.
func (r *Remover) ClassifyLanguage(html, lang string) ([]*Block, error) {
	cfg := r.Config
	if cfg.isZero() {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	blocks, err := r.Parser.Parse(html)
	if err != nil {
		return nil, err
	}
	cfg.Stopwords, err = r.stopwordsFor(lang, blocks)
	if err != nil {
		return nil, err
	}
	if err := ClassifyBlocks(blocks, cfg); err != nil {
		return nil, err
	}
	return blocks, nil
}

// PlainText returns the text of the content blocks of html, one per line.
func (r *Remover) PlainText(html, lang string) (string, error) {
	blocks, err := r.ClassifyLanguage(html, lang)
	if err != nil {
		return "", err
	}
	return PlainText(blocks), nil
}

// MinimalHTML returns the content blocks of html as minimal markup.
func (r *Remover) MinimalHTML(html, lang string) (string, error) {
	blocks, err := r.ClassifyLanguage(html, lang)
	if err != nil {
		return "", err
	}
	return MinimalHTML(blocks), nil
}

// Extract classifies html in the remover's language and returns the
// content. The title is the text of the first retained heading.
func (r *Remover) Extract(html string) (*ExtractResult, error) {
	blocks, err := r.ClassifyLanguage(html, r.Language)
	if err != nil {
		return nil, err
	}
	result := &ExtractResult{
		ContentHTML: MinimalHTML(blocks),
		Text:        PlainText(blocks),
		Blocks:      blocks,
	}
	for _, b := range blocks {
		if b.Heading && !b.IsBoilerplate() {
			result.Title = b.Text
			break
		}
	}
	return result, nil
}

func (r *Remover) stopwordsFor(lang string, blocks []*Block) (StopwordSet, error) {
	switch lang {
	case "":
		return nil, nil
	case LanguageAuto:
		if r.Detector == nil {
			return nil, Errorf(EINVALID, "language detection is not configured")
		}
		detected, ok := r.Detector.DetectLanguage(blockText(blocks))
		if !ok {
			return nil, nil
		}
		stopwords, err := r.load(detected)
		if ErrorCode(err) == ENOTFOUND {
			return nil, nil
		}
		return stopwords, err
	default:
		code, err := baseLanguage(lang)
		if err != nil {
			return nil, err
		}
		return r.load(code)
	}
}

// load returns the stopwords for code, loading each list once.
func (r *Remover) load(code string) (StopwordSet, error) {
	if r.Stopwords == nil {
		return nil, Errorf(ENOTFOUND, "no stopwords for language %q", code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.cache[code]; ok {
		return s, nil
	}
	s, err := r.Stopwords.Load(code)
	if err != nil {
		return nil, err
	}
	if r.cache == nil {
		r.cache = make(map[string]StopwordSet)
	}
	r.cache[code] = s
	return s, nil
}

// baseLanguage returns the ISO 639 base language of a BCP 47 tag,
// e.g. "en" for "en-US".
func baseLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", Errorf(EINVALID, "invalid language %q", lang)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

func blockText(blocks []*Block) string {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}
	return strings.Join(texts, "\n")
}
