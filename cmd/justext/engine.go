package main

import (
	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/readability"
	jslog "github.com/fwojciec/justext/slog"
	"github.com/fwojciec/justext/trafilatura"
)

// Extraction engines.
const (
	EngineJusText     = "justext"
	EngineTrafilatura = "trafilatura"
	EngineReadability = "readability"
)

// newExtractor builds the extractor for engine. Thresholds and language
// only apply to the justext engine.
func newExtractor(deps *Dependencies, engine, lang string, flags *ThresholdFlags) (justext.Extractor, error) {
	var extractor justext.Extractor
	switch engine {
	case EngineJusText, "":
		cfg, err := flags.Resolve()
		if err != nil {
			return nil, err
		}
		r := justext.NewRemover(deps.Parser, deps.Stopwords)
		r.Detector = deps.Detector
		r.Config = cfg
		r.Language = lang
		extractor = r
		engine = EngineJusText
	case EngineTrafilatura:
		extractor = trafilatura.NewExtractor()
	case EngineReadability:
		extractor = readability.NewExtractor()
	default:
		return nil, justext.Errorf(justext.EINVALID, "unknown engine %q", engine)
	}

	if deps.Verbose && deps.Logger != nil {
		extractor = jslog.NewLoggingExtractor(extractor, engine, deps.Logger)
	}
	return extractor, nil
}
