// Package lingua detects document languages using lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/justext"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements justext.LanguageDetector at compile time.
var _ justext.LanguageDetector = (*Detector)(nil)

// languages maps ISO 639-1 codes to the detectable languages.
var languages = map[string]lingua.Language{
	"de": lingua.German,
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"it": lingua.Italian,
	"nl": lingua.Dutch,
}

// Detector wraps a lingua-go detector restricted to a set of languages.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector choosing among the given ISO 639-1 codes.
// At least two supported codes are required.
func NewDetector(codes ...string) (*Detector, error) {
	var langs []lingua.Language
	seen := make(map[lingua.Language]bool)
	for _, code := range codes {
		lang, ok := languages[strings.ToLower(code)]
		if !ok || seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	if len(langs) < 2 {
		return nil, justext.Errorf(justext.EINVALID, "language detection needs at least two supported languages, got %v", codes)
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(langs...).Build(),
	}, nil
}

// DetectLanguage returns the lower-case ISO 639-1 code of the language of text.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
