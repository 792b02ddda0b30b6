package mock

import "github.com/fwojciec/justext"

var (
	_ justext.StopwordLoader   = (*StopwordLoader)(nil)
	_ justext.LanguageDetector = (*LanguageDetector)(nil)
)

// StopwordLoader is a mock implementation of justext.StopwordLoader.
type StopwordLoader struct {
	LoadFn      func(lang string) (justext.StopwordSet, error)
	LanguagesFn func() []string
}

func (l *StopwordLoader) Load(lang string) (justext.StopwordSet, error) {
	return l.LoadFn(lang)
}

func (l *StopwordLoader) Languages() []string {
	return l.LanguagesFn()
}

// LanguageDetector is a mock implementation of justext.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
