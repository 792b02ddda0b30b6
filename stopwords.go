package justext

// LanguageAuto selects the stopword list by detecting the document language.
const LanguageAuto = "auto"

// StopwordLoader loads stopword lists by language.
type StopwordLoader interface {
	// Load returns the stopwords for an ISO 639-1 language code.
	// Returns ENOTFOUND if no list exists for the language.
	Load(lang string) (StopwordSet, error)

	// Languages returns the supported language codes.
	Languages() []string
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the ISO 639-1 code of the language of text.
	// Returns false if the language could not be determined reliably.
	DetectLanguage(text string) (lang string, ok bool)
}
