package justext

// Default classification thresholds.
const (
	DefaultLengthLow          = 70
	DefaultLengthHigh         = 200
	DefaultStopwordsLow       = 0.30
	DefaultStopwordsHigh      = 0.32
	DefaultMaxLinkDensity     = 0.20
	DefaultMaxHeadingDistance = 200
)

// Config holds the thresholds used to classify blocks.
type Config struct {
	// LengthLow is the length below which a block is short.
	LengthLow int `yaml:"lengthLow" json:"lengthLow"`

	// LengthHigh is the length above which a stopword-rich block is good.
	LengthHigh int `yaml:"lengthHigh" json:"lengthHigh"`

	StopwordsLow  float64 `yaml:"stopwordsLow" json:"stopwordsLow"`
	StopwordsHigh float64 `yaml:"stopwordsHigh" json:"stopwordsHigh"`

	// MaxLinkDensity is the link density above which a block is bad.
	MaxLinkDensity float64 `yaml:"maxLinkDensity" json:"maxLinkDensity"`

	// MaxHeadingDistance bounds, in characters, how far ahead of a heading
	// good content is searched for.
	MaxHeadingDistance int `yaml:"maxHeadingDistance" json:"maxHeadingDistance"`

	// NoHeadings is accepted for compatibility and has no effect.
	NoHeadings bool `yaml:"noHeadings" json:"noHeadings"`

	// Stopwords is the reference word list. An empty set selects
	// language-independent mode.
	Stopwords StopwordSet `yaml:"-" json:"-"`
}

// DefaultConfig returns a Config with the default thresholds and no stopwords.
func DefaultConfig() Config {
	return Config{
		LengthLow:          DefaultLengthLow,
		LengthHigh:         DefaultLengthHigh,
		StopwordsLow:       DefaultStopwordsLow,
		StopwordsHigh:      DefaultStopwordsHigh,
		MaxLinkDensity:     DefaultMaxLinkDensity,
		MaxHeadingDistance: DefaultMaxHeadingDistance,
	}
}

// Validate returns an error if the config contains invalid thresholds.
func (c Config) Validate() error {
	if c.LengthLow < 0 || c.LengthHigh < 0 {
		return Errorf(EINVALID, "length thresholds must not be negative")
	}
	if c.LengthLow > c.LengthHigh {
		return Errorf(EINVALID, "lengthLow (%d) must not exceed lengthHigh (%d)", c.LengthLow, c.LengthHigh)
	}
	if !isFraction(c.StopwordsLow) || !isFraction(c.StopwordsHigh) {
		return Errorf(EINVALID, "stopword thresholds must be between 0 and 1")
	}
	if c.StopwordsLow > c.StopwordsHigh {
		return Errorf(EINVALID, "stopwordsLow (%g) must not exceed stopwordsHigh (%g)", c.StopwordsLow, c.StopwordsHigh)
	}
	if !isFraction(c.MaxLinkDensity) {
		return Errorf(EINVALID, "maxLinkDensity must be between 0 and 1")
	}
	if c.MaxHeadingDistance < 0 {
		return Errorf(EINVALID, "maxHeadingDistance must not be negative")
	}
	return nil
}

// LanguageIndependent reports whether the config has no stopwords.
func (c Config) LanguageIndependent() bool {
	return c.Stopwords.Len() == 0
}

// effective returns the thresholds actually applied. Without stopwords
// both stopword thresholds are zero.
func (c Config) effective() Config {
	if c.LanguageIndependent() {
		c.StopwordsLow = 0
		c.StopwordsHigh = 0
	}
	return c
}

// isZero reports whether no threshold has been set.
func (c Config) isZero() bool {
	return c.LengthLow == 0 && c.LengthHigh == 0 &&
		c.StopwordsLow == 0 && c.StopwordsHigh == 0 &&
		c.MaxLinkDensity == 0 && c.MaxHeadingDistance == 0
}

func isFraction(f float64) bool {
	return f >= 0 && f <= 1
}
