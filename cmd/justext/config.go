package main

import (
	"errors"
	"os"

	"github.com/fwojciec/justext"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads classification thresholds from a YAML file on top of
// the defaults. Keys absent from the file keep their default values.
func LoadConfig(path string) (justext.Config, error) {
	cfg := justext.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, justext.Errorf(justext.ENOTFOUND, "config file %q not found", path)
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, justext.Errorf(justext.EINVALID, "failed to parse config file %q: %v", path, err)
	}
	return cfg, cfg.Validate()
}

// Resolve returns the thresholds from the config file, if any, with the
// flag overrides applied.
func (f *ThresholdFlags) Resolve() (justext.Config, error) {
	cfg := justext.DefaultConfig()
	if f.Config != "" {
		var err error
		if cfg, err = LoadConfig(f.Config); err != nil {
			return cfg, err
		}
	}

	if f.LengthLow != nil {
		cfg.LengthLow = *f.LengthLow
	}
	if f.LengthHigh != nil {
		cfg.LengthHigh = *f.LengthHigh
	}
	if f.StopwordsLow != nil {
		cfg.StopwordsLow = *f.StopwordsLow
	}
	if f.StopwordsHigh != nil {
		cfg.StopwordsHigh = *f.StopwordsHigh
	}
	if f.MaxLinkDensity != nil {
		cfg.MaxLinkDensity = *f.MaxLinkDensity
	}
	if f.MaxHeadingDistance != nil {
		cfg.MaxHeadingDistance = *f.MaxHeadingDistance
	}
	return cfg, cfg.Validate()
}
