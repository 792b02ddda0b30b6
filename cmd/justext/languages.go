package main

import (
	"fmt"

	"github.com/fwojciec/justext"
)

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	langs := deps.Stopwords.Languages()
	if len(langs) == 0 {
		fmt.Fprintln(deps.Stdout, "No stopword lists available.")
		return nil
	}

	for _, lang := range langs {
		set, err := deps.Stopwords.Load(lang)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %d words\n", lang, set.Len())
	}

	return nil
}
