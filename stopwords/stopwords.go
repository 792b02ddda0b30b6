// Package stopwords provides the embedded stopword lists.
package stopwords

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/fwojciec/justext"
)

//go:embed lists/*.txt
var lists embed.FS

// Ensure Loader implements justext.StopwordLoader at compile time.
var _ justext.StopwordLoader = (*Loader)(nil)

// Loader loads stopword lists embedded in the binary. Lists are stored one
// word per line; lines starting with # are comments.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader over the embedded lists.
func NewLoader() *Loader {
	sub, _ := fs.Sub(lists, "lists")
	return &Loader{fsys: sub}
}

// NewLoaderFS creates a Loader over lists named <code>.txt in fsys.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load returns the stopwords for lang.
func (l *Loader) Load(lang string) (justext.StopwordSet, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || strings.ContainsAny(lang, "/\\.") {
		return nil, justext.Errorf(justext.EINVALID, "invalid language %q", lang)
	}
	data, err := fs.ReadFile(l.fsys, lang+".txt")
	if err != nil {
		return nil, justext.Errorf(justext.ENOTFOUND, "no stopwords for language %q", lang)
	}
	return parse(data), nil
}

// Languages returns the codes of the available lists, sorted.
func (l *Loader) Languages() []string {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".txt"); ok && !e.IsDir() {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}

func parse(data []byte) justext.StopwordSet {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return justext.NewStopwordSet(words...)
}
