package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/justext"
)

// Ensure Source implements justext.ContainerSource at compile time.
var _ justext.ContainerSource = (*Source)(nil)

// Source reads the container files of a directory.
type Source struct {
	dir   string
	codec justext.ContainerCodec
}

// NewSource creates a Source over the *.xml files directly inside dir.
func NewSource(dir string, codec justext.ContainerCodec) *Source {
	return &Source{dir: dir, codec: codec}
}

// List returns the container file names, sorted.
func (s *Source) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, justext.Errorf(justext.ENOTFOUND, "input directory %q not found", s.dir)
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read decodes the named container file.
func (s *Source) Read(ctx context.Context, name string) (*justext.QueryResultContainer, error) {
	if name != filepath.Base(name) {
		return nil, justext.Errorf(justext.EINVALID, "invalid container name %q", name)
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, justext.Errorf(justext.ENOTFOUND, "container %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.codec.Decode(f)
}
