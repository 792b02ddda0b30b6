package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/justext"
)

// Ensure Store implements justext.ContainerStore at compile time.
var _ justext.ContainerStore = (*Store)(nil)

// Store implements justext.ContainerStore with atomic update semantics.
// Containers are saved to a temporary directory, then moved atomically on Commit.
type Store struct {
	baseDir string
	name    string
	codec   justext.ContainerCodec
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string, codec justext.ContainerCodec) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
		codec:   codec,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the container to <qID>.xml in the temporary directory.
func (s *Store) Save(ctx context.Context, c *justext.QueryResultContainer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if strings.ContainsAny(c.QID, `/\`) || c.QID == "." || c.QID == ".." {
		return justext.Errorf(justext.EINVALID, "invalid query ID %q", c.QID)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(s.tempDir(), c.QID+".xml"))
	if err != nil {
		return err
	}
	if err := s.codec.Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Commit replaces the final directory with the temporary one.
func (s *Store) Commit() error {
	// Nothing saved still yields an empty output directory.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
