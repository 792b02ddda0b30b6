package mock

import (
	"context"
	"io"

	"github.com/fwojciec/justext"
)

var (
	_ justext.ContainerCodec  = (*ContainerCodec)(nil)
	_ justext.ContainerSource = (*ContainerSource)(nil)
	_ justext.ContainerStore  = (*ContainerStore)(nil)
)

// ContainerCodec is a mock implementation of justext.ContainerCodec.
type ContainerCodec struct {
	DecodeFn func(r io.Reader) (*justext.QueryResultContainer, error)
	EncodeFn func(w io.Writer, c *justext.QueryResultContainer) error
}

func (c *ContainerCodec) Decode(r io.Reader) (*justext.QueryResultContainer, error) {
	return c.DecodeFn(r)
}

func (c *ContainerCodec) Encode(w io.Writer, qc *justext.QueryResultContainer) error {
	return c.EncodeFn(w, qc)
}

// ContainerSource is a mock implementation of justext.ContainerSource.
type ContainerSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (*justext.QueryResultContainer, error)
}

func (s *ContainerSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *ContainerSource) Read(ctx context.Context, name string) (*justext.QueryResultContainer, error) {
	return s.ReadFn(ctx, name)
}

// ContainerStore is a mock implementation of justext.ContainerStore.
type ContainerStore struct {
	SaveFn   func(ctx context.Context, c *justext.QueryResultContainer) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ContainerStore) Save(ctx context.Context, c *justext.QueryResultContainer) error {
	return s.SaveFn(ctx, c)
}

func (s *ContainerStore) Commit() error {
	return s.CommitFn()
}

func (s *ContainerStore) Abort() error {
	return s.AbortFn()
}
