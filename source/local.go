package source

import (
	"context"
	"path/filepath"

	"github.com/hupe1980/wordcount/internal/mmap"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// Absolute names passed to Open ignore the root.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open maps the file read-only and advises the kernel that it will be read
// once, front to back, soon.
func (s *LocalStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(s.root, name)
	}
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	// Advice is best effort.
	_ = m.Advise(mmap.AccessSequential, mmap.AccessWillNeed)

	return &localBlob{m: m}, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) Bytes() []byte { return b.m.Bytes() }
func (b *localBlob) Size() int64   { return int64(b.m.Size()) }
func (b *localBlob) Close() error  { return b.m.Close() }
