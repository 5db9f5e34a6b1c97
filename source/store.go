package source

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when an input does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
var ErrNotFound = os.ErrNotExist

// Store opens inputs by name.
type Store interface {
	// Open opens an input for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only input buffer.
type Blob interface {
	io.Closer
	// Bytes returns the contents. The slice is valid until Close and must not
	// be modified.
	Bytes() []byte
	// Size returns the size of the blob in bytes.
	Size() int64
}

// NewBytesBlob wraps data as a Blob. Close releases the reference.
func NewBytesBlob(data []byte) Blob {
	return &bytesBlob{data: data}
}

type bytesBlob struct {
	data []byte
}

func (b *bytesBlob) Bytes() []byte { return b.data }
func (b *bytesBlob) Size() int64   { return int64(len(b.data)) }

func (b *bytesBlob) Close() error {
	b.data = nil
	return nil
}

// Open opens name from store and expands it if its extension names a
// supported compression format.
func Open(ctx context.Context, store Store, name string) (Blob, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return Decompress(name, blob)
}
