package source

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies an input compression format.
type Compression uint8

const (
	// CompressionNone indicates plain input.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd stream (.zst, .zstd).
	CompressionZSTD
	// CompressionGzip indicates a gzip stream (.gz).
	CompressionGzip
	// CompressionLZ4 indicates an LZ4 frame (.lz4).
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZSTD:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionOf detects the format from the name's extension.
func CompressionOf(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".gz":
		return CompressionGzip
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
}

// Decompress expands blob according to the extension of name. Plain inputs
// are returned unchanged. Otherwise the compressed blob is closed and the
// expanded contents are returned as an in-memory Blob.
func Decompress(name string, blob Blob) (Blob, error) {
	kind := CompressionOf(name)
	if kind == CompressionNone {
		return blob, nil
	}
	defer blob.Close()

	data, err := decompress(kind, blob.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decompress %s (%s): %w", name, kind, err)
	}
	return NewBytesBlob(data), nil
}

func decompress(kind Compression, src []byte) ([]byte, error) {
	switch kind {
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(src, nil)
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
	default:
		return src, nil
	}
}
