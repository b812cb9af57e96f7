// Package readers implements the format-specific dataset readers behind
// the fgread registry. Every reader maps a payload path to a freshly
// allocated anndata.AnnData with cells as rows and genes as columns.
//
// Payloads and their sidecar files may be stored compressed; files ending
// in .gz or .zst are decompressed transparently.
package readers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// openPayload opens a payload file, wrapping it with the decompressor its
// extension calls for.
func openPayload(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readers: open %s: %w", path, err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("readers: gzip %s: %w", path, err)
		}
		return &payloadReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("readers: zstd %s: %w", path, err)
		}
		return &payloadReader{Reader: zr.IOReadCloser(), closers: []io.Closer{zr.IOReadCloser(), f}}, nil
	default:
		return f, nil
	}
}

// payloadReader closes the decompressor before the underlying file.
type payloadReader struct {
	io.Reader
	closers []io.Closer
}

func (p *payloadReader) Close() error {
	var firstErr error
	for _, c := range p.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
