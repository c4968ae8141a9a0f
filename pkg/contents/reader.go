package contents

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"
)

// NewReader wraps r with the decompressor implied by name, which is
// inspected for a compression suffix (".gz", ".xz"). Names without a
// recognized suffix are passed through unchanged, covering mirrors that
// publish uncompressed indices.
//
// The returned ReadCloser owns only the decompressor; closing it does
// not close r.
func NewReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return zr, nil
	case strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		return io.NopCloser(xr), nil
	default:
		return io.NopCloser(r), nil
	}
}
