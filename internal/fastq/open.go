// internal/fastq/open.go
package fastq

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/shenwei356/xopen"
)

// Open returns a reader over path with transparent decompression
// (gzip, bzip2, xz, zstd detected by magic number). "-" reads stdin.
// path is always a plain file name: no command pipes, URLs or "~" expansion.
// A zero-byte input opens as an empty reader. Failures are *IOError with Op "open".
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, &IOError{Op: "open", Err: err}
		}
		if fi.IsDir() {
			return nil, &IOError{Op: "open", Err: xopen.ErrDirNotSupported}
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, &IOError{Op: "open", Err: err}
		}
		src = f
	}

	r, err := xopen.Buf(src)
	if errors.Is(err, xopen.ErrNoContent) {
		_ = src.Close()
		return io.NopCloser(strings.NewReader("")), nil
	}
	if err != nil {
		_ = src.Close()
		return nil, &IOError{Op: "open", Err: err}
	}
	return r, nil
}
