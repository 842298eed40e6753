// internal/xio/open.go
package xio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// multiCloser closes multiple io.Closers when Close() is called.
type multiCloser struct {
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type readCloser struct {
	io.Reader
	multiCloser
}

type writeCloser struct {
	io.Writer
	multiCloser
}

// Open returns a reader for path. "-" means stdin; gzip input is detected by
// magic number (1F 8B) or by .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := pgzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &readCloser{Reader: gr, multiCloser: multiCloser{closers: []io.Closer{gr, fh}}}, nil
	}
	return fh, nil
}

// Create returns a writer for path. "-" means stdout (left open on Close);
// a .gz suffix selects parallel gzip compression.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := pgzip.NewWriter(fh)
		return &writeCloser{Writer: gw, multiCloser: multiCloser{closers: []io.Closer{gw, fh}}}, nil
	}
	return fh, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
