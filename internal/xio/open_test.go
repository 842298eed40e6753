// internal/xio/open_test.go
package xio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/require"
)

func TestOpenPlainFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(p, []byte(">1-2-3.0\nACGT\n"), 0o644))

	r, err := Open(p)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, ">1-2-3.0\nACGT\n", string(got))
}

func TestOpenGzipByMagic(t *testing.T) {
	// .txt extension on purpose: detection must work from the magic bytes.
	p := filepath.Join(t.TempDir(), "in.txt")
	fh, err := os.Create(p)
	require.NoError(t, err)
	gw := pgzip.NewWriter(fh)
	_, err = gw.Write([]byte(">1-2-3.0\nACGT\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	r, err := Open(p)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, ">1-2-3.0\nACGT\n", string(got))
}

func TestCreateGzipRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.fasta.gz")

	w, err := Create(p)
	require.NoError(t, err)
	_, err = w.Write([]byte(">1-2-3.0-1-1-0\nACGT\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := Open(p)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, ">1-2-3.0-1-1-0\nACGT\n", string(got))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}
