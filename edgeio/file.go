package edgeio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Stdio is the path that stands for stdin in Open and stdout in Create.
const Stdio = "-"

// Edge list formats returned by DetectFormat.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// DetectFormat guesses the edge list format from the file name, ignoring a
// compression suffix. Anything that is not ".json" is read as CSV.
func DetectFormat(path string) string {
	base := trimCompression(path)
	if strings.EqualFold(filepath.Ext(base), ".json") {
		return FormatJSON
	}

	return FormatCSV
}

func trimCompression(path string) string {
	for _, ext := range []string{".gz", ".zst"} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}

	return path
}

// Open opens path on fs for reading and decompresses ".gz" and ".zst" files.
// Closing the returned reader closes the underlying file.
func Open(fs afero.Fs, path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, multierr.Append(errors.Wrapf(err, "gzip %s", path), f.Close())
		}
		return &stackedReader{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, multierr.Append(errors.Wrapf(err, "zstd %s", path), f.Close())
		}
		closeDecoder := func() error {
			zr.Close()
			return nil
		}
		return &stackedReader{Reader: zr, closers: []func() error{closeDecoder, f.Close}}, nil
	default:
		return f, nil
	}
}

// Create creates path on fs for writing and compresses ".gz" and ".zst" files.
// Close flushes the compressor before closing the file.
func Create(fs afero.Fs, path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := fs.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zw := gzip.NewWriter(f)
		return &stackedWriter{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return nil, multierr.Append(errors.Wrapf(err, "zstd %s", path), f.Close())
		}
		return &stackedWriter{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	default:
		return f, nil
	}
}

// stackedReader closes a decompressor and then its source.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (r *stackedReader) Close() error {
	var err error
	for _, c := range r.closers {
		err = multierr.Append(err, c())
	}

	return err
}

// stackedWriter closes a compressor and then its destination.
type stackedWriter struct {
	io.Writer
	closers []func() error
}

func (w *stackedWriter) Close() error {
	var err error
	for _, c := range w.closers {
		err = multierr.Append(err, c())
	}

	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
