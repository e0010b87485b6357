package qpcr

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Magic prefixes for the archive formats instrument exports tend to arrive in
// after a trip through email or a LIMS download.
var (
	magicGzip  = []byte{0x1f, 0x8b, 0x08}
	magicZip   = []byte{0x50, 0x4b, 0x03, 0x04}
	magicXZ    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	magicBzip2 = []byte{0x42, 0x5a, 0x68}
)

// decompressedReader wraps f with the right decompressor when the file is an
// archive, and returns f itself otherwise. Zip archives are read as a stream
// and only the first entry is consumed, which matches the one-table-per-file
// way exports get bundled.
func decompressedReader(f *os.File) (io.Reader, error) {
	magic := make([]byte, 6)
	n, err := f.Read(magic)
	if err != nil && err != io.EOF {
		return nil, err
	}
	magic = magic[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(magic, magicGzip):
		return gzip.NewReader(f)
	case bytes.HasPrefix(magic, magicZip):
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return zr, nil
	case bytes.HasPrefix(magic, magicXZ):
		return xz.NewReader(f, 0)
	case bytes.HasPrefix(magic, magicBzip2):
		return bzip2.NewReader(f), nil
	}

	return f, nil
}
