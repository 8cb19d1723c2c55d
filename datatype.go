package covplot

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// ErrUnixCompress is returned for LZW data written by Unix compress (.Z).
// compress/lzw implements the GIF/TIFF variant, which cannot read it.
var ErrUnixCompress = errors.New("unix compress (.Z) input is not supported; recompress with gzip")

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType compares the first bytes of a stream against known
// compression signatures. Signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
Outer:
	for dt, sig := range byteCodeSigs {
		if len(head) < len(sig) {
			continue
		}
		for position := range sig {
			if head[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}

// MaybeDecompress wraps r in a decompressor if its leading bytes match a known
// compression format. Otherwise the returned reader yields r unchanged.
func MaybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(6)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	switch DetectDataType(head) {
	case DataTypeGzip:
		return gzip.NewReader(br)
	case DataTypeZip:
		zr := zipstream.NewReader(br)
		// Position on the first entry; later entries are ignored.
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return zr, nil
	case DataTypeBZip2:
		return bzip2.NewReader(br), nil
	case DataTypeXZ:
		return xz.NewReader(br, 0)
	case DataTypeZ:
		return nil, ErrUnixCompress
	}

	return br, nil
}
