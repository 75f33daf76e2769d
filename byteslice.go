package sbstore

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// readByteSliced decodes one byte-sliced column of count uint32 values:
// three DEFLATE-compressed slices (most significant byte first), then
// count raw bytes for the least significant slice.
func readByteSliced(b *buffer, count int) ([]uint32, error) {
	// The raw LSB slice alone needs count bytes, so an impossible
	// count is caught before any allocation sized from it.
	if rem := b.remaining(); rem < count {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, count, b.pos, rem)
	}

	var slices [3][]byte
	for i := range slices {
		size, err := b.uint32()
		if err != nil {
			return nil, err
		}
		comp, err := b.take(int(size))
		if err != nil {
			return nil, err
		}
		plain, err := inflate(comp, count)
		if err != nil {
			return nil, err
		}
		if len(plain) != count {
			return nil, fmt.Errorf("%w: slice %d inflated to %d bytes, expected %d", ErrSliceLength, i+1, len(plain), count)
		}
		slices[i] = plain
	}

	raw, err := b.take(count)
	if err != nil {
		return nil, err
	}

	vv := make([]uint32, count)
	for i := range vv {
		vv[i] = uint32(slices[0][i])<<24 |
			uint32(slices[1][i])<<16 |
			uint32(slices[2][i])<<8 |
			uint32(raw[i])
	}
	return vv, nil
}

func inflate(comp []byte, sizeHint int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(comp))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer zr.Close()

	plain := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(plain, zr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	return plain.Bytes(), nil
}
