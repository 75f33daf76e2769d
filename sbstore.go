package sbstore

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ChecksumSize is the size of the digest trailing every store file.
const ChecksumSize = 16

// HashSize is the size of a full-hash completion.
const HashSize = 32

// Decode failures. All of them are terminal for the affected list;
// values returned alongside a non-nil error must not be used.
var (
	ErrTruncated    = errors.New("sbstore: unexpected end of data")
	ErrDecompress   = errors.New("sbstore: invalid compressed slice")
	ErrSliceLength  = errors.New("sbstore: slice length mismatch")
	ErrPrefixCount  = errors.New("sbstore: prefix count mismatch")
	ErrTrailingData = errors.New("sbstore: trailing data after checksum")
	ErrCorruptIndex = errors.New("sbstore: corrupt prefix set index")
	ErrChecksum     = errors.New("sbstore: checksum mismatch")
)

// Header holds the raw store file header. Magic and Version are
// recorded as found, never validated.
type Header struct {
	Magic          uint32
	Version        uint32
	NumAddChunk    uint32
	NumSubChunk    uint32
	NumAddPrefix   uint32
	NumSubPrefix   uint32
	NumAddComplete uint32
	NumSubComplete uint32
}

// --------------------------------------------------------------------

// buffer is a cursor over an in-memory file. Every read either
// succeeds in full or fails with ErrTruncated; there are no short
// reads.
type buffer struct {
	data []byte
	pos  int
}

func (b *buffer) remaining() int { return len(b.data) - b.pos }

func (b *buffer) take(n int) ([]byte, error) {
	if rem := b.remaining(); rem < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, b.pos, rem)
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p, nil
}

func (b *buffer) uint32() (uint32, error) {
	p, err := b.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

func (b *buffer) uint32s(n int) ([]uint32, error) {
	p, err := b.take(4 * n)
	if err != nil {
		return nil, err
	}
	vv := make([]uint32, n)
	for i := range vv {
		vv[i] = binary.LittleEndian.Uint32(p[4*i:])
	}
	return vv, nil
}

func (b *buffer) uint16s(n int) ([]uint16, error) {
	p, err := b.take(2 * n)
	if err != nil {
		return nil, err
	}
	vv := make([]uint16, n)
	for i := range vv {
		vv[i] = binary.LittleEndian.Uint16(p[2*i:])
	}
	return vv, nil
}
