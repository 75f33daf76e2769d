package sbstore

import (
	"crypto/md5"
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Store is a fully parsed .sbstore file. Add prefix values are not
// part of the store file; a Store therefore only carries the add chunk
// of each add prefix and must be combined with the prefix list decoded
// from the paired .pset file via Build to obtain complete records.
type Store struct {
	header Header

	addChunks *roaring.Bitmap
	subChunks *roaring.Bitmap

	addPrefixChunks []uint32
	subPrefixes     []PrefixRecord
	addCompletes    []CompleteRecord
	subCompletes    []CompleteRecord

	checksum [ChecksumSize]byte
	body     []byte // all bytes preceding the checksum
}

// ParseStore parses a .sbstore file.
func ParseStore(data []byte) (*Store, error) {
	b := &buffer{data: data}
	s := &Store{
		addChunks: roaring.New(),
		subChunks: roaring.New(),
	}

	hdr := []*uint32{
		&s.header.Magic, &s.header.Version,
		&s.header.NumAddChunk, &s.header.NumSubChunk,
		&s.header.NumAddPrefix, &s.header.NumSubPrefix,
		&s.header.NumAddComplete, &s.header.NumSubComplete,
	}
	for _, f := range hdr {
		v, err := b.uint32()
		if err != nil {
			return nil, err
		}
		*f = v
	}

	for i := uint32(0); i < s.header.NumAddChunk; i++ {
		v, err := b.uint32()
		if err != nil {
			return nil, err
		}
		s.addChunks.Add(v)
	}
	for i := uint32(0); i < s.header.NumSubChunk; i++ {
		v, err := b.uint32()
		if err != nil {
			return nil, err
		}
		s.subChunks.Add(v)
	}

	var err error
	if s.addPrefixChunks, err = readByteSliced(b, int(s.header.NumAddPrefix)); err != nil {
		return nil, err
	}
	subAddChunks, err := readByteSliced(b, int(s.header.NumSubPrefix))
	if err != nil {
		return nil, err
	}
	subSubChunks, err := readByteSliced(b, int(s.header.NumSubPrefix))
	if err != nil {
		return nil, err
	}
	subValues, err := readByteSliced(b, int(s.header.NumSubPrefix))
	if err != nil {
		return nil, err
	}

	s.subPrefixes = make([]PrefixRecord, s.header.NumSubPrefix)
	for i := range s.subPrefixes {
		s.subPrefixes[i] = PrefixRecord{
			Prefix:   subValues[i],
			AddChunk: subAddChunks[i],
			SubChunk: subSubChunks[i],
		}
	}

	for i := uint32(0); i < s.header.NumAddComplete; i++ {
		var rec CompleteRecord
		hash, err := b.take(HashSize)
		if err != nil {
			return nil, err
		}
		copy(rec.Hash[:], hash)
		if rec.AddChunk, err = b.uint32(); err != nil {
			return nil, err
		}
		s.addCompletes = append(s.addCompletes, rec)
	}
	for i := uint32(0); i < s.header.NumSubComplete; i++ {
		var rec CompleteRecord
		hash, err := b.take(HashSize)
		if err != nil {
			return nil, err
		}
		copy(rec.Hash[:], hash)
		if rec.AddChunk, err = b.uint32(); err != nil {
			return nil, err
		}
		if rec.SubChunk, err = b.uint32(); err != nil {
			return nil, err
		}
		s.subCompletes = append(s.subCompletes, rec)
	}

	s.body = data[:b.pos]
	sum, err := b.take(ChecksumSize)
	if err != nil {
		return nil, err
	}
	copy(s.checksum[:], sum)

	if rem := b.remaining(); rem != 0 {
		return nil, fmt.Errorf("%w: %d bytes remaining", ErrTrailingData, rem)
	}
	return s, nil
}

// Header returns the raw store file header.
func (s *Store) Header() Header { return s.header }

// NumAddPrefixes returns the number of add prefix records, i.e. the
// number of prefix values Build expects.
func (s *Store) NumAddPrefixes() int { return len(s.addPrefixChunks) }

// Checksum returns the trailing digest as found in the file.
func (s *Store) Checksum() [ChecksumSize]byte { return s.checksum }

// VerifyChecksum recomputes the MD5 of all bytes preceding the
// checksum and compares it against the stored value. ParseStore does
// not call this; stores written by older browser versions carry
// digests this package cannot reproduce.
func (s *Store) VerifyChecksum() error {
	if sum := md5.Sum(s.body); sum != s.checksum {
		return fmt.Errorf("%w: computed %x, stored %x", ErrChecksum, sum, s.checksum)
	}
	return nil
}

// Build combines the store with the prefix list decoded from the
// paired .pset file and returns the completed, canonically sorted
// dataset. The store itself is not modified and no partially filled
// records are ever exposed.
func (s *Store) Build(name string, prefixes []uint32) (*ListDataset, error) {
	if len(prefixes) != len(s.addPrefixChunks) {
		return nil, fmt.Errorf("%w: prefix set has %d entries, store has %d add prefixes", ErrPrefixCount, len(prefixes), len(s.addPrefixChunks))
	}

	// Prefix set order and store order are the same; entry i of the
	// prefix list belongs to add prefix record i.
	addPrefixes := make([]PrefixRecord, len(prefixes))
	for i, v := range prefixes {
		addPrefixes[i] = PrefixRecord{Prefix: v, AddChunk: s.addPrefixChunks[i]}
	}

	ds := &ListDataset{
		Name:         name,
		Header:       s.header,
		AddChunks:    s.addChunks,
		SubChunks:    s.subChunks,
		AddPrefixes:  addPrefixes,
		SubPrefixes:  append([]PrefixRecord(nil), s.subPrefixes...),
		AddCompletes: append([]CompleteRecord(nil), s.addCompletes...),
		SubCompletes: append([]CompleteRecord(nil), s.subCompletes...),
		Checksum:     s.checksum,
	}
	ds.sort()
	return ds, nil
}
