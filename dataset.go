package sbstore

import (
	"bytes"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// PrefixRecord is a 32-bit hash prefix tagged with the chunks that
// added and, for sub records, removed it. SubChunk is zero for add
// records.
type PrefixRecord struct {
	Prefix   uint32
	AddChunk uint32
	SubChunk uint32
}

// CompleteRecord is a full-hash completion tagged with its chunks.
// SubChunk is zero for add records.
type CompleteRecord struct {
	Hash     [HashSize]byte
	AddChunk uint32
	SubChunk uint32
}

// ListDataset is the fully decoded content of one named list: the
// store file reunited with its prefix set, in canonical order. It is
// not modified after DecodeList/Build returns it.
type ListDataset struct {
	Name   string
	Header Header

	AddChunks *roaring.Bitmap
	SubChunks *roaring.Bitmap

	AddPrefixes  []PrefixRecord
	SubPrefixes  []PrefixRecord
	AddCompletes []CompleteRecord
	SubCompletes []CompleteRecord

	Checksum [ChecksumSize]byte
}

// DecodeList decodes a store file and its paired prefix set file into
// one dataset. Both inputs are consumed whole; any structural failure
// in either file aborts the list.
func DecodeList(name string, store, prefixSet []byte) (*ListDataset, error) {
	s, err := ParseStore(store)
	if err != nil {
		return nil, err
	}
	prefixes, err := DecodePrefixSet(prefixSet)
	if err != nil {
		return nil, err
	}
	return s.Build(name, prefixes)
}

func (ds *ListDataset) sort() {
	sort.SliceStable(ds.AddPrefixes, func(i, j int) bool {
		a, b := ds.AddPrefixes[i], ds.AddPrefixes[j]
		if a.Prefix != b.Prefix {
			return a.Prefix < b.Prefix
		}
		return a.AddChunk < b.AddChunk
	})
	sort.SliceStable(ds.SubPrefixes, func(i, j int) bool {
		a, b := ds.SubPrefixes[i], ds.SubPrefixes[j]
		if a.Prefix != b.Prefix {
			return a.Prefix < b.Prefix
		}
		if a.SubChunk != b.SubChunk {
			return a.SubChunk < b.SubChunk
		}
		return a.AddChunk < b.AddChunk
	})
	sort.SliceStable(ds.AddCompletes, func(i, j int) bool {
		a, b := ds.AddCompletes[i], ds.AddCompletes[j]
		if c := bytes.Compare(a.Hash[:], b.Hash[:]); c != 0 {
			return c < 0
		}
		return a.AddChunk < b.AddChunk
	})
	sort.SliceStable(ds.SubCompletes, func(i, j int) bool {
		a, b := ds.SubCompletes[i], ds.SubCompletes[j]
		if c := bytes.Compare(a.Hash[:], b.Hash[:]); c != 0 {
			return c < 0
		}
		if a.SubChunk != b.SubChunk {
			return a.SubChunk < b.SubChunk
		}
		return a.AddChunk < b.AddChunk
	})
}
