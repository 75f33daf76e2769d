package sbstore_test

import (
	"github.com/bsm/sbstore"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ListDataset", func() {
	var store *sbstore.Store

	BeforeEach(func() {
		var err error
		store, err = sbstore.ParseStore(buildStore(storeSpec{
			addChunks:       []uint32{1, 2},
			subChunks:       []uint32{9},
			addPrefixChunks: []uint32{1, 2, 1},
			subPrefixes: []sbstore.PrefixRecord{
				{Prefix: 50, AddChunk: 2, SubChunk: 9},
				{Prefix: 50, AddChunk: 1, SubChunk: 9},
				{Prefix: 10, AddChunk: 1, SubChunk: 9},
			},
			addCompletes: []sbstore.CompleteRecord{
				{Hash: hashOf(0xcc), AddChunk: 2},
				{Hash: hashOf(0xaa), AddChunk: 2},
				{Hash: hashOf(0xaa), AddChunk: 1},
			},
			subCompletes: []sbstore.CompleteRecord{
				{Hash: hashOf(0xbb), AddChunk: 2, SubChunk: 9},
				{Hash: hashOf(0xbb), AddChunk: 1, SubChunk: 9},
			},
		}))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should require one prefix per add prefix record", func() {
		_, err := store.Build("test", []uint32{5, 3})
		Expect(err).To(MatchError(sbstore.ErrPrefixCount))
		Expect(err).To(MatchError(`sbstore: prefix count mismatch: prefix set has 2 entries, store has 3 add prefixes`))
	})

	It("should bind prefixes in store order", func() {
		// prefixes pair with the chunk column positionally: (5,1) (3,2) (3,1)
		ds, err := store.Build("test", []uint32{5, 3, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.AddPrefixes).To(Equal([]sbstore.PrefixRecord{
			{Prefix: 3, AddChunk: 1},
			{Prefix: 3, AddChunk: 2},
			{Prefix: 5, AddChunk: 1},
		}))
	})

	It("should sort sub prefixes by prefix, sub chunk, add chunk", func() {
		ds, err := store.Build("test", []uint32{5, 3, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.SubPrefixes).To(Equal([]sbstore.PrefixRecord{
			{Prefix: 10, AddChunk: 1, SubChunk: 9},
			{Prefix: 50, AddChunk: 1, SubChunk: 9},
			{Prefix: 50, AddChunk: 2, SubChunk: 9},
		}))
	})

	It("should sort completions by hash, then chunks", func() {
		ds, err := store.Build("test", []uint32{5, 3, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.AddCompletes).To(Equal([]sbstore.CompleteRecord{
			{Hash: hashOf(0xaa), AddChunk: 1},
			{Hash: hashOf(0xaa), AddChunk: 2},
			{Hash: hashOf(0xcc), AddChunk: 2},
		}))
		Expect(ds.SubCompletes).To(Equal([]sbstore.CompleteRecord{
			{Hash: hashOf(0xbb), AddChunk: 1, SubChunk: 9},
			{Hash: hashOf(0xbb), AddChunk: 2, SubChunk: 9},
		}))
	})
})

var _ = Describe("DecodeList", func() {
	It("should reunite a store with its prefix set", func() {
		store := buildStore(storeSpec{
			addChunks:       []uint32{1},
			addPrefixChunks: []uint32{1, 1, 1},
		})
		pset := buildPrefixSet(1, []uint32{100}, []uint32{0}, []uint16{5, 5})

		ds, err := sbstore.DecodeList("goog-malware-shavar", store, pset)
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.Name).To(Equal("goog-malware-shavar"))
		Expect(ds.AddPrefixes).To(Equal([]sbstore.PrefixRecord{
			{Prefix: 100, AddChunk: 1},
			{Prefix: 105, AddChunk: 1},
			{Prefix: 110, AddChunk: 1},
		}))
	})

	It("should reject mismatched pairs", func() {
		store := buildStore(storeSpec{
			addChunks:       []uint32{1},
			addPrefixChunks: []uint32{1, 1, 1},
		})
		pset := buildPrefixSet(1, []uint32{100}, []uint32{0}, []uint16{5})

		_, err := sbstore.DecodeList("goog-malware-shavar", store, pset)
		Expect(err).To(MatchError(sbstore.ErrPrefixCount))
	})

	It("should accept the empty prefix set form", func() {
		store := buildStore(storeSpec{})
		pset := buildPrefixSet(1, []uint32{0}, []uint32{0}, nil)

		ds, err := sbstore.DecodeList("test-simple", store, pset)
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.AddPrefixes).To(BeEmpty())
	})
})
