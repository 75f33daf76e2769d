package sbstore_test

import (
	"github.com/bsm/sbstore"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("byte-sliced columns", func() {
	It("should round-trip", func() {
		vv := []uint32{
			0x01020304,
			0x010203aa,
			0x01020477,
			0xfffefd00,
			0,
		}
		Expect(sbstore.DecodeByteSliced(appendByteSliced(nil, vv), len(vv))).To(Equal(vv))
	})

	It("should round-trip empty columns", func() {
		Expect(sbstore.DecodeByteSliced(appendByteSliced(nil, nil), 0)).To(BeEmpty())
	})

	It("should fail on truncated input", func() {
		enc := appendByteSliced(nil, []uint32{1, 2, 3})
		for n := 0; n < len(enc); n++ {
			_, err := sbstore.DecodeByteSliced(enc[:n], 3)
			Expect(err).To(MatchError(sbstore.ErrTruncated), "for %d bytes", n)
		}
	})

	It("should fail on corrupt compressed slices", func() {
		enc := appendUint32(nil, 4)
		enc = append(enc, "oops"...)
		_, err := sbstore.DecodeByteSliced(enc, 1)
		Expect(err).To(MatchError(sbstore.ErrDecompress))
	})

	It("should fail when a slice inflates to the wrong length", func() {
		// slices encoded for 4 values, column read expecting 3
		enc := appendByteSliced(nil, []uint32{1, 2, 3, 4})
		_, err := sbstore.DecodeByteSliced(enc, 3)
		Expect(err).To(MatchError(sbstore.ErrSliceLength))
	})
})
