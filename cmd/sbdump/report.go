package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/bsm/sbstore"
)

// reporter renders decoded datasets as text, one line per fact, each
// tagged with the list name. With verbose set it also dumps every
// prefix and completion in hex.
type reporter struct {
	w       io.Writer
	verbose bool
}

func (r *reporter) report(ds *sbstore.ListDataset) {
	h := ds.Header
	fmt.Fprintf(r.w,
		"[%s] Magic %X Version %d NumAddChunk: %d NumSubChunk: %d NumAddPrefix: %d NumSubPrefix: %d NumAddComplete: %d NumSubComplete: %d\n",
		ds.Name, h.Magic, h.Version, h.NumAddChunk, h.NumSubChunk,
		h.NumAddPrefix, h.NumSubPrefix, h.NumAddComplete, h.NumSubComplete)

	if r.verbose {
		fmt.Fprintf(r.w, "[%s] AddChunks: %s\n", ds.Name, chunkList(ds.AddChunks))
		fmt.Fprintf(r.w, "[%s] SubChunks: %s\n", ds.Name, chunkList(ds.SubChunks))
		for _, rec := range ds.AddPrefixes {
			fmt.Fprintf(r.w, "[%s] addPrefix[chunk:%d] %08x\n", ds.Name, rec.AddChunk, rec.Prefix)
		}
		for _, rec := range ds.SubPrefixes {
			fmt.Fprintf(r.w, "[%s] subPrefix[chunk:%d] %08x\n", ds.Name, rec.SubChunk, rec.Prefix)
		}
		for _, rec := range ds.AddCompletes {
			fmt.Fprintf(r.w, "[%s] addComplete[chunk:%d] %s\n", ds.Name, rec.AddChunk, hex.EncodeToString(rec.Hash[:]))
		}
		for _, rec := range ds.SubCompletes {
			fmt.Fprintf(r.w, "[%s] subComplete[chunk:%d] %s\n", ds.Name, rec.SubChunk, hex.EncodeToString(rec.Hash[:]))
		}
	}

	fmt.Fprintf(r.w, "[%s] MD5: %s\n", ds.Name, hex.EncodeToString(ds.Checksum[:]))
}

func chunkList(bm *roaring.Bitmap) string {
	var sb strings.Builder
	for it := bm.Iterator(); it.HasNext(); {
		if sb.Len() != 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", it.Next())
	}
	return sb.String()
}
