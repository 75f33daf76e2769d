/*
Package sbstore decodes SafeBrowsing URL-reputation database files as
stored on disk by the browser: a .sbstore file holding chunk metadata,
sub prefixes and full-hash completions, paired with a .pset file holding
the delta-compressed add prefixes. All integers are little-endian.

# Data Structure Documentation

Store (.sbstore)

	Store layout:
	+-----------------+-----------+-----------+-------------+-----------+-----------------+
	| header (8 x u32)| add chunks| sub chunks| byte-sliced | completes | checksum (16 B) |
	+-----------------+-----------+-----------+-------------+-----------+-----------------+

	Header fields, in order:
	magic, version, numAddChunk, numSubChunk,
	numAddPrefix, numSubPrefix, numAddComplete, numSubComplete

The chunk id arrays are plain uint32 sequences of numAddChunk and
numSubChunk entries. Four byte-sliced columns follow: the add chunk of
each add prefix (numAddPrefix entries), then the add chunk, sub chunk
and prefix value of each sub prefix (numSubPrefix entries each). Note
that the add prefix values themselves are NOT in the store; they live
in the paired .pset file and are joined back in after decoding.

	Completions:
	+----------------+---------------+----------------------------+
	| hash (32 bytes)| addChunk (u32)| subChunk (u32, subs only)  |
	+----------------+---------------+----------------------------+

The trailing 16 bytes are the MD5 digest of all preceding data.

# Byte-sliced column

Chunk ids of adjacent entries correlate strongly in their high-order
bytes and hardly at all in the low-order byte, so 32-bit values are
split into four single-byte slices. The three most significant slices
are DEFLATE-compressed individually; the least significant is stored
raw.

	byteSliced(n):
	+-----------+----------------+-----------+----------------+-----------+----------------+-------------+
	| len (u32) | zlib, MSB x n  | len (u32) | zlib, 2nd x n  | len (u32) | zlib, 3rd x n  | raw LSB x n |
	+-----------+----------------+-----------+----------------+-----------+----------------+-------------+

Prefix set (.pset)

A sorted prefix list stored as periodic full 32-bit anchors plus 16-bit
forward deltas between consecutive entries.

	+--------------+----------------+----------------+------------------+---------------+------------------+
	| version (u32)| indexSize (u32)| deltaSize (u32)| prefixes (u32 x indexSize) | starts (u32 x indexSize) | deltas (u16 x deltaSize) |
	+--------------+----------------+----------------+------------------+---------------+------------------+

Anchor i covers deltas[starts[i]:starts[i+1]] (the last anchor runs to
deltaSize). A decoded list whose first entry is 0 is the canonical
encoding of the empty set.
*/
package sbstore
