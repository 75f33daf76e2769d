package sbstore

import "fmt"

// DecodePrefixSet parses a .pset file and reconstructs the flat,
// ascending list of 32-bit add prefixes it encodes.
func DecodePrefixSet(data []byte) ([]uint32, error) {
	b := &buffer{data: data}

	// version is stored but carries no meaning for decoding
	if _, err := b.uint32(); err != nil {
		return nil, err
	}
	indexSize, err := b.uint32()
	if err != nil {
		return nil, err
	}
	deltaSize, err := b.uint32()
	if err != nil {
		return nil, err
	}

	if need, rem := int64(indexSize)*8+int64(deltaSize)*2, int64(b.remaining()); rem < need {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, need, b.pos, rem)
	}

	indexPrefixes, err := b.uint32s(int(indexSize))
	if err != nil {
		return nil, err
	}
	indexStarts, err := b.uint32s(int(indexSize))
	if err != nil {
		return nil, err
	}
	deltas, err := b.uint16s(int(deltaSize))
	if err != nil {
		return nil, err
	}

	prefixes := make([]uint32, 0, int(indexSize)+int(deltaSize))
	for i, prefix := range indexPrefixes {
		prefixes = append(prefixes, prefix)

		start := indexStarts[i]
		end := deltaSize
		if i+1 < len(indexStarts) {
			end = indexStarts[i+1]
		}
		if start > end || end > deltaSize {
			return nil, fmt.Errorf("%w: delta range [%d, %d) of %d at index %d", ErrCorruptIndex, start, end, deltaSize, i)
		}
		for _, d := range deltas[start:end] {
			prefix += uint32(d)
			prefixes = append(prefixes, prefix)
		}
	}

	// a leading zero prefix marks the canonical encoding of the empty set
	if len(prefixes) != 0 && prefixes[0] == 0 {
		return nil, nil
	}
	return prefixes, nil
}
