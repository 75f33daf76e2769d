package sbstore

// DecodeByteSliced exposes the byte-sliced column codec to the test
// suite.
func DecodeByteSliced(data []byte, count int) ([]uint32, error) {
	return readByteSliced(&buffer{data: data}, count)
}
