package ohash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashString hashes a string key with xxHash.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes a byte-slice key with xxHash.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashUint64 hashes an unsigned integer key via its big-endian encoding.
func HashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}

// HashInt hashes an integer key via its big-endian encoding.
func HashInt(i int) uint64 {
	return HashUint64(uint64(i))
}

// Equal returns an equality predicate for any comparable key type, for use
// with New alongside one of the Hash helpers.
func Equal[K comparable]() func(K, K) bool {
	return func(a, b K) bool { return a == b }
}
