/*
Package ohash provides a generic in-memory hash table with open addressing
and linear probing.

Table is parameterized over arbitrary key and value types. Instead of
constraining K, the caller supplies the hashing and equality behavior at
construction, which makes it possible to key a table on types Go's built-in
map cannot handle (slices, structs with ignored fields, case-insensitive
strings, and so on).

Basic usage:

	import "github.com/theflywheel/ohash"

	// Create a table keyed by strings, using the bundled xxHash helper
	tab := ohash.New[string, int](ohash.HashString, ohash.Equal[string](), nil)

	// Insert and update
	tab.Put("answer", 41)
	old, replaced := tab.Put("answer", 42) // old == 41, replaced == true

	// Look up
	if tab.Has("answer") {
		fmt.Println(tab.Get("answer")) // 42
	}

	// Bulk retrieval
	keys := tab.Keys()
	values := tab.Values()

The following requirements are the caller's responsibility:

  - hash must be deterministic, and equal(a, b) implies hash(a) == hash(b)
  - equal must be reflexive, symmetric, and transitive
  - a Table must not be accessed concurrently; wrap it in a lock or
    partition the keyspace if multiple goroutines need it

Features:

  - Pluggable hash and equality functions over any key type
  - Open addressing with linear probing for collision resolution
  - Automatic resizing to twice the capacity at a 0.75 load factor
  - Bundled xxHash-based hash functions for common key types
  - Collision and rehash counters plus a Dump method for diagnostics

Implementation Details:

The table is a single flat slice of slots, each either empty or holding a
key-value pair inline. Lookups probe forward from hash(key) mod capacity,
wrapping to slot 0, until they hit the key or an empty slot. Because there
is no delete operation there are no tombstones, so an empty slot always
terminates a probe.

Get requires the key to be present and panics otherwise; Has is the
non-panicking membership check. This strictness is deliberate: a missing
key on Get is treated as a programmer error rather than a recoverable
condition.
*/
package ohash
