package ohash

import (
	"fmt"
	"io"
)

const (
	// InitialCapacity is the number of slots a new table starts with.
	InitialCapacity = 8
	// LoadThreshold is the size/capacity ratio at which the table grows.
	LoadThreshold = 0.75
	// ResizeFactor is the capacity multiplier applied on each rehash.
	ResizeFactor = 2
)

// Table is an open-addressing hash table with linear probing. Hashing and
// key equality are supplied by the caller at construction; the table itself
// places no constraints on K or V.
//
// A Table is not safe for concurrent use. Callers that share a table across
// goroutines must serialize access externally.
type Table[K, V any] struct {
	slots      []slot[K, V]
	size       int
	collisions uint64
	rehashes   uint64

	hash   func(K) uint64
	equal  func(K, K) bool
	format func(K, V) string
}

// slot is a single table cell: a status flag plus inline key/value storage.
type slot[K, V any] struct {
	used  bool
	key   K
	value V
}

// New creates an empty table with InitialCapacity slots.
//
// hash must be deterministic, and keys that are equal under equal must hash
// identically. equal must be a true equivalence relation (reflexive,
// symmetric, transitive). format is used only by Dump and may be nil, in
// which case entries are rendered with the fmt package's default verbs.
func New[K, V any](hash func(K) uint64, equal func(K, K) bool, format func(K, V) string) *Table[K, V] {
	return &Table[K, V]{
		slots:  make([]slot[K, V], InitialCapacity),
		hash:   hash,
		equal:  equal,
		format: format,
	}
}

// probe runs the shared linear-probe sequence for key: start at
// hash(key) mod capacity, advance forward wrapping to 0, and stop at the
// first slot that is empty or holds an equal key. Every occupied non-equal
// slot passed on the way counts as a collision. The returned index is the
// stopping slot; found reports whether it holds key.
func (t *Table[K, V]) probe(key K) (idx int, found bool) {
	idx = int(t.hash(key) % uint64(len(t.slots)))
	for t.slots[idx].used {
		if t.equal(t.slots[idx].key, key) {
			return idx, true
		}
		t.collisions++
		idx++
		if idx == len(t.slots) {
			idx = 0
		}
	}
	return idx, false
}

// Get returns the value associated with key.
//
// The key must be present: Get panics if the probe sequence reaches an empty
// slot without finding it. Absence is a caller error, not a runtime
// condition; use Has first whenever the key might be missing.
func (t *Table[K, V]) Get(key K) V {
	idx, found := t.probe(key)
	if !found {
		panic(fmt.Sprintf("ohash: Get of missing key %v; call Has first", key))
	}
	return t.slots[idx].value
}

// Has reports whether key is present in the table.
func (t *Table[K, V]) Has(key K) bool {
	_, found := t.probe(key)
	return found
}

// Put inserts a key-value pair, or updates the value of an existing key.
// On update it returns the previous value and true; on insert it returns
// the zero value of V and false.
//
// An insert that pushes the load factor to LoadThreshold or beyond triggers
// a synchronous rehash before Put returns.
func (t *Table[K, V]) Put(key K, value V) (old V, replaced bool) {
	idx, found := t.probe(key)
	if found {
		old = t.slots[idx].value
		t.slots[idx].value = value
		return old, true
	}
	t.slots[idx] = slot[K, V]{used: true, key: key, value: value}
	t.size++
	if float64(t.size)/float64(len(t.slots)) >= LoadThreshold {
		t.rehash()
	}
	return old, false
}

// rehash grows the slot array by ResizeFactor and re-inserts every occupied
// entry through the normal put path, so probe order is recomputed against
// the new capacity. The old array is released for collection as it goes.
func (t *Table[K, V]) rehash() {
	oldSlots := t.slots
	t.slots = make([]slot[K, V], len(oldSlots)*ResizeFactor)
	t.size = 0
	for i := range oldSlots {
		if oldSlots[i].used {
			t.Put(oldSlots[i].key, oldSlots[i].value)
			oldSlots[i] = slot[K, V]{}
		}
	}
	t.rehashes++
}

// Keys returns the keys of all entries, in slot-index order. The slice is
// freshly allocated with length exactly Size; the order is only stable
// between calls if the table is not mutated in between.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for i := range t.slots {
		if t.slots[i].used {
			keys = append(keys, t.slots[i].key)
		}
	}
	return keys
}

// Values returns the values of all entries, in slot-index order. Values()[i]
// is the value stored under Keys()[i] when no mutation happens between the
// two calls.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for i := range t.slots {
		if t.slots[i].used {
			values = append(values, t.slots[i].value)
		}
	}
	return values
}

// Size returns the number of entries in the table.
func (t *Table[K, V]) Size() int { return t.size }

// Capacity returns the current number of slots.
func (t *Table[K, V]) Capacity() int { return len(t.slots) }

// Collisions returns the running count of probe steps that passed an
// occupied slot holding a different key. Diagnostic only.
func (t *Table[K, V]) Collisions() uint64 { return t.collisions }

// Rehashes returns the number of times the table has grown.
func (t *Table[K, V]) Rehashes() uint64 { return t.rehashes }

// Dump writes the table's counters to w. If full is true it also writes one
// line per slot, "i: null" for empty slots and "i: (key, value)" for
// occupied ones, rendered with the format function given at construction.
func (t *Table[K, V]) Dump(w io.Writer, full bool) {
	fmt.Fprintf(w, "Collisions: %d\n", t.collisions)
	fmt.Fprintf(w, "Rehashes: %d\n", t.rehashes)
	fmt.Fprintf(w, "Size: %d\n", t.size)
	fmt.Fprintf(w, "Capacity: %d\n", len(t.slots))
	if !full {
		return
	}
	for i := range t.slots {
		if !t.slots[i].used {
			fmt.Fprintf(w, "%d: null\n", i)
			continue
		}
		if t.format != nil {
			fmt.Fprintf(w, "%d: (%s)\n", i, t.format(t.slots[i].key, t.slots[i].value))
		} else {
			fmt.Fprintf(w, "%d: (%v, %v)\n", i, t.slots[i].key, t.slots[i].value)
		}
	}
}

// Destroy releases the slot array. The table stores key and value handles
// as given and never owns their contents, so only its own storage is
// dropped; referenced data is untouched. The table must not be used after
// Destroy.
func (t *Table[K, V]) Destroy() {
	t.slots = nil
	t.size = 0
}
