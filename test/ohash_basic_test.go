package ohash_test

import (
	"fmt"
	"testing"

	"github.com/theflywheel/ohash"
)

func TestBasicOperations(t *testing.T) {
	tab := ohash.New[int, int](ohash.HashInt, ohash.Equal[int](), nil)

	for i := 0; i < 10; i++ {
		if _, replaced := tab.Put(i, i*100); replaced {
			t.Fatalf("Put reported an update for fresh key %d", i)
		}
	}

	for i := 0; i < 10; i++ {
		if !tab.Has(i) {
			t.Fatalf("Key %d not found", i)
		}
		if got := tab.Get(i); got != i*100 {
			t.Errorf("Value mismatch for key %d: expected %d, got %d", i, i*100, got)
		}
	}

	if tab.Size() != 10 {
		t.Errorf("Expected size 10, got %d", tab.Size())
	}
}

func TestStringKeys(t *testing.T) {
	tab := ohash.New[string, string](ohash.HashString, ohash.Equal[string](), nil)

	for i := 0; i < 50; i++ {
		tab.Put(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		if got, want := tab.Get(key), fmt.Sprintf("value-%d", i); got != want {
			t.Errorf("Value mismatch for %q: expected %q, got %q", key, want, got)
		}
	}
}

// TestOverwrite tests overwriting existing keys
func TestOverwrite(t *testing.T) {
	tab := ohash.New[int, int](ohash.HashInt, ohash.Equal[int](), nil)

	if _, replaced := tab.Put(42, 100); replaced {
		t.Fatal("Initial Put reported an update")
	}
	sizeAfterFirst := tab.Size()

	old, replaced := tab.Put(42, 200)
	if !replaced {
		t.Fatal("Second Put did not report an update")
	}
	if old != 100 {
		t.Fatalf("Expected previous value 100, got %d", old)
	}
	if tab.Size() != sizeAfterFirst {
		t.Errorf("Size changed on update: expected %d, got %d", sizeAfterFirst, tab.Size())
	}

	if got := tab.Get(42); got != 200 {
		t.Fatalf("Expected updated value 200, got %d", got)
	}
}

func TestMembership(t *testing.T) {
	tab := ohash.New[string, int](ohash.HashString, ohash.Equal[string](), nil)

	inserted := []string{"alpha", "beta", "gamma", "delta"}
	for i, key := range inserted {
		tab.Put(key, i)
	}

	for _, key := range inserted {
		if !tab.Has(key) {
			t.Errorf("Has(%q) = false for inserted key", key)
		}
	}
	for _, key := range []string{"epsilon", "zeta", ""} {
		if tab.Has(key) {
			t.Errorf("Has(%q) = true for absent key", key)
		}
	}
}

func TestKeysValues(t *testing.T) {
	tab := ohash.New[int, string](ohash.HashInt, ohash.Equal[int](), nil)

	for i := 0; i < 20; i++ {
		tab.Put(i, fmt.Sprintf("value-%d", i))
	}

	keys := tab.Keys()
	values := tab.Values()

	if len(keys) != tab.Size() {
		t.Fatalf("Keys returned %d elements, expected %d", len(keys), tab.Size())
	}
	if len(values) != tab.Size() {
		t.Fatalf("Values returned %d elements, expected %d", len(values), tab.Size())
	}

	// Both scan slots in index order, so the slices pair up.
	for i, key := range keys {
		if !tab.Has(key) {
			t.Errorf("Keys()[%d] = %d does not satisfy Has", i, key)
		}
		if got := tab.Get(key); got != values[i] {
			t.Errorf("Values()[%d] = %q, but Get(%d) = %q", i, values[i], key, got)
		}
	}
}
