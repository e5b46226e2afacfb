package ohash_test

import (
	"testing"

	"github.com/theflywheel/ohash"
)

func TestHashHelpersDeterministic(t *testing.T) {
	if ohash.HashString("hello") != ohash.HashString("hello") {
		t.Error("HashString is not deterministic")
	}
	if ohash.HashString("hello") == ohash.HashString("world") {
		t.Error("HashString collides on trivially different inputs")
	}
	if ohash.HashBytes([]byte("hello")) != ohash.HashString("hello") {
		t.Error("HashBytes and HashString disagree on identical content")
	}
	if ohash.HashInt(42) != ohash.HashUint64(42) {
		t.Error("HashInt and HashUint64 disagree on identical content")
	}
}

func TestEqualPredicate(t *testing.T) {
	eq := ohash.Equal[string]()
	if !eq("a", "a") {
		t.Error(`Equal()("a", "a") = false`)
	}
	if eq("a", "b") {
		t.Error(`Equal()("a", "b") = true`)
	}
}
