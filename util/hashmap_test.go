// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package util

import "testing"

func newTestMap() *HashMap[string, int] {
	return NewHashMap[string, int](
		func(a, b string) bool { return a == b },
		// Deliberately collides everything into two buckets to exercise
		// chaining.
		func(k string) int { return len(k) % 2 },
	)
}

func TestHashMapPutGet(t *testing.T) {
	m := newTestMap()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("ab", 3)

	if m.Len() != 3 {
		t.Fatalf("Expected 3 entries but got %v", m.Len())
	}
	for k, exp := range map[string]int{"a": 1, "b": 2, "ab": 3} {
		if v, ok := m.Get(k); !ok || v != exp {
			t.Fatalf("Expected %v=%v but got %v (ok=%v)", k, exp, v, ok)
		}
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatal("Expected missing key lookup to fail")
	}
}

func TestHashMapPutReplaces(t *testing.T) {
	m := newTestMap()
	m.Put("a", 1)
	m.Put("a", 2)
	if m.Len() != 1 {
		t.Fatalf("Expected 1 entry but got %v", m.Len())
	}
	if v, _ := m.Get("a"); v != 2 {
		t.Fatalf("Expected replacement value 2 but got %v", v)
	}
}

func TestHashMapDelete(t *testing.T) {
	m := newTestMap()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("abc", 3)

	m.Delete("a")
	if m.Len() != 2 {
		t.Fatalf("Expected 2 entries after delete but got %v", m.Len())
	}
	if _, ok := m.Get("a"); ok {
		t.Fatal("Expected deleted key to be gone")
	}
	if v, ok := m.Get("abc"); !ok || v != 3 {
		t.Fatalf("Expected chained sibling to survive but got %v (ok=%v)", v, ok)
	}

	// Deleting a missing key is a no-op.
	m.Delete("missing")
	if m.Len() != 2 {
		t.Fatalf("Expected delete of missing key to be a no-op")
	}
}

func TestHashMapIter(t *testing.T) {
	m := newTestMap()
	m.Put("a", 1)
	m.Put("b", 2)

	seen := map[string]int{}
	if stopped := m.Iter(func(k string, v int) bool {
		seen[k] = v
		return false
	}); stopped {
		t.Fatal("Expected full iteration to report false")
	}
	if len(seen) != 2 {
		t.Fatalf("Expected to visit 2 entries but got %v", seen)
	}

	count := 0
	if stopped := m.Iter(func(string, int) bool {
		count++
		return true
	}); !stopped {
		t.Fatal("Expected early stop to report true")
	}
	if count != 1 {
		t.Fatalf("Expected iteration to stop after 1 entry but got %v", count)
	}
}

func TestHashMapCopy(t *testing.T) {
	m := newTestMap()
	m.Put("a", 1)

	cpy := m.Copy()
	cpy.Put("b", 2)
	if m.Len() != 1 {
		t.Fatalf("Expected original to be unaffected but got %v entries", m.Len())
	}
	if cpy.Len() != 2 {
		t.Fatalf("Expected copy to hold 2 entries but got %v", cpy.Len())
	}
}
