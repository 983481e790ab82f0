// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"testing"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

func TestMultisetForms(t *testing.T) {
	if n := Null(); !n.IsNull() || n.Len() != 0 {
		t.Fatalf("Expected empty null multiset but got %v", n)
	}
	if i := Identity(); !i.IsIdentity() || i.Len() != 1 {
		t.Fatalf("Expected identity multiset with one row but got %v", i)
	}
	if i := Identity(); len(i.Solutions()) != 1 || i.Solutions()[0].Len() != 0 {
		t.Fatalf("Expected identity to yield a single empty solution")
	}
}

func TestMultisetAddRemove(t *testing.T) {
	m := NewMultiset()
	s1 := NewSolution()
	s1.Bind("x", rdf.NewLiteral("1"))
	s2 := NewSolution()
	s2.Bind("x", rdf.NewLiteral("2"))

	id1 := m.Add(s1)
	id2 := m.Add(s2)
	if m.Len() != 2 {
		t.Fatalf("Expected 2 rows but got %v", m.Len())
	}
	if !m.ContainsVariable("x") {
		t.Fatal("Expected x to be known after add")
	}

	m.Remove(id1)
	if m.Len() != 1 {
		t.Fatalf("Expected 1 row after removal but got %v", m.Len())
	}
	if _, ok := m.Row(id1); ok {
		t.Fatal("Expected removed row to be gone")
	}
	if row, ok := m.Row(id2); !ok || !row.Equal(s2) {
		t.Fatalf("Expected surviving row id to be stable")
	}

	// Removing an unknown id is a no-op.
	m.Remove(999)
	if m.Len() != 1 {
		t.Fatalf("Expected removal of unknown id to be a no-op")
	}
}

func TestMultisetRowIDSnapshot(t *testing.T) {
	m := NewMultiset()
	for i := 0; i < 3; i++ {
		s := NewSolution()
		s.Bind("x", rdf.NewLiteral(string(rune('a'+i))))
		m.Add(s)
	}
	ids := m.RowIDs()
	m.Remove(ids[1])
	// The snapshot is unaffected by removal.
	if len(ids) != 3 {
		t.Fatalf("Expected snapshot of 3 ids but got %v", len(ids))
	}
	if len(m.RowIDs()) != 2 {
		t.Fatalf("Expected 2 live ids but got %v", len(m.RowIDs()))
	}
}

func TestMultisetValue(t *testing.T) {
	m := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewLiteral("v"))
	id := m.Add(s)

	term, err := m.Value(id, "x")
	if err != nil {
		t.Fatalf("Expected bound value but got error: %v", err)
	}
	if !term.Equal(rdf.NewLiteral("v")) {
		t.Fatalf("Expected \"v\" but got %v", term)
	}

	_, err = m.Value(id, "y")
	if !IsUnboundVariable(err) {
		t.Fatalf("Expected unbound variable error but got %v", err)
	}
}

func TestMultisetDeclareVariable(t *testing.T) {
	m := NewMultiset()
	m.DeclareVariable("x")
	if !m.ContainsVariable("x") {
		t.Fatal("Expected declared variable to be known")
	}
	if m.Len() != 0 {
		t.Fatalf("Expected declaration to bind no rows but got %v rows", m.Len())
	}
}

func TestMultisetKnownVariablesSupersetInvariant(t *testing.T) {
	m := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewLiteral("1"))
	s.Mention("y")
	m.Add(s)
	for _, name := range []string{"x", "y"} {
		if !m.ContainsVariable(name) {
			t.Fatalf("Expected %v to be known", name)
		}
	}
}

func TestJoinMultisets(t *testing.T) {
	a := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewLiteral("1"))
	a.Add(s)

	b := NewMultiset()
	match := NewSolution()
	match.Bind("x", rdf.NewLiteral("1"))
	match.Bind("y", rdf.NewLiteral("2"))
	b.Add(match)
	clash := NewSolution()
	clash.Bind("x", rdf.NewLiteral("9"))
	b.Add(clash)

	out := Join(a, b)
	if out.Len() != 1 {
		t.Fatalf("Expected 1 joined row but got %v", out.Len())
	}
	joined := out.Solutions()[0]
	if v, _ := joined.Value("y"); !v.Equal(rdf.NewLiteral("2")) {
		t.Fatalf("Expected joined row to carry y=2 but got %v", joined)
	}

	if !Join(Null(), b).IsNull() || !Join(a, Null()).IsNull() {
		t.Fatal("Expected null to be absorbing for join")
	}
	if Join(Identity(), b) != b {
		t.Fatal("Expected identity to be neutral for join")
	}
}

func TestUnionMultisets(t *testing.T) {
	a := NewMultiset()
	s1 := NewSolution()
	s1.Bind("x", rdf.NewLiteral("1"))
	a.Add(s1)

	b := NewMultiset()
	s2 := NewSolution()
	s2.Bind("y", rdf.NewLiteral("2"))
	b.Add(s2)

	out := Union(a, b)
	if out.Len() != 2 {
		t.Fatalf("Expected 2 rows but got %v", out.Len())
	}
	if !out.ContainsVariable("x") || !out.ContainsVariable("y") {
		t.Fatal("Expected union to know both variables")
	}
	if Union(Null(), b) != b {
		t.Fatal("Expected null to be neutral for union")
	}
}

func TestSolutionCompatibleMerge(t *testing.T) {
	a := NewSolution()
	a.Bind("x", rdf.NewLiteral("1"))
	b := NewSolution()
	b.Bind("x", rdf.NewLiteral("1"))
	b.Bind("y", rdf.NewLiteral("2"))
	c := NewSolution()
	c.Bind("x", rdf.NewLiteral("other"))

	if !a.Compatible(b) {
		t.Fatal("Expected compatible solutions")
	}
	if a.Compatible(c) {
		t.Fatal("Expected incompatible solutions")
	}
	merged := a.Merge(b)
	if merged.Len() != 2 {
		t.Fatalf("Expected merged solution with 2 bindings but got %v", merged)
	}
}
