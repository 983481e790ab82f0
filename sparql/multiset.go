// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"sort"
	"strings"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

// Kind identifies the form of a multiset.
type Kind int

const (
	// NullSet represents "no solutions". It is absorbing for nearly all
	// operators.
	NullSet Kind = iota

	// IdentitySet represents exactly one solution with zero bindings. It is
	// the neutral element for joins. An identity multiset is never mutated
	// in place; producers materialize a general multiset instead.
	IdentitySet

	// GeneralSet is the general mapping form: an ordered sequence of
	// solution rows keyed by opaque row ids, plus the set of known
	// variables.
	GeneralSet
)

// Multiset is the query engine's representation of a set of solutions.
//
// Invariant: for a general multiset the known variable set is a superset of
// every variable bound in any row. A variable can be known without being
// bound in every row (it "floats").
type Multiset struct {
	kind   Kind
	rows   map[int]*Solution
	order  []int
	nextID int
	vars   map[string]struct{}
}

// Null returns a multiset representing no solutions.
func Null() *Multiset {
	return &Multiset{kind: NullSet}
}

// Identity returns a multiset representing one solution with zero bindings.
func Identity() *Multiset {
	return &Multiset{kind: IdentitySet}
}

// NewMultiset returns an empty general multiset.
func NewMultiset() *Multiset {
	return &Multiset{
		kind: GeneralSet,
		rows: map[int]*Solution{},
		vars: map[string]struct{}{},
	}
}

// Kind returns the form of the multiset.
func (m *Multiset) Kind() Kind {
	return m.kind
}

// IsNull returns true for the null form.
func (m *Multiset) IsNull() bool {
	return m.kind == NullSet
}

// IsIdentity returns true for the identity form.
func (m *Multiset) IsIdentity() bool {
	return m.kind == IdentitySet
}

// Len returns the number of solution rows: zero for null, one for identity.
func (m *Multiset) Len() int {
	switch m.kind {
	case NullSet:
		return 0
	case IdentitySet:
		return 1
	default:
		return len(m.order)
	}
}

// Add appends a solution row and returns its opaque row id. Adding to a null
// multiset is a no-op returning a negative id; well-formed operators never
// do it. Adding to an identity multiset is illegal: producers must
// materialize a general multiset instead.
func (m *Multiset) Add(s *Solution) int {
	switch m.kind {
	case NullSet:
		return -1
	case IdentitySet:
		panic("illegal value: add to identity multiset")
	}
	id := m.nextID
	m.nextID++
	m.rows[id] = s
	m.order = append(m.order, id)
	for name := range s.bindings {
		m.vars[name] = struct{}{}
	}
	for name := range s.mentioned {
		m.vars[name] = struct{}{}
	}
	return id
}

// Remove deletes the row with the given id. Removing an unknown id is a
// no-op. Row order and the ids of surviving rows are unaffected.
func (m *Multiset) Remove(id int) {
	if m.kind != GeneralSet {
		return
	}
	if _, ok := m.rows[id]; !ok {
		return
	}
	delete(m.rows, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Row returns the solution with the given row id.
func (m *Multiset) Row(id int) (*Solution, bool) {
	if m.kind != GeneralSet {
		return nil, false
	}
	s, ok := m.rows[id]
	return s, ok
}

// RowIDs returns a snapshot of the current row ids in row order. The
// snapshot is stable under subsequent removal, which is what per-row
// operator loops iterate over.
func (m *Multiset) RowIDs() []int {
	if m.kind != GeneralSet {
		return nil
	}
	ids := make([]int, len(m.order))
	copy(ids, m.order)
	return ids
}

// Value returns the term bound to the variable in the row with the given id.
// It returns an UnboundVariableErr error if the variable is absent from that
// row.
func (m *Multiset) Value(id int, name string) (rdf.Term, error) {
	s, ok := m.Row(id)
	if !ok {
		return nil, internalErr("no row with id %d", id)
	}
	t, ok := s.Value(name)
	if !ok {
		return nil, unboundVariableErr(name)
	}
	return t, nil
}

// ContainsVariable returns true if the variable is known to the multiset.
func (m *Multiset) ContainsVariable(name string) bool {
	if m.kind != GeneralSet {
		return false
	}
	_, ok := m.vars[name]
	return ok
}

// DeclareVariable adds the variable to the known set without binding it in
// any row.
func (m *Multiset) DeclareVariable(name string) {
	if m.kind != GeneralSet {
		panic("illegal value: declare variable on degenerate multiset")
	}
	m.vars[name] = struct{}{}
}

// Variables returns the sorted names of the known variables.
func (m *Multiset) Variables() []string {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solutions returns the solution rows in row order. The identity multiset
// yields a single empty solution.
func (m *Multiset) Solutions() []*Solution {
	switch m.kind {
	case NullSet:
		return nil
	case IdentitySet:
		return []*Solution{NewSolution()}
	}
	out := make([]*Solution, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rows[id])
	}
	return out
}

// Copy returns a deep copy of the multiset with the same row order. Row ids
// are not preserved.
func (m *Multiset) Copy() *Multiset {
	switch m.kind {
	case NullSet:
		return Null()
	case IdentitySet:
		return Identity()
	}
	cpy := NewMultiset()
	for _, s := range m.Solutions() {
		cpy.Add(s.Copy())
	}
	for name := range m.vars {
		cpy.vars[name] = struct{}{}
	}
	return cpy
}

func (m *Multiset) String() string {
	switch m.kind {
	case NullSet:
		return "null()"
	case IdentitySet:
		return "identity()"
	}
	var buf []string
	for _, s := range m.Solutions() {
		buf = append(buf, s.String())
	}
	return "{" + strings.Join(buf, ", ") + "}"
}

// Join returns the multiset join of a and b: the merge of every compatible
// row pair. Null is absorbing and identity is neutral on either side.
func Join(a, b *Multiset) *Multiset {
	if a.IsNull() || b.IsNull() {
		return Null()
	}
	if a.IsIdentity() {
		return b
	}
	if b.IsIdentity() {
		return a
	}
	out := NewMultiset()
	for _, name := range a.Variables() {
		out.DeclareVariable(name)
	}
	for _, name := range b.Variables() {
		out.DeclareVariable(name)
	}
	for _, left := range a.Solutions() {
		for _, right := range b.Solutions() {
			if left.Compatible(right) {
				out.Add(left.Merge(right))
			}
		}
	}
	return out
}

// Union returns the multiset union of a and b: all rows of a followed by all
// rows of b. Null is neutral; identity contributes one empty row.
func Union(a, b *Multiset) *Multiset {
	if a.IsNull() {
		return b
	}
	if b.IsNull() {
		return a
	}
	out := NewMultiset()
	for _, m := range []*Multiset{a, b} {
		for _, name := range m.Variables() {
			out.DeclareVariable(name)
		}
		for _, s := range m.Solutions() {
			out.Add(s.Copy())
		}
	}
	return out
}
