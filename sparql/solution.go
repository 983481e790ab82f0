// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package sparql implements the SPARQL query algebra core: multisets of
// variable binding solutions, the evaluation context, and the algebra
// operators that consume and produce multisets.
package sparql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

// Solution is one candidate variable-binding row produced during query
// evaluation: a mapping from variable name to bound term, plus the set of
// variable names mentioned for the row but possibly unbound.
type Solution struct {
	bindings  map[string]rdf.Term
	mentioned map[string]struct{}
}

// NewSolution returns an empty solution.
func NewSolution() *Solution {
	return &Solution{
		bindings:  map[string]rdf.Term{},
		mentioned: map[string]struct{}{},
	}
}

// Bind binds the variable to the term, replacing any existing binding.
func (s *Solution) Bind(name string, t rdf.Term) {
	s.bindings[name] = t
	s.mentioned[name] = struct{}{}
}

// Unbind removes the binding for the variable. The variable stays mentioned.
func (s *Solution) Unbind(name string) {
	delete(s.bindings, name)
	s.mentioned[name] = struct{}{}
}

// Mention records the variable as mentioned for this row without binding it.
func (s *Solution) Mention(name string) {
	s.mentioned[name] = struct{}{}
}

// Value returns the term bound to the variable, or false if the variable is
// unbound in this row.
func (s *Solution) Value(name string) (rdf.Term, bool) {
	t, ok := s.bindings[name]
	return t, ok
}

// IsBound returns true if the variable is bound in this row.
func (s *Solution) IsBound(name string) bool {
	_, ok := s.bindings[name]
	return ok
}

// Vars returns the sorted names of the variables bound in this row.
func (s *Solution) Vars() []string {
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound variables.
func (s *Solution) Len() int {
	return len(s.bindings)
}

// Copy returns a copy of the solution. Terms are immutable and shared.
func (s *Solution) Copy() *Solution {
	cpy := NewSolution()
	for name, t := range s.bindings {
		cpy.bindings[name] = t
	}
	for name := range s.mentioned {
		cpy.mentioned[name] = struct{}{}
	}
	return cpy
}

// Compatible returns true if every variable bound in both solutions is bound
// to equal terms. Compatibility is the join predicate: compatible solutions
// merge, incompatible ones do not.
func (s *Solution) Compatible(other *Solution) bool {
	for name, t := range s.bindings {
		if ot, ok := other.bindings[name]; ok && !t.Equal(ot) {
			return false
		}
	}
	return true
}

// Merge returns a new solution carrying the bindings of both solutions. The
// solutions must be compatible.
func (s *Solution) Merge(other *Solution) *Solution {
	out := s.Copy()
	for name, t := range other.bindings {
		out.bindings[name] = t
		out.mentioned[name] = struct{}{}
	}
	for name := range other.mentioned {
		out.mentioned[name] = struct{}{}
	}
	return out
}

// Equal returns true if both solutions bind the same variables to equal
// terms.
func (s *Solution) Equal(other *Solution) bool {
	if len(s.bindings) != len(other.bindings) {
		return false
	}
	for name, t := range s.bindings {
		ot, ok := other.bindings[name]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

// Compare orders solutions for canonicalization: by sorted variable names,
// then by bound terms under term order.
func (s *Solution) Compare(other *Solution) int {
	a, b := s.Vars(), other.Vars()
	for i := 0; i < len(a) && i < len(b); i++ {
		if cmp := strings.Compare(a[i], b[i]); cmp != 0 {
			return cmp
		}
		if cmp := rdf.Compare(s.bindings[a[i]], other.bindings[b[i]]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(b) < len(a):
		return 1
	}
	return 0
}

func (s *Solution) String() string {
	var buf []string
	for _, name := range s.Vars() {
		buf = append(buf, fmt.Sprintf("?%v: %v", name, s.bindings[name]))
	}
	return "{" + strings.Join(buf, ", ") + "}"
}
