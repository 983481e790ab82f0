// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rdf

import (
	"sort"
)

// Triple represents one subject-predicate-object fact over terms. Triples are
// immutable values: identity is value identity over the three components.
type Triple struct {
	subject   Term
	predicate Term
	object    Term
	hash      int
}

// NewTriple returns a triple over the given terms. It returns a
// MalformedTermError if a component is nil or occupies a position its variant
// is not allowed in: subjects must be IRIs, blank nodes, graph literals, or
// variables; predicates must be IRIs or variables.
func NewTriple(subject, predicate, object Term) (*Triple, error) {
	if subject == nil || predicate == nil || object == nil {
		return nil, malformedTermErr("triple components must be non-nil")
	}
	switch subject.(type) {
	case IRI, *BlankNode, *GraphLiteral, Variable:
	default:
		return nil, malformedTermErr("illegal subject: %v", subject)
	}
	switch predicate.(type) {
	case IRI, Variable:
	default:
		return nil, malformedTermErr("illegal predicate: %v", predicate)
	}
	t := &Triple{subject: subject, predicate: predicate, object: object}
	t.hash = stringHash("T", t.CanonicalString())
	return t, nil
}

// MustNewTriple is like NewTriple but panics if the triple is malformed. It
// is intended for test and fixture code.
func MustNewTriple(subject, predicate, object Term) *Triple {
	t, err := NewTriple(subject, predicate, object)
	if err != nil {
		panic(err)
	}
	return t
}

// Subject returns the subject term.
func (t *Triple) Subject() Term {
	return t.subject
}

// Predicate returns the predicate term.
func (t *Triple) Predicate() Term {
	return t.predicate
}

// Object returns the object term.
func (t *Triple) Object() Term {
	return t.object
}

// Equal returns true if the other triple has equal subject, predicate, and
// object.
func (t *Triple) Equal(other *Triple) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t == other {
		return true
	}
	return t.subject.Equal(other.subject) &&
		t.predicate.Equal(other.predicate) &&
		t.object.Equal(other.object)
}

// Hash returns the precomputed hash code for the triple.
func (t *Triple) Hash() int {
	return t.hash
}

// IsGround returns true if no component is or contains a variable.
func (t *Triple) IsGround() bool {
	return t.subject.IsGround() && t.predicate.IsGround() && t.object.IsGround()
}

// Vars returns the names of the variables mentioned by the triple in
// subject, predicate, object position order, without duplicates.
func (t *Triple) Vars() []string {
	var names []string
	seen := map[string]struct{}{}
	for _, term := range []Term{t.subject, t.predicate, t.object} {
		if v, ok := term.(Variable); ok {
			if _, dup := seen[v.Name()]; !dup {
				seen[v.Name()] = struct{}{}
				names = append(names, v.Name())
			}
		}
	}
	return names
}

// CanonicalString returns the N-Triples form of the triple.
func (t *Triple) CanonicalString() string {
	return t.subject.CanonicalString() + " " + t.predicate.CanonicalString() + " " + t.object.CanonicalString() + " ."
}

func (t *Triple) String() string {
	return t.CanonicalString()
}

// CompareTriples returns an integer indicating whether a sorts before, equal
// to, or after b under component-wise term order.
func CompareTriples(a, b *Triple) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if cmp := Compare(a.subject, b.subject); cmp != 0 {
		return cmp
	}
	if cmp := Compare(a.predicate, b.predicate); cmp != 0 {
		return cmp
	}
	return Compare(a.object, b.object)
}

// Matches returns true if the ground triple t matches the pattern. Variables
// and nil components in the pattern act as wildcards; repeated variables in
// the pattern must match equal terms.
func (t *Triple) Matches(pattern *Triple) bool {
	if pattern == nil {
		return true
	}
	bound := map[string]Term{}
	match := func(p, actual Term) bool {
		if p == nil {
			return true
		}
		if v, ok := p.(Variable); ok {
			if prev, seen := bound[v.Name()]; seen {
				return prev.Equal(actual)
			}
			bound[v.Name()] = actual
			return true
		}
		return p.Equal(actual)
	}
	return match(pattern.subject, t.subject) &&
		match(pattern.predicate, t.predicate) &&
		match(pattern.object, t.object)
}

func sortedTripleSet(triples []*Triple) []*Triple {
	cpy := make([]*Triple, len(triples))
	copy(cpy, triples)
	sort.SliceStable(cpy, func(i, j int) bool {
		return CompareTriples(cpy[i], cpy[j]) < 0
	})
	out := make([]*Triple, 0, len(cpy))
	for _, t := range cpy {
		if len(out) > 0 && t.Equal(out[len(out)-1]) {
			continue
		}
		out = append(out, t)
	}
	return out
}
