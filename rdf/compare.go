// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rdf

import (
	"fmt"
	"strings"
)

// Compare returns an integer indicating whether two terms are less than,
// equal to, or greater than each other.
//
// If a is less than b, the return value is negative. If a is greater than b,
// the return value is positive. If a is equal to b, the return value is zero.
//
// The order is total across all term variants. Different variants never
// compare equal; for ordering purposes variants are sorted as follows:
//
// nil < BlankNode < IRI < Literal < Variable < GraphLiteral.
//
// The variant bucket sequence is an interoperability contract relied on by
// ORDER BY and by canonical row ordering; it must not be changed.
//
// Within a bucket terms compare by their natural key: blank nodes by owning
// graph then identifier, IRIs by string, literals by datatype IRI then
// lexical form then language tag, variables by name, and graph literals by
// length then pairwise triple comparison. Literals with incompatible
// datatypes still order deterministically by this lexical rule; comparison
// never fails.
func Compare(a, b Term) int {
	if a == nil {
		if b == nil {
			return 0
		}
		return -1
	}
	if b == nil {
		return 1
	}

	sortA := sortOrder(a)
	sortB := sortOrder(b)

	if sortA < sortB {
		return -1
	} else if sortB < sortA {
		return 1
	}

	switch a := a.(type) {
	case *BlankNode:
		b := b.(*BlankNode)
		if cmp := strings.Compare(a.graphID, b.graphID); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.id, b.id)
	case IRI:
		return strings.Compare(string(a), string(b.(IRI)))
	case *Literal:
		b := b.(*Literal)
		if cmp := strings.Compare(string(a.datatype), string(b.datatype)); cmp != 0 {
			return cmp
		}
		if cmp := strings.Compare(a.lexical, b.lexical); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.language, b.language)
	case Variable:
		return strings.Compare(string(a), string(b.(Variable)))
	case *GraphLiteral:
		b := b.(*GraphLiteral)
		if len(a.triples) != len(b.triples) {
			if len(a.triples) < len(b.triples) {
				return -1
			}
			return 1
		}
		for i := range a.triples {
			if cmp := CompareTriples(a.triples[i], b.triples[i]); cmp != 0 {
				return cmp
			}
		}
		return 0
	}
	panic(fmt.Sprintf("illegal value: %T", a))
}

func sortOrder(x Term) int {
	switch x.(type) {
	case *BlankNode:
		return 0
	case IRI:
		return 1
	case *Literal:
		return 2
	case Variable:
		return 3
	case *GraphLiteral:
		return 4
	}
	panic(fmt.Sprintf("illegal value: %T", x))
}

// TermSlice is a sortable slice of terms ordered by Compare.
type TermSlice []Term

func (s TermSlice) Less(i, j int) bool { return Compare(s[i], s[j]) < 0 }
func (s TermSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s TermSlice) Len() int           { return len(s) }
