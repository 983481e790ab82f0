// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rdf

// Graph is an in-memory set of triples with a stable identifier. The
// identifier scopes the identity of blank nodes created for the graph. Graph
// is a value-level container; the query-time dataset boundary lives in the
// storage package.
type Graph struct {
	id      string
	triples []*Triple
	index   map[int][]*Triple
}

// NewGraph returns an empty graph with the given identifier.
func NewGraph(id string) *Graph {
	return &Graph{
		id:    id,
		index: map[int][]*Triple{},
	}
}

// ID returns the graph identifier.
func (g *Graph) ID() string {
	return g.id
}

// NewBlankNode returns a blank node scoped to this graph.
func (g *Graph) NewBlankNode(id string) *BlankNode {
	return NewBlankNode(id, g.id)
}

// Add inserts the triple into the graph. Duplicate triples are ignored. Add
// returns true if the triple was not already present.
func (g *Graph) Add(t *Triple) bool {
	if g.Contains(t) {
		return false
	}
	g.triples = append(g.triples, t)
	g.index[t.Hash()] = append(g.index[t.Hash()], t)
	return true
}

// Contains returns true if the triple is asserted in the graph.
func (g *Graph) Contains(t *Triple) bool {
	for _, c := range g.index[t.Hash()] {
		if c.Equal(t) {
			return true
		}
	}
	return false
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Iter invokes iter for each triple in insertion order. Iteration stops on
// the first error, which is returned.
func (g *Graph) Iter(iter func(*Triple) error) error {
	for _, t := range g.triples {
		if err := iter(t); err != nil {
			return err
		}
	}
	return nil
}

// Triples returns the triples of the graph in insertion order. The returned
// slice must not be modified.
func (g *Graph) Triples() []*Triple {
	return g.triples
}
