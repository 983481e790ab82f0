// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package inmem implements an indexed in-memory triple store satisfying the
// storage.Dataset interface.
package inmem

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Geovanny27/dotnetrdf/rdf"
	"github.com/Geovanny27/dotnetrdf/util"
)

// Store is an in-memory triple store with per-position hash indexes. Triples
// are kept in insertion order so iteration is deterministic. A Store is safe
// for concurrent reads once loaded; it is not safe for concurrent mutation.
type Store struct {
	graphID string
	triples []*rdf.Triple
	seen    map[int][]*rdf.Triple
	subject *util.HashMap[rdf.Term, []*rdf.Triple]
	pred    *util.HashMap[rdf.Term, []*rdf.Triple]
	object  *util.HashMap[rdf.Term, []*rdf.Triple]
}

// New returns an empty store. graphID scopes blank nodes parsed into the
// store.
func New(graphID string) *Store {
	return &Store{
		graphID: graphID,
		seen:    map[int][]*rdf.Triple{},
		subject: newTermIndex(),
		pred:    newTermIndex(),
		object:  newTermIndex(),
	}
}

func newTermIndex() *util.HashMap[rdf.Term, []*rdf.Triple] {
	return util.NewHashMap[rdf.Term, []*rdf.Triple](
		func(a, b rdf.Term) bool { return a.Equal(b) },
		func(t rdf.Term) int { return t.Hash() },
	)
}

// NewFromReader returns a store loaded with N-Triples shaped lines read from
// r. Empty lines and lines starting with '#' are skipped.
func NewFromReader(r io.Reader, graphID string) (*Store, error) {
	s := New(graphID)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		t, err := rdf.ParseTriple(text, graphID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s.Add(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// GraphID returns the blank node scope of the store.
func (s *Store) GraphID() string {
	return s.graphID
}

// Len returns the number of asserted triples.
func (s *Store) Len() int {
	return len(s.triples)
}

// Add asserts the triple. Duplicates are ignored; Add returns true if the
// triple was not already present.
func (s *Store) Add(t *rdf.Triple) bool {
	for _, c := range s.seen[t.Hash()] {
		if c.Equal(t) {
			return false
		}
	}
	s.seen[t.Hash()] = append(s.seen[t.Hash()], t)
	s.triples = append(s.triples, t)
	indexAdd(s.subject, t.Subject(), t)
	indexAdd(s.pred, t.Predicate(), t)
	indexAdd(s.object, t.Object(), t)
	return true
}

func indexAdd(idx *util.HashMap[rdf.Term, []*rdf.Triple], key rdf.Term, t *rdf.Triple) {
	existing, _ := idx.Get(key)
	idx.Put(key, append(existing, t))
}

// Triples implements storage.Dataset. The most selective bound position of
// the pattern picks the index; fully unbound patterns scan insertion order.
func (s *Store) Triples(ctx context.Context, pattern *rdf.Triple, iter func(*rdf.Triple) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, t := range s.candidates(pattern) {
		if pattern != nil && !t.Matches(pattern) {
			continue
		}
		if err := iter(t); err != nil {
			return err
		}
	}
	return nil
}

// Contains implements storage.Dataset.
func (s *Store) Contains(ctx context.Context, t *rdf.Triple) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, c := range s.seen[t.Hash()] {
		if c.Equal(t) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) candidates(pattern *rdf.Triple) []*rdf.Triple {
	if pattern == nil {
		return s.triples
	}
	best := s.triples
	if ts, ok := indexLookup(s.subject, pattern.Subject()); ok && len(ts) < len(best) {
		best = ts
	}
	if ts, ok := indexLookup(s.pred, pattern.Predicate()); ok && len(ts) < len(best) {
		best = ts
	}
	if ts, ok := indexLookup(s.object, pattern.Object()); ok && len(ts) < len(best) {
		best = ts
	}
	return best
}

func indexLookup(idx *util.HashMap[rdf.Term, []*rdf.Triple], key rdf.Term) ([]*rdf.Triple, bool) {
	if key == nil || !key.IsGround() {
		return nil, false
	}
	ts, ok := idx.Get(key)
	if !ok {
		// Bound to a term that indexes nothing: no candidates at all.
		return nil, true
	}
	return ts, true
}
