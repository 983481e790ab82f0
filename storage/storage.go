// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package storage declares the dataset boundary the query engine evaluates
// against. Implementations of the boundary live in sub-packages; the engine
// itself only depends on the interfaces defined here.
package storage

import (
	"context"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

// Dataset is the triple provider consumed by query evaluation. There is no
// schema beyond triple matching: given a pattern, a dataset enumerates the
// asserted triples that match it.
type Dataset interface {
	// Triples invokes iter for each asserted triple matching the pattern.
	// Variable components in the pattern act as wildcards; a nil pattern
	// matches every triple. Iteration stops on the first error, which is
	// returned.
	Triples(ctx context.Context, pattern *rdf.Triple, iter func(*rdf.Triple) error) error

	// Contains reports whether the ground triple is asserted in the dataset.
	Contains(ctx context.Context, t *rdf.Triple) (bool, error)
}
