// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

// Operator is an algebra operator node. Applying an operator consumes the
// context's input multiset and sets the context's output multiset. The tree
// shape is decided upstream; operators execute strictly in the order given
// to Evaluate.
type Operator interface {
	// Apply evaluates the operator against the context. Per-row expression
	// failures are absorbed according to the operator's policy; errors
	// returned here are query-fatal.
	Apply(ctx *Context) error

	// Vars returns the names of the variables the operator mentions.
	Vars() []string

	// FixedVariables returns the variables the operator unconditionally
	// binds in every surviving row.
	FixedVariables() []string

	// FloatingVariables returns the variables the operator may introduce
	// without binding them in every row.
	FloatingVariables() []string

	String() string
}
