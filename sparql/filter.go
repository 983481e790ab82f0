// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"github.com/Geovanny27/dotnetrdf/metrics"
)

// Filter drops the solutions for which its expression does not evaluate to
// an effectively true term. A row whose expression fails to evaluate is
// dropped, not propagated as an error: expression failure inside a filter
// means "this solution does not qualify".
type Filter struct {
	expr Expression
}

// NewFilter returns a filter operator over the expression.
func NewFilter(expr Expression) *Filter {
	return &Filter{expr: expr}
}

// Expr returns the filter expression.
func (f *Filter) Expr() Expression {
	return f.expr
}

// Apply evaluates the filter. Null propagates unchanged. Identity evaluates
// the expression against the implicit empty row and yields identity when it
// is effectively true, null otherwise. A general multiset is filtered in
// place over a snapshot of its row ids and handed onward.
func (f *Filter) Apply(ctx *Context) error {
	timer := ctx.Metrics().Timer(metrics.FilterEval)
	timer.Start()
	defer timer.Stop()

	switch ctx.Input.Kind() {
	case NullSet:
		ctx.Output = ctx.Input
		return nil

	case IdentitySet:
		if t, err := f.expr.Evaluate(ctx, -1); err == nil {
			if ok, err := EffectiveBooleanValue(t); err == nil && ok {
				ctx.Output = ctx.Input
				return nil
			}
		}
		ctx.Output = Null()
		return nil
	}

	m := ctx.Input
	for _, id := range m.RowIDs() {
		ctx.setCurrentRow(id)
		t, err := f.expr.Evaluate(ctx, id)
		if err != nil {
			m.Remove(id)
			continue
		}
		if ok, err := EffectiveBooleanValue(t); err != nil || !ok {
			m.Remove(id)
		}
	}
	ctx.Output = m
	return nil
}

// Vars returns the expression's variables.
func (f *Filter) Vars() []string {
	return f.expr.Vars()
}

// FixedVariables returns nil: a filter binds nothing.
func (*Filter) FixedVariables() []string {
	return nil
}

// FloatingVariables returns nil.
func (*Filter) FloatingVariables() []string {
	return nil
}

func (f *Filter) String() string {
	return "FILTER(" + f.expr.String() + ")"
}
