// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"strings"

	"github.com/Geovanny27/dotnetrdf/metrics"
)

// Bind is the assignment (LET) operator: it evaluates an expression once per
// input solution and binds the target variable, eliminates the solution, or
// leaves the variable unbound, depending on the shape of the input and on
// whether the variable already carries a value.
//
// The policy is asymmetric on purpose. Re-asserting a value over an existing
// binding must match or the solution is invalid, so a conflicting or failing
// evaluation removes the row. Introducing a value where none exists treats a
// failing evaluation as "don't know yet", so the row survives with the
// variable unbound.
type Bind struct {
	varName string
	expr    Expression
}

// NewBind returns an assignment operator binding the named variable to the
// result of the expression.
func NewBind(varName string, expr Expression) *Bind {
	return &Bind{varName: varName, expr: expr}
}

// Var returns the name of the variable the operator assigns.
func (b *Bind) Var() string {
	return b.varName
}

// Expr returns the assigned expression.
func (b *Bind) Expr() Expression {
	return b.expr
}

// Apply evaluates the assignment against the context per the input shape:
//
// Null input propagates unchanged and the expression is never evaluated.
//
// Identity input evaluates the expression once against the implicit empty
// row: success produces a general multiset with the single row {v: result};
// failure produces an empty general multiset with v declared, so the
// assignment contributes no solutions instead of propagating the error.
//
// General input walks a snapshot of the row ids taken before any removal.
// Rows where v is already bound are removed unless the expression evaluates
// successfully to a term equal to the existing binding. Rows where v is
// unbound get v declared on the multiset and bound on success; on failure
// the row survives with v unbound. The input multiset is mutated in place
// and handed onward as the output.
func (b *Bind) Apply(ctx *Context) error {
	timer := ctx.Metrics().Timer(metrics.BindEval)
	timer.Start()
	defer timer.Stop()

	switch ctx.Input.Kind() {
	case NullSet:
		ctx.Output = ctx.Input
		return nil

	case IdentitySet:
		out := NewMultiset()
		out.DeclareVariable(b.varName)
		if t, err := b.expr.Evaluate(ctx, -1); err == nil {
			s := NewSolution()
			s.Bind(b.varName, t)
			out.Add(s)
		}
		ctx.Output = out
		return nil
	}

	m := ctx.Input
	for _, id := range m.RowIDs() {
		row, ok := m.Row(id)
		if !ok {
			continue
		}
		ctx.setCurrentRow(id)
		if existing, bound := row.Value(b.varName); bound {
			t, err := b.expr.Evaluate(ctx, id)
			if err != nil || !existing.Equal(t) {
				m.Remove(id)
			}
			continue
		}
		m.DeclareVariable(b.varName)
		if t, err := b.expr.Evaluate(ctx, id); err == nil {
			row.Bind(b.varName, t)
		} else {
			row.Mention(b.varName)
		}
	}
	ctx.Output = m
	return nil
}

// Vars returns the assigned variable followed by the expression's variables.
func (b *Bind) Vars() []string {
	names := []string{b.varName}
	for _, name := range b.expr.Vars() {
		if name != b.varName {
			names = append(names, name)
		}
	}
	return names
}

// FixedVariables returns nil: expression failure can always leave the
// variable unbound, so no variable is unconditionally bound.
func (*Bind) FixedVariables() []string {
	return nil
}

// FloatingVariables returns the assigned variable.
func (b *Bind) FloatingVariables() []string {
	return []string{b.varName}
}

// Equal reports structural equality with another assignment operator:
// variable name, then expression identity.
func (b *Bind) Equal(other *Bind) bool {
	return b.varName == other.varName && b.expr.Equal(other.expr)
}

// Compare orders assignment operators structurally for plan comparison:
// by variable name, then by expression string form.
func (b *Bind) Compare(other *Bind) int {
	if cmp := strings.Compare(b.varName, other.varName); cmp != 0 {
		return cmp
	}
	if b.expr.Equal(other.expr) {
		return 0
	}
	return strings.Compare(b.expr.String(), other.expr.String())
}

func (b *Bind) String() string {
	return "LET(?" + b.varName + " := " + b.expr.String() + ")"
}
