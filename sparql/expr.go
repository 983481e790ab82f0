// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"strconv"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

// Expression is the boundary contract for the expression evaluator. An
// expression evaluates against one solution row and either produces a term
// or fails with an ExpressionErr-coded error (unbound operand, type error,
// divide by zero). Operators that absorb expression failures treat every
// failure uniformly; they do not distinguish sub-kinds.
type Expression interface {
	// Evaluate computes the expression against the row with the given id in
	// the context's input multiset. rowID is negative when evaluating
	// against the implicit empty row of an identity multiset.
	Evaluate(ctx *Context, rowID int) (rdf.Term, error)

	// Equal reports structural equality with another expression, used for
	// plan comparison.
	Equal(other Expression) bool

	// Vars returns the names of the variables the expression mentions.
	Vars() []string

	String() string
}

// TermExpression is the simplest expression: a constant term, or a variable
// resolved against the current row.
type TermExpression struct {
	term rdf.Term
}

// NewTermExpression returns an expression evaluating to the given term. If
// the term is a variable the expression resolves it per row.
func NewTermExpression(t rdf.Term) *TermExpression {
	return &TermExpression{term: t}
}

// Evaluate returns the constant term, or the row's binding for the variable.
func (e *TermExpression) Evaluate(ctx *Context, rowID int) (rdf.Term, error) {
	v, ok := e.term.(rdf.Variable)
	if !ok {
		return e.term, nil
	}
	if rowID < 0 {
		return nil, ExpressionError("variable %v has no value in the empty solution", v)
	}
	row, ok := ctx.Input.Row(rowID)
	if !ok {
		return nil, ExpressionError("no row with id %d", rowID)
	}
	t, ok := row.Value(v.Name())
	if !ok {
		return nil, ExpressionError("variable %v is unbound", v)
	}
	return t, nil
}

// Equal reports structural equality.
func (e *TermExpression) Equal(other Expression) bool {
	o, ok := other.(*TermExpression)
	return ok && e.term.Equal(o.term)
}

// Vars returns the variable name if the term is a variable.
func (e *TermExpression) Vars() []string {
	if v, ok := e.term.(rdf.Variable); ok {
		return []string{v.Name()}
	}
	return nil
}

func (e *TermExpression) String() string {
	return e.term.String()
}

// EffectiveBooleanValue computes the SPARQL effective boolean value of a
// term: xsd:boolean literals by lexical form, numeric literals by non-zero
// test, plain and xsd:string literals by non-emptiness. Every other term has
// no effective boolean value and yields an ExpressionErr error.
func EffectiveBooleanValue(t rdf.Term) (bool, error) {
	lit, ok := t.(*rdf.Literal)
	if !ok {
		return false, ExpressionError("%v has no effective boolean value", t)
	}
	switch lit.Datatype() {
	case rdf.XSDBoolean:
		switch lit.Lexical() {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return false, ExpressionError("invalid xsd:boolean lexical form %q", lit.Lexical())
	case rdf.XSDInteger, rdf.XSDDecimal, rdf.XSDDouble:
		f, err := strconv.ParseFloat(lit.Lexical(), 64)
		if err != nil {
			return false, ExpressionError("invalid numeric lexical form %q", lit.Lexical())
		}
		return f != 0, nil
	case "", rdf.XSDString:
		if lit.Language() != "" {
			break
		}
		return lit.Lexical() != "", nil
	}
	return false, ExpressionError("%v has no effective boolean value", t)
}
