// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"testing"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

// failExpr fails every evaluation and counts how often it was asked.
type failExpr struct {
	calls int
}

func (e *failExpr) Evaluate(ctx *Context, rowID int) (rdf.Term, error) {
	e.calls++
	return nil, ExpressionError("boom")
}

func (e *failExpr) Equal(other Expression) bool {
	_, ok := other.(*failExpr)
	return ok
}

func (e *failExpr) Vars() []string { return nil }

func (e *failExpr) String() string { return "FAIL()" }

func TestBindNullInput(t *testing.T) {
	expr := &failExpr{}
	ctx := NewContext(nil).WithInput(Null())

	out, err := Evaluate(ctx, NewBind("x", expr))
	if err != nil {
		t.Fatalf("Expected success but got %v", err)
	}
	if !out.IsNull() {
		t.Fatalf("Expected null output but got %v", out)
	}
	if expr.calls != 0 {
		t.Fatalf("Expected expression to never run but it ran %d time(s)", expr.calls)
	}
}

func TestBindIdentityInputSuccess(t *testing.T) {
	ctx := NewContext(nil)

	out, err := Evaluate(ctx, NewBind("x", NewTermExpression(rdf.NewLiteral("v"))))
	if err != nil {
		t.Fatalf("Expected success but got %v", err)
	}
	if out.Kind() != GeneralSet || out.Len() != 1 {
		t.Fatalf("Expected one-row general multiset but got %v", out)
	}
	row := out.Solutions()[0]
	if v, ok := row.Value("x"); !ok || !v.Equal(rdf.NewLiteral("v")) {
		t.Fatalf("Expected x bound to \"v\" but got %v", row)
	}
}

func TestBindIdentityInputFailure(t *testing.T) {
	ctx := NewContext(nil)

	out, err := Evaluate(ctx, NewBind("x", &failExpr{}))
	if err != nil {
		t.Fatalf("Expected failure to be absorbed but got %v", err)
	}
	if out.Kind() != GeneralSet || out.Len() != 0 {
		t.Fatalf("Expected empty general multiset but got %v", out)
	}
	if !out.ContainsVariable("x") {
		t.Fatal("Expected x to be declared on the empty result")
	}
}

func TestBindNewBindingSuccess(t *testing.T) {
	in := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewLiteral("1"))
	in.Add(s)

	ctx := NewContext(nil).WithInput(in)
	out, err := Evaluate(ctx, NewBind("y", NewTermExpression(rdf.Variable("x"))))
	if err != nil {
		t.Fatalf("Expected success but got %v", err)
	}
	if out != in {
		t.Fatal("Expected output to be the mutated input multiset")
	}
	if out.Len() != 1 {
		t.Fatalf("Expected 1 row but got %v", out.Len())
	}
	row := out.Solutions()[0]
	if v, ok := row.Value("y"); !ok || !v.Equal(rdf.NewLiteral("1")) {
		t.Fatalf("Expected y bound to \"1\" but got %v", row)
	}
}

func TestBindNewBindingFailureKeepsRow(t *testing.T) {
	in := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewLiteral("1"))
	in.Add(s)

	ctx := NewContext(nil).WithInput(in)
	out, err := Evaluate(ctx, NewBind("y", &failExpr{}))
	if err != nil {
		t.Fatalf("Expected failure to be absorbed but got %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("Expected the row to survive but got %v rows", out.Len())
	}
	row := out.Solutions()[0]
	if row.IsBound("y") {
		t.Fatalf("Expected y to stay unbound but got %v", row)
	}
	if !out.ContainsVariable("y") {
		t.Fatal("Expected y to be a known variable of the result")
	}
}

func TestBindExistingBindingConflictElimination(t *testing.T) {
	in := NewMultiset()
	s1 := NewSolution()
	s1.Bind("x", rdf.NewLiteral("1"))
	in.Add(s1)
	s2 := NewSolution()
	s2.Bind("x", rdf.NewLiteral("2"))
	in.Add(s2)

	ctx := NewContext(nil).WithInput(in)
	out, err := Evaluate(ctx, NewBind("x", NewTermExpression(rdf.NewLiteral("2"))))
	if err != nil {
		t.Fatalf("Expected success but got %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("Expected only the matching row to survive but got %v rows", out.Len())
	}
	row := out.Solutions()[0]
	if v, _ := row.Value("x"); !v.Equal(rdf.NewLiteral("2")) {
		t.Fatalf("Expected surviving row to carry x=2 but got %v", row)
	}
}

func TestBindExistingBindingFailureRemovesRow(t *testing.T) {
	in := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewLiteral("1"))
	in.Add(s)

	ctx := NewContext(nil).WithInput(in)
	out, err := Evaluate(ctx, NewBind("x", &failExpr{}))
	if err != nil {
		t.Fatalf("Expected failure to be absorbed but got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("Expected the row to be removed but got %v rows", out.Len())
	}
}

func TestBindTermEqualityNotValueEquality(t *testing.T) {
	// "01"^^xsd:integer and "1"^^xsd:integer denote the same value but are
	// distinct terms, so re-assertion eliminates the row.
	in := NewMultiset()
	s := NewSolution()
	s.Bind("x", rdf.NewTypedLiteral("01", rdf.XSDInteger))
	in.Add(s)

	ctx := NewContext(nil).WithInput(in)
	out, err := Evaluate(ctx, NewBind("x", NewTermExpression(rdf.NewTypedLiteral("1", rdf.XSDInteger))))
	if err != nil {
		t.Fatalf("Expected success but got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("Expected the row to be removed but got %v rows", out.Len())
	}
}

func TestBindMixedRows(t *testing.T) {
	in := NewMultiset()
	match := NewSolution()
	match.Bind("x", rdf.NewLiteral("c"))
	in.Add(match)
	clash := NewSolution()
	clash.Bind("x", rdf.NewLiteral("other"))
	in.Add(clash)
	unbound := NewSolution()
	unbound.Bind("y", rdf.NewLiteral("1"))
	in.Add(unbound)

	ctx := NewContext(nil).WithInput(in)
	out, err := Evaluate(ctx, NewBind("x", NewTermExpression(rdf.NewLiteral("c"))))
	if err != nil {
		t.Fatalf("Expected success but got %v", err)
	}

	rows := out.Solutions()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 surviving rows but got %v", len(rows))
	}
	for _, row := range rows {
		if v, ok := row.Value("x"); !ok || !v.Equal(rdf.NewLiteral("c")) {
			t.Fatalf("Expected every surviving row to carry x=\"c\" but got %v", row)
		}
	}
}

func TestBindVariableSets(t *testing.T) {
	b := NewBind("y", NewTermExpression(rdf.Variable("x")))
	if b.FixedVariables() != nil {
		t.Fatalf("Expected no fixed variables but got %v", b.FixedVariables())
	}
	floating := b.FloatingVariables()
	if len(floating) != 1 || floating[0] != "y" {
		t.Fatalf("Expected floating variables [y] but got %v", floating)
	}
}

func TestBindEqualAndCompare(t *testing.T) {
	a := NewBind("x", NewTermExpression(rdf.NewLiteral("1")))
	b := NewBind("x", NewTermExpression(rdf.NewLiteral("1")))
	c := NewBind("y", NewTermExpression(rdf.NewLiteral("1")))

	if !a.Equal(b) {
		t.Fatal("Expected structurally equal operators")
	}
	if a.Equal(c) {
		t.Fatal("Expected operators assigning different variables to differ")
	}
	if a.Compare(b) != 0 || a.Compare(c) >= 0 {
		t.Fatalf("Expected compare to order by variable name")
	}
}

func TestBindString(t *testing.T) {
	b := NewBind("x", NewTermExpression(rdf.NewLiteral("1")))
	if exp, act := `LET(?x := "1")`, b.String(); exp != act {
		t.Fatalf("Expected %v but got %v", exp, act)
	}
}
