// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

// JoinOp evaluates two operand subtrees against copies of the same input
// and joins their outputs on compatible solutions.
type JoinOp struct {
	left  Operator
	right Operator
}

// NewJoin returns a join operator over the two operand subtrees.
func NewJoin(left, right Operator) *JoinOp {
	return &JoinOp{left: left, right: right}
}

// Apply evaluates both operands against the current input and sets the
// output to the multiset join of their results. Null input is absorbing.
func (j *JoinOp) Apply(ctx *Context) error {
	if ctx.Input.IsNull() {
		ctx.Output = ctx.Input
		return nil
	}
	left, right, err := j.applyOperands(ctx)
	if err != nil {
		return err
	}
	ctx.Output = Join(left, right)
	return nil
}

func (j *JoinOp) applyOperands(ctx *Context) (*Multiset, *Multiset, error) {
	input := ctx.Input

	ctx.Input = input.Copy()
	if err := j.left.Apply(ctx); err != nil {
		return nil, nil, err
	}
	left := ctx.Output

	ctx.Input = input.Copy()
	if err := j.right.Apply(ctx); err != nil {
		return nil, nil, err
	}
	right := ctx.Output

	ctx.Input = input
	return left, right, nil
}

// Vars returns the union of the operand variables.
func (j *JoinOp) Vars() []string {
	return mergeNames(j.left.Vars(), j.right.Vars())
}

// FixedVariables returns the union of the operand fixed variables: a row
// surviving the join satisfied both operands.
func (j *JoinOp) FixedVariables() []string {
	return mergeNames(j.left.FixedVariables(), j.right.FixedVariables())
}

// FloatingVariables returns the union of the operand floating variables.
func (j *JoinOp) FloatingVariables() []string {
	return mergeNames(j.left.FloatingVariables(), j.right.FloatingVariables())
}

func (j *JoinOp) String() string {
	return "JOIN(" + j.left.String() + ", " + j.right.String() + ")"
}

// UnionOp evaluates two operand subtrees against copies of the same input
// and concatenates their outputs.
type UnionOp struct {
	left  Operator
	right Operator
}

// NewUnion returns a union operator over the two operand subtrees.
func NewUnion(left, right Operator) *UnionOp {
	return &UnionOp{left: left, right: right}
}

// Apply evaluates both operands against the current input and sets the
// output to the multiset union of their results.
func (u *UnionOp) Apply(ctx *Context) error {
	if ctx.Input.IsNull() {
		ctx.Output = ctx.Input
		return nil
	}
	j := JoinOp{left: u.left, right: u.right}
	left, right, err := j.applyOperands(ctx)
	if err != nil {
		return err
	}
	ctx.Output = Union(left, right)
	return nil
}

// Vars returns the union of the operand variables.
func (u *UnionOp) Vars() []string {
	return mergeNames(u.left.Vars(), u.right.Vars())
}

// FixedVariables returns the intersection of the operand fixed variables: a
// row may come from either side.
func (u *UnionOp) FixedVariables() []string {
	right := map[string]struct{}{}
	for _, name := range u.right.FixedVariables() {
		right[name] = struct{}{}
	}
	var names []string
	for _, name := range u.left.FixedVariables() {
		if _, ok := right[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// FloatingVariables returns every operand variable that is not fixed.
func (u *UnionOp) FloatingVariables() []string {
	fixed := map[string]struct{}{}
	for _, name := range u.FixedVariables() {
		fixed[name] = struct{}{}
	}
	var names []string
	for _, name := range u.Vars() {
		if _, ok := fixed[name]; !ok {
			names = append(names, name)
		}
	}
	return names
}

func (u *UnionOp) String() string {
	return "UNION(" + u.left.String() + ", " + u.right.String() + ")"
}

func mergeNames(a, b []string) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, group := range [][]string{a, b} {
		for _, name := range group {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}
