// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"sort"
	"strings"

	"github.com/Geovanny27/dotnetrdf/rdf"
)

// OrderBy reorders the rows of a general multiset by the bound terms of the
// given variables under term order. Rows where a sort variable is unbound
// sort before rows where it is bound. The sort is stable, so equal rows keep
// their relative order and the result is deterministic.
type OrderBy struct {
	varNames   []string
	descending bool
}

// NewOrderBy returns an ordering operator over the named variables.
func NewOrderBy(varNames ...string) *OrderBy {
	return &OrderBy{varNames: varNames}
}

// Descending flips the sort direction.
func (o *OrderBy) Descending() *OrderBy {
	o.descending = true
	return o
}

// Apply reorders the input rows. Null and identity pass through unchanged.
func (o *OrderBy) Apply(ctx *Context) error {
	if ctx.Input.Kind() != GeneralSet {
		ctx.Output = ctx.Input
		return nil
	}
	m := ctx.Input
	sort.SliceStable(m.order, func(i, j int) bool {
		cmp := o.compareRows(m.rows[m.order[i]], m.rows[m.order[j]])
		if o.descending {
			return cmp > 0
		}
		return cmp < 0
	})
	ctx.Output = m
	return nil
}

func (o *OrderBy) compareRows(a, b *Solution) int {
	for _, name := range o.varNames {
		at, aok := a.Value(name)
		bt, bok := b.Value(name)
		switch {
		case !aok && !bok:
			continue
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if cmp := rdf.Compare(at, bt); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// Vars returns the sort variables.
func (o *OrderBy) Vars() []string {
	return o.varNames
}

// FixedVariables returns nil.
func (*OrderBy) FixedVariables() []string {
	return nil
}

// FloatingVariables returns nil.
func (*OrderBy) FloatingVariables() []string {
	return nil
}

func (o *OrderBy) String() string {
	names := make([]string, len(o.varNames))
	for i, name := range o.varNames {
		names[i] = "?" + name
	}
	dir := ""
	if o.descending {
		dir = " DESC"
	}
	return "ORDER BY(" + strings.Join(names, ", ") + dir + ")"
}

// Distinct removes duplicate rows, keeping the first occurrence in row
// order. Two rows are duplicates when they bind the same variables to equal
// terms.
type Distinct struct{}

// NewDistinct returns a distinct operator.
func NewDistinct() *Distinct {
	return &Distinct{}
}

// Apply removes duplicate rows in place over a snapshot of the row ids.
// Null and identity pass through unchanged.
func (d *Distinct) Apply(ctx *Context) error {
	if ctx.Input.Kind() != GeneralSet {
		ctx.Output = ctx.Input
		return nil
	}
	m := ctx.Input
	var kept []*Solution
	for _, id := range m.RowIDs() {
		row, ok := m.Row(id)
		if !ok {
			continue
		}
		dup := false
		for _, prev := range kept {
			if row.Equal(prev) {
				dup = true
				break
			}
		}
		if dup {
			m.Remove(id)
		} else {
			kept = append(kept, row)
		}
	}
	ctx.Output = m
	return nil
}

// Vars returns nil.
func (*Distinct) Vars() []string {
	return nil
}

// FixedVariables returns nil.
func (*Distinct) FixedVariables() []string {
	return nil
}

// FloatingVariables returns nil.
func (*Distinct) FloatingVariables() []string {
	return nil
}

func (*Distinct) String() string {
	return "DISTINCT"
}
