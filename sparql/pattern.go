// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"github.com/Geovanny27/dotnetrdf/metrics"
	"github.com/Geovanny27/dotnetrdf/rdf"
)

// TriplePattern matches a triple pattern against the dataset and joins the
// matches with the input multiset.
type TriplePattern struct {
	pattern *rdf.Triple
}

// NewTriplePattern returns a pattern operator over the given triple, whose
// variable components act as match positions.
func NewTriplePattern(pattern *rdf.Triple) *TriplePattern {
	return &TriplePattern{pattern: pattern}
}

// Pattern returns the underlying triple pattern.
func (p *TriplePattern) Pattern() *rdf.Triple {
	return p.pattern
}

// Apply matches the pattern against the dataset once per input solution,
// substituting the solution's bindings into the pattern first. Matching
// rows merge the solution with the bindings produced by the match. A pattern
// with no matches at all produces the null multiset.
func (p *TriplePattern) Apply(ctx *Context) error {
	timer := ctx.Metrics().Timer(metrics.PatternMatch)
	timer.Start()
	defer timer.Stop()

	if ctx.Input.IsNull() {
		ctx.Output = ctx.Input
		return nil
	}

	out := NewMultiset()
	for _, name := range p.Vars() {
		out.DeclareVariable(name)
	}

	for _, s := range ctx.Input.Solutions() {
		bound, err := p.substitute(s)
		if err != nil {
			return err
		}
		err = ctx.Dataset.Triples(ctx.GoContext(), bound, func(t *rdf.Triple) error {
			match := s.Copy()
			if p.bindMatch(match, t) {
				out.Add(match)
			}
			return nil
		})
		if err != nil {
			return internalErr("dataset error: %v", err)
		}
	}

	if out.Len() == 0 {
		ctx.Output = Null()
		return nil
	}
	ctx.Output = out
	return nil
}

// substitute replaces pattern variables bound in the solution with their
// bound terms. Bound terms that cannot legally occupy a pattern position
// (e.g. a literal substituted into the predicate) yield a pattern matching
// nothing, reported via a nil triple and handled by bindMatch instead.
func (p *TriplePattern) substitute(s *Solution) (*rdf.Triple, error) {
	subst := func(term rdf.Term) rdf.Term {
		if v, ok := term.(rdf.Variable); ok {
			if t, bound := s.Value(v.Name()); bound {
				return t
			}
		}
		return term
	}
	t, err := rdf.NewTriple(subst(p.pattern.Subject()), subst(p.pattern.Predicate()), subst(p.pattern.Object()))
	if err != nil {
		// A binding landed in a position its variant cannot occupy. Keep
		// the unsubstituted pattern; bindMatch rejects the rows later.
		return p.pattern, nil
	}
	return t, nil
}

// bindMatch extends the solution with bindings for the pattern's variables
// taken from the matched triple. It returns false if an existing binding
// conflicts with the matched term.
func (p *TriplePattern) bindMatch(s *Solution, t *rdf.Triple) bool {
	pairs := [][2]rdf.Term{
		{p.pattern.Subject(), t.Subject()},
		{p.pattern.Predicate(), t.Predicate()},
		{p.pattern.Object(), t.Object()},
	}
	for _, pair := range pairs {
		v, ok := pair[0].(rdf.Variable)
		if !ok {
			if !pair[0].Equal(pair[1]) {
				return false
			}
			continue
		}
		if existing, bound := s.Value(v.Name()); bound {
			if !existing.Equal(pair[1]) {
				return false
			}
			continue
		}
		s.Bind(v.Name(), pair[1])
	}
	return true
}

// Vars returns the names of the pattern's variables.
func (p *TriplePattern) Vars() []string {
	return p.pattern.Vars()
}

// FixedVariables returns the pattern's variables: every surviving row binds
// all of them.
func (p *TriplePattern) FixedVariables() []string {
	return p.pattern.Vars()
}

// FloatingVariables returns nil.
func (*TriplePattern) FloatingVariables() []string {
	return nil
}

func (p *TriplePattern) String() string {
	return "BGP(" + p.pattern.String() + ")"
}
