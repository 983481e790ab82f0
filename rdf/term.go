// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package rdf implements the RDF term and triple data model: IRIs, blank
// nodes, literals, query variables, and graph literals, together with the
// equality and total ordering semantics mandated by the RDF and SPARQL
// specifications.
package rdf

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Term declares the common interface for all RDF node values. Every kind of
// node is represented as a type that implements this interface:
//
// - IRI
// - BlankNode
// - Literal
// - Variable
// - GraphLiteral
//
// Terms are immutable once constructed. Equality is term equality as defined
// by the SPARQL specification: it is stratified by variant and two terms of
// different variants are never equal. Value equality of the denoted data
// (e.g. numeric equality of typed literals) is a separate concern and is not
// implemented by Equal.
type Term interface {
	// Equal returns true if this term equals the other term.
	Equal(other Term) bool

	// Hash returns the hash code of the term. Terms that are equal always
	// produce the same hash code.
	Hash() int

	// IsGround returns true if the term is not a variable and contains no
	// variables.
	IsGround() bool

	// CanonicalString returns the deterministic, N-Triples shaped string
	// form of the term.
	CanonicalString() string

	// String returns a human readable representation of the term.
	String() string
}

// IRI represents an absolute IRI node.
type IRI string

// Equal returns true if the other term is an IRI with the same value.
func (iri IRI) Equal(other Term) bool {
	switch other := other.(type) {
	case IRI:
		return iri == other
	default:
		return false
	}
}

// Hash returns the hash code for the IRI.
func (iri IRI) Hash() int {
	return stringHash("I", string(iri))
}

// IsGround always returns true.
func (IRI) IsGround() bool {
	return true
}

// CanonicalString returns the angle-bracketed form of the IRI.
func (iri IRI) CanonicalString() string {
	return "<" + string(iri) + ">"
}

func (iri IRI) String() string {
	return iri.CanonicalString()
}

// BlankNode represents a blank node. Blank node identity is scoped to the
// graph the node originated from: two blank nodes are equal only if they
// carry the same identifier and the same owning graph identifier. The owning
// graph is carried as a plain identifier rather than a reference to the graph
// value itself.
type BlankNode struct {
	id      string
	graphID string
	hash    int
}

// NewBlankNode returns a blank node with the given identifier scoped to the
// graph named by graphID. An empty graphID denotes the default scope.
func NewBlankNode(id, graphID string) *BlankNode {
	return &BlankNode{
		id:      id,
		graphID: graphID,
		hash:    stringHash("B", graphID+"\x00"+id),
	}
}

// ID returns the blank node identifier.
func (b *BlankNode) ID() string {
	return b.id
}

// GraphID returns the identifier of the graph that owns this blank node.
func (b *BlankNode) GraphID() string {
	return b.graphID
}

// Equal returns true if the other term is a blank node with the same
// identifier and owning graph.
func (b *BlankNode) Equal(other Term) bool {
	switch other := other.(type) {
	case *BlankNode:
		return b.id == other.id && b.graphID == other.graphID
	default:
		return false
	}
}

// Hash returns the precomputed hash code for the blank node.
func (b *BlankNode) Hash() int {
	return b.hash
}

// IsGround always returns true.
func (*BlankNode) IsGround() bool {
	return true
}

// CanonicalString returns the _:id form of the blank node. The owning graph
// identifier is not part of the canonical form.
func (b *BlankNode) CanonicalString() string {
	return "_:" + b.id
}

func (b *BlankNode) String() string {
	return b.CanonicalString()
}

// Literal represents a literal node: a lexical form optionally qualified by
// either a datatype IRI or a language tag, never both.
type Literal struct {
	lexical  string
	datatype IRI
	language string
	hash     int
}

// NewLiteral returns a plain literal with the given lexical form.
func NewLiteral(lexical string) *Literal {
	l, _ := newLiteral(lexical, "", "")
	return l
}

// NewTypedLiteral returns a literal with the given lexical form and datatype.
func NewTypedLiteral(lexical string, datatype IRI) *Literal {
	l, _ := newLiteral(lexical, datatype, "")
	return l
}

// NewLanguageLiteral returns a literal with the given lexical form and
// language tag. The tag is canonicalized to lowercase since language tags
// compare case-insensitively.
func NewLanguageLiteral(lexical, language string) *Literal {
	l, _ := newLiteral(lexical, "", language)
	return l
}

// NewLiteralWith returns a literal with the given lexical form, datatype, and
// language tag. It returns a MalformedTermError if both a datatype and a
// language tag are supplied.
func NewLiteralWith(lexical string, datatype IRI, language string) (*Literal, error) {
	return newLiteral(lexical, datatype, language)
}

func newLiteral(lexical string, datatype IRI, language string) (*Literal, error) {
	if datatype != "" && language != "" {
		return nil, malformedTermErr("literal cannot carry both a datatype (%v) and a language tag (%q)", datatype, language)
	}
	language = strings.ToLower(language)
	l := &Literal{
		lexical:  lexical,
		datatype: datatype,
		language: language,
	}
	l.hash = stringHash("L", l.CanonicalString())
	return l, nil
}

// Lexical returns the lexical form of the literal.
func (l *Literal) Lexical() string {
	return l.lexical
}

// Datatype returns the datatype IRI of the literal, or the empty IRI for
// plain and language-tagged literals.
func (l *Literal) Datatype() IRI {
	return l.datatype
}

// Language returns the lowercase language tag of the literal, or the empty
// string.
func (l *Literal) Language() string {
	return l.language
}

// Equal returns true if the other term is a literal with identical lexical
// form, datatype, and language tag. This is term equality: "1"^^xsd:integer
// and "01"^^xsd:integer are not equal even though they denote the same value.
func (l *Literal) Equal(other Term) bool {
	switch other := other.(type) {
	case *Literal:
		return l.lexical == other.lexical &&
			l.datatype == other.datatype &&
			l.language == other.language
	default:
		return false
	}
}

// Hash returns the precomputed hash code for the literal.
func (l *Literal) Hash() int {
	return l.hash
}

// IsGround always returns true.
func (*Literal) IsGround() bool {
	return true
}

// CanonicalString returns the N-Triples form of the literal.
func (l *Literal) CanonicalString() string {
	s := quoteLiteral(l.lexical)
	if l.language != "" {
		return s + "@" + l.language
	}
	if l.datatype != "" {
		return s + "^^" + l.datatype.CanonicalString()
	}
	return s
}

func (l *Literal) String() string {
	return l.CanonicalString()
}

// Variable represents a query variable. Variables only occur inside algebra
// expressions and solutions; they are never asserted in a graph.
type Variable string

// Equal returns true if the other term is a variable with the same name.
func (v Variable) Equal(other Term) bool {
	switch other := other.(type) {
	case Variable:
		return v == other
	default:
		return false
	}
}

// Hash returns the hash code for the variable.
func (v Variable) Hash() int {
	return stringHash("V", string(v))
}

// IsGround always returns false.
func (Variable) IsGround() bool {
	return false
}

// Name returns the variable name without the leading question mark.
func (v Variable) Name() string {
	return string(v)
}

// CanonicalString returns the ?name form of the variable.
func (v Variable) CanonicalString() string {
	return "?" + string(v)
}

func (v Variable) String() string {
	return v.CanonicalString()
}

// GraphLiteral represents an embedded subgraph used as a term. The triples
// are held in canonical sorted order with duplicates removed so that graph
// literals with the same triple set are equal.
type GraphLiteral struct {
	triples []*Triple
	hash    int
}

// NewGraphLiteral returns a graph literal containing the given triples.
func NewGraphLiteral(triples []*Triple) *GraphLiteral {
	sorted := sortedTripleSet(triples)
	g := &GraphLiteral{triples: sorted}
	g.hash = stringHash("G", g.CanonicalString())
	return g
}

// Triples returns the triples of the subgraph in canonical order. The
// returned slice must not be modified.
func (g *GraphLiteral) Triples() []*Triple {
	return g.triples
}

// Len returns the number of triples in the subgraph.
func (g *GraphLiteral) Len() int {
	return len(g.triples)
}

// Equal returns true if the other term is a graph literal containing the
// same set of triples.
func (g *GraphLiteral) Equal(other Term) bool {
	switch other := other.(type) {
	case *GraphLiteral:
		if len(g.triples) != len(other.triples) {
			return false
		}
		for i := range g.triples {
			if !g.triples[i].Equal(other.triples[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns the precomputed hash code for the graph literal.
func (g *GraphLiteral) Hash() int {
	return g.hash
}

// IsGround returns true if every triple in the subgraph is ground.
func (g *GraphLiteral) IsGround() bool {
	for _, t := range g.triples {
		if !t.IsGround() {
			return false
		}
	}
	return true
}

// CanonicalString returns the braced form of the subgraph.
func (g *GraphLiteral) CanonicalString() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, t := range g.triples {
		sb.WriteString(" ")
		sb.WriteString(t.CanonicalString())
	}
	sb.WriteString(" }")
	return sb.String()
}

func (g *GraphLiteral) String() string {
	return g.CanonicalString()
}

func stringHash(tag, s string) int {
	d := xxhash.New()
	d.WriteString(tag)
	d.WriteString(s)
	return int(d.Sum64())
}

func malformedTermErr(f string, a ...any) error {
	return &MalformedTermError{Message: fmt.Sprintf(f, a...)}
}

// MalformedTermError is returned by term and triple constructors when a
// construction-time invariant is violated. Malformed terms are never silently
// coerced; the construction fails outright.
type MalformedTermError struct {
	Message string
}

func (e *MalformedTermError) Error() string {
	return "malformed term: " + e.Message
}
