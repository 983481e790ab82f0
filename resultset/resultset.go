// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package resultset flattens evaluated multisets into result rows and
// encodes them in the SPARQL 1.1 Query Results JSON format.
package resultset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Geovanny27/dotnetrdf/rdf"
	"github.com/Geovanny27/dotnetrdf/sparql"
)

// ResultSet holds the flattened rows of one query evaluation.
type ResultSet struct {
	Vars []string
	Rows []*sparql.Solution
}

// FromMultiset flattens a multiset into a result set. The identity multiset
// yields one empty row, the null multiset zero rows.
func FromMultiset(m *sparql.Multiset) *ResultSet {
	return &ResultSet{
		Vars: m.Variables(),
		Rows: m.Solutions(),
	}
}

// Len returns the number of result rows.
func (rs *ResultSet) Len() int {
	return len(rs.Rows)
}

type jsonResults struct {
	Head    jsonHead    `json:"head"`
	Results jsonResultsBody `json:"results"`
}

type jsonHead struct {
	Vars []string `json:"vars"`
}

type jsonResultsBody struct {
	Bindings []map[string]jsonTerm `json:"bindings"`
}

type jsonTerm struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Language string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// EncodeJSON writes the result set to w in SPARQL 1.1 Query Results JSON
// format. Only ground, non-graph terms are representable; encoding a row
// carrying a variable or graph literal binding fails.
func EncodeJSON(w io.Writer, rs *ResultSet) error {
	out := jsonResults{
		Head:    jsonHead{Vars: rs.Vars},
		Results: jsonResultsBody{Bindings: make([]map[string]jsonTerm, 0, len(rs.Rows))},
	}
	if out.Head.Vars == nil {
		out.Head.Vars = []string{}
	}
	for _, row := range rs.Rows {
		binding := map[string]jsonTerm{}
		for _, name := range row.Vars() {
			t, _ := row.Value(name)
			jt, err := encodeTerm(t)
			if err != nil {
				return err
			}
			binding[name] = jt
		}
		out.Results.Bindings = append(out.Results.Bindings, binding)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// DecodeJSON reads a SPARQL 1.1 Query Results JSON document from r. Decoded
// terms are term-equal to the terms that produced the document; blank nodes
// are scoped to graphID.
func DecodeJSON(r io.Reader, graphID string) (*ResultSet, error) {
	var in jsonResults
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}
	rs := &ResultSet{Vars: in.Head.Vars}
	for _, binding := range in.Results.Bindings {
		row := sparql.NewSolution()
		for name, jt := range binding {
			t, err := decodeTerm(jt, graphID)
			if err != nil {
				return nil, err
			}
			row.Bind(name, t)
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}

func encodeTerm(t rdf.Term) (jsonTerm, error) {
	switch t := t.(type) {
	case rdf.IRI:
		return jsonTerm{Type: "uri", Value: string(t)}, nil
	case *rdf.BlankNode:
		return jsonTerm{Type: "bnode", Value: t.ID()}, nil
	case *rdf.Literal:
		return jsonTerm{
			Type:     "literal",
			Value:    t.Lexical(),
			Language: t.Language(),
			Datatype: string(t.Datatype()),
		}, nil
	default:
		return jsonTerm{}, fmt.Errorf("term %v is not representable in SPARQL results", t)
	}
}

func decodeTerm(jt jsonTerm, graphID string) (rdf.Term, error) {
	switch jt.Type {
	case "uri":
		return rdf.IRI(jt.Value), nil
	case "bnode":
		return rdf.NewBlankNode(jt.Value, graphID), nil
	case "literal", "typed-literal":
		return rdf.NewLiteralWith(jt.Value, rdf.IRI(jt.Datatype), jt.Language)
	default:
		return nil, fmt.Errorf("unrecognized term type %q", jt.Type)
	}
}
