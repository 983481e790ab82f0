// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rdf

// Well-known namespaces.
const (
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"
)

// Well-known datatype IRIs.
const (
	XSDBoolean IRI = NamespaceXSD + "boolean"
	XSDInteger IRI = NamespaceXSD + "integer"
	XSDDecimal IRI = NamespaceXSD + "decimal"
	XSDDouble  IRI = NamespaceXSD + "double"
	XSDString  IRI = NamespaceXSD + "string"

	RDFLangString IRI = NamespaceRDF + "langString"
	RDFType       IRI = NamespaceRDF + "type"
)
