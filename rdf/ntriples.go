// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rdf

import (
	"fmt"
	"strings"
)

// ParseTerm parses a single term in its canonical N-Triples shaped form.
// Blank nodes are scoped to the default (empty) graph identifier; use
// ParseTermIn to parse into a named scope.
func ParseTerm(s string) (Term, error) {
	return ParseTermIn(s, "")
}

// ParseTermIn parses a single term, scoping any blank node to the graph
// named by graphID. ParseTermIn inverts CanonicalString for every term
// variant: parse(serialize(t)) is term-equal to t.
func ParseTermIn(s, graphID string) (Term, error) {
	term, rest, err := parseTerm(strings.TrimSpace(s), graphID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("unexpected trailing input: %q", rest)
	}
	return term, nil
}

// ParseTriple parses one triple line in N-Triples shaped form, including the
// trailing dot. Blank nodes are scoped to graphID.
func ParseTriple(line, graphID string) (*Triple, error) {
	t, rest, err := parseTriple(strings.TrimSpace(line), graphID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("unexpected trailing input: %q", rest)
	}
	return t, nil
}

func parseTriple(s, graphID string) (*Triple, string, error) {
	subj, rest, err := parseTerm(strings.TrimSpace(s), graphID)
	if err != nil {
		return nil, "", err
	}
	pred, rest, err := parseTerm(strings.TrimSpace(rest), graphID)
	if err != nil {
		return nil, "", err
	}
	obj, rest, err := parseTerm(strings.TrimSpace(rest), graphID)
	if err != nil {
		return nil, "", err
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ".") {
		return nil, "", fmt.Errorf("expected '.' terminating triple, got %q", rest)
	}
	t, err := NewTriple(subj, pred, obj)
	if err != nil {
		return nil, "", err
	}
	return t, rest[1:], nil
}

func parseTerm(s, graphID string) (Term, string, error) {
	if s == "" {
		return nil, "", fmt.Errorf("expected term, got end of input")
	}
	switch s[0] {
	case '<':
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated IRI: %q", s)
		}
		return IRI(s[1:end]), s[end+1:], nil
	case '_':
		if len(s) < 2 || s[1] != ':' {
			return nil, "", fmt.Errorf("malformed blank node: %q", s)
		}
		end := len(s)
		for i := 2; i < len(s); i++ {
			if s[i] == ' ' || s[i] == '\t' {
				end = i
				break
			}
		}
		if end == 2 {
			return nil, "", fmt.Errorf("blank node with empty identifier: %q", s)
		}
		return NewBlankNode(s[2:end], graphID), s[end:], nil
	case '?':
		end := len(s)
		for i := 1; i < len(s); i++ {
			if s[i] == ' ' || s[i] == '\t' {
				end = i
				break
			}
		}
		if end == 1 {
			return nil, "", fmt.Errorf("variable with empty name: %q", s)
		}
		return Variable(s[1:end]), s[end:], nil
	case '"':
		return parseLiteral(s, graphID)
	case '{':
		return parseGraphLiteral(s, graphID)
	default:
		return nil, "", fmt.Errorf("unrecognized term: %q", s)
	}
}

func parseLiteral(s, _ string) (Term, string, error) {
	lexical, rest, err := unquoteLiteral(s)
	if err != nil {
		return nil, "", err
	}
	switch {
	case strings.HasPrefix(rest, "@"):
		end := len(rest)
		for i := 1; i < len(rest); i++ {
			if rest[i] == ' ' || rest[i] == '\t' {
				end = i
				break
			}
		}
		if end == 1 {
			return nil, "", fmt.Errorf("literal with empty language tag: %q", s)
		}
		return NewLanguageLiteral(lexical, rest[1:end]), rest[end:], nil
	case strings.HasPrefix(rest, "^^<"):
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated datatype IRI: %q", rest)
		}
		return NewTypedLiteral(lexical, IRI(rest[3:end])), rest[end+1:], nil
	default:
		return NewLiteral(lexical), rest, nil
	}
}

func parseGraphLiteral(s, graphID string) (Term, string, error) {
	rest := strings.TrimSpace(s[1:])
	var triples []*Triple
	for {
		if rest == "" {
			return nil, "", fmt.Errorf("unterminated graph literal")
		}
		if rest[0] == '}' {
			return NewGraphLiteral(triples), rest[1:], nil
		}
		t, r, err := parseTriple(rest, graphID)
		if err != nil {
			return nil, "", err
		}
		triples = append(triples, t)
		rest = strings.TrimSpace(r)
	}
}

func quoteLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func unquoteLiteral(s string) (string, string, error) {
	if len(s) == 0 || s[0] != '"' {
		return "", "", fmt.Errorf("expected literal, got %q", s)
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", fmt.Errorf("unterminated escape in literal: %q", s)
			}
			i++
			switch s[i] {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", "", fmt.Errorf("illegal escape \\%c in literal: %q", s[i], s)
			}
		case '"':
			return sb.String(), s[i+1:], nil
		default:
			sb.WriteByte(s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated literal: %q", s)
}
