// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTestData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.nt")
	data := `
<http://example.org/alice> <http://example.org/name> "Alice" .
<http://example.org/bob> <http://example.org/name> "Bob" .
<http://example.org/alice> <http://example.org/knows> <http://example.org/bob> .
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return path
}

func TestRunQueryJSON(t *testing.T) {
	path := writeTestData(t)
	var buf bytes.Buffer
	err := runQuery(context.Background(), &buf, queryParams{
		dataPath:  path,
		predicate: "<http://example.org/name>",
		format:    "json",
		orderBy:   []string{"o"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Unexpected error decoding output: %v", err)
	}

	exp := map[string]any{
		"head": map[string]any{
			"vars": []any{"o", "s"},
		},
		"results": map[string]any{
			"bindings": []any{
				map[string]any{
					"s": map[string]any{"type": "uri", "value": "http://example.org/alice"},
					"o": map[string]any{"type": "literal", "value": "Alice"},
				},
				map[string]any{
					"s": map[string]any{"type": "uri", "value": "http://example.org/bob"},
					"o": map[string]any{"type": "literal", "value": "Bob"},
				},
			},
		},
	}
	if diff := cmp.Diff(exp, result); diff != "" {
		t.Fatalf("Unexpected output (-want +got):\n%s", diff)
	}
}

func TestRunQueryTable(t *testing.T) {
	path := writeTestData(t)
	var buf bytes.Buffer
	err := runQuery(context.Background(), &buf, queryParams{
		dataPath: path,
		subject:  "<http://example.org/alice>",
		format:   "table",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"P", "O", "Alice"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Expected table output to contain %q but got:\n%s", want, out)
		}
	}
}

func TestRunQueryNoMatches(t *testing.T) {
	path := writeTestData(t)
	var buf bytes.Buffer
	err := runQuery(context.Background(), &buf, queryParams{
		dataPath:  path,
		predicate: "<http://example.org/missing>",
		format:    "json",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Unexpected error decoding output: %v", err)
	}
	bindings := result["results"].(map[string]any)["bindings"].([]any)
	if len(bindings) != 0 {
		t.Fatalf("Expected no bindings but got %v", bindings)
	}
}

func TestRunQueryBadFormat(t *testing.T) {
	path := writeTestData(t)
	err := runQuery(context.Background(), &bytes.Buffer{}, queryParams{
		dataPath: path,
		format:   "xml",
	})
	if err == nil {
		t.Fatal("Expected unsupported format to fail")
	}
}

func TestRunQueryMissingFile(t *testing.T) {
	err := runQuery(context.Background(), &bytes.Buffer{}, queryParams{
		dataPath: filepath.Join(t.TempDir(), "missing.nt"),
		format:   "table",
	})
	if err == nil {
		t.Fatal("Expected missing data file to fail")
	}
}
