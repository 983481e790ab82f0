// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Geovanny27/dotnetrdf/logging"
	"github.com/Geovanny27/dotnetrdf/metrics"
	"github.com/Geovanny27/dotnetrdf/rdf"
	"github.com/Geovanny27/dotnetrdf/resultset"
	"github.com/Geovanny27/dotnetrdf/sparql"
	"github.com/Geovanny27/dotnetrdf/storage/inmem"
)

type queryParams struct {
	dataPath  string
	subject   string
	predicate string
	object    string
	format    string
	distinct  bool
	orderBy   []string
	verbose   bool
}

func init() {
	var params queryParams

	queryCommand := &cobra.Command{
		Use:   "query",
		Short: "Match a triple pattern against an N-Triples file",
		Long: `Load an N-Triples file and evaluate a triple pattern against it.

Pattern positions default to variables ?s, ?p, ?o; bind a position with its
N-Triples form, e.g. --predicate '<http://example.org/name>'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), os.Stdout, params)
		},
	}

	queryCommand.Flags().StringVarP(&params.dataPath, "data", "d", "", "N-Triples file to load")
	queryCommand.Flags().StringVarP(&params.subject, "subject", "s", "", "subject term (default ?s)")
	queryCommand.Flags().StringVarP(&params.predicate, "predicate", "p", "", "predicate term (default ?p)")
	queryCommand.Flags().StringVarP(&params.object, "object", "o", "", "object term (default ?o)")
	queryCommand.Flags().StringVarP(&params.format, "format", "f", "table", "output format: table or json")
	queryCommand.Flags().BoolVar(&params.distinct, "distinct", false, "remove duplicate rows")
	queryCommand.Flags().StringSliceVar(&params.orderBy, "order-by", nil, "variables to order rows by")
	queryCommand.Flags().BoolVarP(&params.verbose, "verbose", "v", false, "enable debug logging")
	_ = queryCommand.MarkFlagRequired("data")

	RootCommand.AddCommand(queryCommand)
}

func runQuery(goCtx context.Context, out io.Writer, params queryParams) error {
	f, err := os.Open(params.dataPath)
	if err != nil {
		return err
	}
	defer f.Close()

	store, err := inmem.NewFromReader(f, params.dataPath)
	if err != nil {
		return err
	}

	pattern, err := parsePattern(params, params.dataPath)
	if err != nil {
		return err
	}

	logger := logging.New()
	if params.verbose {
		logger.SetLevel(logging.Debug)
	} else {
		logger.SetLevel(logging.Error)
	}

	ctx := sparql.NewContext(store).
		WithLogger(logger).
		WithMetrics(metrics.New()).
		WithGoContext(goCtx)

	ops := []sparql.Operator{sparql.NewTriplePattern(pattern)}
	if params.distinct {
		ops = append(ops, sparql.NewDistinct())
	}
	if len(params.orderBy) > 0 {
		ops = append(ops, sparql.NewOrderBy(params.orderBy...))
	}

	result, err := sparql.Evaluate(ctx, ops...)
	if err != nil {
		return err
	}

	rs := resultset.FromMultiset(result)
	switch params.format {
	case "json":
		return resultset.EncodeJSON(out, rs)
	case "table":
		renderTable(out, rs)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", params.format)
	}
}

func parsePattern(params queryParams, graphID string) (*rdf.Triple, error) {
	parse := func(s, fallback string) (rdf.Term, error) {
		if s == "" {
			return rdf.Variable(fallback), nil
		}
		return rdf.ParseTermIn(s, graphID)
	}
	subject, err := parse(params.subject, "s")
	if err != nil {
		return nil, err
	}
	predicate, err := parse(params.predicate, "p")
	if err != nil {
		return nil, err
	}
	object, err := parse(params.object, "o")
	if err != nil {
		return nil, err
	}
	return rdf.NewTriple(subject, predicate, object)
}

func renderTable(out io.Writer, rs *resultset.ResultSet) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(rs.Vars)
	for _, row := range rs.Rows {
		cells := make([]string, len(rs.Vars))
		for i, name := range rs.Vars {
			if t, ok := row.Value(name); ok {
				cells[i] = t.String()
			}
		}
		table.Append(cells)
	}
	table.Render()
}
