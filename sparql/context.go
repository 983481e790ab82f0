// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sparql

import (
	"context"

	"github.com/Geovanny27/dotnetrdf/logging"
	"github.com/Geovanny27/dotnetrdf/metrics"
	"github.com/Geovanny27/dotnetrdf/storage"
)

// Context carries the state of one evaluation pass: the current input
// multiset, the output multiset produced by the active operator, the dataset
// being queried, and the row id currently under evaluation for row-scoped
// expression lookups. One Context flows through one evaluation pass;
// operators read and replace its input/output references as they execute.
type Context struct {
	// Input is the multiset the active operator consumes.
	Input *Multiset

	// Output is the multiset produced by the active operator. It is unset
	// until the operator assigns it.
	Output *Multiset

	// Dataset is the triple provider being queried.
	Dataset storage.Dataset

	cancel  Cancel
	metrics metrics.Metrics
	logger  logging.Logger
	goCtx   context.Context
	rowID   int
}

// NewContext returns an evaluation context over the dataset with an identity
// input multiset.
func NewContext(dataset storage.Dataset) *Context {
	return &Context{
		Input:   Identity(),
		Dataset: dataset,
		metrics: metrics.NoOp(),
		logger:  logging.NewNoOpLogger(),
		goCtx:   context.Background(),
	}
}

// WithInput sets the input multiset.
func (ctx *Context) WithInput(m *Multiset) *Context {
	ctx.Input = m
	return ctx
}

// WithCancel sets the cooperative cancellation handle checked between
// operator steps.
func (ctx *Context) WithCancel(c Cancel) *Context {
	ctx.cancel = c
	return ctx
}

// WithMetrics sets the metrics collector.
func (ctx *Context) WithMetrics(m metrics.Metrics) *Context {
	ctx.metrics = m
	return ctx
}

// WithLogger sets the logger.
func (ctx *Context) WithLogger(l logging.Logger) *Context {
	ctx.logger = l
	return ctx
}

// WithGoContext sets the context.Context handed to dataset calls.
func (ctx *Context) WithGoContext(goCtx context.Context) *Context {
	ctx.goCtx = goCtx
	return ctx
}

// Metrics returns the metrics collector.
func (ctx *Context) Metrics() metrics.Metrics {
	return ctx.metrics
}

// Logger returns the logger.
func (ctx *Context) Logger() logging.Logger {
	return ctx.logger
}

// GoContext returns the context.Context for dataset calls.
func (ctx *Context) GoContext() context.Context {
	return ctx.goCtx
}

// CurrentRow returns the row id currently under evaluation.
func (ctx *Context) CurrentRow() int {
	return ctx.rowID
}

func (ctx *Context) setCurrentRow(id int) {
	ctx.rowID = id
}

// Evaluate applies the operators to the context in tree order: each operator
// consumes the context's input multiset and produces its output, which
// becomes the next operator's input. Cancellation is checked between
// operator steps and reported as a CancelErr error; it is never checked
// inside a per-row loop. The final multiset is returned.
func Evaluate(ctx *Context, ops ...Operator) (*Multiset, error) {
	timer := ctx.metrics.Timer(metrics.QueryEval)
	timer.Start()
	defer timer.Stop()

	for _, op := range ops {
		if ctx.cancel != nil && ctx.cancel.Cancelled() {
			return nil, cancelErr()
		}
		ctx.logger.Debug("Applying operator %v against %d input row(s).", op, ctx.Input.Len())
		if err := op.Apply(ctx); err != nil {
			return nil, err
		}
		ctx.Input = ctx.Output
		ctx.Output = nil
	}
	return ctx.Input, nil
}
