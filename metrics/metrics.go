// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package metrics contains helpers for performance metric management inside
// the query engine.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	go_metrics "github.com/rcrowley/go-metrics"
)

// Well-known metric names.
const (
	QueryEval     = "sparql_query_eval"
	PatternMatch  = "sparql_pattern_match"
	BindEval      = "sparql_bind_eval"
	FilterEval    = "sparql_filter_eval"
	RemoteQuery   = "sparql_remote_query"
	DataLoad      = "rdf_data_load"
	ResultsEncode = "sparql_results_encode"
)

// Metrics defines the interface for a collection of performance metrics in
// the query engine.
type Metrics interface {
	Timer(name string) Timer
	Histogram(name string) Histogram
	Counter(name string) Counter
	All() map[string]any
	Clear()
	json.Marshaler
}

type metrics struct {
	mtx        sync.Mutex
	timers     map[string]Timer
	histograms map[string]Histogram
	counters   map[string]Counter
}

// New returns a new Metrics object.
func New() Metrics {
	return &metrics{
		timers:     map[string]Timer{},
		histograms: map[string]Histogram{},
		counters:   map[string]Counter{},
	}
}

func (m *metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.All())
}

func (m *metrics) Timer(name string) Timer {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	t, ok := m.timers[name]
	if !ok {
		t = &timer{}
		m.timers[name] = t
	}
	return t
}

func (m *metrics) Histogram(name string) Histogram {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	h, ok := m.histograms[name]
	if !ok {
		h = newHistogram()
		m.histograms[name] = h
	}
	return h
}

func (m *metrics) Counter(name string) Counter {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	c, ok := m.counters[name]
	if !ok {
		zero := counter{}
		c = &zero
		m.counters[name] = c
	}
	return c
}

func (m *metrics) All() map[string]any {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	result := make(map[string]any, len(m.timers)+len(m.histograms)+len(m.counters))
	for name, timer := range m.timers {
		result["timer_"+name+"_ns"] = timer.Value()
	}
	for name, hist := range m.histograms {
		result["histogram_"+name] = hist.Value()
	}
	for name, cntr := range m.counters {
		result["counter_"+name] = cntr.Value()
	}
	return result
}

func (m *metrics) Clear() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.timers = map[string]Timer{}
	m.histograms = map[string]Histogram{}
	m.counters = map[string]Counter{}
}

// Timer defines the interface for a restartable timer that accumulates
// elapsed time.
type Timer interface {
	Value() any
	Int64() int64
	Start()
	Stop() int64
}

type timer struct {
	mtx   sync.Mutex
	start time.Time
	value int64
}

func (t *timer) Start() {
	t.mtx.Lock()
	t.start = time.Now()
	t.mtx.Unlock()
}

func (t *timer) Stop() int64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	var delta int64
	if !t.start.IsZero() {
		delta = time.Since(t.start).Nanoseconds()
		t.value += delta
		t.start = time.Time{}
	}
	return delta
}

func (t *timer) Value() any {
	return t.Int64()
}

func (t *timer) Int64() int64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.value
}

// Histogram defines the interface for a histogram with hardcoded
// percentiles.
type Histogram interface {
	Value() any
	Update(int64)
}

type histogram struct {
	hist go_metrics.Histogram // thread-safe because of the underlying ExpDecaySample
}

func newHistogram() Histogram {
	sample := go_metrics.NewExpDecaySample(1028, 0.015)
	return &histogram{go_metrics.NewHistogram(sample)}
}

func (h *histogram) Update(v int64) {
	h.hist.Update(v)
}

func (h *histogram) Value() any {
	values := make(map[string]any, 12)
	snap := h.hist.Snapshot()
	percentiles := snap.Percentiles([]float64{0.5, 0.75, 0.9, 0.95, 0.99, 0.999, 0.9999})
	values["count"] = snap.Count()
	values["min"] = snap.Min()
	values["max"] = snap.Max()
	values["mean"] = snap.Mean()
	values["stddev"] = snap.StdDev()
	values["median"] = percentiles[0]
	values["75%"] = percentiles[1]
	values["90%"] = percentiles[2]
	values["95%"] = percentiles[3]
	values["99%"] = percentiles[4]
	values["99.9%"] = percentiles[5]
	values["99.99%"] = percentiles[6]
	return values
}

// Counter defines the interface for a monotonic increasing counter.
type Counter interface {
	Value() any
	Incr()
	Add(n uint64)
}

type counter struct {
	c uint64
}

func (c *counter) Incr() {
	atomic.AddUint64(&c.c, 1)
}

func (c *counter) Add(n uint64) {
	atomic.AddUint64(&c.c, n)
}

func (c *counter) Value() any {
	return atomic.LoadUint64(&c.c)
}

// NoOp returns a Metrics implementation that does nothing and costs nothing.
func NoOp() Metrics {
	return noOpMetricsInstance
}

var noOpMetricsInstance = &noOpMetrics{}

type noOpMetrics struct{}

type noOpTimer struct{}
type noOpHistogram struct{}
type noOpCounter struct{}

func (*noOpMetrics) Timer(string) Timer          { return noOpTimerInstance }
func (*noOpMetrics) Histogram(string) Histogram  { return noOpHistogramInstance }
func (*noOpMetrics) Counter(string) Counter      { return noOpCounterInstance }
func (*noOpMetrics) All() map[string]any         { return map[string]any{} }
func (*noOpMetrics) Clear()                      {}
func (*noOpMetrics) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

var noOpTimerInstance = &noOpTimer{}
var noOpHistogramInstance = &noOpHistogram{}
var noOpCounterInstance = &noOpCounter{}

func (*noOpTimer) Value() any      { return int64(0) }
func (*noOpTimer) Int64() int64    { return 0 }
func (*noOpTimer) Start()          {}
func (*noOpTimer) Stop() int64     { return 0 }
func (*noOpHistogram) Value() any  { return map[string]any{} }
func (*noOpHistogram) Update(int64) {}
func (*noOpCounter) Value() any    { return uint64(0) }
func (*noOpCounter) Incr()         {}
func (*noOpCounter) Add(uint64)    {}
