// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMetricsTimer(t *testing.T) {
	m := New()
	timer := m.Timer("test")
	timer.Start()
	time.Sleep(time.Millisecond)
	if delta := timer.Stop(); delta <= 0 {
		t.Fatalf("Expected positive elapsed time but got %v", delta)
	}
	if timer.Int64() <= 0 {
		t.Fatalf("Expected accumulated time but got %v", timer.Int64())
	}
	// Stop without a start is a no-op.
	if delta := timer.Stop(); delta != 0 {
		t.Fatalf("Expected 0 but got %v", delta)
	}
	if m.Timer("test") != timer {
		t.Fatal("Expected the same timer for the same name")
	}
}

func TestMetricsCounter(t *testing.T) {
	m := New()
	c := m.Counter("test")
	c.Incr()
	c.Add(2)
	if v := c.Value().(uint64); v != 3 {
		t.Fatalf("Expected 3 but got %v", v)
	}
}

func TestMetricsHistogram(t *testing.T) {
	m := New()
	h := m.Histogram("test")
	for i := int64(1); i <= 100; i++ {
		h.Update(i)
	}
	values := h.Value().(map[string]any)
	if values["count"].(int64) != 100 {
		t.Fatalf("Expected count 100 but got %v", values["count"])
	}
	if values["min"].(int64) != 1 || values["max"].(int64) != 100 {
		t.Fatalf("Expected min 1 and max 100 but got %v and %v", values["min"], values["max"])
	}
}

func TestMetricsAllAndClear(t *testing.T) {
	m := New()
	m.Timer("t").Start()
	m.Counter("c").Incr()
	m.Histogram("h").Update(1)

	all := m.All()
	for _, name := range []string{"timer_t_ns", "counter_c", "histogram_h"} {
		if _, ok := all[name]; !ok {
			t.Fatalf("Expected %v in %v", name, all)
		}
	}

	m.Clear()
	if len(m.All()) != 0 {
		t.Fatalf("Expected no metrics after clear but got %v", m.All())
	}
}

func TestMetricsMarshalJSON(t *testing.T) {
	m := New()
	m.Counter("c").Incr()
	bs, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(bs, &result); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result["counter_c"].(float64) != 1 {
		t.Fatalf("Expected counter_c 1 but got %v", result["counter_c"])
	}
}

func TestNoOpMetrics(t *testing.T) {
	m := NoOp()
	m.Counter("c").Incr()
	m.Timer("t").Start()
	if len(m.All()) != 0 {
		t.Fatalf("Expected no-op metrics to record nothing but got %v", m.All())
	}
}
