// Copyright 2025 Netsock Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics defines interfaces for counter and gauge metrics, so that
// packages can be instrumented without depending on a concrete metrics
// implementation. Components accept metrics objects whose fields may be nil;
// the helpers in this package treat nil metrics as no-ops.
package metrics

// Counter describes a metric that accumulates values monotonically.
type Counter interface {
	// With returns a new counter with the given label values appended.
	With(labelValues ...string) Counter
	Add(delta float64)
}

// Gauge describes a metric that takes a specific value over time.
type Gauge interface {
	// With returns a new gauge with the given label values appended.
	With(labelValues ...string) Gauge
	Set(value float64)
	Add(delta float64)
}

// CounterInc increments the counter by one, if the counter is non-nil.
func CounterInc(c Counter) {
	CounterAdd(c, 1)
}

// CounterAdd adds the delta to the counter, if the counter is non-nil.
func CounterAdd(c Counter, delta float64) {
	if c != nil {
		c.Add(delta)
	}
}

// CounterWith returns a counter with the given label values, if the counter
// is non-nil.
func CounterWith(c Counter, labelValues ...string) Counter {
	if c == nil {
		return nil
	}
	return c.With(labelValues...)
}

// GaugeSet sets the gauge to the given value, if the gauge is non-nil.
func GaugeSet(g Gauge, value float64) {
	if g != nil {
		g.Set(value)
	}
}

// GaugeAdd adds the delta to the gauge, if the gauge is non-nil.
func GaugeAdd(g Gauge, delta float64) {
	if g != nil {
		g.Add(delta)
	}
}

// GaugeWith returns a gauge with the given label values, if the gauge is
// non-nil.
func GaugeWith(g Gauge, labelValues ...string) Gauge {
	if g == nil {
		return nil
	}
	return g.With(labelValues...)
}
