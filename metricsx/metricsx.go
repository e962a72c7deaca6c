/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metricsx counts snag errors with github.com/prometheus/client_golang.
//
// Every observed error increments
//
//	snag_errors_total{tag, level, protocol, code}
//
// where code is the numeric status of the protocol the error was answered
// on.
package metricsx

import (
	"errors"
	"strconv"

	"dirpx.dev/snag"
	"dirpx.dev/snag/status"
	"github.com/prometheus/client_golang/prometheus"
)

// Label names.
const (
	LabelTag      = "tag"
	LabelLevel    = "level"
	LabelProtocol = "protocol"
	LabelCode     = "code"
)

// Option configures a Recorder.
type Option func(*prometheus.CounterOpts)

// WithNamespace sets the metric namespace, e.g. "billing" yields
// billing_snag_errors_total.
func WithNamespace(ns string) Option {
	return func(o *prometheus.CounterOpts) { o.Namespace = ns }
}

// WithConstLabels adds constant labels to the counter.
func WithConstLabels(l prometheus.Labels) Option {
	return func(o *prometheus.CounterOpts) { o.ConstLabels = l }
}

// Recorder counts errors. It is safe for concurrent use.
type Recorder struct {
	errors *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers it with reg. If an identical
// collector is already registered, the existing one is reused. A nil reg
// skips registration.
func NewRecorder(reg prometheus.Registerer, opts ...Option) (*Recorder, error) {
	co := prometheus.CounterOpts{
		Subsystem: "snag",
		Name:      "errors_total",
		Help:      "Errors by tag, level, protocol and status code.",
	}
	for _, opt := range opts {
		opt(&co)
	}
	vec := prometheus.NewCounterVec(co, []string{LabelTag, LabelLevel, LabelProtocol, LabelCode})

	if reg != nil {
		if err := reg.Register(vec); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			vec = existing
		}
	}
	return &Recorder{errors: vec}, nil
}

// Observe counts err as answered on protocol p. The empty protocol means
// HTTP. Errors that are not *snag.Error are counted through snag.Ensure.
// Nil errors and unknown protocols are ignored.
func (r *Recorder) Observe(p status.Protocol, err error) {
	if r == nil {
		return
	}
	se := snag.Ensure(err)
	if se == nil {
		return
	}
	if p == "" {
		p = status.HTTP
	}
	code, ok := se.StatusCodes.Get(p)
	if !ok {
		return
	}
	r.errors.WithLabelValues(string(se.Tag), string(se.Level), string(p), strconv.Itoa(code)).Inc()
}

// Describe implements prometheus.Collector.
func (r *Recorder) Describe(ch chan<- *prometheus.Desc) { r.errors.Describe(ch) }

// Collect implements prometheus.Collector.
func (r *Recorder) Collect(ch chan<- prometheus.Metric) { r.errors.Collect(ch) }
