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

package metricsx

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/snag"
	"dirpx.dev/snag/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	notFound := snag.E(snag.WithStatus(status.HTTP404NotFound), snag.WithLevel(snag.LevelWarning))
	r.Observe(status.HTTP, notFound)
	r.Observe("", notFound)
	r.Observe(status.GRPC, notFound)
	r.Observe(status.HTTP, errors.New("plain"))
	r.Observe(status.HTTP, nil)
	r.Observe("smtp", notFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.errors.WithLabelValues("result_not_found", "warning", "http", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues("result_not_found", "warning", "grpc", "5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues("not_handled", "nil", "http", "500")))
	assert.Equal(t, 3, testutil.CollectAndCount(r, "snag_errors_total"))

	expected := `
# HELP snag_errors_total Errors by tag, level, protocol and status code.
# TYPE snag_errors_total counter
snag_errors_total{code="404",level="warning",protocol="http",tag="result_not_found"} 2
snag_errors_total{code="5",level="warning",protocol="grpc",tag="result_not_found"} 1
snag_errors_total{code="500",level="nil",protocol="http",tag="not_handled"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "snag_errors_total"))
}

func TestNewRecorder_Reuse(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewRecorder(reg, WithNamespace("billing"))
	require.NoError(t, err)
	b, err := NewRecorder(reg, WithNamespace("billing"))
	require.NoError(t, err)

	a.Observe(status.WS, snag.E())
	b.Observe(status.WS, snag.E())
	assert.Equal(t, 2.0, testutil.ToFloat64(b.errors.WithLabelValues("not_handled", "nil", "ws", "1011")))
	assert.Equal(t, 1, testutil.CollectAndCount(a, "billing_snag_errors_total"))
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	r.Observe(status.HTTP, snag.E())

	unregistered, err := NewRecorder(nil, WithConstLabels(prometheus.Labels{"service": "api"}))
	require.NoError(t, err)
	unregistered.Observe(status.AMQP, snag.E())
	assert.Equal(t, 1, testutil.CollectAndCount(unregistered))
}

func TestRecorder_Concurrent(t *testing.T) {
	r, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Observe(status.HTTP, snag.E())
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800.0, testutil.ToFloat64(r.errors.WithLabelValues("not_handled", "nil", "http", "500")))
}
