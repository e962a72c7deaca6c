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

package httpx

import (
	"net/http"
	"strconv"

	"dirpx.dev/snag"
	"dirpx.dev/snag/adapter"
	"dirpx.dev/snag/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// Meta carries extra context that the HTTP layer can add on top of the error
// view. All fields are optional and typically come from request context,
// headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// MetaFn extracts Meta from the request and the error being written.
type MetaFn func(r *http.Request, err error) Meta

// Writer turns any error into an HTTP response: the status comes from the
// error's HTTP code and the body is the redacted View.
//
// Errors that are not *snag.Error are wrapped with snag.Ensure, so they are
// answered with the DEFAULT status (500) and no message.
type Writer struct {
	// MetaFn is used by Handler. Nil means no Meta.
	MetaFn MetaFn
}

// Write writes err to rw. A nil error writes nothing.
//
// The body holds exactly the View fields, with the message blanked unless
// the error allows showing it to clients, plus the non-empty Meta fields
// (correlation, traceId, spanId).
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	code := adapter.StatusOf(err, status.HTTP)
	if code < 100 || code > 999 {
		code = http.StatusInternalServerError
	}

	body := adapter.ViewMap(adapter.ToView(err).Redacted())
	if meta.Correlation != "" {
		body["correlation"] = meta.Correlation
	}
	if meta.TraceID != "" {
		body["traceId"] = meta.TraceID
	}
	if meta.SpanID != "" {
		body["spanId"] = meta.SpanID
	}

	rw.Header().Set("Content-Type", ContentType)
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(code)

	s, perr := structpb.NewStruct(body)
	if perr != nil {
		return
	}
	b, merr := protojson.MarshalOptions{EmitUnpopulated: true}.Marshal(s)
	if merr != nil {
		return
	}
	_, _ = rw.Write(b)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts fn to http.Handler. When fn returns an error, it is written
// with Write and the Meta produced by w.MetaFn.
//
// fn must not have written a response before failing.
func (w Writer) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		err := fn(rw, r)
		if err == nil {
			return
		}
		var meta Meta
		if w.MetaFn != nil {
			meta = w.MetaFn(r, err)
		}
		w.Write(rw, err, meta)
	})
}

// FromResponse builds an error from a non-2xx response of a peer. The
// response body is not read. Responses with a 2xx or 3xx status yield nil.
func FromResponse(resp *http.Response) *snag.Error {
	if resp == nil || resp.StatusCode < 400 {
		return nil
	}
	return adapter.FromCode(status.HTTP, resp.StatusCode, nil, resp.Status)
}
