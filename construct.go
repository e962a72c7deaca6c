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

package snag

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/snag/status"
	"github.com/mitchellh/mapstructure"
	pkgerrors "github.com/pkg/errors"
)

// now is the clock used for creation timestamps.
var now = time.Now

// New builds an Error from any value. It never panics.
//
// The input is classified once:
//   - nil becomes the message "null";
//   - strings, booleans and numbers become the message;
//   - an error is attached as Err and its message extracted; a *Error
//     additionally contributes its message, tags, breadcrumbs, level and
//     client visibility;
//   - Options and *Options are used as-is;
//   - map[string]any is decoded into Options, keyed by the mapstructure tags;
//   - anything else is attached as Err.
func New(v any) *Error {
	return build(classify(v))
}

// E builds an Error from functional options.
//
//	err := snag.E(
//		snag.WithError(cause),
//		snag.WithStatus(status.HTTP404NotFound),
//		snag.WithBreadcrumbs(userID),
//	)
func E(opts ...Option) *Error {
	return build(apply(opts))
}

// classify turns a constructor input into an Options record.
func classify(v any) Options {
	switch x := v.(type) {
	case nil:
		return Options{Message: "null", set: fieldMessage}
	case *Error:
		if x == nil {
			return Options{Message: "null", set: fieldMessage}
		}
		return flatten(x)
	case error:
		return Options{Err: x, set: fieldErr}
	case Options:
		return x
	case *Options:
		if x == nil {
			return Options{}
		}
		return *x
	case map[string]any:
		return decode(x)
	case string:
		return Options{Message: x, set: fieldMessage}
	}

	if msg, ok := scalar(reflect.ValueOf(v)); ok {
		return Options{Message: msg, set: fieldMessage}
	}
	return Options{Err: v, set: fieldErr}
}

// flatten copies the classification of an existing Error. Statuses are not
// carried over: the new Error starts from the DEFAULT row.
func flatten(e *Error) Options {
	return Options{
		Err:                 e,
		Message:             e.Message,
		ShowMessageToClient: e.ShowMessageToClient,
		Tag:                 e.Tag,
		AdditionalTags:      cloneSlice(e.AdditionalTags),
		Breadcrumbs:         cloneSlice(e.Breadcrumbs),
		Level:               e.Level,
		set: fieldErr | fieldMessage | fieldShowMessageToClient | fieldTag |
			fieldAdditionalTags | fieldBreadcrumbs | fieldLevel,
	}
}

// decodeKeys maps map keys to presence bits.
var decodeKeys = map[string]field{
	"error":               fieldErr,
	"message":             fieldMessage,
	"showMessageToClient": fieldShowMessageToClient,
	"setStatus":           fieldSetStatus,
	"tag":                 fieldTag,
	"additionalTags":      fieldAdditionalTags,
	"breadcrumbs":         fieldBreadcrumbs,
	"level":               fieldLevel,
}

// decode reads map input into Options. Fields that fail to decode are
// dropped; the rest are kept.
func decode(m map[string]any) (o Options) {
	defer func() {
		if recover() != nil {
			o = Options{Err: m["error"]}
		}
	}()

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &o,
		Metadata:         &md,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return Options{Err: m["error"]}
	}
	// Partial results are kept on error.
	_ = dec.Decode(m)

	for _, k := range md.Keys {
		if f, ok := decodeKeys[k]; ok {
			o.set |= f
		}
	}
	// mapstructure drops nil values from Keys; presence of "error" is still
	// meaningful.
	if _, ok := m["error"]; ok {
		o.Err = m["error"]
		o.set |= fieldErr
	}
	return o
}

// scalar renders booleans and numbers the way a JSON-minded caller expects:
// no exponent for ordinary magnitudes, "Infinity" and "NaN" spelled out.
func scalar(rv reflect.Value) (string, bool) {
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float()), true
	}
	return "", false
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// build runs the construction algorithm over an Options record.
func build(o Options) *Error {
	// 1) Creation time and defaults.
	e := &Error{
		created:        now(),
		Statuses:       status.Expand(status.Default),
		StatusCodes:    status.DefaultCodes(),
		Tag:            NotHandled,
		AdditionalTags: []Tag{},
		Breadcrumbs:    []any{},
		Level:          LevelNil,
	}

	// 2) Message: explicit, then extracted from Err.
	if o.has(fieldMessage) {
		e.Message = o.Message
	} else {
		e.Message = extractMessage(o.Err)
	}

	if o.has(fieldShowMessageToClient) {
		e.ShowMessageToClient = o.ShowMessageToClient
	}

	// 3) Status expansion. HTTP is mirrored into StatusCode regardless.
	if o.has(fieldSetStatus) && o.SetStatus != status.Default {
		e.Statuses = status.Expand(o.SetStatus)
		e.StatusCodes = status.CodesOf(e.Statuses...)
	}
	e.StatusCode = e.StatusCodes.HTTP

	// 4) Tag: explicit wins, otherwise inferred from the requested status.
	if o.has(fieldTag) {
		e.Tag = o.Tag
	} else {
		e.Tag = inferTag(o.SetStatus)
	}

	// 5) Remaining fields only when present.
	if o.has(fieldAdditionalTags) {
		e.AdditionalTags = o.AdditionalTags
		if o.owned {
			e.AdditionalTags = cloneSlice(o.AdditionalTags)
		}
	}
	if o.has(fieldBreadcrumbs) {
		e.Breadcrumbs = o.Breadcrumbs
		if o.owned {
			e.Breadcrumbs = cloneSlice(o.Breadcrumbs)
		}
	}
	if o.has(fieldErr) {
		e.Err = o.Err
	}
	if o.has(fieldLevel) {
		e.Level = o.Level
	}

	// 6) Stack, starting at the caller of the public constructor.
	e.stack = captureStack()
	return e
}

// inferTag classifies a requested status when no tag was given. The Default
// sentinel is not one of the unhandled identifiers and infers NotCategorised.
func inferTag(id status.ID) Tag {
	switch {
	case status.IsNotFound(id):
		return ResultNotFound
	case id != "" && !status.IsUnhandled(id):
		return NotCategorised
	}
	return NotHandled
}

// extractMessage derives a message from the offending value. Values whose
// formatting panics yield "".
func extractMessage(v any) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()

	switch x := v.(type) {
	case nil:
		return ""
	case error:
		return x.Error()
	case map[string]any:
		if m, ok := x["message"]; ok {
			return fmt.Sprint(m)
		}
		return ""
	case interface{ GetMessage() string }:
		return x.GetMessage()
	case interface{ Message() string }:
		return x.Message()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ""
	}
	f := rv.FieldByName("Message")
	if !f.IsValid() || !f.CanInterface() {
		return ""
	}
	return fmt.Sprint(f.Interface())
}

// constructors are the frames stripped from captured stacks.
var constructors = map[string]struct{}{
	"dirpx.dev/snag.captureStack": {},
	"dirpx.dev/snag.build":        {},
	"dirpx.dev/snag.New":          {},
	"dirpx.dev/snag.E":            {},
	"dirpx.dev/snag.Ensure":       {},
	"dirpx.dev/snag.(*Error).New": {},
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func captureStack() string {
	st, ok := pkgerrors.New("").(stackTracer)
	if !ok {
		return ""
	}
	frames := st.StackTrace()
	for len(frames) > 0 {
		if _, skip := constructors[frameName(frames[0])]; !skip {
			break
		}
		frames = frames[1:]
	}

	var b strings.Builder
	for i, f := range frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%+v", f)
	}
	return b.String()
}

// frameName returns the fully qualified function name of f.
func frameName(f pkgerrors.Frame) string {
	name, _, _ := strings.Cut(fmt.Sprintf("%+s", f), "\n")
	return name
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
