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
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/snag/apis"
	"dirpx.dev/snag/status"
)

// DefaultDepth is the number of nested causes JSON descends into when it is
// given a non-positive depth.
const DefaultDepth = 8

// View returns the production-safe projection of e.
func (e *Error) View() apis.View {
	if e == nil {
		return apis.View{
			StatusCode:     status.DefaultCodes().HTTP,
			StatusCodes:    status.DefaultCodes(),
			Tag:            string(NotHandled),
			AdditionalTags: []string{},
			Level:          string(LevelNil),
		}
	}
	return apis.View{
		Message:             e.Message,
		ShowMessageToClient: e.ShowMessageToClient,
		StatusCode:          e.StatusCode,
		StatusCodes:         e.StatusCodes,
		Tag:                 string(e.Tag),
		AdditionalTags:      tagStrings(e.AdditionalTags),
		Level:               string(e.Level),
	}
}

// MarshalJSON emits the production-safe projection (see View).
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.View())
}

// JSON returns e as a map for logging and telemetry sinks.
//
// When verbose is false the map holds exactly the View fields:
// message, showMessageToClient, statusCode, statusCodes, tag,
// additionalTags and level.
//
// When verbose is true every field is included, plus the stack and the
// cause chain under "error". Each error in the chain becomes a map (a *Error
// becomes its verbose fields, any other error becomes message, type and
// stack) and its own cause is nested under "error" again, up to depth
// levels. A non-positive depth means DefaultDepth, so a depth of 0 still
// walks the chain rather than omitting "error". A cause beyond depth is
// rendered as its Error() string; a non-error cause ends the chain and is
// included as-is. JSON never panics; a failing walk returns what it has.
func (e *Error) JSON(verbose bool, depth int) map[string]any {
	if !verbose {
		v := e.View()
		return map[string]any{
			"message":             v.Message,
			"showMessageToClient": v.ShowMessageToClient,
			"statusCode":          v.StatusCode,
			"statusCodes":         v.StatusCodes,
			"tag":                 v.Tag,
			"additionalTags":      v.AdditionalTags,
			"level":               v.Level,
		}
	}
	if e == nil {
		return nil
	}
	if depth <= 0 {
		depth = DefaultDepth
	}
	m := e.fields()
	m["error"] = chain(e.Err, depth)
	return m
}

// fields returns the verbose map of e without its cause.
func (e *Error) fields() map[string]any {
	return map[string]any{
		"message":             e.Message,
		"showMessageToClient": e.ShowMessageToClient,
		"statuses":            e.Statuses,
		"statusCode":          e.StatusCode,
		"statusCodes":         e.StatusCodes,
		"tag":                 string(e.Tag),
		"additionalTags":      tagStrings(e.AdditionalTags),
		"breadcrumbs":         e.Breadcrumbs,
		"level":               string(e.Level),
		"timestamp":           e.Timestamp(),
		"timestamptz":         e.TimestampTZ(),
		"stack":               e.Stack(),
	}
}

// chain renders the cause v and its nested causes.
func chain(v any, depth int) (out any) {
	var root any
	set := func(x any) { root = x }
	defer func() {
		if recover() != nil {
			out = root
		}
	}()

	for d := depth; ; d-- {
		err, ok := v.(error)
		if !ok {
			set(v)
			return root
		}
		if d <= 0 {
			set(safeError(err))
			return root
		}
		m, next := describe(err)
		set(m)
		if next == nil {
			return root
		}
		set = func(x any) { m["error"] = x }
		v = next
	}
}

// describe returns the verbose map of err and its cause.
func describe(err error) (map[string]any, any) {
	var se *Error
	if e, ok := err.(*Error); ok {
		se = e
	}
	if se != nil {
		return se.fields(), se.Err
	}

	m := map[string]any{
		"message": safeError(err),
		"type":    fmt.Sprintf("%T", err),
		"stack":   stackOf(err),
	}
	if next := errors.Unwrap(err); next != nil {
		return m, next
	}
	return m, nil
}

// stackOf returns the stack recorded by err, if it recorded one.
func stackOf(err error) string {
	if st, ok := err.(stackTracer); ok {
		return fmt.Sprintf("%s%+v", safeError(err), st.StackTrace())
	}
	return ""
}

func safeError(err error) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return err.Error()
}
