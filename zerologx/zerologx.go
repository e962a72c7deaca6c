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

// Package zerologx logs snag errors with github.com/rs/zerolog.
//
// It mirrors zapx: the error is written as a nested object under the
// "error" key and the event level follows the error's Level.
package zerologx

import (
	"sort"

	"dirpx.dev/snag"
	"dirpx.dev/snag/status"
	"github.com/rs/zerolog"
)

// FieldKey is the key under which errors are logged.
const FieldKey = "error"

// Level maps a snag level to a zerolog level. Fatal errors are logged at
// Error level so that logging never exits the process.
func Level(l snag.Level) zerolog.Level {
	switch l {
	case snag.LevelWarning:
		return zerolog.WarnLevel
	case snag.LevelLog, snag.LevelInfo:
		return zerolog.InfoLevel
	case snag.LevelDebug:
		return zerolog.DebugLevel
	}
	return zerolog.ErrorLevel
}

// Marshaler encodes an error as a zerolog object.
type Marshaler struct {
	Err     *snag.Error
	Verbose bool
	Depth   int
}

var _ zerolog.LogObjectMarshaler = Marshaler{}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (m Marshaler) MarshalZerologObject(e *zerolog.Event) {
	if m.Err == nil {
		return
	}
	fields := m.Err.JSON(m.Verbose, m.Depth)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch x := fields[k].(type) {
		case string:
			e.Str(k, x)
		case bool:
			e.Bool(k, x)
		case int:
			e.Int(k, x)
		case int64:
			e.Int64(k, x)
		case []string:
			e.Strs(k, x)
		case status.Codes:
			e.Dict(k, zerolog.Dict().
				Int(string(status.HTTP), x.HTTP).
				Int(string(status.AMQP), x.AMQP).
				Int(string(status.WS), x.WS).
				Int(string(status.GRPC), x.GRPC))
		default:
			e.Interface(k, x)
		}
	}
}

// Log writes err to logger at the level derived from the error, with the
// verbose projection attached. The event message is err.Error().
func Log(logger zerolog.Logger, err error) {
	se := snag.Ensure(err)
	if se == nil {
		return
	}
	logger.WithLevel(Level(se.Level)).
		Object(FieldKey, Marshaler{Err: se, Verbose: true}).
		Msg(se.Error())
}

// Event attaches err to an event the caller is building, e.g.
//
//	zerologx.Event(log.Warn(), err, false).Str("route", r.URL.Path).Msg("request failed")
//
// A nil event is returned as-is.
func Event(e *zerolog.Event, err error, verbose bool) *zerolog.Event {
	se := snag.Ensure(err)
	if se == nil {
		return e
	}
	return e.Object(FieldKey, Marshaler{Err: se, Verbose: verbose})
}
