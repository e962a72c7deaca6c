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

// Package zapx logs snag errors with go.uber.org/zap.
//
// The error is encoded as a structured object under the "error" key: the
// production-safe fields by default, or the verbose projection (breadcrumbs,
// statuses, timestamps, stack and cause chain) when requested. The entry
// level follows the error's Level.
package zapx

import (
	"sort"

	"dirpx.dev/snag"
	"dirpx.dev/snag/status"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FieldKey is the key under which errors are logged.
const FieldKey = "error"

// Level maps a snag level to a zap level. Fatal errors are logged at Error
// level: logging must never terminate the process. Unknown levels and
// LevelNil log at Error.
func Level(l snag.Level) zapcore.Level {
	switch l {
	case snag.LevelWarning:
		return zapcore.WarnLevel
	case snag.LevelLog, snag.LevelInfo:
		return zapcore.InfoLevel
	case snag.LevelDebug:
		return zapcore.DebugLevel
	}
	return zapcore.ErrorLevel
}

// Marshaler encodes an error as a zap object.
type Marshaler struct {
	Err     *snag.Error
	Verbose bool
	// Depth bounds the cause chain in verbose mode; <= 0 means
	// snag.DefaultDepth.
	Depth int
}

var _ zapcore.ObjectMarshaler = Marshaler{}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m Marshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if m.Err == nil {
		return nil
	}
	fields := m.Err.JSON(m.Verbose, m.Depth)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := encode(enc, k, fields[k]); err != nil {
			return err
		}
	}
	return nil
}

func encode(enc zapcore.ObjectEncoder, key string, v any) error {
	switch x := v.(type) {
	case string:
		enc.AddString(key, x)
	case bool:
		enc.AddBool(key, x)
	case int:
		enc.AddInt(key, x)
	case int64:
		enc.AddInt64(key, x)
	case status.Codes:
		return enc.AddObject(key, codes(x))
	case []string:
		return enc.AddArray(key, zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, s := range x {
				ae.AppendString(s)
			}
			return nil
		}))
	default:
		return enc.AddReflected(key, x)
	}
	return nil
}

type codes status.Codes

func (c codes) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt(string(status.HTTP), c.HTTP)
	enc.AddInt(string(status.AMQP), c.AMQP)
	enc.AddInt(string(status.WS), c.WS)
	enc.AddInt(string(status.GRPC), c.GRPC)
	return nil
}

// Field returns the zap field for err. Errors that are not *snag.Error are
// wrapped with snag.Ensure. A nil error yields zap.Skip().
func Field(err error, verbose bool) zap.Field {
	se := snag.Ensure(err)
	if se == nil {
		return zap.Skip()
	}
	return zap.Object(FieldKey, Marshaler{Err: se, Verbose: verbose})
}

// Log writes err to logger at the level derived from the error, with the
// verbose projection attached. The entry message is err.Error().
func Log(logger *zap.Logger, err error, fields ...zap.Field) {
	se := snag.Ensure(err)
	if se == nil || logger == nil {
		return
	}
	if ce := logger.Check(Level(se.Level), se.Error()); ce != nil {
		all := make([]zap.Field, 0, len(fields)+1)
		all = append(all, fields...)
		ce.Write(append(all, Field(se, true))...)
	}
}
