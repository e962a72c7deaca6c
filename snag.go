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
	"errors"
	"fmt"
	"io"
	"time"

	"dirpx.dev/snag/apis"
	"dirpx.dev/snag/status"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// Tag is the primary, application-level classification of an error.
// Any string is accepted; the constants below are the built-in tags.
type Tag string

const (
	// NotHandled is the default tag: nobody classified the error.
	NotHandled Tag = "not_handled"

	// NotCategorised marks an error that was given an explicit, non-default
	// status but no tag.
	NotCategorised Tag = "not_categorised"

	// ResultNotFound marks an error whose status is one of the not-found
	// codes (see status.NotFoundCodes).
	ResultNotFound Tag = "result_not_found"
)

// Level is the severity classification of an error.
type Level string

const (
	LevelNil     Level = "nil"
	LevelFatal   Level = "fatal"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelLog     Level = "log"
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelNil, LevelFatal, LevelError, LevelWarning, LevelLog, LevelInfo, LevelDebug:
		return true
	}
	return false
}

// Error is a normalized, cross-protocol error.
//
// It carries:
//   - Message: human description, never undefined (defaults to "");
//   - Err: the original offending value, if any;
//   - Tag / AdditionalTags: application-level classification;
//   - Breadcrumbs: arbitrary debugging context;
//   - Statuses / StatusCodes / StatusCode: the active status of every
//     protocol, resolved through the status equivalence table;
//   - ShowMessageToClient and Level.
//
// Fields are exported and may be changed directly. The creation time and the
// stack are fixed at construction.
//
// Ownership: slices handed over through WithAdditionalTags and
// WithBreadcrumbs are borrowed, not copied, unless WithOwnedSlices is used.
// Add appends to Breadcrumbs in place.
type Error struct {
	// Message is the human-readable description.
	Message string

	// Err is the original offending value. It is usually an error, but any
	// value is accepted and kept as-is.
	Err any

	// ShowMessageToClient reports whether Message is safe for end users.
	ShowMessageToClient bool

	// Statuses lists the four status identifiers active for this error,
	// one per protocol, the requested one first.
	Statuses []status.ID

	// StatusCode is the HTTP status. It mirrors StatusCodes.HTTP for
	// consumers that assume HTTP as the default transport.
	StatusCode int

	// StatusCodes holds the numeric code of every protocol.
	StatusCodes status.Codes

	// Tag is the primary classification.
	Tag Tag

	// AdditionalTags are secondary classifications.
	AdditionalTags []Tag

	// Breadcrumbs holds debugging context, in insertion order.
	Breadcrumbs []any

	// Level is the severity classification.
	Level Level

	created time.Time
	stack   string
}

var (
	_ error                = (*Error)(nil)
	_ apis.StatusCoder     = (*Error)(nil)
	_ apis.TaggedError     = (*Error)(nil)
	_ apis.ViewProvider    = (*Error)(nil)
	_ apis.VerboseProvider = (*Error)(nil)
	_ fmt.Formatter        = (*Error)(nil)
)

// Error implements the built-in error interface.
//
// The format is:
//
//	<tag>: <message>
//
// or just <tag> when the message is empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Tag)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

// Unwrap returns Err when it is an error, enabling errors.Is / errors.As
// chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Err.(error); ok {
		return err
	}
	return nil
}

// Format implements fmt.Formatter. %+v prints the error followed by its
// stack; other verbs print Error().
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			if e != nil {
				_, _ = io.WriteString(s, "\n")
				_, _ = io.WriteString(s, e.Stack())
			}
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// Status returns the numeric code for protocol p. The empty protocol means
// HTTP. Unknown protocols yield 0. A nil error reports the DEFAULT codes.
func (e *Error) Status(p status.Protocol) int {
	if p == "" {
		p = status.HTTP
	}
	codes := status.DefaultCodes()
	if e != nil {
		codes = e.StatusCodes
	}
	v, _ := codes.Get(p)
	return v
}

// SetStatusCode overrides the code of one protocol and keeps StatusCode in
// sync with the HTTP entry. It reports whether p was known. Statuses is left
// untouched: it records identifiers, not raw codes.
func (e *Error) SetStatusCode(p status.Protocol, code int) bool {
	if e == nil {
		return false
	}
	if p == "" {
		p = status.HTTP
	}
	if !e.StatusCodes.Set(p, code) {
		return false
	}
	e.StatusCode = e.StatusCodes.HTTP
	return true
}

// ErrorTag implements apis.TaggedError.
func (e *Error) ErrorTag() string {
	if e == nil {
		return ""
	}
	return string(e.Tag)
}

// ErrorTags implements apis.TaggedError.
func (e *Error) ErrorTags() []string {
	if e == nil {
		return nil
	}
	return tagStrings(e.AdditionalTags)
}

// ClientMessage returns Message when it may be shown to an end user and ""
// otherwise.
func (e *Error) ClientMessage() string {
	if e == nil || !e.ShowMessageToClient {
		return ""
	}
	return e.Message
}

// Timestamp returns the creation time in milliseconds since the Unix epoch.
func (e *Error) Timestamp() int64 { return e.Created().UnixMilli() }

// TimestampTZ returns the creation time as an ISO-8601 UTC string with
// millisecond precision, e.g. "2025-01-02T15:04:05.000Z".
func (e *Error) TimestampTZ() string { return e.Created().UTC().Format(isoMillis) }

// Created returns the creation time. A nil error has the zero time.
func (e *Error) Created() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.created
}

// Stack returns the stack captured at construction, headed by the type name
// and the current message. Frames belonging to the snag constructors are
// stripped, so the first frame is the call site.
func (e *Error) Stack() string {
	header := typeName
	if e == nil {
		return header
	}
	if e.Message != "" {
		header += ": " + e.Message
	}
	if e.stack == "" {
		return header
	}
	return header + "\n" + e.stack
}

// GRPCStatus lets grpc-go turn an *Error returned from a handler into a
// status carrying StatusCodes.GRPC. The message is ClientMessage.
func (e *Error) GRPCStatus() *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}
	return gstatus.New(gcodes.Code(e.StatusCodes.GRPC), e.ClientMessage())
}

// Ensure returns the *Error found in err's chain, or wraps err with New.
// Ensure(nil) returns nil.
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) && se != nil {
		return se
	}
	return build(classify(err))
}

const (
	typeName  = "snag.Error"
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

func tagStrings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
