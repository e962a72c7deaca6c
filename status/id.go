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

package status

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Protocol names one of the four transports covered by the equivalence table.
type Protocol string

const (
	HTTP Protocol = "http"
	AMQP Protocol = "amqp"
	WS   Protocol = "ws"
	GRPC Protocol = "grpc"
)

// protocols is the canonical protocol order. Expanded status lists and
// Explain output follow it.
var protocols = [...]Protocol{HTTP, AMQP, WS, GRPC}

// Protocols returns the four protocols in canonical order.
func Protocols() []Protocol {
	out := make([]Protocol, len(protocols))
	copy(out, protocols[:])
	return out
}

// ParseProtocol resolves a protocol name case-insensitively.
func ParseProtocol(s string) (Protocol, error) {
	p := Protocol(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
	}
	return p, nil
}

// Valid reports whether p is one of the four known protocols.
func (p Protocol) Valid() bool {
	switch p {
	case HTTP, AMQP, WS, GRPC:
		return true
	}
	return false
}

// String returns the lowercase protocol name.
func (p Protocol) String() string { return string(p) }

var (
	// ErrInvalidID is returned when a string does not follow the
	// <PROTOCOL>_<NUMERIC_CODE>_<Description> format.
	ErrInvalidID = errors.New("snag: invalid status identifier")

	// ErrUnknownProtocol is returned for protocol names other than
	// http, amqp, ws and grpc.
	ErrUnknownProtocol = errors.New("snag: unknown protocol")
)

// ID is a status identifier such as "HTTP_404_Not_Found".
//
// IDs are opaque keys into the equivalence table. The numeric code is not
// stored separately: it is recovered by Parse, so an ID is always its own
// source of truth.
type ID string

// Status is the parsed form of an ID.
type Status struct {
	// Protocol is the transport the code belongs to.
	Protocol Protocol
	// Code is the numeric status, close or termination code.
	Code int
	// Name is the human description following the code, e.g. "Not_Found".
	Name string
}

var (
	_ encoding.TextMarshaler   = (*ID)(nil)
	_ encoding.TextUnmarshaler = (*ID)(nil)
)

// Parse splits s into protocol, numeric code and description. The protocol
// token must be uppercase, as in the table keys.
//
// The Default sentinel is not a parseable identifier and yields
// ErrInvalidID like any other malformed input.
func Parse(s string) (Status, error) {
	parts := strings.SplitN(s, "_", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Status{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	if parts[0] != strings.ToUpper(parts[0]) {
		return Status{}, fmt.Errorf("%w: %q: protocol must be uppercase", ErrInvalidID, s)
	}
	p, err := ParseProtocol(parts[0])
	if err != nil {
		return Status{}, fmt.Errorf("%w: %q: %w", ErrInvalidID, s, err)
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil || code < 0 {
		return Status{}, fmt.Errorf("%w: %q: bad numeric code %q", ErrInvalidID, s, parts[1])
	}
	return Status{Protocol: p, Code: code, Name: parts[2]}, nil
}

// MustParse is the panic-on-error variant of Parse. It is used while
// loading the table, where a malformed identifier is a programming error.
func MustParse(s string) Status {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Validate checks that id is either the Default sentinel or a well-formed
// identifier. It does not require id to be a table key; use LookupOK for that.
func Validate(id ID) error {
	if id == Default {
		return nil
	}
	_, err := Parse(string(id))
	return err
}

// Parse is shorthand for Parse(string(id)).
func (id ID) Parse() (Status, error) { return Parse(string(id)) }

// Protocol returns the protocol encoded in id, or "" when id is malformed.
func (id ID) Protocol() Protocol {
	st, err := Parse(string(id))
	if err != nil {
		return ""
	}
	return st.Protocol
}

// Code returns the numeric code encoded in id, or 0 when id is malformed.
func (id ID) Code() int {
	st, err := Parse(string(id))
	if err != nil {
		return 0
	}
	return st.Code
}

// String returns the identifier as-is.
func (id ID) String() string { return string(id) }

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The identifier is trimmed and validated, but its case is preserved.
func (id *ID) UnmarshalText(text []byte) error {
	parsed := ID(bytes.TrimSpace(text))
	if err := Validate(parsed); err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ID rebuilds the identifier from its parts.
func (s Status) ID() ID {
	return ID(fmt.Sprintf("%s_%d_%s", strings.ToUpper(string(s.Protocol)), s.Code, s.Name))
}
