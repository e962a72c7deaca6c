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

package adapter

import (
	"dirpx.dev/snag"
	"dirpx.dev/snag/apis"
	"dirpx.dev/snag/status"
)

// UnknownName is the description used for identifiers synthesized for codes
// that have no table entry, e.g. "HTTP_499_Unknown".
const UnknownName = "Unknown"

// IDFor returns the table key of protocol p for code. Codes without a table
// entry yield a synthesized, well-formed identifier named UnknownName: it
// carries code for p and the DEFAULT codes for the other protocols. An
// invalid protocol yields status.Default.
func IDFor(p status.Protocol, code int) status.ID {
	if !p.Valid() {
		return status.Default
	}
	if id, ok := status.Find(p, code); ok {
		return id
	}
	return status.Status{Protocol: p, Code: code, Name: UnknownName}.ID()
}

// FromCode builds an error for a raw transport code received from a peer,
// e.g. an HTTP response status, an AMQP channel.close reply code, a
// WebSocket close code or a gRPC status code.
//
// cause is attached as the offending value when non-nil. message overrides
// the message extracted from cause when non-empty.
func FromCode(p status.Protocol, code int, cause any, message string) *snag.Error {
	opts := []snag.Option{snag.WithStatus(IDFor(p, code))}
	if cause != nil {
		opts = append(opts, snag.WithError(cause))
	}
	if message != "" {
		opts = append(opts, snag.WithMessage(message))
	}
	return snag.E(opts...)
}

// StatusOf returns the code of protocol p for err. Errors that do not carry
// statuses get the DEFAULT code. A nil error yields 0.
func StatusOf(err error, p status.Protocol) int {
	if err == nil {
		return 0
	}
	if sc, ok := err.(apis.StatusCoder); ok {
		return sc.Status(p)
	}
	if p == "" {
		p = status.HTTP
	}
	v, _ := status.DefaultCodes().Get(p)
	return v
}

// ToView converts any error into its production-safe View. Errors that are
// not apis.ViewProvider are wrapped with snag.Ensure first.
//
// No redaction is applied; call View.Redacted before exposing the result to
// end users.
func ToView(err error) apis.View {
	if err == nil {
		return apis.View{}
	}
	if vp, ok := err.(apis.ViewProvider); ok {
		return vp.View()
	}
	return snag.Ensure(err).View()
}

// ToDescriptor converts any error into a flat Descriptor. The message is
// included only when the error allows it to be shown to clients.
func ToDescriptor(err error) apis.Descriptor {
	if err == nil {
		return apis.Descriptor{}
	}
	se := snag.Ensure(err)
	d := apis.Descriptor{
		Tag:            string(se.Tag),
		AdditionalTags: se.ErrorTags(),
		Level:          string(se.Level),
		Message:        se.ClientMessage(),
		HTTPStatus:     se.StatusCodes.HTTP,
		AMQPCode:       se.StatusCodes.AMQP,
		WSCode:         se.StatusCodes.WS,
		GRPCCode:       se.StatusCodes.GRPC,
	}
	if len(se.Statuses) > 0 {
		d.Statuses = make([]string, len(se.Statuses))
		for i, id := range se.Statuses {
			d.Statuses[i] = string(id)
		}
	}
	return d
}
