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

package apis

import "dirpx.dev/snag/status"

// StatusCoder represents an error that already carries a numeric status for
// every protocol in the equivalence table.
//
// Response layers (HTTP handlers, gRPC interceptors, WebSocket close paths,
// AMQP channel handlers) ask it for the code of the transport they write to,
// instead of mapping error kinds themselves.
type StatusCoder interface {
	error

	// Status returns the numeric code for protocol p. The empty protocol
	// means HTTP. Unknown protocols yield 0.
	Status(p status.Protocol) int
}

// TaggedError represents an error classified by an application-level tag.
//
// Tags are meant for downstream if/else or switch handling and are distinct
// from protocol status codes: "result_not_found" may travel with an HTTP 404
// or with an AMQP 404, the tag stays the same.
type TaggedError interface {
	error

	// ErrorTag returns the primary tag. Never empty for snag errors.
	ErrorTag() string

	// ErrorTags returns the additional tags. May be empty.
	ErrorTags() []string
}

// ViewProvider is implemented by errors that can produce the production-safe
// View of themselves.
type ViewProvider interface {
	error

	// View returns a snapshot that is safe to marshal. Callers that talk to
	// end users should still apply View.Redacted.
	View() View
}

// VerboseProvider is implemented by errors that can produce the unrestricted,
// development-oriented projection of themselves, including breadcrumbs, the
// stack and the unwrapped cause chain.
//
// Logging and telemetry sinks use it; it must never be sent to end users.
type VerboseProvider interface {
	error

	// JSON returns the projection. verbose=false yields the View fields only.
	// depth bounds how many nested causes are unwrapped.
	JSON(verbose bool, depth int) map[string]any
}
