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

// Package snag provides a normalized, cross-protocol error value.
//
// An *Error carries a message, the original offending value, an
// application-level tag, breadcrumbs, a severity level and the numeric
// status of every supported transport: HTTP, AMQP 0-9-1, WebSocket close
// codes and gRPC. Requesting one status, e.g.
//
//	snag.E(snag.WithStatus(status.HTTP404NotFound))
//
// fills in the equivalent codes of the other protocols from the status
// equivalence table (see package status), so any response layer can read
// the code of its own transport with Status.
//
// Construction never panics and accepts anything: strings, numbers, nil,
// errors, Options records and map[string]any. Errors are meant to be built
// inside already-failing code paths.
//
// Two projections exist. View (and MarshalJSON) is production-safe and is
// the shape sent to clients. JSON(true, depth) is the verbose, debugging
// form with breadcrumbs, stack and the unwrapped cause chain; it is meant
// for logs only.
package snag
