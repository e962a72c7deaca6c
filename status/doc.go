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

// Package status holds the cross-protocol status equivalence table used by
// snag errors.
//
// A status identifier (ID) names one protocol-specific status, close or
// termination code, e.g. "HTTP_404_Not_Found", "AMQP_404_Not_Found",
// "WS_1008_Policy_Violation" or "GRPC_5_NOT_FOUND". The identifier format is
// part of the contract:
//
//	<PROTOCOL>_<NUMERIC_CODE>_<Description>
//
// where PROTOCOL is one of HTTP, AMQP, WS or GRPC and NUMERIC_CODE is a
// non-negative decimal integer. Parse splits an ID on "_" and reads the
// second token as the numeric code.
//
// The equivalence table maps every known ID to the equivalent IDs of the
// three other protocols:
//
//	status.Lookup(status.HTTP404NotFound)
//	// Row{AMQP: AMQP_404_Not_Found, WS: WS_1008_Policy_Violation, GRPC: GRPC_5_NOT_FOUND}
//
// Unknown IDs and the Default sentinel resolve to the DEFAULT row
// (HTTP 500 / AMQP 541 / WS 1011 / gRPC 13).
//
// The table is built and validated once at package initialization. A
// malformed entry makes the package panic at init instead of producing
// broken codes at runtime. After initialization the table is read-only and
// safe for concurrent use; every exported accessor returns copies.
package status
