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

// Descriptor is a flat, transport-friendly description of an error.
//
// It is meant for places where only scalar fields travel well: message
// headers (AMQP tables), log fields, trace attributes. Unlike View it keeps
// the identifiers in Statuses and never carries a nested structure.
//
// This type intentionally uses strings (not the snag Tag / Level / status.ID
// value types) so that it can live in the public "apis" layer.
type Descriptor struct {
	// Tag is the primary classification, e.g. "result_not_found".
	Tag string `json:"tag"`

	// AdditionalTags are secondary classifications.
	AdditionalTags []string `json:"additional_tags,omitempty"`

	// Level is the severity classification.
	Level string `json:"level,omitempty"`

	// Message is the client-visible message. It is empty unless the error
	// allows showing its message to clients.
	Message string `json:"message,omitempty"`

	// Statuses are the active status identifiers, the requested one first.
	Statuses []string `json:"statuses,omitempty"`

	// HTTPStatus is the HTTP status code.
	HTTPStatus int `json:"http_status"`

	// AMQPCode is the AMQP 0-9-1 reply code.
	AMQPCode int `json:"amqp_code"`

	// WSCode is the WebSocket close code.
	WSCode int `json:"ws_code"`

	// GRPCCode is the gRPC status code (as integer).
	GRPCCode int `json:"grpc_code"`
}
