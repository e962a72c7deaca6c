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
	"fmt"
	"strings"
)

// Explain produces a textual trace of how id resolves against the table.
//
// Example output:
//
//	id="HTTP_404_Not_Found" source=table
//	http: HTTP_404_Not_Found -> 404 (requested)
//	amqp: AMQP_404_Not_Found -> 404
//	ws:   WS_1008_Policy_Violation -> 1008
//	grpc: GRPC_5_NOT_FOUND -> 5
//	set:  not_found
//
// Notes:
//   - source ∈ {table | default | unknown | malformed}
//   - set ∈ {unhandled | not_found | none}, computed on the requested id
//
// This is intended for inspection and logging, not for stable machine parsing.
func Explain(id ID) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "id=%q source=%s\n", id, source(id))

	ids := Expand(id)
	byProto := make(map[Protocol]ID, len(ids))
	for _, x := range ids {
		byProto[x.Protocol()] = x
	}
	for _, p := range protocols {
		x := byProto[p]
		label := fmt.Sprintf("%s:", p)
		suffix := ""
		if x == id {
			suffix = " (requested)"
		}
		_, _ = fmt.Fprintf(&b, "%-5s %s -> %d%s\n", label, x, x.Code(), suffix)
	}

	set := "none"
	switch {
	case IsNotFound(id):
		set = "not_found"
	case IsUnhandled(id) || id == Default:
		set = "unhandled"
	}
	_, _ = fmt.Fprintf(&b, "set:  %s", set)
	return b.String()
}

func source(id ID) string {
	if id == Default {
		return "default"
	}
	if _, ok := LookupOK(id); ok {
		return "table"
	}
	if id.Protocol() == "" {
		return "malformed"
	}
	return "unknown"
}
