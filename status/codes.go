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

// Codes holds one numeric code per protocol.
//
// The JSON shape ({"http":..,"amqp":..,"ws":..,"grpc":..}) is part of the
// public error view, so field tags must not change.
type Codes struct {
	HTTP int `json:"http"`
	AMQP int `json:"amqp"`
	WS   int `json:"ws"`
	GRPC int `json:"grpc"`
}

// DefaultCodes returns the numeric codes of the DEFAULT row:
// HTTP 500, AMQP 541, WS 1011, gRPC 13.
func DefaultCodes() Codes {
	var c Codes
	c.Apply(tbl.def.list()...)
	return c
}

// Get returns the code for protocol p. The boolean is false for unknown
// protocols.
func (c Codes) Get(p Protocol) (int, bool) {
	switch p {
	case HTTP:
		return c.HTTP, true
	case AMQP:
		return c.AMQP, true
	case WS:
		return c.WS, true
	case GRPC:
		return c.GRPC, true
	}
	return 0, false
}

// Set stores code for protocol p and reports whether p was known.
func (c *Codes) Set(p Protocol, code int) bool {
	switch p {
	case HTTP:
		c.HTTP = code
	case AMQP:
		c.AMQP = code
	case WS:
		c.WS = code
	case GRPC:
		c.GRPC = code
	default:
		return false
	}
	return true
}

// Apply parses each id and stores its code under its protocol.
// Malformed IDs are skipped.
func (c *Codes) Apply(ids ...ID) {
	for _, id := range ids {
		st, err := id.Parse()
		if err != nil {
			continue
		}
		c.Set(st.Protocol, st.Code)
	}
}

// CodesOf returns DefaultCodes overlaid with the codes of ids.
func CodesOf(ids ...ID) Codes {
	c := DefaultCodes()
	c.Apply(ids...)
	return c
}
