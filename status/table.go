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
	"sort"
)

// Row is one entry of the equivalence table: the IDs that express the same
// condition in each protocol.
//
// A protocol row never references its own protocol, so exactly three fields
// are set. The DEFAULT row sets all four.
type Row struct {
	HTTP ID
	AMQP ID
	WS   ID
	GRPC ID
}

// Get returns the ID the row holds for protocol p, or "" when the row has
// no entry for p.
func (r Row) Get(p Protocol) ID {
	switch p {
	case HTTP:
		return r.HTTP
	case AMQP:
		return r.AMQP
	case WS:
		return r.WS
	case GRPC:
		return r.GRPC
	}
	return ""
}

// Statuses returns self followed by the row's IDs of every other protocol,
// in canonical protocol order. Entries for self's own protocol and empty
// entries are skipped.
func (r Row) Statuses(self ID) []ID {
	own := self.Protocol()
	out := make([]ID, 0, len(protocols))
	out = append(out, self)
	for _, p := range protocols {
		if p == own {
			continue
		}
		if id := r.Get(p); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// list returns the row's non-empty IDs in canonical protocol order.
func (r Row) list() []ID {
	out := make([]ID, 0, len(protocols))
	for _, p := range protocols {
		if id := r.Get(p); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// entry is one source row of the table.
type entry struct {
	key ID
	row Row
}

// table is the frozen, validated form of rows.
type table struct {
	// rows holds every protocol row keyed by its ID. DEFAULT is kept apart.
	rows map[ID]Row

	// def is the DEFAULT row.
	def Row

	// byCode indexes table keys by protocol and numeric code for Find.
	byCode map[Protocol]map[int]ID

	// ids is the sorted list of keys, excluding Default.
	ids []ID

	unhandled    []ID
	notFound     []ID
	unhandledSet map[ID]struct{}
	notFoundSet  map[ID]struct{}
}

var tbl = mustBuild()

func mustBuild() *table {
	t, err := build(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// build validates src and freezes it into a table.
//
// Build process overview:
//
//  1. Validate the DEFAULT row: all four protocols, each ID well-formed and
//     of the protocol it is filed under.
//  2. Validate every key: well-formed, unique, unique per (protocol, code).
//  3. Validate every row: no self reference, the three other protocols set,
//     each reference well-formed and of the right protocol.
//  4. Check closure: every referenced ID is itself a key.
//  5. Derive the unhandled and not-found sets.
func build(src []entry) (*table, error) {
	t := &table{
		rows:   make(map[ID]Row, len(src)),
		byCode: make(map[Protocol]map[int]ID, len(protocols)),
	}
	for _, p := range protocols {
		t.byCode[p] = make(map[int]ID)
	}

	haveDefault := false
	for _, e := range src {
		// (1) DEFAULT row.
		if e.key == Default {
			if haveDefault {
				return nil, fmt.Errorf("status: duplicate %s row", Default)
			}
			for _, p := range protocols {
				if err := checkRef(e.key, p, e.row.Get(p)); err != nil {
					return nil, err
				}
			}
			t.def = e.row
			haveDefault = true
			continue
		}

		// (2) Key.
		st, err := e.key.Parse()
		if err != nil {
			return nil, fmt.Errorf("status: table key: %w", err)
		}
		if _, dup := t.rows[e.key]; dup {
			return nil, fmt.Errorf("status: duplicate table key %q", e.key)
		}
		if other, dup := t.byCode[st.Protocol][st.Code]; dup {
			return nil, fmt.Errorf("status: %q and %q share %s code %d", other, e.key, st.Protocol, st.Code)
		}

		// (3) Row.
		for _, p := range protocols {
			ref := e.row.Get(p)
			if p == st.Protocol {
				if ref != "" {
					return nil, fmt.Errorf("status: row %q maps %s to itself (%q)", e.key, p, ref)
				}
				continue
			}
			if err := checkRef(e.key, p, ref); err != nil {
				return nil, err
			}
		}

		t.rows[e.key] = e.row
		t.byCode[st.Protocol][st.Code] = e.key
		t.ids = append(t.ids, e.key)
	}
	if !haveDefault {
		return nil, fmt.Errorf("status: missing %s row", Default)
	}

	// (4) Closure.
	check := func(key ID, r Row) error {
		for _, ref := range r.list() {
			if _, ok := t.rows[ref]; !ok {
				return fmt.Errorf("status: row %q references unknown ID %q", key, ref)
			}
		}
		return nil
	}
	if err := check(Default, t.def); err != nil {
		return nil, err
	}
	for key, r := range t.rows {
		if err := check(key, r); err != nil {
			return nil, err
		}
	}

	// (5) Derived sets.
	nf, ok := t.rows[HTTP404NotFound]
	if !ok {
		return nil, fmt.Errorf("status: missing %q row", HTTP404NotFound)
	}
	t.unhandled = t.def.list()
	t.notFound = nf.Statuses(HTTP404NotFound)
	t.unhandledSet = toSet(t.unhandled)
	t.notFoundSet = toSet(t.notFound)

	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
	return t, nil
}

// checkRef validates the reference row[p] of key.
func checkRef(key ID, p Protocol, ref ID) error {
	if ref == "" {
		return fmt.Errorf("status: row %q has no %s entry", key, p)
	}
	st, err := ref.Parse()
	if err != nil {
		return fmt.Errorf("status: row %q, %s entry: %w", key, p, err)
	}
	if st.Protocol != p {
		return fmt.Errorf("status: row %q files %q under %s", key, ref, p)
	}
	return nil
}

func toSet(ids []ID) map[ID]struct{} {
	m := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// Lookup returns the row of id. Unknown IDs and Default resolve to the
// DEFAULT row; callers that build IDs dynamically should use LookupOK.
func Lookup(id ID) Row {
	if r, ok := tbl.rows[id]; ok {
		return r
	}
	return tbl.def
}

// LookupOK returns the row of id and whether id is a table key.
// Default is not a key: LookupOK(Default) returns the DEFAULT row and false.
func LookupOK(id ID) (Row, bool) {
	r, ok := tbl.rows[id]
	if !ok {
		return tbl.def, false
	}
	return r, true
}

// DefaultRow returns the DEFAULT row.
func DefaultRow() Row { return tbl.def }

// Expand returns the four IDs active for a requested status: id itself
// followed by its equivalents.
//
// Default resolves to the DEFAULT row. A well-formed ID that is not a table
// key keeps its own protocol and takes the DEFAULT IDs for the others. A
// malformed ID resolves to the DEFAULT row.
func Expand(id ID) []ID {
	if id == Default || id.Protocol() == "" {
		return tbl.def.list()
	}
	return Lookup(id).Statuses(id)
}

// Find returns the table key of protocol p whose numeric code is code.
func Find(p Protocol, code int) (ID, bool) {
	id, ok := tbl.byCode[p][code]
	return id, ok
}

// IDs returns every table key in lexical order. Default is not included.
func IDs() []ID {
	out := make([]ID, len(tbl.ids))
	copy(out, tbl.ids)
	return out
}

// UnhandledCodes returns the IDs of the DEFAULT row, in canonical protocol
// order. An error whose status is one of them is considered unhandled.
func UnhandledCodes() []ID {
	out := make([]ID, len(tbl.unhandled))
	copy(out, tbl.unhandled)
	return out
}

// NotFoundCodes returns HTTP_404_Not_Found followed by its equivalents.
func NotFoundCodes() []ID {
	out := make([]ID, len(tbl.notFound))
	copy(out, tbl.notFound)
	return out
}

// IsUnhandled reports whether id is one of UnhandledCodes.
func IsUnhandled(id ID) bool {
	_, ok := tbl.unhandledSet[id]
	return ok
}

// IsNotFound reports whether id is one of NotFoundCodes.
//
// Note that the set is derived from the HTTP 404 row, so it contains
// WS_1008_Policy_Violation.
func IsNotFound(id ID) bool {
	_, ok := tbl.notFoundSet[id]
	return ok
}
