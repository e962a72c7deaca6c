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

// Add merges opts into e in place and returns e.
//
// Only three options are honoured:
//   - a message is appended to the current one, separated by "; ";
//   - additional tags are unioned with the current ones, existing first,
//     duplicates collapsed;
//   - breadcrumbs are appended, duplicates allowed.
//
// Everything else can be changed directly on the struct.
func (e *Error) Add(opts ...Option) *Error {
	if e == nil {
		return nil
	}
	o := apply(opts)

	if o.has(fieldMessage) {
		e.Message = e.Message + "; " + o.Message
	}
	if o.has(fieldAdditionalTags) {
		e.AdditionalTags = unionTags(e.AdditionalTags, o.AdditionalTags)
	}
	if o.has(fieldBreadcrumbs) {
		e.Breadcrumbs = append(e.Breadcrumbs, o.Breadcrumbs...)
	}
	return e
}

// New derives an independent Error from e.
//
// A fresh Error is built from opts alone; every field opts does not name is
// then taken from e:
//   - the creation time is always e's;
//   - slices are copied, never shared;
//   - Statuses, StatusCodes and StatusCode come from e unless opts carries
//     WithStatus;
//   - everything else is copied as-is.
//
// The stack is the one of the New call site. e is not modified.
func (e *Error) New(opts ...Option) *Error {
	o := apply(opts)
	n := build(o)
	if e == nil {
		return n
	}

	n.created = e.created

	if !o.has(fieldMessage) {
		n.Message = e.Message
	}
	if !o.has(fieldErr) {
		n.Err = e.Err
	}
	if !o.has(fieldShowMessageToClient) {
		n.ShowMessageToClient = e.ShowMessageToClient
	}
	if !o.has(fieldTag) {
		n.Tag = e.Tag
	}
	if !o.has(fieldAdditionalTags) {
		n.AdditionalTags = cloneSlice(e.AdditionalTags)
	}
	if !o.has(fieldBreadcrumbs) {
		n.Breadcrumbs = cloneSlice(e.Breadcrumbs)
	}
	if !o.has(fieldLevel) {
		n.Level = e.Level
	}
	if !o.has(fieldSetStatus) {
		n.Statuses = cloneSlice(e.Statuses)
		n.StatusCodes = e.StatusCodes
		n.StatusCode = e.StatusCode
	}
	return n
}

// unionTags returns have followed by the members of add not already seen.
// Duplicates already present in have are collapsed too.
func unionTags(have, add []Tag) []Tag {
	seen := make(map[Tag]struct{}, len(have)+len(add))
	out := make([]Tag, 0, len(have)+len(add))
	for _, list := range [][]Tag{have, add} {
		for _, t := range list {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
