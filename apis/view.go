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

// View is the production-safe projection of an error: the only fields that
// may be shown to an end user or sent over the wire.
//
// The field set is a semi-stable public contract. Downstream clients depend
// on it for user-facing display, so fields must not be added or renamed
// casually.
type View struct {
	// Message is the human-readable description. Adapters blank it unless
	// ShowMessageToClient is set.
	Message string `json:"message"`

	// ShowMessageToClient reports whether Message is safe to surface to an
	// end user.
	ShowMessageToClient bool `json:"showMessageToClient"`

	// StatusCode is the HTTP status, kept for consumers that assume HTTP.
	StatusCode int `json:"statusCode"`

	// StatusCodes holds the numeric code of every protocol.
	StatusCodes status.Codes `json:"statusCodes"`

	// Tag is the primary classification used for downstream branching.
	Tag string `json:"tag"`

	// AdditionalTags are secondary classifications. Never nil in views
	// produced by snag, so it always encodes as a JSON array.
	AdditionalTags []string `json:"additionalTags"`

	// Level is the severity classification.
	Level string `json:"level"`
}

// Redacted returns a copy of v whose Message is blanked unless
// ShowMessageToClient is set. Adapters that talk to end users call it.
func (v View) Redacted() View {
	if !v.ShowMessageToClient {
		v.Message = ""
	}
	tags := make([]string, len(v.AdditionalTags))
	copy(tags, v.AdditionalTags)
	v.AdditionalTags = tags
	return v
}
