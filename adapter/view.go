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
	"dirpx.dev/snag/apis"
	"dirpx.dev/snag/status"
)

// ViewMap returns v as a map of JSON-compatible scalars, slices and maps.
// The result is accepted by structpb.NewStruct.
func ViewMap(v apis.View) map[string]any {
	tags := make([]any, len(v.AdditionalTags))
	for i, t := range v.AdditionalTags {
		tags[i] = t
	}
	return map[string]any{
		"message":             v.Message,
		"showMessageToClient": v.ShowMessageToClient,
		"statusCode":          v.StatusCode,
		"statusCodes": map[string]any{
			string(status.HTTP): v.StatusCodes.HTTP,
			string(status.AMQP): v.StatusCodes.AMQP,
			string(status.WS):   v.StatusCodes.WS,
			string(status.GRPC): v.StatusCodes.GRPC,
		},
		"tag":            v.Tag,
		"additionalTags": tags,
		"level":          v.Level,
	}
}

// ViewFromMap is the inverse of ViewMap. It accepts the loosely typed maps
// produced by JSON and protobuf decoding: numbers may be any numeric kind.
// Missing or mistyped fields are left zero.
func ViewFromMap(m map[string]any) apis.View {
	v := apis.View{
		Message:             str(m["message"]),
		ShowMessageToClient: m["showMessageToClient"] == true,
		StatusCode:          num(m["statusCode"]),
		Tag:                 str(m["tag"]),
		Level:               str(m["level"]),
		AdditionalTags:      []string{},
	}
	if codes, ok := m["statusCodes"].(map[string]any); ok {
		for _, p := range status.Protocols() {
			v.StatusCodes.Set(p, num(codes[string(p)]))
		}
	}
	switch tags := m["additionalTags"].(type) {
	case []any:
		for _, t := range tags {
			if s, ok := t.(string); ok {
				v.AdditionalTags = append(v.AdditionalTags, s)
			}
		}
	case []string:
		v.AdditionalTags = append(v.AdditionalTags, tags...)
	}
	return v
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return 0
}
