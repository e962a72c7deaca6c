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

package amqpx

import (
	"encoding/json"
	"errors"
	"time"

	"dirpx.dev/snag"
	"dirpx.dev/snag/adapter"
	"dirpx.dev/snag/apis"
	"dirpx.dev/snag/status"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Header names used by Headers and FromHeaders.
const (
	HeaderTag            = "x-snag-tag"
	HeaderAdditionalTags = "x-snag-additional-tags"
	HeaderLevel          = "x-snag-level"
	HeaderMessage        = "x-snag-message"
	HeaderStatuses       = "x-snag-statuses"
	HeaderHTTP           = "x-snag-http-status"
	HeaderAMQP           = "x-snag-amqp-code"
	HeaderWS             = "x-snag-ws-code"
	HeaderGRPC           = "x-snag-grpc-code"
)

// ContentType is the content type of error publications.
const ContentType = "application/json"

// IsSoft reports whether code is a channel-level reply code: the channel is
// closed but the connection survives.
func IsSoft(code int) bool {
	switch code {
	case amqp.ContentTooLarge, amqp.NoRoute, amqp.NoConsumers,
		amqp.AccessRefused, amqp.NotFound, amqp.ResourceLocked, amqp.PreconditionFailed:
		return true
	}
	return false
}

// ToError converts err into an *amqp091.Error carrying its AMQP reply code.
// The reason is the client message when it may be shown, the tag otherwise.
// A nil error yields nil.
func ToError(err error) *amqp.Error {
	se := snag.Ensure(err)
	if se == nil {
		return nil
	}
	code := se.Status(status.AMQP)
	reason := se.ClientMessage()
	if reason == "" {
		reason = string(se.Tag)
	}
	return &amqp.Error{
		Code:    code,
		Reason:  reason,
		Server:  false,
		Recover: IsSoft(code),
	}
}

// FromError builds an error from an error returned by an amqp091 call or
// received on a NotifyClose channel. The reply code is resolved through the
// status table and the server's reason becomes the message. Errors that are
// not *amqp091.Error are wrapped with snag.Ensure. A nil error yields nil.
func FromError(err error) *snag.Error {
	if err == nil {
		return nil
	}
	var ae *amqp.Error
	if errors.As(err, &ae) && ae != nil {
		return adapter.FromCode(status.AMQP, ae.Code, err, ae.Reason)
	}
	return snag.Ensure(err)
}

// Headers returns the flat descriptor of err as an AMQP table.
func Headers(err error) amqp.Table {
	d := adapter.ToDescriptor(err)
	t := amqp.Table{
		HeaderTag:  d.Tag,
		HeaderHTTP: int32(d.HTTPStatus),
		HeaderAMQP: int32(d.AMQPCode),
		HeaderWS:   int32(d.WSCode),
		HeaderGRPC: int32(d.GRPCCode),
	}
	if d.Level != "" {
		t[HeaderLevel] = d.Level
	}
	if d.Message != "" {
		t[HeaderMessage] = d.Message
	}
	if len(d.AdditionalTags) > 0 {
		t[HeaderAdditionalTags] = anySlice(d.AdditionalTags)
	}
	if len(d.Statuses) > 0 {
		t[HeaderStatuses] = anySlice(d.Statuses)
	}
	return t
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// FromHeaders reads the descriptor written by Headers. The boolean is false
// when the table does not carry a snag tag.
func FromHeaders(t amqp.Table) (apis.Descriptor, bool) {
	tag, ok := t[HeaderTag].(string)
	if !ok {
		return apis.Descriptor{}, false
	}
	d := apis.Descriptor{
		Tag:        tag,
		HTTPStatus: intOf(t[HeaderHTTP]),
		AMQPCode:   intOf(t[HeaderAMQP]),
		WSCode:     intOf(t[HeaderWS]),
		GRPCCode:   intOf(t[HeaderGRPC]),
	}
	d.Level, _ = t[HeaderLevel].(string)
	d.Message, _ = t[HeaderMessage].(string)
	d.AdditionalTags = stringsOf(t[HeaderAdditionalTags])
	d.Statuses = stringsOf(t[HeaderStatuses])
	return d, true
}

func intOf(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	}
	return 0
}

func stringsOf(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, x := range list {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Publishing builds an error publication for err, e.g. for a reply or
// dead-letter queue: the body is the redacted View as JSON and the headers
// are Headers(err).
func Publishing(err error) (amqp.Publishing, error) {
	body, merr := json.Marshal(adapter.ToView(err).Redacted())
	if merr != nil {
		return amqp.Publishing{}, merr
	}
	return amqp.Publishing{
		Headers:     Headers(err),
		ContentType: ContentType,
		Timestamp:   timestamp(err),
		Type:        "snag.Error",
		Body:        body,
	}, nil
}

func timestamp(err error) time.Time {
	var se *snag.Error
	if errors.As(err, &se) && se != nil {
		return se.Created()
	}
	return time.Time{}
}
