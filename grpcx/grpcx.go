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

package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/snag"
	"dirpx.dev/snag/adapter"
	"dirpx.dev/snag/apis"
	"dirpx.dev/snag/status"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Extras holds optional metadata embedded into the status detail next to
// the View fields. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID, idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent / OpenTelemetry).
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string
}

// MetaFn extracts Extras from context and the error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *snag.Error) Extras

// ToStatus converts err into a gRPC status.
//
// The code is the error's gRPC code and the message is its client message
// (empty unless the error allows showing it). The redacted View is attached
// as a google.protobuf.Struct detail, together with the non-empty Extras.
// Errors that are not *snag.Error are wrapped with snag.Ensure.
func ToStatus(err error, ex Extras) *gstatus.Status {
	se := snag.Ensure(err)
	if se == nil {
		return gstatus.New(gcodes.OK, "")
	}

	code := gcodes.Code(se.Status(status.GRPC))
	if code == gcodes.OK {
		code = gcodes.Unknown
	}
	base := gstatus.New(code, se.ClientMessage())

	m := adapter.ViewMap(se.View().Redacted())
	if ex.CorrelationID != "" {
		m["correlationId"] = ex.CorrelationID
	}
	if ex.TraceID != "" {
		m["traceId"] = ex.TraceID
	}
	if ex.SpanID != "" {
		m["spanId"] = ex.SpanID
	}

	// Try to attach the view as details. If it fails, return base.
	detail, derr := structpb.NewStruct(m)
	if derr != nil {
		return base
	}
	with, werr := base.WithDetails(detail)
	if werr != nil {
		return base
	}
	return with
}

// convert decides what a server returns for a handler error: errors that
// carry a *snag.Error are converted, errors that already are gRPC statuses
// pass through, anything else becomes the DEFAULT status.
func convert(ctx context.Context, err error, metaFn MetaFn) error {
	var se *snag.Error
	if !errors.As(err, &se) || se == nil {
		if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
			return err
		}
		se = snag.Ensure(err)
	}
	return ToStatus(se, metaFn(ctx, se)).Err()
}

func noMeta(context.Context, *snag.Error) Extras { return Extras{} }

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into gRPC statuses with a View detail.
//
// The optional MetaFn can be used to extract additional metadata from context
// and the error. If nil, no extra metadata will be added.
func UnaryServerInterceptor(metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = noMeta
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, err, metaFn)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(metaFn MetaFn) grpc.StreamServerInterceptor {
	if metaFn == nil {
		metaFn = noMeta
	}

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(ss.Context(), err, metaFn)
	}
}

// ExtractView pulls the View detail out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractView(err error) (apis.View, bool) {
	if err == nil {
		return apis.View{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apis.View{}, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return adapter.ViewFromMap(s.AsMap()), true
		}
	}
	return apis.View{}, false
}

// FromError rebuilds a *snag.Error from an error returned by a gRPC client
// call. The original error is attached as Err.
//
// When the status carries a View detail, its tags, level, client visibility
// and per-protocol codes are restored. Otherwise the gRPC code is resolved
// through the status table. OK statuses and nil yield nil.
func FromError(err error) *snag.Error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return snag.Ensure(err)
	}
	if st.Code() == gcodes.OK {
		return nil
	}

	v, has := ExtractView(err)
	if !has {
		return adapter.FromCode(status.GRPC, int(st.Code()), err, st.Message())
	}

	tags := make([]snag.Tag, len(v.AdditionalTags))
	for i, t := range v.AdditionalTags {
		tags[i] = snag.Tag(t)
	}
	opts := []snag.Option{
		snag.WithError(err),
		snag.WithMessage(st.Message()),
		snag.WithShowMessageToClient(v.ShowMessageToClient),
		snag.WithStatus(adapter.IDFor(status.GRPC, int(st.Code()))),
		snag.WithAdditionalTags(tags...),
	}
	if v.Tag != "" {
		opts = append(opts, snag.WithTag(snag.Tag(v.Tag)))
	}
	if v.Level != "" {
		opts = append(opts, snag.WithLevel(snag.Level(v.Level)))
	}
	se := snag.E(opts...)

	// The peer's codes win over the table: they may have been set
	// explicitly on the server.
	se.StatusCodes = v.StatusCodes
	se.StatusCodes.GRPC = int(st.Code())
	se.StatusCode = se.StatusCodes.HTTP
	se.Statuses = []status.ID{adapter.IDFor(status.GRPC, se.StatusCodes.GRPC)}
	for _, p := range status.Protocols() {
		if p == status.GRPC {
			continue
		}
		code, _ := se.StatusCodes.Get(p)
		se.Statuses = append(se.Statuses, adapter.IDFor(p, code))
	}
	return se
}
