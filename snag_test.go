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

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"dirpx.dev/snag/status"
	pkgerrors "github.com/pkg/errors"
	gcodes "google.golang.org/grpc/codes"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestNew_ScalarMessages(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"foo", "foo"},
		{"", ""},
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{1000, "1000"},
		{int8(-3), "-3"},
		{uint16(7), "7"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{1e6, "1000000"},
		{math.Inf(1), "Infinity"},
		{math.NaN(), "NaN"},
		{status.HTTP404NotFound, "HTTP_404_Not_Found"},
	}
	for _, c := range cases {
		e := New(c.in)
		if e.Message != c.want {
			t.Fatalf("New(%#v).Message = %q, want %q", c.in, e.Message, c.want)
		}
		if e.Tag != NotHandled || e.StatusCode != 500 {
			t.Fatalf("New(%#v) lost defaults: tag=%q status=%d", c.in, e.Tag, e.StatusCode)
		}
		if e.Err != nil {
			t.Fatalf("New(%#v).Err = %v, want nil", c.in, e.Err)
		}
	}
}

func TestNew_NilSnag(t *testing.T) {
	var se *Error
	if got := New(se).Message; got != "null" {
		t.Fatalf("nil *Error message = %q", got)
	}
}

func TestNew_ErrorMessage(t *testing.T) {
	root := errors.New("bar")

	e := E(WithError(root))
	if e.Message != "bar" {
		t.Fatalf("message = %q, want bar", e.Message)
	}
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}

	e = New(root)
	if e.Message != "bar" || e.Err != root {
		t.Fatalf("New(error) = %q / %v", e.Message, e.Err)
	}

	e = E(WithError(root), WithMessage("explicit"))
	if e.Message != "explicit" {
		t.Fatalf("explicit message lost: %q", e.Message)
	}

	// An explicitly empty message still wins.
	e = E(WithError(root), WithMessage(""))
	if e.Message != "" {
		t.Fatalf("empty explicit message overridden: %q", e.Message)
	}
}

type getMessager struct{ msg string }

func (g getMessager) GetMessage() string { return g.msg }

type panicky struct{}

func (panicky) GetMessage() string { panic("boom") }

type withField struct {
	Message any
}

type nilErr struct{ s *string }

func (n *nilErr) Error() string { return *n.s }

func TestNew_MessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		err  any
		want string
	}{
		{"map", map[string]any{"message": 42}, "42"},
		{"map without message", map[string]any{"code": 1}, ""},
		{"GetMessage", getMessager{"from method"}, "from method"},
		{"field", withField{Message: "from field"}, "from field"},
		{"field pointer", &withField{Message: []int{1, 2}}, "[1 2]"},
		{"panicking method", panicky{}, ""},
		{"nil pointer error", (*nilErr)(nil), ""},
		{"plain value", 12, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := E(WithError(c.err))
			if e.Message != c.want {
				t.Fatalf("message = %q, want %q", e.Message, c.want)
			}
		})
	}
}

func TestNew_UnknownValueIsAttached(t *testing.T) {
	v := struct{ N int }{N: 3}
	e := New(v)
	if !reflect.DeepEqual(e.Err, v) {
		t.Fatalf("Err = %#v", e.Err)
	}
	if e.Message != "" {
		t.Fatalf("message = %q", e.Message)
	}
}

func TestNew_Defaults(t *testing.T) {
	e := E()
	if e.Tag != NotHandled {
		t.Fatalf("tag = %q", e.Tag)
	}
	if e.StatusCode != 500 {
		t.Fatalf("statusCode = %d", e.StatusCode)
	}
	if e.StatusCodes != status.DefaultCodes() {
		t.Fatalf("statusCodes = %+v", e.StatusCodes)
	}
	if !reflect.DeepEqual(e.Statuses, status.UnhandledCodes()) {
		t.Fatalf("statuses = %v", e.Statuses)
	}
	if e.Level != LevelNil || e.ShowMessageToClient {
		t.Fatalf("level=%q show=%v", e.Level, e.ShowMessageToClient)
	}
	if e.AdditionalTags == nil || e.Breadcrumbs == nil {
		t.Fatal("slices must be non-nil")
	}
}

func TestTagInference(t *testing.T) {
	cases := []struct {
		id   status.ID
		want Tag
	}{
		{status.HTTP404NotFound, ResultNotFound},
		{status.AMQP404NotFound, ResultNotFound},
		{status.GRPC5NotFound, ResultNotFound},
		{status.WS1008PolicyViolation, ResultNotFound},
		{status.HTTP400BadRequest, NotCategorised},
		{status.HTTP409Conflict, NotCategorised},
		{"HTTP_499_Client_Closed_Request", NotCategorised},
		{status.HTTP500InternalServerError, NotHandled},
		{status.GRPC13Internal, NotHandled},
		{status.Default, NotCategorised},
		{"", NotHandled},
	}
	for _, c := range cases {
		if got := E(WithStatus(c.id)).Tag; got != c.want {
			t.Fatalf("tag for %q = %q, want %q", c.id, got, c.want)
		}
	}

	if got := New(map[string]any{"setStatus": "DEFAULT"}).Tag; got != NotCategorised {
		t.Fatalf("tag for map setStatus DEFAULT = %q, want %q", got, NotCategorised)
	}

	if got := E(WithStatus(status.HTTP404NotFound), WithTag("user_missing")).Tag; got != "user_missing" {
		t.Fatalf("explicit tag lost: %q", got)
	}
}

func TestStatus_DefaultPerProtocol(t *testing.T) {
	def := status.DefaultCodes()
	for _, p := range status.Protocols() {
		e := E(WithStatus(status.DefaultRow().Get(p)))
		want, _ := def.Get(p)
		if got := e.Status(p); got != want {
			t.Fatalf("Status(%s) = %d, want %d", p, got, want)
		}
	}
}

func TestStatus_Expansion(t *testing.T) {
	e := E(WithStatus(status.HTTP404NotFound))
	want := status.Codes{HTTP: 404, AMQP: 404, WS: 1008, GRPC: 5}
	if e.StatusCodes != want {
		t.Fatalf("codes = %+v, want %+v", e.StatusCodes, want)
	}
	if e.StatusCode != 404 || e.Status("") != 404 || e.Status(status.HTTP) != 404 {
		t.Fatalf("http alias broken: %d", e.StatusCode)
	}
	if e.Statuses[0] != status.HTTP404NotFound || len(e.Statuses) != 4 {
		t.Fatalf("statuses = %v", e.Statuses)
	}
	if got := e.Status("smtp"); got != 0 {
		t.Fatalf("unknown protocol = %d", got)
	}
}

func TestStatus_UnknownAndMalformed(t *testing.T) {
	e := E(WithStatus("HTTP_499_Client_Closed_Request"))
	want := status.DefaultCodes()
	want.HTTP = 499
	if e.StatusCodes != want || e.StatusCode != 499 {
		t.Fatalf("unknown id codes = %+v", e.StatusCodes)
	}

	e = E(WithStatus("bogus"))
	if e.StatusCodes != status.DefaultCodes() {
		t.Fatalf("malformed id codes = %+v", e.StatusCodes)
	}

	e = E(WithStatus("http_404_Not_Found"))
	if e.StatusCodes != status.DefaultCodes() || e.Tag == ResultNotFound {
		t.Fatalf("lowercase id must not resolve to 404: %+v %q", e.StatusCodes, e.Tag)
	}
}

func TestSetStatusCode(t *testing.T) {
	e := E()
	if !e.SetStatusCode(status.HTTP, 418) || e.StatusCode != 418 {
		t.Fatalf("http set: %d", e.StatusCode)
	}
	if !e.SetStatusCode(status.WS, 4000) || e.Status(status.WS) != 4000 {
		t.Fatalf("ws set: %d", e.Status(status.WS))
	}
	if e.SetStatusCode("smtp", 1) {
		t.Fatal("unknown protocol accepted")
	}
}

func TestAdd(t *testing.T) {
	e := E(WithMessage("a"), WithAdditionalTags("x"))

	got := e.Add(WithMessage("b"), WithAdditionalTags("x", "y"), WithBreadcrumbs(1))
	if got != e {
		t.Fatal("Add must return the receiver")
	}
	e.Add(WithAdditionalTags("y", "z", "z"), WithBreadcrumbs(1, "two"))

	if e.Message != "a; b" {
		t.Fatalf("message = %q", e.Message)
	}
	if want := []Tag{"x", "y", "z"}; !reflect.DeepEqual(e.AdditionalTags, want) {
		t.Fatalf("tags = %v, want %v", e.AdditionalTags, want)
	}
	if want := []any{1, 1, "two"}; !reflect.DeepEqual(e.Breadcrumbs, want) {
		t.Fatalf("breadcrumbs = %v, want %v", e.Breadcrumbs, want)
	}

	// Options other than message, tags and breadcrumbs are ignored.
	e.Add(WithTag("ignored"), WithStatus(status.HTTP404NotFound))
	if e.Tag != NotHandled || e.StatusCode != 500 {
		t.Fatalf("Add changed tag/status: %q %d", e.Tag, e.StatusCode)
	}

	var nilErr *Error
	if nilErr.Add(WithMessage("x")) != nil {
		t.Fatal("nil receiver must stay nil")
	}
}

func TestDerive(t *testing.T) {
	fixClock(t, time.Date(2025, 3, 4, 5, 6, 7, 8_000_000, time.UTC))
	orig := E(
		WithMessage("orig"),
		WithStatus(status.HTTP404NotFound),
		WithAdditionalTags("a"),
		WithBreadcrumbs("crumb"),
		WithLevel(LevelWarning),
	)
	now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }

	n := orig.New(WithMessage("new"))
	if n == orig {
		t.Fatal("New must return a fresh instance")
	}
	if n.Timestamp() != orig.Timestamp() || n.TimestampTZ() != "2025-03-04T05:06:07.008Z" {
		t.Fatalf("timestamp not preserved: %d %s", n.Timestamp(), n.TimestampTZ())
	}
	if n.Message != "new" || orig.Message != "orig" {
		t.Fatalf("messages: new=%q orig=%q", n.Message, orig.Message)
	}
	if n.Tag != ResultNotFound || n.Level != LevelWarning || n.StatusCode != 404 {
		t.Fatalf("back-fill failed: %q %q %d", n.Tag, n.Level, n.StatusCode)
	}

	n.AdditionalTags[0] = "changed"
	n.Breadcrumbs[0] = "changed"
	n.Statuses[0] = "changed"
	if orig.AdditionalTags[0] != "a" || orig.Breadcrumbs[0] != "crumb" || orig.Statuses[0] != status.HTTP404NotFound {
		t.Fatal("slices are shared with the original")
	}
}

func TestDerive_StatusOverride(t *testing.T) {
	orig := E(WithStatus(status.HTTP404NotFound))

	n := orig.New(WithStatus(status.HTTP409Conflict))
	if n.StatusCode != 409 || n.Statuses[0] != status.HTTP409Conflict {
		t.Fatalf("status not recomputed: %d %v", n.StatusCode, n.Statuses)
	}
	// The tag is not named by the options, so it is back-filled.
	if n.Tag != ResultNotFound {
		t.Fatalf("tag = %q", n.Tag)
	}

	n = orig.New(WithStatus(status.Default))
	if n.StatusCodes != status.DefaultCodes() {
		t.Fatalf("explicit Default not applied: %+v", n.StatusCodes)
	}
	if orig.StatusCode != 404 {
		t.Fatal("original mutated")
	}
}

func TestOwnedSlices(t *testing.T) {
	tags := []Tag{"a"}
	crumbs := []any{"b"}

	borrowed := E(WithAdditionalTags(tags...), WithBreadcrumbs(crumbs...))
	tags[0], crumbs[0] = "A", "B"
	if borrowed.AdditionalTags[0] != "A" || borrowed.Breadcrumbs[0] != "B" {
		t.Fatal("borrowed slices must alias the caller's")
	}

	owned := E(WithAdditionalTags(tags...), WithBreadcrumbs(crumbs...), WithOwnedSlices())
	tags[0], crumbs[0] = "x", "y"
	if owned.AdditionalTags[0] != "A" || owned.Breadcrumbs[0] != "B" {
		t.Fatal("owned slices must be copies")
	}
}

func TestNew_FlattenSnag(t *testing.T) {
	inner := E(
		WithMessage("inner"),
		WithTag("custom"),
		WithAdditionalTags("t"),
		WithBreadcrumbs(1),
		WithLevel(LevelError),
		WithShowMessageToClient(true),
		WithStatus(status.HTTP404NotFound),
	)
	e := New(inner)
	if e.Err != inner {
		t.Fatal("Err must be the original instance")
	}
	if e.Message != "inner" || e.Tag != "custom" || e.Level != LevelError || !e.ShowMessageToClient {
		t.Fatalf("fields not carried: %+v", e)
	}
	if e.StatusCode != 500 {
		t.Fatalf("statuses must start from DEFAULT, got %d", e.StatusCode)
	}
	e.AdditionalTags[0] = "changed"
	if inner.AdditionalTags[0] != "t" {
		t.Fatal("tags shared with the flattened error")
	}
}

func TestNew_Options(t *testing.T) {
	o := Options{Message: "m", SetStatus: status.HTTP400BadRequest, Level: LevelInfo}
	for _, in := range []any{o, &o} {
		e := New(in)
		if e.Message != "m" || e.StatusCode != 400 || e.Tag != NotCategorised || e.Level != LevelInfo {
			t.Fatalf("New(%T) = %+v", in, e)
		}
	}
	if e := New((*Options)(nil)); e.Message != "" || e.StatusCode != 500 {
		t.Fatalf("nil *Options = %+v", e)
	}
}

func TestNew_Map(t *testing.T) {
	e := New(map[string]any{
		"message":             "from map",
		"setStatus":           "HTTP_404_Not_Found",
		"showMessageToClient": "true",
		"additionalTags":      []any{"a", "b"},
		"breadcrumbs":         []any{1, "x"},
		"level":               "warning",
	})
	if e.Message != "from map" || e.StatusCode != 404 || e.Tag != ResultNotFound {
		t.Fatalf("map decode: %+v", e)
	}
	if !e.ShowMessageToClient || e.Level != LevelWarning {
		t.Fatalf("weak decode: show=%v level=%q", e.ShowMessageToClient, e.Level)
	}
	if !reflect.DeepEqual(e.AdditionalTags, []Tag{"a", "b"}) {
		t.Fatalf("tags = %v", e.AdditionalTags)
	}
	if !reflect.DeepEqual(e.Breadcrumbs, []any{1, "x"}) {
		t.Fatalf("breadcrumbs = %v", e.Breadcrumbs)
	}

	root := errors.New("root cause")
	e = New(map[string]any{"error": root})
	if e.Err != root || e.Message != "root cause" {
		t.Fatalf("error key: %v %q", e.Err, e.Message)
	}

	// Undecodable values are dropped, never panicking.
	e = New(map[string]any{"message": "kept", "showMessageToClient": []int{1}})
	if e.Message != "kept" || e.ShowMessageToClient {
		t.Fatalf("partial decode: %q %v", e.Message, e.ShowMessageToClient)
	}
}

func TestError_Interop(t *testing.T) {
	e := E(WithMessage("boom"))
	if e.Error() != "not_handled: boom" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if E().Error() != "not_handled" {
		t.Fatalf("empty message Error() = %q", E().Error())
	}
	if fmt.Sprintf("%s", e) != e.Error() || fmt.Sprintf("%v", e) != e.Error() {
		t.Fatal("plain verbs must print Error()")
	}
	full := fmt.Sprintf("%+v", e)
	if !strings.Contains(full, "snag.Error: boom") || !strings.Contains(full, "TestError_Interop") {
		t.Fatalf("%%+v = %q", full)
	}
	if E(WithError(42)).Unwrap() != nil {
		t.Fatal("non-error Err must not unwrap")
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil || nilErr.ClientMessage() != "" {
		t.Fatal("nil receiver")
	}
}

func TestClientMessage(t *testing.T) {
	if got := E(WithMessage("secret")).ClientMessage(); got != "" {
		t.Fatalf("hidden message leaked: %q", got)
	}
	if got := E(WithMessage("ok"), WithShowMessageToClient(true)).ClientMessage(); got != "ok" {
		t.Fatalf("client message = %q", got)
	}
}

func TestGRPCStatus(t *testing.T) {
	st := E(WithStatus(status.HTTP404NotFound), WithMessage("gone"), WithShowMessageToClient(true)).GRPCStatus()
	if st.Code() != gcodes.NotFound || st.Message() != "gone" {
		t.Fatalf("status = %v %q", st.Code(), st.Message())
	}
	if E().GRPCStatus().Code() != gcodes.Internal {
		t.Fatal("default must be INTERNAL")
	}
}

func TestEnsure(t *testing.T) {
	if Ensure(nil) != nil {
		t.Fatal("Ensure(nil) must be nil")
	}
	se := E(WithMessage("inner"))
	if Ensure(fmt.Errorf("wrap: %w", se)) != se {
		t.Fatal("Ensure must find the *Error in the chain")
	}
	plain := errors.New("plain")
	got := Ensure(plain)
	if got.Err != plain || got.Message != "plain" {
		t.Fatalf("Ensure(plain) = %+v", got)
	}
}

func TestNilReceiver(t *testing.T) {
	var e *Error
	if got := e.Status(status.GRPC); got != status.DefaultCodes().GRPC {
		t.Fatalf("nil Status(grpc) = %d", got)
	}
	if got := e.Status(""); got != 500 {
		t.Fatalf("nil Status(http) = %d", got)
	}
	if e.SetStatusCode(status.HTTP, 404) {
		t.Fatal("SetStatusCode on nil must report false")
	}
	if e.ErrorTag() != "" || e.ErrorTags() != nil {
		t.Fatalf("nil tags = %q %v", e.ErrorTag(), e.ErrorTags())
	}
	if e.Stack() != typeName {
		t.Fatalf("nil Stack = %q", e.Stack())
	}
	if !e.Created().IsZero() || e.Timestamp() != (time.Time{}).UnixMilli() {
		t.Fatal("nil error must have the zero creation time")
	}
	_ = e.TimestampTZ()
}

func TestStack_StartsAtCallSite(t *testing.T) {
	e := E()
	lines := strings.Split(e.Stack(), "\n")
	if lines[0] != "snag.Error" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines) < 2 {
		t.Fatal("no frames captured")
	}
	if _, bad := constructors[lines[1]]; bad {
		t.Fatalf("constructor frame not stripped: %q", lines[1])
	}
	if !strings.Contains(e.Stack(), "TestStack_StartsAtCallSite") {
		t.Fatalf("call site missing:\n%s", e.Stack())
	}
}

func TestJSON_NonVerboseShape(t *testing.T) {
	want := []string{"additionalTags", "level", "message", "showMessageToClient", "statusCode", "statusCodes", "tag"}
	inputs := []any{
		nil, "x", 1, true, errors.New("e"),
		map[string]any{"setStatus": "HTTP_404_Not_Found", "breadcrumbs": []any{1}},
		Options{Err: E(), Breadcrumbs: []any{"secret"}},
	}
	for _, in := range inputs {
		got := keys(New(in).JSON(false, 0))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("JSON(false) keys for %#v = %v", in, got)
		}
	}
}

func TestJSON_VerboseChain(t *testing.T) {
	deepest := pkgerrors.New("c")
	middle := fmt.Errorf("b: %w", deepest)
	top := fmt.Errorf("a: %w", middle)
	e := New(top)

	m := e.JSON(true, 0)
	for _, k := range []string{"error", "breadcrumbs", "statuses", "timestamp", "timestamptz", "stack"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("verbose JSON missing %q", k)
		}
	}

	l1, ok := m["error"].(map[string]any)
	if !ok || l1["message"] != "a: b: c" {
		t.Fatalf("level 1 = %#v", m["error"])
	}
	l2, ok := l1["error"].(map[string]any)
	if !ok || l2["message"] != "b: c" {
		t.Fatalf("level 2 = %#v", l1["error"])
	}
	l3, ok := l2["error"].(map[string]any)
	if !ok || l3["message"] != "c" {
		t.Fatalf("level 3 = %#v", l2["error"])
	}
	if s, _ := l3["stack"].(string); !strings.Contains(s, "TestJSON_VerboseChain") {
		t.Fatalf("level 3 stack = %q", s)
	}
	if _, ok := l3["error"]; ok {
		t.Fatal("chain must end at the root cause")
	}

	// Non-positive depths fall back to DefaultDepth instead of dropping "error".
	for _, d := range []int{0, -1} {
		if !reflect.DeepEqual(e.JSON(true, d)["error"], e.JSON(true, DefaultDepth)["error"]) {
			t.Fatalf("depth %d must walk like DefaultDepth", d)
		}
	}

	shallow := e.JSON(true, 1)
	s1 := shallow["error"].(map[string]any)
	if s1["error"] != "b: c" {
		t.Fatalf("depth 1 must truncate to a string, got %#v", s1["error"])
	}
}

func TestJSON_SnagCause(t *testing.T) {
	inner := E(WithMessage("inner"), WithError(map[string]any{"raw": true}))
	outer := E(WithMessage("outer"), WithError(inner))

	m := outer.JSON(true, 0)
	c, ok := m["error"].(map[string]any)
	if !ok || c["message"] != "inner" || c["stack"] == "" {
		t.Fatalf("snag cause = %#v", m["error"])
	}
	if !reflect.DeepEqual(c["error"], map[string]any{"raw": true}) {
		t.Fatalf("non-error cause must be kept as-is, got %#v", c["error"])
	}

	if got := E(WithError("plain")).JSON(true, 0)["error"]; got != "plain" {
		t.Fatalf("non-error Err = %#v", got)
	}
}

func TestJSON_PanicInWalk(t *testing.T) {
	bad := fmt.Errorf("wrap: %w", (*nilErr)(nil))
	m := E(WithMessage("m"), WithError(bad)).JSON(true, 0)
	if m["message"] != "m" {
		t.Fatalf("partial result lost: %#v", m)
	}
	l1, ok := m["error"].(map[string]any)
	if !ok {
		t.Fatalf("level 1 = %#v", m["error"])
	}
	if l2, ok := l1["error"].(map[string]any); ok && l2["message"] != "" {
		t.Fatalf("panicking cause message = %#v", l2["message"])
	}
}

func TestMarshalJSON(t *testing.T) {
	e := E(WithMessage("m"), WithStatus(status.HTTP404NotFound), WithBreadcrumbs("secret"))
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != 7 || m["tag"] != "result_not_found" || m["statusCode"] != float64(404) {
		t.Fatalf("marshalled = %s", b)
	}
	codes := m["statusCodes"].(map[string]any)
	if codes["ws"] != float64(1008) || codes["grpc"] != float64(5) {
		t.Fatalf("statusCodes = %v", codes)
	}
}

func TestLevel_Valid(t *testing.T) {
	for _, l := range []Level{LevelNil, LevelFatal, LevelError, LevelWarning, LevelLog, LevelInfo, LevelDebug} {
		if !l.Valid() {
			t.Fatalf("%q must be valid", l)
		}
	}
	if Level("loud").Valid() {
		t.Fatal("unknown level accepted")
	}
}

func TestConcurrentConstruction(t *testing.T) {
	ids := status.IDs()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j, id := range ids {
				e := E(WithStatus(id), WithBreadcrumbs(i, j))
				if e.Statuses[0] != id {
					t.Errorf("statuses[0] = %q, want %q", e.Statuses[0], id)
					return
				}
				_ = e.JSON(true, 0)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkE(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = E(WithStatus(status.HTTP404NotFound), WithMessage("x"))
	}
}

func BenchmarkJSONVerbose(b *testing.B) {
	e := New(fmt.Errorf("a: %w", pkgerrors.New("b")))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.JSON(true, 0)
	}
}
