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

package wsx

import (
	"errors"
	"time"
	"unicode/utf8"

	"dirpx.dev/snag"
	"dirpx.dev/snag/adapter"
	"dirpx.dev/snag/status"
	"github.com/gorilla/websocket"
)

// MaxReasonBytes is the room left for the close reason in a control frame:
// 125 bytes of payload minus the 2-byte code.
const MaxReasonBytes = 123

// ControlWriter is the part of *websocket.Conn used to send close frames.
type ControlWriter interface {
	WriteControl(messageType int, data []byte, deadline time.Time) error
}

var _ ControlWriter = (*websocket.Conn)(nil)

// CloseCode returns the close code to send for err.
func CloseCode(err error) int {
	code := adapter.StatusOf(err, status.WS)
	switch {
	case code == websocket.CloseAbnormalClosure, code == websocket.CloseTLSHandshake:
		return websocket.CloseInternalServerErr
	case code == websocket.CloseNoStatusReceived:
		return code
	case code < websocket.CloseNormalClosure || code > 4999:
		return websocket.CloseInternalServerErr
	}
	return code
}

// Reason returns the close reason for err: its client message when it may
// be shown, its tag otherwise. The result fits MaxReasonBytes and is cut on
// a rune boundary.
func Reason(err error) string {
	se := snag.Ensure(err)
	if se == nil {
		return ""
	}
	text := se.ClientMessage()
	if text == "" {
		text = string(se.Tag)
	}
	return truncate(text, MaxReasonBytes)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// CloseMessage returns the payload of a close frame for err.
// A nil error yields a normal closure.
func CloseMessage(err error) []byte {
	if err == nil {
		return websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	}
	return websocket.FormatCloseMessage(CloseCode(err), Reason(err))
}

// WriteClose sends the close frame for err on conn.
func WriteClose(conn ControlWriter, err error, deadline time.Time) error {
	return conn.WriteControl(websocket.CloseMessage, CloseMessage(err), deadline)
}

// FromCloseError builds an error from an error returned by a WebSocket read.
//
// Normal closures (1000 Normal Closure, 1001 Going Away) are not failures
// and yield nil, as does a nil error. Other close errors resolve their code
// through the status table and keep the peer's reason as the message. Errors
// that are not close errors are wrapped with snag.Ensure.
func FromCloseError(err error) *snag.Error {
	if err == nil {
		return nil
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return nil
	}
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		return adapter.FromCode(status.WS, ce.Code, err, ce.Text)
	}
	return snag.Ensure(err)
}
