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

// Package wsx adapts snag errors to WebSocket close frames using
// github.com/gorilla/websocket.
//
// The close code is the error's WS status. Codes that RFC 6455 reserves for
// local use (1006 Abnormal Closure, 1015 TLS Handshake) and codes outside
// the 1000-4999 range cannot travel in a close frame and are replaced with
// 1011 Internal Error. 1005 No Status Received is sent as a close frame
// without a body.
package wsx
