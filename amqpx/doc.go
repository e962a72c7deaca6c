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

// Package amqpx adapts snag errors to AMQP 0-9-1 using
// github.com/rabbitmq/amqp091-go.
//
// Outgoing errors become *amqp091.Error values (for channel and connection
// closes) or error publications whose headers carry the flat descriptor.
// Incoming *amqp091.Error values are resolved back through the status table.
//
// Soft errors (311, 312, 313, 403, 404, 405, 406) close only the channel and
// are marked recoverable; the rest are hard, connection-level errors.
package amqpx
