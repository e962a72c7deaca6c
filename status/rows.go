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

// rows is the source data of the equivalence table. It is validated and
// frozen into the package-level table at init.
var rows = []entry{
	{Default, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC13Internal}},

	{HTTP400BadRequest, Row{AMQP: AMQP502SyntaxError, WS: WS1007UnsupportedPayload, GRPC: GRPC3InvalidArgument}},
	{HTTP401Unauthorized, Row{AMQP: AMQP530NotAllowed, WS: WS1008PolicyViolation, GRPC: GRPC16Unauthenticated}},
	{HTTP402PaymentRequired, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP403Forbidden, Row{AMQP: AMQP403AccessRefused, WS: WS1008PolicyViolation, GRPC: GRPC7PermissionDenied}},
	{HTTP404NotFound, Row{AMQP: AMQP404NotFound, WS: WS1008PolicyViolation, GRPC: GRPC5NotFound}},
	{HTTP405MethodNotAllowed, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP406NotAcceptable, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP407ProxyAuthenticationRequired, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP408RequestTimeout, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC4DeadlineExceeded}},
	{HTTP409Conflict, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP410Gone, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP411LengthRequired, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP412PreconditionFailed, Row{AMQP: AMQP406PreconditionFailed, WS: WS1008PolicyViolation, GRPC: GRPC9FailedPrecondition}},
	{HTTP413PayloadTooLarge, Row{AMQP: AMQP311ContentTooLarge, WS: WS1009CloseTooLarge, GRPC: GRPC2Unknown}},
	{HTTP414URITooLong, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP415UnsupportedMediaType, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP416RangeNotSatisfiable, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC11OutOfRange}},
	{HTTP417ExpectationFailed, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP418ImATeapot, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP421MisdirectedRequest, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP422UnprocessableEntity, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP423Locked, Row{AMQP: AMQP405ResourceLocked, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP424FailedDependency, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP425TooEarly, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP426UpgradeRequired, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP428PreconditionRequired, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP429TooManyRequests, Row{AMQP: AMQP506ResourceError, WS: WS1008PolicyViolation, GRPC: GRPC8ResourceExhausted}},
	{HTTP431RequestHeaderFieldsTooLarge, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP451UnavailableForLegalReasons, Row{AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{HTTP500InternalServerError, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC13Internal}},
	{HTTP501NotImplemented, Row{AMQP: AMQP540NotImplemented, WS: WS1011ServerError, GRPC: GRPC12Unimplemented}},
	{HTTP502BadGateway, Row{AMQP: AMQP541InternalError, WS: WS1014BadGateway, GRPC: GRPC2Unknown}},
	{HTTP503ServiceUnavailable, Row{AMQP: AMQP541InternalError, WS: WS1013TryAgainLater, GRPC: GRPC14Unavailable}},
	{HTTP504GatewayTimeout, Row{AMQP: AMQP541InternalError, WS: WS1010MandatoryExtension, GRPC: GRPC2Unknown}},
	{HTTP505HTTPVersionNotSupported, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{HTTP506VariantAlsoNegotiates, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{HTTP507InsufficientStorage, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{HTTP508LoopDetected, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{HTTP510NotExtended, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{HTTP511NetworkAuthenticationRequired, Row{AMQP: AMQP541InternalError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},

	{AMQP311ContentTooLarge, Row{HTTP: HTTP413PayloadTooLarge, WS: WS1009CloseTooLarge, GRPC: GRPC2Unknown}},
	{AMQP312NoRoute, Row{HTTP: HTTP500InternalServerError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{AMQP313NoConsumers, Row{HTTP: HTTP500InternalServerError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{AMQP320ConnectionForced, Row{HTTP: HTTP503ServiceUnavailable, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{AMQP402InvalidPath, Row{HTTP: HTTP500InternalServerError, WS: WS1011ServerError, GRPC: GRPC2Unknown}},
	{AMQP403AccessRefused, Row{HTTP: HTTP403Forbidden, WS: WS1008PolicyViolation, GRPC: GRPC7PermissionDenied}},
	{AMQP404NotFound, Row{HTTP: HTTP404NotFound, WS: WS1008PolicyViolation, GRPC: GRPC5NotFound}},
	{AMQP405ResourceLocked, Row{HTTP: HTTP423Locked, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{AMQP406PreconditionFailed, Row{HTTP: HTTP412PreconditionFailed, WS: WS1008PolicyViolation, GRPC: GRPC9FailedPrecondition}},
	{AMQP501FrameError, Row{HTTP: HTTP400BadRequest, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{AMQP502SyntaxError, Row{HTTP: HTTP400BadRequest, WS: WS1007UnsupportedPayload, GRPC: GRPC3InvalidArgument}},
	{AMQP503CommandInvalid, Row{HTTP: HTTP400BadRequest, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{AMQP504ChannelError, Row{HTTP: HTTP400BadRequest, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{AMQP505UnexpectedFrame, Row{HTTP: HTTP400BadRequest, WS: WS1008PolicyViolation, GRPC: GRPC2Unknown}},
	{AMQP506ResourceError, Row{HTTP: HTTP429TooManyRequests, WS: WS1008PolicyViolation, GRPC: GRPC8ResourceExhausted}},
	{AMQP530NotAllowed, Row{HTTP: HTTP401Unauthorized, WS: WS1008PolicyViolation, GRPC: GRPC16Unauthenticated}},
	{AMQP540NotImplemented, Row{HTTP: HTTP501NotImplemented, WS: WS1011ServerError, GRPC: GRPC12Unimplemented}},
	{AMQP541InternalError, Row{HTTP: HTTP500InternalServerError, WS: WS1011ServerError, GRPC: GRPC13Internal}},

	{WS1002CloseProtocolError, Row{HTTP: HTTP400BadRequest, AMQP: AMQP503CommandInvalid, GRPC: GRPC2Unknown}},
	{WS1003CloseUnsupported, Row{HTTP: HTTP400BadRequest, AMQP: AMQP503CommandInvalid, GRPC: GRPC2Unknown}},
	{WS1005ClosedNoStatus, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, GRPC: GRPC2Unknown}},
	{WS1006CloseAbnormal, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, GRPC: GRPC2Unknown}},
	{WS1007UnsupportedPayload, Row{HTTP: HTTP400BadRequest, AMQP: AMQP502SyntaxError, GRPC: GRPC3InvalidArgument}},
	{WS1008PolicyViolation, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, GRPC: GRPC2Unknown}},
	{WS1009CloseTooLarge, Row{HTTP: HTTP413PayloadTooLarge, AMQP: AMQP311ContentTooLarge, GRPC: GRPC2Unknown}},
	{WS1010MandatoryExtension, Row{HTTP: HTTP504GatewayTimeout, AMQP: AMQP541InternalError, GRPC: GRPC2Unknown}},
	{WS1011ServerError, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, GRPC: GRPC13Internal}},
	{WS1012ServiceRestart, Row{HTTP: HTTP503ServiceUnavailable, AMQP: AMQP541InternalError, GRPC: GRPC2Unknown}},
	{WS1013TryAgainLater, Row{HTTP: HTTP503ServiceUnavailable, AMQP: AMQP541InternalError, GRPC: GRPC14Unavailable}},
	{WS1014BadGateway, Row{HTTP: HTTP502BadGateway, AMQP: AMQP541InternalError, GRPC: GRPC2Unknown}},
	{WS1015TLSHandshakeFail, Row{HTTP: HTTP503ServiceUnavailable, AMQP: AMQP530NotAllowed, GRPC: GRPC2Unknown}},

	{GRPC2Unknown, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, WS: WS1011ServerError}},
	{GRPC3InvalidArgument, Row{HTTP: HTTP400BadRequest, AMQP: AMQP502SyntaxError, WS: WS1007UnsupportedPayload}},
	{GRPC4DeadlineExceeded, Row{HTTP: HTTP408RequestTimeout, AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation}},
	{GRPC5NotFound, Row{HTTP: HTTP404NotFound, AMQP: AMQP404NotFound, WS: WS1008PolicyViolation}},
	{GRPC6AlreadyExists, Row{HTTP: HTTP400BadRequest, AMQP: AMQP541InternalError, WS: WS1008PolicyViolation}},
	{GRPC7PermissionDenied, Row{HTTP: HTTP403Forbidden, AMQP: AMQP403AccessRefused, WS: WS1008PolicyViolation}},
	{GRPC8ResourceExhausted, Row{HTTP: HTTP429TooManyRequests, AMQP: AMQP506ResourceError, WS: WS1008PolicyViolation}},
	{GRPC9FailedPrecondition, Row{HTTP: HTTP412PreconditionFailed, AMQP: AMQP406PreconditionFailed, WS: WS1008PolicyViolation}},
	{GRPC10Aborted, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, WS: WS1011ServerError}},
	{GRPC11OutOfRange, Row{HTTP: HTTP416RangeNotSatisfiable, AMQP: AMQP503CommandInvalid, WS: WS1008PolicyViolation}},
	{GRPC12Unimplemented, Row{HTTP: HTTP501NotImplemented, AMQP: AMQP540NotImplemented, WS: WS1011ServerError}},
	{GRPC13Internal, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, WS: WS1011ServerError}},
	{GRPC14Unavailable, Row{HTTP: HTTP503ServiceUnavailable, AMQP: AMQP541InternalError, WS: WS1013TryAgainLater}},
	{GRPC15DataLoss, Row{HTTP: HTTP500InternalServerError, AMQP: AMQP541InternalError, WS: WS1011ServerError}},
	{GRPC16Unauthenticated, Row{HTTP: HTTP401Unauthorized, AMQP: AMQP530NotAllowed, WS: WS1008PolicyViolation}},
}
