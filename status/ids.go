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

// Default is the sentinel selecting the DEFAULT row of the table.
// It is not a parseable identifier.
const Default ID = "DEFAULT"

// HTTP response status codes.
const (
	HTTP400BadRequest                    ID = "HTTP_400_Bad_Request"
	HTTP401Unauthorized                  ID = "HTTP_401_Unauthorized"
	HTTP402PaymentRequired               ID = "HTTP_402_Payment_Required"
	HTTP403Forbidden                     ID = "HTTP_403_Forbidden"
	HTTP404NotFound                      ID = "HTTP_404_Not_Found"
	HTTP405MethodNotAllowed              ID = "HTTP_405_Method_Not_Allowed"
	HTTP406NotAcceptable                 ID = "HTTP_406_Not_Acceptable"
	HTTP407ProxyAuthenticationRequired   ID = "HTTP_407_Proxy_Authentication_Required"
	HTTP408RequestTimeout                ID = "HTTP_408_Request_Timeout"
	HTTP409Conflict                      ID = "HTTP_409_Conflict"
	HTTP410Gone                          ID = "HTTP_410_Gone"
	HTTP411LengthRequired                ID = "HTTP_411_Length_Required"
	HTTP412PreconditionFailed            ID = "HTTP_412_Precondition_Failed"
	HTTP413PayloadTooLarge               ID = "HTTP_413_Payload_Too_Large"
	HTTP414URITooLong                    ID = "HTTP_414_URI_Too_Long"
	HTTP415UnsupportedMediaType          ID = "HTTP_415_Unsupported_Media_Type"
	HTTP416RangeNotSatisfiable           ID = "HTTP_416_Range_Not_Satisfiable"
	HTTP417ExpectationFailed             ID = "HTTP_417_Expectation_Failed"
	HTTP418ImATeapot                     ID = "HTTP_418_Im_a_Teapot"
	HTTP421MisdirectedRequest            ID = "HTTP_421_Misdirected_Request"
	HTTP422UnprocessableEntity           ID = "HTTP_422_Unprocessable_Entity"
	HTTP423Locked                        ID = "HTTP_423_Locked"
	HTTP424FailedDependency              ID = "HTTP_424_Failed_Dependency"
	HTTP425TooEarly                      ID = "HTTP_425_Too_Early"
	HTTP426UpgradeRequired               ID = "HTTP_426_Upgrade_Required"
	HTTP428PreconditionRequired          ID = "HTTP_428_Precondition_Required"
	HTTP429TooManyRequests               ID = "HTTP_429_Too_Many_Requests"
	HTTP431RequestHeaderFieldsTooLarge   ID = "HTTP_431_Request_Header_Fields_Too_Large"
	HTTP451UnavailableForLegalReasons    ID = "HTTP_451_Unavailable_For_Legal_Reasons"
	HTTP500InternalServerError           ID = "HTTP_500_Internal_Server_Error"
	HTTP501NotImplemented                ID = "HTTP_501_Not_Implemented"
	HTTP502BadGateway                    ID = "HTTP_502_Bad_Gateway"
	HTTP503ServiceUnavailable            ID = "HTTP_503_Service_Unavailable"
	HTTP504GatewayTimeout                ID = "HTTP_504_Gateway_Timeout"
	HTTP505HTTPVersionNotSupported       ID = "HTTP_505_HTTP_Version_Not_Supported"
	HTTP506VariantAlsoNegotiates         ID = "HTTP_506_Variant_Also_Negotiates"
	HTTP507InsufficientStorage           ID = "HTTP_507_Insufficient_Storage"
	HTTP508LoopDetected                  ID = "HTTP_508_Loop_Detected"
	HTTP510NotExtended                   ID = "HTTP_510_Not_Extended"
	HTTP511NetworkAuthenticationRequired ID = "HTTP_511_Network_Authentication_Required"
)

// AMQP 0-9-1 reply codes.
const (
	AMQP311ContentTooLarge    ID = "AMQP_311_Content_Too_Large"
	AMQP312NoRoute            ID = "AMQP_312_No_Route"
	AMQP313NoConsumers        ID = "AMQP_313_No_Consumers"
	AMQP320ConnectionForced   ID = "AMQP_320_Connection_Forced"
	AMQP402InvalidPath        ID = "AMQP_402_Invalid_Path"
	AMQP403AccessRefused      ID = "AMQP_403_Access_Refused"
	AMQP404NotFound           ID = "AMQP_404_Not_Found"
	AMQP405ResourceLocked     ID = "AMQP_405_Resource_Locked"
	AMQP406PreconditionFailed ID = "AMQP_406_Precondition_Failed"
	AMQP501FrameError         ID = "AMQP_501_Frame_Error"
	AMQP502SyntaxError        ID = "AMQP_502_Syntax_Error"
	AMQP503CommandInvalid     ID = "AMQP_503_Command_Invalid"
	AMQP504ChannelError       ID = "AMQP_504_Channel_Error"
	AMQP505UnexpectedFrame    ID = "AMQP_505_Unexpected_Frame"
	AMQP506ResourceError      ID = "AMQP_506_Resource_Error"
	AMQP530NotAllowed         ID = "AMQP_530_Not_Allowed"
	AMQP540NotImplemented     ID = "AMQP_540_Not_Implemented"
	AMQP541InternalError      ID = "AMQP_541_Internal_Error"
)

// WebSocket close codes (RFC 6455).
const (
	WS1002CloseProtocolError ID = "WS_1002_Close_Protocol_Error"
	WS1003CloseUnsupported   ID = "WS_1003_Close_Unsupported"
	WS1005ClosedNoStatus     ID = "WS_1005_Closed_No_Status"
	WS1006CloseAbnormal      ID = "WS_1006_Close_Abnormal"
	WS1007UnsupportedPayload ID = "WS_1007_Unsupported_Payload"
	WS1008PolicyViolation    ID = "WS_1008_Policy_Violation"
	WS1009CloseTooLarge      ID = "WS_1009_Close_Too_Large"
	WS1010MandatoryExtension ID = "WS_1010_Mandatory_Extension"
	WS1011ServerError        ID = "WS_1011_Server_Error"
	WS1012ServiceRestart     ID = "WS_1012_Service_Restart"
	WS1013TryAgainLater      ID = "WS_1013_Try_Again_Later"
	WS1014BadGateway         ID = "WS_1014_Bad_Gateway"
	WS1015TLSHandshakeFail   ID = "WS_1015_TLS_Handshake_Fail"
)

// gRPC status codes.
const (
	GRPC2Unknown            ID = "GRPC_2_UNKNOWN"
	GRPC3InvalidArgument    ID = "GRPC_3_INVALID_ARGUMENT"
	GRPC4DeadlineExceeded   ID = "GRPC_4_DEADLINE_EXCEEDED"
	GRPC5NotFound           ID = "GRPC_5_NOT_FOUND"
	GRPC6AlreadyExists      ID = "GRPC_6_ALREADY_EXISTS"
	GRPC7PermissionDenied   ID = "GRPC_7_PERMISSION_DENIED"
	GRPC8ResourceExhausted  ID = "GRPC_8_RESOURCE_EXHAUSTED"
	GRPC9FailedPrecondition ID = "GRPC_9_FAILED_PRECONDITION"
	GRPC10Aborted           ID = "GRPC_10_ABORTED"
	GRPC11OutOfRange        ID = "GRPC_11_OUT_OF_RANGE"
	GRPC12Unimplemented     ID = "GRPC_12_UNIMPLEMENTED"
	GRPC13Internal          ID = "GRPC_13_INTERNAL"
	GRPC14Unavailable       ID = "GRPC_14_UNAVAILABLE"
	GRPC15DataLoss          ID = "GRPC_15_DATA_LOSS"
	GRPC16Unauthenticated   ID = "GRPC_16_UNAUTHENTICATED"
)
