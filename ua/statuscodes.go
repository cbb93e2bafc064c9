// Copyright 2025 UAForge Authors. All rights reserved.

package ua

// Common StatusCodes of the transport, channel, session, subscription
// and attribute services.
const (
	// Good - the operation succeeded.
	Good StatusCode = 0x00000000
	// GoodSubscriptionTransferred - the subscription was transferred to another session.
	GoodSubscriptionTransferred StatusCode = 0x002D0000
	// BadUnexpectedError - an unexpected error occurred.
	BadUnexpectedError StatusCode = 0x80010000
	// BadInternalError - an internal error occurred as a result of a programming or configuration error.
	BadInternalError StatusCode = 0x80020000
	// BadResourceUnavailable - not enough resources to complete the operation.
	BadResourceUnavailable StatusCode = 0x80040000
	// BadEncodingError - encoding halted because of invalid data in the objects being serialized.
	BadEncodingError StatusCode = 0x80060000
	// BadDecodingError - decoding halted because of invalid data in the stream.
	BadDecodingError StatusCode = 0x80070000
	// BadEncodingLimitsExceeded - the message encoding/decoding limits imposed by the stack have been exceeded.
	BadEncodingLimitsExceeded StatusCode = 0x80080000
	// BadRequestTooLarge - the request message size exceeds limits set by the server.
	BadRequestTooLarge StatusCode = 0x80B80000
	// BadUnknownResponse - an unrecognized response was received from the server.
	BadUnknownResponse StatusCode = 0x80090000
	// BadTimeout - the operation timed out.
	BadTimeout StatusCode = 0x800A0000
	// BadServiceUnsupported - the server does not support the requested service.
	BadServiceUnsupported StatusCode = 0x800B0000
	// BadShutdown - the operation was cancelled because the application is shutting down.
	BadShutdown StatusCode = 0x800C0000
	// BadServerHalted - the server has stopped and cannot process any requests.
	BadServerHalted StatusCode = 0x800E0000
	// BadNothingToDo - no processing could be done because there was nothing to do.
	BadNothingToDo StatusCode = 0x800F0000
	// BadTooManyOperations - the request could not be processed because it specified too many operations.
	BadTooManyOperations StatusCode = 0x80100000
	// BadDataTypeIDUnknown - the extension object cannot be (de)serialized because the data type id is not recognized.
	BadDataTypeIDUnknown StatusCode = 0x80110000
	// BadCertificateInvalid - the certificate provided as a parameter is not valid.
	BadCertificateInvalid StatusCode = 0x80120000
	// BadSecurityChecksFailed - an error occurred verifying security.
	BadSecurityChecksFailed StatusCode = 0x80130000
	// BadCertificateTimeInvalid - the certificate has expired or is not yet valid.
	BadCertificateTimeInvalid StatusCode = 0x80140000
	// BadCertificateHostNameInvalid - the hostname used to connect to a server does not match a hostname in the certificate.
	BadCertificateHostNameInvalid StatusCode = 0x80160000
	// BadCertificateURIInvalid - the URI specified in the ApplicationDescription does not match the URI in the certificate.
	BadCertificateURIInvalid StatusCode = 0x80170000
	// BadCertificateUseNotAllowed - the certificate may not be used for the requested operation.
	BadCertificateUseNotAllowed StatusCode = 0x80180000
	// BadCertificateUntrusted - the certificate is not trusted.
	BadCertificateUntrusted StatusCode = 0x801A0000
	// BadUserAccessDenied - user does not have permission to perform the requested operation.
	BadUserAccessDenied StatusCode = 0x801F0000
	// BadIdentityTokenInvalid - the user identity token is not valid.
	BadIdentityTokenInvalid StatusCode = 0x80200000
	// BadIdentityTokenRejected - the user identity token is valid but the server has rejected it.
	BadIdentityTokenRejected StatusCode = 0x80210000
	// BadSecureChannelIDInvalid - the specified secure channel is no longer valid.
	BadSecureChannelIDInvalid StatusCode = 0x80220000
	// BadInvalidTimestamp - the timestamp is outside the range allowed by the server.
	BadInvalidTimestamp StatusCode = 0x80230000
	// BadNonceInvalid - the nonce does appear to be not a random value or it is not the correct length.
	BadNonceInvalid StatusCode = 0x80240000
	// BadSessionIDInvalid - the session id is not valid.
	BadSessionIDInvalid StatusCode = 0x80250000
	// BadSessionClosed - the session was closed by the client.
	BadSessionClosed StatusCode = 0x80260000
	// BadSessionNotActivated - the session cannot be used because ActivateSession has not been called.
	BadSessionNotActivated StatusCode = 0x80270000
	// BadSubscriptionIDInvalid - the subscription id is not valid.
	BadSubscriptionIDInvalid StatusCode = 0x80280000
	// BadRequestHeaderInvalid - the header for the request is missing or invalid.
	BadRequestHeaderInvalid StatusCode = 0x802A0000
	// BadTimestampsToReturnInvalid - the timestamps to return parameter is invalid.
	BadTimestampsToReturnInvalid StatusCode = 0x802B0000
	// BadRequestCancelledByClient - the request was cancelled by the client.
	BadRequestCancelledByClient StatusCode = 0x802C0000
	// BadNoCommunication - communication with the data source is defined, but not established, and there is no last known value available.
	BadNoCommunication StatusCode = 0x80310000
	// BadWaitingForInitialData - waiting for the server to obtain values from the underlying data source.
	BadWaitingForInitialData StatusCode = 0x80320000
	// BadNodeIDInvalid - the syntax the node id is not valid.
	BadNodeIDInvalid StatusCode = 0x80330000
	// BadNodeIDUnknown - the node id refers to a node that does not exist in the server address space.
	BadNodeIDUnknown StatusCode = 0x80340000
	// BadAttributeIDInvalid - the attribute is not supported for the specified node.
	BadAttributeIDInvalid StatusCode = 0x80350000
	// BadIndexRangeInvalid - the syntax of the index range parameter is invalid.
	BadIndexRangeInvalid StatusCode = 0x80360000
	// BadIndexRangeNoData - no data exists within the range of indexes specified.
	BadIndexRangeNoData StatusCode = 0x80370000
	// BadDataEncodingUnsupported - the server does not support the requested data encoding for the node.
	BadDataEncodingUnsupported StatusCode = 0x80390000
	// BadNotReadable - the access level does not allow reading or subscribing to the node.
	BadNotReadable StatusCode = 0x803A0000
	// BadNotWritable - the access level does not allow writing to the node.
	BadNotWritable StatusCode = 0x803B0000
	// BadOutOfRange - the value was out of range.
	BadOutOfRange StatusCode = 0x803C0000
	// BadNotSupported - the requested operation is not supported.
	BadNotSupported StatusCode = 0x803D0000
	// BadNotImplemented - the requested operation is not implemented.
	BadNotImplemented StatusCode = 0x80400000
	// BadMonitoringModeInvalid - the monitoring mode is invalid.
	BadMonitoringModeInvalid StatusCode = 0x80410000
	// BadMonitoredItemIDInvalid - the monitoring item id does not refer to a valid monitored item.
	BadMonitoredItemIDInvalid StatusCode = 0x80420000
	// BadMonitoredItemFilterInvalid - the monitored item filter parameter is not valid.
	BadMonitoredItemFilterInvalid StatusCode = 0x80430000
	// BadFilterNotAllowed - a monitoring filter cannot be used in combination with the attribute specified.
	BadFilterNotAllowed StatusCode = 0x80450000
	// BadStructureMissing - a mandatory structured parameter was missing or null.
	BadStructureMissing StatusCode = 0x80460000
	// BadNoContinuationPoints - the operation could not be processed because all continuation points have been allocated.
	BadNoContinuationPoints StatusCode = 0x804B0000
	// BadDeadbandFilterInvalid - the deadband filter is not valid.
	BadDeadbandFilterInvalid StatusCode = 0x804E0000
	// BadSecurityModeRejected - the security mode does not meet the requirements set by the server.
	BadSecurityModeRejected StatusCode = 0x80540000
	// BadSecurityPolicyRejected - the security policy does not meet the requirements set by the server.
	BadSecurityPolicyRejected StatusCode = 0x80550000
	// BadTooManySessions - the server has reached its maximum number of sessions.
	BadTooManySessions StatusCode = 0x80560000
	// BadUserSignatureInvalid - the user token signature is missing or invalid.
	BadUserSignatureInvalid StatusCode = 0x80570000
	// BadApplicationSignatureInvalid - the signature generated with the client certificate is missing or invalid.
	BadApplicationSignatureInvalid StatusCode = 0x80580000
	// BadRequestCancelledByRequest - the request was cancelled by the client with the Cancel service.
	BadRequestCancelledByRequest StatusCode = 0x805A0000
	// BadTypeMismatch - the value supplied for the attribute is not of the same type as the attribute's value.
	BadTypeMismatch StatusCode = 0x80740000
	// BadArgumentsMissing - the client did not specify all of the input arguments for the method.
	BadArgumentsMissing StatusCode = 0x80760000
	// BadTooManyArguments - the client specified more input arguments for the method than expected.
	BadTooManyArguments StatusCode = 0x80E50000
	// BadInvalidArgument - one or more arguments are invalid.
	BadInvalidArgument StatusCode = 0x80AB0000
	// BadTooManySubscriptions - the server has reached its maximum number of subscriptions.
	BadTooManySubscriptions StatusCode = 0x80770000
	// BadTooManyPublishRequests - the server has reached the maximum number of queued publish requests.
	BadTooManyPublishRequests StatusCode = 0x80780000
	// BadNoSubscription - there is no subscription available for this session.
	BadNoSubscription StatusCode = 0x80790000
	// BadSequenceNumberUnknown - the sequence number is unknown to the server.
	BadSequenceNumberUnknown StatusCode = 0x807A0000
	// BadMessageNotAvailable - the requested notification message is no longer available.
	BadMessageNotAvailable StatusCode = 0x807B0000
	// BadTCPServerTooBusy - the server cannot process the request because it is too busy.
	BadTCPServerTooBusy StatusCode = 0x807D0000
	// BadTCPMessageTypeInvalid - the type of the message specified in the header invalid.
	BadTCPMessageTypeInvalid StatusCode = 0x807E0000
	// BadTCPSecureChannelUnknown - the secure channel id and/or token id are not currently in use.
	BadTCPSecureChannelUnknown StatusCode = 0x807F0000
	// BadTCPMessageTooLarge - the size of the message chunk specified in the header is too large.
	BadTCPMessageTooLarge StatusCode = 0x80800000
	// BadTCPNotEnoughResources - there are not enough resources to process the request.
	BadTCPNotEnoughResources StatusCode = 0x80810000
	// BadTCPInternalError - an internal error occurred.
	BadTCPInternalError StatusCode = 0x80820000
	// BadTCPEndpointURLInvalid - the server does not recognize the queryString specified.
	BadTCPEndpointURLInvalid StatusCode = 0x80830000
	// BadSecureChannelClosed - the secure channel has been closed.
	BadSecureChannelClosed StatusCode = 0x80860000
	// BadSecureChannelTokenUnknown - the token has expired or is not recognized.
	BadSecureChannelTokenUnknown StatusCode = 0x80870000
	// BadSequenceNumberInvalid - the sequence number is not valid.
	BadSequenceNumberInvalid StatusCode = 0x80880000
	// BadProtocolVersionUnsupported - the applications do not have compatible protocol versions.
	BadProtocolVersionUnsupported StatusCode = 0x80BE0000
	// BadMaxAgeInvalid - the max age parameter is invalid.
	BadMaxAgeInvalid StatusCode = 0x80700000
	// BadNodeClassInvalid - the node class is not valid.
	BadNodeClassInvalid StatusCode = 0x805F0000
	// UncertainInitialValue - the value is an initial value for a variable that normally receives its value from another variable.
	UncertainInitialValue StatusCode = 0x40920000
)

// Error implements the error interface.
func (c StatusCode) Error() string {
	switch c {
	case Good:
		return "The operation succeeded."
	case GoodSubscriptionTransferred:
		return "The subscription was transferred to another session."
	case BadUnexpectedError:
		return "An unexpected error occurred."
	case BadInternalError:
		return "An internal error occurred as a result of a programming or configuration error."
	case BadResourceUnavailable:
		return "Not enough resources to complete the operation."
	case BadEncodingError:
		return "Encoding halted because of invalid data in the objects being serialized."
	case BadDecodingError:
		return "Decoding halted because of invalid data in the stream."
	case BadEncodingLimitsExceeded:
		return "The message encoding/decoding limits imposed by the stack have been exceeded."
	case BadRequestTooLarge:
		return "The request message size exceeds limits set by the server."
	case BadUnknownResponse:
		return "An unrecognized response was received from the server."
	case BadTimeout:
		return "The operation timed out."
	case BadServiceUnsupported:
		return "The server does not support the requested service."
	case BadShutdown:
		return "The operation was cancelled because the application is shutting down."
	case BadServerHalted:
		return "The server has stopped and cannot process any requests."
	case BadNothingToDo:
		return "No processing could be done because there was nothing to do."
	case BadTooManyOperations:
		return "The request could not be processed because it specified too many operations."
	case BadDataTypeIDUnknown:
		return "The extension object cannot be (de)serialized because the data type id is not recognized."
	case BadCertificateInvalid:
		return "The certificate provided as a parameter is not valid."
	case BadSecurityChecksFailed:
		return "An error occurred verifying security."
	case BadCertificateTimeInvalid:
		return "The certificate has expired or is not yet valid."
	case BadCertificateHostNameInvalid:
		return "The hostname used to connect to a server does not match a hostname in the certificate."
	case BadCertificateURIInvalid:
		return "The URI specified in the ApplicationDescription does not match the URI in the certificate."
	case BadCertificateUseNotAllowed:
		return "The certificate may not be used for the requested operation."
	case BadCertificateUntrusted:
		return "The certificate is not trusted."
	case BadUserAccessDenied:
		return "User does not have permission to perform the requested operation."
	case BadIdentityTokenInvalid:
		return "The user identity token is not valid."
	case BadIdentityTokenRejected:
		return "The user identity token is valid but the server has rejected it."
	case BadSecureChannelIDInvalid:
		return "The specified secure channel is no longer valid."
	case BadInvalidTimestamp:
		return "The timestamp is outside the range allowed by the server."
	case BadNonceInvalid:
		return "The nonce does appear to be not a random value or it is not the correct length."
	case BadSessionIDInvalid:
		return "The session id is not valid."
	case BadSessionClosed:
		return "The session was closed by the client."
	case BadSessionNotActivated:
		return "The session cannot be used because ActivateSession has not been called."
	case BadSubscriptionIDInvalid:
		return "The subscription id is not valid."
	case BadRequestHeaderInvalid:
		return "The header for the request is missing or invalid."
	case BadTimestampsToReturnInvalid:
		return "The timestamps to return parameter is invalid."
	case BadRequestCancelledByClient:
		return "The request was cancelled by the client."
	case BadNoCommunication:
		return "Communication with the data source is defined, but not established, and there is no last known value available."
	case BadWaitingForInitialData:
		return "Waiting for the server to obtain values from the underlying data source."
	case BadNodeIDInvalid:
		return "The syntax of the node id is not valid."
	case BadNodeIDUnknown:
		return "The node id refers to a node that does not exist in the server address space."
	case BadAttributeIDInvalid:
		return "The attribute is not supported for the specified node."
	case BadIndexRangeInvalid:
		return "The syntax of the index range parameter is invalid."
	case BadIndexRangeNoData:
		return "No data exists within the range of indexes specified."
	case BadDataEncodingUnsupported:
		return "The server does not support the requested data encoding for the node."
	case BadNotReadable:
		return "The access level does not allow reading or subscribing to the node."
	case BadNotWritable:
		return "The access level does not allow writing to the node."
	case BadOutOfRange:
		return "The value was out of range."
	case BadNotSupported:
		return "The requested operation is not supported."
	case BadNotImplemented:
		return "The requested operation is not implemented."
	case BadMonitoringModeInvalid:
		return "The monitoring mode is invalid."
	case BadMonitoredItemIDInvalid:
		return "The monitoring item id does not refer to a valid monitored item."
	case BadMonitoredItemFilterInvalid:
		return "The monitored item filter parameter is not valid."
	case BadFilterNotAllowed:
		return "A monitoring filter cannot be used in combination with the attribute specified."
	case BadStructureMissing:
		return "A mandatory structured parameter was missing or null."
	case BadNoContinuationPoints:
		return "The operation could not be processed because all continuation points have been allocated."
	case BadDeadbandFilterInvalid:
		return "The deadband filter is not valid."
	case BadSecurityModeRejected:
		return "The security mode does not meet the requirements set by the server."
	case BadSecurityPolicyRejected:
		return "The security policy does not meet the requirements set by the server."
	case BadTooManySessions:
		return "The server has reached its maximum number of sessions."
	case BadUserSignatureInvalid:
		return "The user token signature is missing or invalid."
	case BadApplicationSignatureInvalid:
		return "The signature generated with the client certificate is missing or invalid."
	case BadRequestCancelledByRequest:
		return "The request was cancelled by the client with the Cancel service."
	case BadTypeMismatch:
		return "The value supplied for the attribute is not of the same type as the attribute's value."
	case BadArgumentsMissing:
		return "The client did not specify all of the input arguments for the method."
	case BadTooManyArguments:
		return "The client specified more input arguments for the method than expected."
	case BadInvalidArgument:
		return "One or more arguments are invalid."
	case BadTooManySubscriptions:
		return "The server has reached its maximum number of subscriptions."
	case BadTooManyPublishRequests:
		return "The server has reached the maximum number of queued publish requests."
	case BadNoSubscription:
		return "There is no subscription available for this session."
	case BadSequenceNumberUnknown:
		return "The sequence number is unknown to the server."
	case BadMessageNotAvailable:
		return "The requested notification message is no longer available."
	case BadTCPServerTooBusy:
		return "The server cannot process the request because it is too busy."
	case BadTCPMessageTypeInvalid:
		return "The type of the message specified in the header invalid."
	case BadTCPSecureChannelUnknown:
		return "The secure channel id and/or token id are not currently in use."
	case BadTCPMessageTooLarge:
		return "The size of the message chunk specified in the header is too large."
	case BadTCPNotEnoughResources:
		return "There are not enough resources to process the request."
	case BadTCPInternalError:
		return "An internal error occurred."
	case BadTCPEndpointURLInvalid:
		return "The server does not recognize the queryString specified."
	case BadSecureChannelClosed:
		return "The secure channel has been closed."
	case BadSecureChannelTokenUnknown:
		return "The token has expired or is not recognized."
	case BadSequenceNumberInvalid:
		return "The sequence number is not valid."
	case BadProtocolVersionUnsupported:
		return "The applications do not have compatible protocol versions."
	case BadMaxAgeInvalid:
		return "The max age parameter is invalid."
	case BadNodeClassInvalid:
		return "The node class is not valid."
	case UncertainInitialValue:
		return "The value is an initial value for a variable that normally receives its value from another variable."
	default:
		return "An unknown error occurred."
	}
}
