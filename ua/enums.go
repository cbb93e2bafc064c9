// Copyright 2025 UAForge Authors. All rights reserved.

package ua

// MessageSecurityMode enumeration.
type MessageSecurityMode int32

// MessageSecurityMode enumeration.
const (
	MessageSecurityModeInvalid        MessageSecurityMode = 0
	MessageSecurityModeNone           MessageSecurityMode = 1
	MessageSecurityModeSign           MessageSecurityMode = 2
	MessageSecurityModeSignAndEncrypt MessageSecurityMode = 3
)

// String returns enumeration value as string.
func (v MessageSecurityMode) String() string {
	switch v {
	case 0:
		return "Invalid"
	case 1:
		return "None"
	case 2:
		return "Sign"
	case 3:
		return "SignAndEncrypt"
	default:
		return ""
	}
}

// ApplicationType enumeration.
type ApplicationType int32

// ApplicationType enumeration.
const (
	ApplicationTypeServer          ApplicationType = 0
	ApplicationTypeClient          ApplicationType = 1
	ApplicationTypeClientAndServer ApplicationType = 2
	ApplicationTypeDiscoveryServer ApplicationType = 3
)

// String returns enumeration value as string.
func (v ApplicationType) String() string {
	switch v {
	case 0:
		return "Server"
	case 1:
		return "Client"
	case 2:
		return "ClientAndServer"
	case 3:
		return "DiscoveryServer"
	default:
		return ""
	}
}

// UserTokenType enumeration.
type UserTokenType int32

// UserTokenType enumeration.
const (
	UserTokenTypeAnonymous   UserTokenType = 0
	UserTokenTypeUserName    UserTokenType = 1
	UserTokenTypeCertificate UserTokenType = 2
	UserTokenTypeIssuedToken UserTokenType = 3
)

// String returns enumeration value as string.
func (v UserTokenType) String() string {
	switch v {
	case 0:
		return "Anonymous"
	case 1:
		return "UserName"
	case 2:
		return "Certificate"
	case 3:
		return "IssuedToken"
	default:
		return ""
	}
}

// SecurityTokenRequestType enumeration.
type SecurityTokenRequestType int32

// SecurityTokenRequestType enumeration.
const (
	SecurityTokenRequestTypeIssue SecurityTokenRequestType = 0
	SecurityTokenRequestTypeRenew SecurityTokenRequestType = 1
)

// String returns enumeration value as string.
func (v SecurityTokenRequestType) String() string {
	switch v {
	case 0:
		return "Issue"
	case 1:
		return "Renew"
	default:
		return ""
	}
}

// TimestampsToReturn enumeration.
type TimestampsToReturn int32

// TimestampsToReturn enumeration.
const (
	TimestampsToReturnSource  TimestampsToReturn = 0
	TimestampsToReturnServer  TimestampsToReturn = 1
	TimestampsToReturnBoth    TimestampsToReturn = 2
	TimestampsToReturnNeither TimestampsToReturn = 3
)

// String returns enumeration value as string.
func (v TimestampsToReturn) String() string {
	switch v {
	case 0:
		return "Source"
	case 1:
		return "Server"
	case 2:
		return "Both"
	case 3:
		return "Neither"
	default:
		return ""
	}
}

// MonitoringMode enumeration.
type MonitoringMode int32

// MonitoringMode enumeration.
const (
	MonitoringModeDisabled  MonitoringMode = 0
	MonitoringModeSampling  MonitoringMode = 1
	MonitoringModeReporting MonitoringMode = 2
)

// String returns enumeration value as string.
func (v MonitoringMode) String() string {
	switch v {
	case 0:
		return "Disabled"
	case 1:
		return "Sampling"
	case 2:
		return "Reporting"
	default:
		return ""
	}
}

// DataChangeTrigger enumeration.
type DataChangeTrigger int32

// DataChangeTrigger enumeration.
const (
	DataChangeTriggerStatus               DataChangeTrigger = 0
	DataChangeTriggerStatusValue          DataChangeTrigger = 1
	DataChangeTriggerStatusValueTimestamp DataChangeTrigger = 2
)

// String returns enumeration value as string.
func (v DataChangeTrigger) String() string {
	switch v {
	case 0:
		return "Status"
	case 1:
		return "StatusValue"
	case 2:
		return "StatusValueTimestamp"
	default:
		return ""
	}
}

// DeadbandType enumeration.
type DeadbandType int32

// DeadbandType enumeration.
const (
	DeadbandTypeNone     DeadbandType = 0
	DeadbandTypeAbsolute DeadbandType = 1
	DeadbandTypePercent  DeadbandType = 2
)

// String returns enumeration value as string.
func (v DeadbandType) String() string {
	switch v {
	case 0:
		return "None"
	case 1:
		return "Absolute"
	case 2:
		return "Percent"
	default:
		return ""
	}
}

// ServerState enumeration.
type ServerState int32

// ServerState enumeration.
const (
	ServerStateRunning            ServerState = 0
	ServerStateFailed             ServerState = 1
	ServerStateNoConfiguration    ServerState = 2
	ServerStateSuspended          ServerState = 3
	ServerStateShutdown           ServerState = 4
	ServerStateTest               ServerState = 5
	ServerStateCommunicationFault ServerState = 6
	ServerStateUnknown            ServerState = 7
)

// String returns enumeration value as string.
func (v ServerState) String() string {
	switch v {
	case 0:
		return "Running"
	case 1:
		return "Failed"
	case 2:
		return "NoConfiguration"
	case 3:
		return "Suspended"
	case 4:
		return "Shutdown"
	case 5:
		return "Test"
	case 6:
		return "CommunicationFault"
	case 7:
		return "Unknown"
	default:
		return ""
	}
}

// BrowseDirection enumeration.
type BrowseDirection int32

// BrowseDirection enumeration.
const (
	BrowseDirectionForward BrowseDirection = 0
	BrowseDirectionInverse BrowseDirection = 1
	BrowseDirectionBoth    BrowseDirection = 2
	BrowseDirectionInvalid BrowseDirection = 3
)

// String returns enumeration value as string.
func (v BrowseDirection) String() string {
	switch v {
	case 0:
		return "Forward"
	case 1:
		return "Inverse"
	case 2:
		return "Both"
	case 3:
		return "Invalid"
	default:
		return ""
	}
}

// NodeClass enumeration.
type NodeClass int32

// NodeClass enumeration.
const (
	NodeClassUnspecified   NodeClass = 0
	NodeClassObject        NodeClass = 1
	NodeClassVariable      NodeClass = 2
	NodeClassMethod        NodeClass = 4
	NodeClassObjectType    NodeClass = 8
	NodeClassVariableType  NodeClass = 16
	NodeClassReferenceType NodeClass = 32
	NodeClassDataType      NodeClass = 64
	NodeClassView          NodeClass = 128
)

// String returns enumeration value as string.
func (v NodeClass) String() string {
	switch v {
	case 0:
		return "Unspecified"
	case 1:
		return "Object"
	case 2:
		return "Variable"
	case 4:
		return "Method"
	case 8:
		return "ObjectType"
	case 16:
		return "VariableType"
	case 32:
		return "ReferenceType"
	case 64:
		return "DataType"
	case 128:
		return "View"
	default:
		return ""
	}
}
