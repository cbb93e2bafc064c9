// Copyright 2025 UAForge Authors. All rights reserved.

package ua

import (
	"reflect"
	"time"
)

// RequestHeader structure.
type RequestHeader struct {
	AuthenticationToken NodeID
	Timestamp           time.Time
	RequestHandle       uint32
	ReturnDiagnostics   uint32
	AuditEntryID        string
	TimeoutHint         uint32
	AdditionalHeader    ExtensionObject
}

// ResponseHeader structure.
type ResponseHeader struct {
	Timestamp          time.Time
	RequestHandle      uint32
	ServiceResult      StatusCode
	ServiceDiagnostics DiagnosticInfo
	StringTable        []string
	AdditionalHeader   ExtensionObject
}

// ServiceFault structure.
type ServiceFault struct {
	ResponseHeader
}

// SignatureData structure.
type SignatureData struct {
	Algorithm string
	Signature ByteString
}

// SignedSoftwareCertificate structure.
type SignedSoftwareCertificate struct {
	CertificateData ByteString
	Signature       ByteString
}

// ApplicationDescription structure.
type ApplicationDescription struct {
	ApplicationURI      string
	ProductURI          string
	ApplicationName     LocalizedText
	ApplicationType     ApplicationType
	GatewayServerURI    string
	DiscoveryProfileURI string
	DiscoveryURLs       []string
}

// UserTokenPolicy structure.
type UserTokenPolicy struct {
	PolicyID          string
	TokenType         UserTokenType
	IssuedTokenType   string
	IssuerEndpointURL string
	SecurityPolicyURI string
}

// EndpointDescription structure.
type EndpointDescription struct {
	EndpointURL         string
	Server              ApplicationDescription
	ServerCertificate   ByteString
	SecurityMode        MessageSecurityMode
	SecurityPolicyURI   string
	UserIdentityTokens  []UserTokenPolicy
	TransportProfileURI string
	SecurityLevel       byte
}

// ViewDescription structure.
type ViewDescription struct {
	ViewID      NodeID
	Timestamp   time.Time
	ViewVersion uint32
}

// FindServersRequest structure.
type FindServersRequest struct {
	RequestHeader
	EndpointURL string
	LocaleIDs   []string
	ServerURIs  []string
}

// FindServersResponse structure.
type FindServersResponse struct {
	ResponseHeader
	Servers []ApplicationDescription
}

// GetEndpointsRequest structure.
type GetEndpointsRequest struct {
	RequestHeader
	EndpointURL string
	LocaleIDs   []string
	ProfileURIs []string
}

// GetEndpointsResponse structure.
type GetEndpointsResponse struct {
	ResponseHeader
	Endpoints []EndpointDescription
}

// ChannelSecurityToken structure.
type ChannelSecurityToken struct {
	ChannelID       uint32
	TokenID         uint32
	CreatedAt       time.Time
	RevisedLifetime uint32
}

// OpenSecureChannelRequest structure.
type OpenSecureChannelRequest struct {
	RequestHeader
	ClientProtocolVersion uint32
	RequestType           SecurityTokenRequestType
	SecurityMode          MessageSecurityMode
	ClientNonce           ByteString
	RequestedLifetime     uint32
}

// OpenSecureChannelResponse structure.
type OpenSecureChannelResponse struct {
	ResponseHeader
	ServerProtocolVersion uint32
	SecurityToken         ChannelSecurityToken
	ServerNonce           ByteString
}

// CloseSecureChannelRequest structure.
type CloseSecureChannelRequest struct {
	RequestHeader
}

// CloseSecureChannelResponse structure.
type CloseSecureChannelResponse struct {
	ResponseHeader
}

// CreateSessionRequest structure.
type CreateSessionRequest struct {
	RequestHeader
	ClientDescription       ApplicationDescription
	ServerURI               string
	EndpointURL             string
	SessionName             string
	ClientNonce             ByteString
	ClientCertificate       ByteString
	RequestedSessionTimeout float64
	MaxResponseMessageSize  uint32
}

// CreateSessionResponse structure.
type CreateSessionResponse struct {
	ResponseHeader
	SessionID                  NodeID
	AuthenticationToken        NodeID
	RevisedSessionTimeout      float64
	ServerNonce                ByteString
	ServerCertificate          ByteString
	ServerEndpoints            []EndpointDescription
	ServerSoftwareCertificates []SignedSoftwareCertificate
	ServerSignature            SignatureData
	MaxRequestMessageSize      uint32
}

// ActivateSessionRequest structure.
type ActivateSessionRequest struct {
	RequestHeader
	ClientSignature            SignatureData
	ClientSoftwareCertificates []SignedSoftwareCertificate
	LocaleIDs                  []string
	UserIdentityToken          ExtensionObject
	UserTokenSignature         SignatureData
}

// ActivateSessionResponse structure.
type ActivateSessionResponse struct {
	ResponseHeader
	ServerNonce     ByteString
	Results         []StatusCode
	DiagnosticInfos []DiagnosticInfo
}

// CloseSessionRequest structure.
type CloseSessionRequest struct {
	RequestHeader
	DeleteSubscriptions bool
}

// CloseSessionResponse structure.
type CloseSessionResponse struct {
	ResponseHeader
}

// CancelRequest structure.
type CancelRequest struct {
	RequestHeader
	RequestHandle uint32
}

// CancelResponse structure.
type CancelResponse struct {
	ResponseHeader
	CancelCount uint32
}

// AnonymousIdentityToken structure.
type AnonymousIdentityToken struct {
	PolicyID string
}

// UserNameIdentityToken structure.
type UserNameIdentityToken struct {
	PolicyID            string
	UserName            string
	Password            ByteString
	EncryptionAlgorithm string
}

// X509IdentityToken structure.
type X509IdentityToken struct {
	PolicyID        string
	CertificateData ByteString
}

// IssuedIdentityToken structure.
type IssuedIdentityToken struct {
	PolicyID            string
	TokenData           ByteString
	EncryptionAlgorithm string
}

// ReadValueID structure.
type ReadValueID struct {
	NodeID       NodeID
	AttributeID  uint32
	IndexRange   string
	DataEncoding QualifiedName
}

// ReadRequest structure.
type ReadRequest struct {
	RequestHeader
	MaxAge             float64
	TimestampsToReturn TimestampsToReturn
	NodesToRead        []ReadValueID
}

// ReadResponse structure.
type ReadResponse struct {
	ResponseHeader
	Results         []DataValue
	DiagnosticInfos []DiagnosticInfo
}

// WriteValue structure.
type WriteValue struct {
	NodeID      NodeID
	AttributeID uint32
	IndexRange  string
	Value       DataValue
}

// WriteRequest structure.
type WriteRequest struct {
	RequestHeader
	NodesToWrite []WriteValue
}

// WriteResponse structure.
type WriteResponse struct {
	ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []DiagnosticInfo
}

// BrowseDescription structure.
type BrowseDescription struct {
	NodeID          NodeID
	BrowseDirection BrowseDirection
	ReferenceTypeID NodeID
	IncludeSubtypes bool
	NodeClassMask   uint32
	ResultMask      uint32
}

// ReferenceDescription structure.
type ReferenceDescription struct {
	ReferenceTypeID NodeID
	IsForward       bool
	NodeID          ExpandedNodeID
	BrowseName      QualifiedName
	DisplayName     LocalizedText
	NodeClass       NodeClass
	TypeDefinition  ExpandedNodeID
}

// BrowseResult structure.
type BrowseResult struct {
	StatusCode        StatusCode
	ContinuationPoint ByteString
	References        []ReferenceDescription
}

// BrowseRequest structure.
type BrowseRequest struct {
	RequestHeader
	View                          ViewDescription
	RequestedMaxReferencesPerNode uint32
	NodesToBrowse                 []BrowseDescription
}

// BrowseResponse structure.
type BrowseResponse struct {
	ResponseHeader
	Results         []BrowseResult
	DiagnosticInfos []DiagnosticInfo
}

// BrowseNextRequest structure.
type BrowseNextRequest struct {
	RequestHeader
	ReleaseContinuationPoints bool
	ContinuationPoints        []ByteString
}

// BrowseNextResponse structure.
type BrowseNextResponse struct {
	ResponseHeader
	Results         []BrowseResult
	DiagnosticInfos []DiagnosticInfo
}

// RelativePathElement structure.
type RelativePathElement struct {
	ReferenceTypeID NodeID
	IsInverse       bool
	IncludeSubtypes bool
	TargetName      QualifiedName
}

// RelativePath structure.
type RelativePath struct {
	Elements []RelativePathElement
}

// BrowsePath structure.
type BrowsePath struct {
	StartingNode NodeID
	RelativePath RelativePath
}

// BrowsePathTarget structure.
type BrowsePathTarget struct {
	TargetID           ExpandedNodeID
	RemainingPathIndex uint32
}

// BrowsePathResult structure.
type BrowsePathResult struct {
	StatusCode StatusCode
	Targets    []BrowsePathTarget
}

// TranslateBrowsePathsToNodeIDsRequest structure.
type TranslateBrowsePathsToNodeIDsRequest struct {
	RequestHeader
	BrowsePaths []BrowsePath
}

// TranslateBrowsePathsToNodeIDsResponse structure.
type TranslateBrowsePathsToNodeIDsResponse struct {
	ResponseHeader
	Results         []BrowsePathResult
	DiagnosticInfos []DiagnosticInfo
}

// RegisterNodesRequest structure.
type RegisterNodesRequest struct {
	RequestHeader
	NodesToRegister []NodeID
}

// RegisterNodesResponse structure.
type RegisterNodesResponse struct {
	ResponseHeader
	RegisteredNodeIDs []NodeID
}

// UnregisterNodesRequest structure.
type UnregisterNodesRequest struct {
	RequestHeader
	NodesToUnregister []NodeID
}

// UnregisterNodesResponse structure.
type UnregisterNodesResponse struct {
	ResponseHeader
}

// CallMethodRequest structure.
type CallMethodRequest struct {
	ObjectID       NodeID
	MethodID       NodeID
	InputArguments []Variant
}

// CallMethodResult structure.
type CallMethodResult struct {
	StatusCode                   StatusCode
	InputArgumentResults         []StatusCode
	InputArgumentDiagnosticInfos []DiagnosticInfo
	OutputArguments              []Variant
}

// CallRequest structure.
type CallRequest struct {
	RequestHeader
	MethodsToCall []CallMethodRequest
}

// CallResponse structure.
type CallResponse struct {
	ResponseHeader
	Results         []CallMethodResult
	DiagnosticInfos []DiagnosticInfo
}

// DataChangeFilter structure.
type DataChangeFilter struct {
	Trigger       DataChangeTrigger
	DeadbandType  uint32
	DeadbandValue float64
}

// MonitoringParameters structure.
type MonitoringParameters struct {
	ClientHandle     uint32
	SamplingInterval float64
	Filter           ExtensionObject
	QueueSize        uint32
	DiscardOldest    bool
}

// MonitoredItemCreateRequest structure.
type MonitoredItemCreateRequest struct {
	ItemToMonitor       ReadValueID
	MonitoringMode      MonitoringMode
	RequestedParameters MonitoringParameters
}

// MonitoredItemCreateResult structure.
type MonitoredItemCreateResult struct {
	StatusCode              StatusCode
	MonitoredItemID         uint32
	RevisedSamplingInterval float64
	RevisedQueueSize        uint32
	FilterResult            ExtensionObject
}

// CreateMonitoredItemsRequest structure.
type CreateMonitoredItemsRequest struct {
	RequestHeader
	SubscriptionID     uint32
	TimestampsToReturn TimestampsToReturn
	ItemsToCreate      []MonitoredItemCreateRequest
}

// CreateMonitoredItemsResponse structure.
type CreateMonitoredItemsResponse struct {
	ResponseHeader
	Results         []MonitoredItemCreateResult
	DiagnosticInfos []DiagnosticInfo
}

// MonitoredItemModifyRequest structure.
type MonitoredItemModifyRequest struct {
	MonitoredItemID     uint32
	RequestedParameters MonitoringParameters
}

// MonitoredItemModifyResult structure.
type MonitoredItemModifyResult struct {
	StatusCode              StatusCode
	RevisedSamplingInterval float64
	RevisedQueueSize        uint32
	FilterResult            ExtensionObject
}

// ModifyMonitoredItemsRequest structure.
type ModifyMonitoredItemsRequest struct {
	RequestHeader
	SubscriptionID     uint32
	TimestampsToReturn TimestampsToReturn
	ItemsToModify      []MonitoredItemModifyRequest
}

// ModifyMonitoredItemsResponse structure.
type ModifyMonitoredItemsResponse struct {
	ResponseHeader
	Results         []MonitoredItemModifyResult
	DiagnosticInfos []DiagnosticInfo
}

// SetMonitoringModeRequest structure.
type SetMonitoringModeRequest struct {
	RequestHeader
	SubscriptionID   uint32
	MonitoringMode   MonitoringMode
	MonitoredItemIDs []uint32
}

// SetMonitoringModeResponse structure.
type SetMonitoringModeResponse struct {
	ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []DiagnosticInfo
}

// SetTriggeringRequest structure.
type SetTriggeringRequest struct {
	RequestHeader
	SubscriptionID   uint32
	TriggeringItemID uint32
	LinksToAdd       []uint32
	LinksToRemove    []uint32
}

// SetTriggeringResponse structure.
type SetTriggeringResponse struct {
	ResponseHeader
	AddResults            []StatusCode
	AddDiagnosticInfos    []DiagnosticInfo
	RemoveResults         []StatusCode
	RemoveDiagnosticInfos []DiagnosticInfo
}

// DeleteMonitoredItemsRequest structure.
type DeleteMonitoredItemsRequest struct {
	RequestHeader
	SubscriptionID   uint32
	MonitoredItemIDs []uint32
}

// DeleteMonitoredItemsResponse structure.
type DeleteMonitoredItemsResponse struct {
	ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []DiagnosticInfo
}

// CreateSubscriptionRequest structure.
type CreateSubscriptionRequest struct {
	RequestHeader
	RequestedPublishingInterval float64
	RequestedLifetimeCount      uint32
	RequestedMaxKeepAliveCount  uint32
	MaxNotificationsPerPublish  uint32
	PublishingEnabled           bool
	Priority                    byte
}

// CreateSubscriptionResponse structure.
type CreateSubscriptionResponse struct {
	ResponseHeader
	SubscriptionID            uint32
	RevisedPublishingInterval float64
	RevisedLifetimeCount      uint32
	RevisedMaxKeepAliveCount  uint32
}

// ModifySubscriptionRequest structure.
type ModifySubscriptionRequest struct {
	RequestHeader
	SubscriptionID              uint32
	RequestedPublishingInterval float64
	RequestedLifetimeCount      uint32
	RequestedMaxKeepAliveCount  uint32
	MaxNotificationsPerPublish  uint32
	Priority                    byte
}

// ModifySubscriptionResponse structure.
type ModifySubscriptionResponse struct {
	ResponseHeader
	RevisedPublishingInterval float64
	RevisedLifetimeCount      uint32
	RevisedMaxKeepAliveCount  uint32
}

// SetPublishingModeRequest structure.
type SetPublishingModeRequest struct {
	RequestHeader
	PublishingEnabled bool
	SubscriptionIDs   []uint32
}

// SetPublishingModeResponse structure.
type SetPublishingModeResponse struct {
	ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []DiagnosticInfo
}

// NotificationMessage structure.
type NotificationMessage struct {
	SequenceNumber   uint32
	PublishTime      time.Time
	NotificationData []ExtensionObject
}

// MonitoredItemNotification structure.
type MonitoredItemNotification struct {
	ClientHandle uint32
	Value        DataValue
}

// DataChangeNotification structure.
type DataChangeNotification struct {
	MonitoredItems  []MonitoredItemNotification
	DiagnosticInfos []DiagnosticInfo
}

// StatusChangeNotification structure.
type StatusChangeNotification struct {
	Status         StatusCode
	DiagnosticInfo DiagnosticInfo
}

// SubscriptionAcknowledgement structure.
type SubscriptionAcknowledgement struct {
	SubscriptionID uint32
	SequenceNumber uint32
}

// PublishRequest structure.
type PublishRequest struct {
	RequestHeader
	SubscriptionAcknowledgements []SubscriptionAcknowledgement
}

// PublishResponse structure.
type PublishResponse struct {
	ResponseHeader
	SubscriptionID           uint32
	AvailableSequenceNumbers []uint32
	MoreNotifications        bool
	NotificationMessage      NotificationMessage
	Results                  []StatusCode
	DiagnosticInfos          []DiagnosticInfo
}

// RepublishRequest structure.
type RepublishRequest struct {
	RequestHeader
	SubscriptionID           uint32
	RetransmitSequenceNumber uint32
}

// RepublishResponse structure.
type RepublishResponse struct {
	ResponseHeader
	NotificationMessage NotificationMessage
}

// TransferResult structure.
type TransferResult struct {
	StatusCode               StatusCode
	AvailableSequenceNumbers []uint32
}

// TransferSubscriptionsRequest structure.
type TransferSubscriptionsRequest struct {
	RequestHeader
	SubscriptionIDs   []uint32
	SendInitialValues bool
}

// TransferSubscriptionsResponse structure.
type TransferSubscriptionsResponse struct {
	ResponseHeader
	Results         []TransferResult
	DiagnosticInfos []DiagnosticInfo
}

// DeleteSubscriptionsRequest structure.
type DeleteSubscriptionsRequest struct {
	RequestHeader
	SubscriptionIDs []uint32
}

// DeleteSubscriptionsResponse structure.
type DeleteSubscriptionsResponse struct {
	ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []DiagnosticInfo
}

// BuildInfo structure.
type BuildInfo struct {
	ProductURI       string
	ManufacturerName string
	ProductName      string
	SoftwareVersion  string
	BuildNumber      string
	BuildDate        time.Time
}

// ServerStatusDataType structure.
type ServerStatusDataType struct {
	StartTime           time.Time
	CurrentTime         time.Time
	State               ServerState
	BuildInfo           BuildInfo
	SecondsTillShutdown uint32
	ShutdownReason      LocalizedText
}

func init() {
	RegisterBinaryEncodingID(reflect.TypeOf((*RequestHeader)(nil)).Elem(), NewExpandedNodeID(ObjectIDRequestHeaderEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ResponseHeader)(nil)).Elem(), NewExpandedNodeID(ObjectIDResponseHeaderEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ServiceFault)(nil)).Elem(), NewExpandedNodeID(ObjectIDServiceFaultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SignatureData)(nil)).Elem(), NewExpandedNodeID(ObjectIDSignatureDataEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SignedSoftwareCertificate)(nil)).Elem(), NewExpandedNodeID(ObjectIDSignedSoftwareCertificateEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ApplicationDescription)(nil)).Elem(), NewExpandedNodeID(ObjectIDApplicationDescriptionEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*UserTokenPolicy)(nil)).Elem(), NewExpandedNodeID(ObjectIDUserTokenPolicyEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*EndpointDescription)(nil)).Elem(), NewExpandedNodeID(ObjectIDEndpointDescriptionEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ViewDescription)(nil)).Elem(), NewExpandedNodeID(ObjectIDViewDescriptionEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*FindServersRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDFindServersRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*FindServersResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDFindServersResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*GetEndpointsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDGetEndpointsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*GetEndpointsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDGetEndpointsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ChannelSecurityToken)(nil)).Elem(), NewExpandedNodeID(ObjectIDChannelSecurityTokenEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*OpenSecureChannelRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDOpenSecureChannelRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*OpenSecureChannelResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDOpenSecureChannelResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CloseSecureChannelRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCloseSecureChannelRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CloseSecureChannelResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCloseSecureChannelResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CreateSessionRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCreateSessionRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CreateSessionResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCreateSessionResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ActivateSessionRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDActivateSessionRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ActivateSessionResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDActivateSessionResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CloseSessionRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCloseSessionRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CloseSessionResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCloseSessionResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CancelRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCancelRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CancelResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCancelResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*AnonymousIdentityToken)(nil)).Elem(), NewExpandedNodeID(ObjectIDAnonymousIdentityTokenEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*UserNameIdentityToken)(nil)).Elem(), NewExpandedNodeID(ObjectIDUserNameIdentityTokenEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*X509IdentityToken)(nil)).Elem(), NewExpandedNodeID(ObjectIDX509IdentityTokenEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*IssuedIdentityToken)(nil)).Elem(), NewExpandedNodeID(ObjectIDIssuedIdentityTokenEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ReadValueID)(nil)).Elem(), NewExpandedNodeID(ObjectIDReadValueIDEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ReadRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDReadRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ReadResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDReadResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*WriteValue)(nil)).Elem(), NewExpandedNodeID(ObjectIDWriteValueEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*WriteRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDWriteRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*WriteResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDWriteResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowseDescription)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowseDescriptionEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ReferenceDescription)(nil)).Elem(), NewExpandedNodeID(ObjectIDReferenceDescriptionEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowseResult)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowseResultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowseRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowseRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowseResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowseResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowseNextRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowseNextRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowseNextResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowseNextResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*RelativePathElement)(nil)).Elem(), NewExpandedNodeID(ObjectIDRelativePathElementEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*RelativePath)(nil)).Elem(), NewExpandedNodeID(ObjectIDRelativePathEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowsePath)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowsePathEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowsePathTarget)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowsePathTargetEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BrowsePathResult)(nil)).Elem(), NewExpandedNodeID(ObjectIDBrowsePathResultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*TranslateBrowsePathsToNodeIDsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDTranslateBrowsePathsToNodeIDsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*TranslateBrowsePathsToNodeIDsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDTranslateBrowsePathsToNodeIDsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*RegisterNodesRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDRegisterNodesRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*RegisterNodesResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDRegisterNodesResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*UnregisterNodesRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDUnregisterNodesRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*UnregisterNodesResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDUnregisterNodesResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CallMethodRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCallMethodRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CallMethodResult)(nil)).Elem(), NewExpandedNodeID(ObjectIDCallMethodResultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CallRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCallRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CallResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCallResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*DataChangeFilter)(nil)).Elem(), NewExpandedNodeID(ObjectIDDataChangeFilterEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*MonitoringParameters)(nil)).Elem(), NewExpandedNodeID(ObjectIDMonitoringParametersEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*MonitoredItemCreateRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDMonitoredItemCreateRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*MonitoredItemCreateResult)(nil)).Elem(), NewExpandedNodeID(ObjectIDMonitoredItemCreateResultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CreateMonitoredItemsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCreateMonitoredItemsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CreateMonitoredItemsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCreateMonitoredItemsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*MonitoredItemModifyRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDMonitoredItemModifyRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*MonitoredItemModifyResult)(nil)).Elem(), NewExpandedNodeID(ObjectIDMonitoredItemModifyResultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ModifyMonitoredItemsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDModifyMonitoredItemsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ModifyMonitoredItemsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDModifyMonitoredItemsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SetMonitoringModeRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDSetMonitoringModeRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SetMonitoringModeResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDSetMonitoringModeResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SetTriggeringRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDSetTriggeringRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SetTriggeringResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDSetTriggeringResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*DeleteMonitoredItemsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDDeleteMonitoredItemsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*DeleteMonitoredItemsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDDeleteMonitoredItemsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CreateSubscriptionRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDCreateSubscriptionRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*CreateSubscriptionResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDCreateSubscriptionResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ModifySubscriptionRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDModifySubscriptionRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ModifySubscriptionResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDModifySubscriptionResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SetPublishingModeRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDSetPublishingModeRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SetPublishingModeResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDSetPublishingModeResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*NotificationMessage)(nil)).Elem(), NewExpandedNodeID(ObjectIDNotificationMessageEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*MonitoredItemNotification)(nil)).Elem(), NewExpandedNodeID(ObjectIDMonitoredItemNotificationEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*DataChangeNotification)(nil)).Elem(), NewExpandedNodeID(ObjectIDDataChangeNotificationEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*StatusChangeNotification)(nil)).Elem(), NewExpandedNodeID(ObjectIDStatusChangeNotificationEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*SubscriptionAcknowledgement)(nil)).Elem(), NewExpandedNodeID(ObjectIDSubscriptionAcknowledgementEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*PublishRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDPublishRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*PublishResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDPublishResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*RepublishRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDRepublishRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*RepublishResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDRepublishResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*TransferResult)(nil)).Elem(), NewExpandedNodeID(ObjectIDTransferResultEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*TransferSubscriptionsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDTransferSubscriptionsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*TransferSubscriptionsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDTransferSubscriptionsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*DeleteSubscriptionsRequest)(nil)).Elem(), NewExpandedNodeID(ObjectIDDeleteSubscriptionsRequestEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*DeleteSubscriptionsResponse)(nil)).Elem(), NewExpandedNodeID(ObjectIDDeleteSubscriptionsResponseEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*BuildInfo)(nil)).Elem(), NewExpandedNodeID(ObjectIDBuildInfoEncodingDefaultBinary))
	RegisterBinaryEncodingID(reflect.TypeOf((*ServerStatusDataType)(nil)).Elem(), NewExpandedNodeID(ObjectIDServerStatusDataTypeEncodingDefaultBinary))
}
