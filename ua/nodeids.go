// Copyright 2025 UAForge Authors. All rights reserved.

package ua

// Well-known NodeIDs
var (
	DataTypeIDBoolean                                                  NodeID = NewNodeIDNumeric(0, 1)
	DataTypeIDSByte                                                    NodeID = NewNodeIDNumeric(0, 2)
	DataTypeIDByte                                                     NodeID = NewNodeIDNumeric(0, 3)
	DataTypeIDInt16                                                    NodeID = NewNodeIDNumeric(0, 4)
	DataTypeIDUInt16                                                   NodeID = NewNodeIDNumeric(0, 5)
	DataTypeIDInt32                                                    NodeID = NewNodeIDNumeric(0, 6)
	DataTypeIDUInt32                                                   NodeID = NewNodeIDNumeric(0, 7)
	DataTypeIDInt64                                                    NodeID = NewNodeIDNumeric(0, 8)
	DataTypeIDUInt64                                                   NodeID = NewNodeIDNumeric(0, 9)
	DataTypeIDFloat                                                    NodeID = NewNodeIDNumeric(0, 10)
	DataTypeIDDouble                                                   NodeID = NewNodeIDNumeric(0, 11)
	DataTypeIDString                                                   NodeID = NewNodeIDNumeric(0, 12)
	DataTypeIDDateTime                                                 NodeID = NewNodeIDNumeric(0, 13)
	DataTypeIDGuid                                                     NodeID = NewNodeIDNumeric(0, 14)
	DataTypeIDByteString                                               NodeID = NewNodeIDNumeric(0, 15)
	DataTypeIDXMLElement                                               NodeID = NewNodeIDNumeric(0, 16)
	DataTypeIDNodeID                                                   NodeID = NewNodeIDNumeric(0, 17)
	DataTypeIDExpandedNodeID                                           NodeID = NewNodeIDNumeric(0, 18)
	DataTypeIDStatusCode                                               NodeID = NewNodeIDNumeric(0, 19)
	DataTypeIDQualifiedName                                            NodeID = NewNodeIDNumeric(0, 20)
	DataTypeIDLocalizedText                                            NodeID = NewNodeIDNumeric(0, 21)
	DataTypeIDStructure                                                NodeID = NewNodeIDNumeric(0, 22)
	DataTypeIDDataValue                                                NodeID = NewNodeIDNumeric(0, 23)
	DataTypeIDBaseDataType                                             NodeID = NewNodeIDNumeric(0, 24)
	DataTypeIDDiagnosticInfo                                           NodeID = NewNodeIDNumeric(0, 25)
	DataTypeIDEnumeration                                              NodeID = NewNodeIDNumeric(0, 29)
	ReferenceTypeIDReferences                                          NodeID = NewNodeIDNumeric(0, 31)
	ReferenceTypeIDNonHierarchicalReferences                           NodeID = NewNodeIDNumeric(0, 32)
	ReferenceTypeIDHierarchicalReferences                              NodeID = NewNodeIDNumeric(0, 33)
	ReferenceTypeIDHasChild                                            NodeID = NewNodeIDNumeric(0, 34)
	ReferenceTypeIDOrganizes                                           NodeID = NewNodeIDNumeric(0, 35)
	ReferenceTypeIDHasTypeDefinition                                   NodeID = NewNodeIDNumeric(0, 40)
	ReferenceTypeIDHasSubtype                                          NodeID = NewNodeIDNumeric(0, 45)
	ReferenceTypeIDHasProperty                                         NodeID = NewNodeIDNumeric(0, 46)
	ReferenceTypeIDHasComponent                                        NodeID = NewNodeIDNumeric(0, 47)
	ReferenceTypeIDHasNotifier                                         NodeID = NewNodeIDNumeric(0, 48)
	ReferenceTypeIDHasOrderedComponent                                 NodeID = NewNodeIDNumeric(0, 49)
	ObjectTypeIDBaseObjectType                                         NodeID = NewNodeIDNumeric(0, 58)
	ObjectTypeIDFolderType                                             NodeID = NewNodeIDNumeric(0, 61)
	VariableTypeIDBaseVariableType                                     NodeID = NewNodeIDNumeric(0, 62)
	VariableTypeIDBaseDataVariableType                                 NodeID = NewNodeIDNumeric(0, 63)
	VariableTypeIDPropertyType                                         NodeID = NewNodeIDNumeric(0, 68)
	ObjectIDRootFolder                                                 NodeID = NewNodeIDNumeric(0, 84)
	ObjectIDObjectsFolder                                              NodeID = NewNodeIDNumeric(0, 85)
	ObjectIDTypesFolder                                                NodeID = NewNodeIDNumeric(0, 86)
	ObjectIDViewsFolder                                                NodeID = NewNodeIDNumeric(0, 87)
	DataTypeIDDuration                                                 NodeID = NewNodeIDNumeric(0, 290)
	DataTypeIDUtcTime                                                  NodeID = NewNodeIDNumeric(0, 294)
	ObjectIDUserTokenPolicyEncodingDefaultBinary                       NodeID = NewNodeIDNumeric(0, 306)
	ObjectIDApplicationDescriptionEncodingDefaultBinary                NodeID = NewNodeIDNumeric(0, 310)
	ObjectIDEndpointDescriptionEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 314)
	ObjectIDAnonymousIdentityTokenEncodingDefaultBinary                NodeID = NewNodeIDNumeric(0, 321)
	ObjectIDUserNameIdentityTokenEncodingDefaultBinary                 NodeID = NewNodeIDNumeric(0, 324)
	ObjectIDX509IdentityTokenEncodingDefaultBinary                     NodeID = NewNodeIDNumeric(0, 327)
	DataTypeIDBuildInfo                                                NodeID = NewNodeIDNumeric(0, 338)
	ObjectIDBuildInfoEncodingDefaultBinary                             NodeID = NewNodeIDNumeric(0, 340)
	ObjectIDSignedSoftwareCertificateEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 346)
	ObjectIDRequestHeaderEncodingDefaultBinary                         NodeID = NewNodeIDNumeric(0, 391)
	ObjectIDResponseHeaderEncodingDefaultBinary                        NodeID = NewNodeIDNumeric(0, 394)
	ObjectIDServiceFaultEncodingDefaultBinary                          NodeID = NewNodeIDNumeric(0, 397)
	ObjectIDFindServersRequestEncodingDefaultBinary                    NodeID = NewNodeIDNumeric(0, 422)
	ObjectIDFindServersResponseEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 425)
	ObjectIDGetEndpointsRequestEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 428)
	ObjectIDGetEndpointsResponseEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 431)
	ObjectIDChannelSecurityTokenEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 443)
	ObjectIDOpenSecureChannelRequestEncodingDefaultBinary              NodeID = NewNodeIDNumeric(0, 446)
	ObjectIDOpenSecureChannelResponseEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 449)
	ObjectIDCloseSecureChannelRequestEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 452)
	ObjectIDCloseSecureChannelResponseEncodingDefaultBinary            NodeID = NewNodeIDNumeric(0, 455)
	ObjectIDSignatureDataEncodingDefaultBinary                         NodeID = NewNodeIDNumeric(0, 458)
	ObjectIDCreateSessionRequestEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 461)
	ObjectIDCreateSessionResponseEncodingDefaultBinary                 NodeID = NewNodeIDNumeric(0, 464)
	ObjectIDActivateSessionRequestEncodingDefaultBinary                NodeID = NewNodeIDNumeric(0, 467)
	ObjectIDActivateSessionResponseEncodingDefaultBinary               NodeID = NewNodeIDNumeric(0, 470)
	ObjectIDCloseSessionRequestEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 473)
	ObjectIDCloseSessionResponseEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 476)
	ObjectIDCancelRequestEncodingDefaultBinary                         NodeID = NewNodeIDNumeric(0, 479)
	ObjectIDCancelResponseEncodingDefaultBinary                        NodeID = NewNodeIDNumeric(0, 482)
	ObjectIDViewDescriptionEncodingDefaultBinary                       NodeID = NewNodeIDNumeric(0, 513)
	ObjectIDBrowseDescriptionEncodingDefaultBinary                     NodeID = NewNodeIDNumeric(0, 516)
	ObjectIDReferenceDescriptionEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 520)
	ObjectIDBrowseResultEncodingDefaultBinary                          NodeID = NewNodeIDNumeric(0, 524)
	ObjectIDBrowseRequestEncodingDefaultBinary                         NodeID = NewNodeIDNumeric(0, 527)
	ObjectIDBrowseResponseEncodingDefaultBinary                        NodeID = NewNodeIDNumeric(0, 530)
	ObjectIDBrowseNextRequestEncodingDefaultBinary                     NodeID = NewNodeIDNumeric(0, 533)
	ObjectIDBrowseNextResponseEncodingDefaultBinary                    NodeID = NewNodeIDNumeric(0, 536)
	ObjectIDRelativePathElementEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 539)
	ObjectIDRelativePathEncodingDefaultBinary                          NodeID = NewNodeIDNumeric(0, 542)
	ObjectIDBrowsePathEncodingDefaultBinary                            NodeID = NewNodeIDNumeric(0, 545)
	ObjectIDBrowsePathTargetEncodingDefaultBinary                      NodeID = NewNodeIDNumeric(0, 548)
	ObjectIDBrowsePathResultEncodingDefaultBinary                      NodeID = NewNodeIDNumeric(0, 551)
	ObjectIDTranslateBrowsePathsToNodeIDsRequestEncodingDefaultBinary  NodeID = NewNodeIDNumeric(0, 554)
	ObjectIDTranslateBrowsePathsToNodeIDsResponseEncodingDefaultBinary NodeID = NewNodeIDNumeric(0, 557)
	ObjectIDRegisterNodesRequestEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 560)
	ObjectIDRegisterNodesResponseEncodingDefaultBinary                 NodeID = NewNodeIDNumeric(0, 563)
	ObjectIDUnregisterNodesRequestEncodingDefaultBinary                NodeID = NewNodeIDNumeric(0, 566)
	ObjectIDUnregisterNodesResponseEncodingDefaultBinary               NodeID = NewNodeIDNumeric(0, 569)
	ObjectIDReadValueIDEncodingDefaultBinary                           NodeID = NewNodeIDNumeric(0, 628)
	ObjectIDReadRequestEncodingDefaultBinary                           NodeID = NewNodeIDNumeric(0, 631)
	ObjectIDReadResponseEncodingDefaultBinary                          NodeID = NewNodeIDNumeric(0, 634)
	ObjectIDWriteValueEncodingDefaultBinary                            NodeID = NewNodeIDNumeric(0, 670)
	ObjectIDWriteRequestEncodingDefaultBinary                          NodeID = NewNodeIDNumeric(0, 673)
	ObjectIDWriteResponseEncodingDefaultBinary                         NodeID = NewNodeIDNumeric(0, 676)
	ObjectIDCallMethodRequestEncodingDefaultBinary                     NodeID = NewNodeIDNumeric(0, 706)
	ObjectIDCallMethodResultEncodingDefaultBinary                      NodeID = NewNodeIDNumeric(0, 709)
	ObjectIDCallRequestEncodingDefaultBinary                           NodeID = NewNodeIDNumeric(0, 712)
	ObjectIDCallResponseEncodingDefaultBinary                          NodeID = NewNodeIDNumeric(0, 715)
	ObjectIDDataChangeFilterEncodingDefaultBinary                      NodeID = NewNodeIDNumeric(0, 724)
	ObjectIDMonitoringParametersEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 742)
	ObjectIDMonitoredItemCreateRequestEncodingDefaultBinary            NodeID = NewNodeIDNumeric(0, 745)
	ObjectIDMonitoredItemCreateResultEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 748)
	ObjectIDCreateMonitoredItemsRequestEncodingDefaultBinary           NodeID = NewNodeIDNumeric(0, 751)
	ObjectIDCreateMonitoredItemsResponseEncodingDefaultBinary          NodeID = NewNodeIDNumeric(0, 754)
	ObjectIDMonitoredItemModifyRequestEncodingDefaultBinary            NodeID = NewNodeIDNumeric(0, 757)
	ObjectIDMonitoredItemModifyResultEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 760)
	ObjectIDModifyMonitoredItemsRequestEncodingDefaultBinary           NodeID = NewNodeIDNumeric(0, 763)
	ObjectIDModifyMonitoredItemsResponseEncodingDefaultBinary          NodeID = NewNodeIDNumeric(0, 766)
	ObjectIDSetMonitoringModeRequestEncodingDefaultBinary              NodeID = NewNodeIDNumeric(0, 769)
	ObjectIDSetMonitoringModeResponseEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 772)
	ObjectIDSetTriggeringRequestEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 775)
	ObjectIDSetTriggeringResponseEncodingDefaultBinary                 NodeID = NewNodeIDNumeric(0, 778)
	ObjectIDDeleteMonitoredItemsRequestEncodingDefaultBinary           NodeID = NewNodeIDNumeric(0, 781)
	ObjectIDDeleteMonitoredItemsResponseEncodingDefaultBinary          NodeID = NewNodeIDNumeric(0, 784)
	ObjectIDCreateSubscriptionRequestEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 787)
	ObjectIDCreateSubscriptionResponseEncodingDefaultBinary            NodeID = NewNodeIDNumeric(0, 790)
	ObjectIDModifySubscriptionRequestEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 793)
	ObjectIDModifySubscriptionResponseEncodingDefaultBinary            NodeID = NewNodeIDNumeric(0, 796)
	ObjectIDSetPublishingModeRequestEncodingDefaultBinary              NodeID = NewNodeIDNumeric(0, 799)
	ObjectIDSetPublishingModeResponseEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 802)
	ObjectIDNotificationMessageEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 805)
	ObjectIDMonitoredItemNotificationEncodingDefaultBinary             NodeID = NewNodeIDNumeric(0, 808)
	ObjectIDDataChangeNotificationEncodingDefaultBinary                NodeID = NewNodeIDNumeric(0, 811)
	ObjectIDStatusChangeNotificationEncodingDefaultBinary              NodeID = NewNodeIDNumeric(0, 820)
	ObjectIDSubscriptionAcknowledgementEncodingDefaultBinary           NodeID = NewNodeIDNumeric(0, 823)
	ObjectIDPublishRequestEncodingDefaultBinary                        NodeID = NewNodeIDNumeric(0, 826)
	ObjectIDPublishResponseEncodingDefaultBinary                       NodeID = NewNodeIDNumeric(0, 829)
	ObjectIDRepublishRequestEncodingDefaultBinary                      NodeID = NewNodeIDNumeric(0, 832)
	ObjectIDRepublishResponseEncodingDefaultBinary                     NodeID = NewNodeIDNumeric(0, 835)
	ObjectIDTransferResultEncodingDefaultBinary                        NodeID = NewNodeIDNumeric(0, 838)
	ObjectIDTransferSubscriptionsRequestEncodingDefaultBinary          NodeID = NewNodeIDNumeric(0, 841)
	ObjectIDTransferSubscriptionsResponseEncodingDefaultBinary         NodeID = NewNodeIDNumeric(0, 844)
	ObjectIDDeleteSubscriptionsRequestEncodingDefaultBinary            NodeID = NewNodeIDNumeric(0, 847)
	ObjectIDDeleteSubscriptionsResponseEncodingDefaultBinary           NodeID = NewNodeIDNumeric(0, 850)
	DataTypeIDServerState                                              NodeID = NewNodeIDNumeric(0, 852)
	DataTypeIDServerStatusDataType                                     NodeID = NewNodeIDNumeric(0, 862)
	ObjectIDServerStatusDataTypeEncodingDefaultBinary                  NodeID = NewNodeIDNumeric(0, 864)
	ObjectIDIssuedIdentityTokenEncodingDefaultBinary                   NodeID = NewNodeIDNumeric(0, 940)
	ObjectIDServer                                                     NodeID = NewNodeIDNumeric(0, 2253)
	VariableIDServerServerArray                                        NodeID = NewNodeIDNumeric(0, 2254)
	VariableIDServerNamespaceArray                                     NodeID = NewNodeIDNumeric(0, 2255)
	VariableIDServerServerStatus                                       NodeID = NewNodeIDNumeric(0, 2256)
	VariableIDServerServerStatusStartTime                              NodeID = NewNodeIDNumeric(0, 2257)
	VariableIDServerServerStatusCurrentTime                            NodeID = NewNodeIDNumeric(0, 2258)
	VariableIDServerServerStatusState                                  NodeID = NewNodeIDNumeric(0, 2259)
	VariableIDServerServerStatusBuildInfo                              NodeID = NewNodeIDNumeric(0, 2260)
	VariableIDServerServiceLevel                                       NodeID = NewNodeIDNumeric(0, 2267)
)
