package server

import (
	"context"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// validateItemFilter checks a requested monitoring filter against the
// attribute being monitored. Data change filters apply to the value
// attribute only, and percentage deadbands need engineering unit ranges the
// node service does not expose.
func validateItemFilter(attributeID uint32, filter ua.ExtensionObject) ua.StatusCode {
	if filter == nil {
		return ua.Good
	}
	if attributeID != ua.AttributeIDValue {
		return ua.BadFilterNotAllowed
	}
	dcf, ok := filter.(ua.DataChangeFilter)
	if !ok {
		return ua.BadFilterNotAllowed
	}
	if dcf.DeadbandType >= uint32(ua.DeadbandTypePercent) {
		return ua.BadDeadbandFilterInvalid
	}
	return ua.Good
}

// handleCreateMonitoredItems adds items to a subscription with per-item
// results.
func (srv *Server) handleCreateMonitoredItems(ch *serverSecureChannel, requestid uint32, req *ua.CreateMonitoredItemsRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	if req.TimestampsToReturn < ua.TimestampsToReturnSource || req.TimestampsToReturn > ua.TimestampsToReturnNeither {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTimestampsToReturnInvalid)
	}
	if len(req.ItemsToCreate) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.ItemsToCreate)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	ctx := context.WithValue(context.Background(), SessionKey, session)
	results := make([]ua.MonitoredItemCreateResult, len(req.ItemsToCreate))
	for i, item := range req.ItemsToCreate {
		if code := validateItemFilter(item.ItemToMonitor.AttributeID, item.RequestedParameters.Filter); code != ua.Good {
			results[i] = ua.MonitoredItemCreateResult{StatusCode: code}
			continue
		}
		mi := NewMonitoredItem(ctx, srv, sub, item.ItemToMonitor, item.MonitoringMode, item.RequestedParameters, req.TimestampsToReturn)
		if !sub.AppendItem(mi) {
			mi.Delete()
			results[i] = ua.MonitoredItemCreateResult{StatusCode: ua.BadSubscriptionIDInvalid}
			continue
		}
		results[i] = ua.MonitoredItemCreateResult{
			MonitoredItemID:         mi.ID(),
			RevisedSamplingInterval: mi.SamplingInterval(),
			RevisedQueueSize:        mi.QueueSize(),
		}
	}
	return ch.Write(
		&ua.CreateMonitoredItemsResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	)
}

// handleModifyMonitoredItems revises item parameters with per-item results.
func (srv *Server) handleModifyMonitoredItems(ch *serverSecureChannel, requestid uint32, req *ua.ModifyMonitoredItemsRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	if req.TimestampsToReturn < ua.TimestampsToReturnSource || req.TimestampsToReturn > ua.TimestampsToReturnNeither {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTimestampsToReturnInvalid)
	}
	if len(req.ItemsToModify) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.ItemsToModify)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	ctx := context.WithValue(context.Background(), SessionKey, session)
	results := make([]ua.MonitoredItemModifyResult, len(req.ItemsToModify))
	for i, modifyReq := range req.ItemsToModify {
		item, ok := sub.FindItem(modifyReq.MonitoredItemID)
		if !ok {
			results[i] = ua.MonitoredItemModifyResult{StatusCode: ua.BadMonitoredItemIDInvalid}
			continue
		}
		if code := validateItemFilter(item.ItemToMonitor().AttributeID, modifyReq.RequestedParameters.Filter); code != ua.Good {
			results[i] = ua.MonitoredItemModifyResult{StatusCode: code}
			continue
		}
		results[i] = item.Modify(ctx, modifyReq)
	}
	return ch.Write(
		&ua.ModifyMonitoredItemsResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	)
}

// handleSetMonitoringMode switches items between disabled, sampling and
// reporting.
func (srv *Server) handleSetMonitoringMode(ch *serverSecureChannel, requestid uint32, req *ua.SetMonitoringModeRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	if req.MonitoringMode < ua.MonitoringModeDisabled || req.MonitoringMode > ua.MonitoringModeReporting {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadMonitoringModeInvalid)
	}
	if len(req.MonitoredItemIDs) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.MonitoredItemIDs)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	ctx := context.WithValue(context.Background(), SessionKey, session)
	results := make([]ua.StatusCode, len(req.MonitoredItemIDs))
	for i, id := range req.MonitoredItemIDs {
		if item, ok := sub.FindItem(id); ok {
			item.SetMonitoringMode(ctx, req.MonitoringMode)
			results[i] = ua.Good
		} else {
			results[i] = ua.BadMonitoredItemIDInvalid
		}
	}
	return ch.Write(
		&ua.SetMonitoringModeResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	)
}

// handleSetTriggering links items so a report by the triggering item also
// flushes what its linked items have sampled. Removals run before
// additions.
func (srv *Server) handleSetTriggering(ch *serverSecureChannel, requestid uint32, req *ua.SetTriggeringRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	if len(req.LinksToAdd) == 0 && len(req.LinksToRemove) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	trigger, ok := sub.FindItem(req.TriggeringItemID)
	if !ok {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadMonitoredItemIDInvalid)
	}
	removeResults := make([]ua.StatusCode, len(req.LinksToRemove))
	for i, id := range req.LinksToRemove {
		if triggered, ok := sub.FindItem(id); ok && trigger.RemoveTriggeredItem(triggered) {
			removeResults[i] = ua.Good
		} else {
			removeResults[i] = ua.BadMonitoredItemIDInvalid
		}
	}
	addResults := make([]ua.StatusCode, len(req.LinksToAdd))
	for i, id := range req.LinksToAdd {
		if triggered, ok := sub.FindItem(id); ok && trigger.AddTriggeredItem(triggered) {
			addResults[i] = ua.Good
		} else {
			addResults[i] = ua.BadMonitoredItemIDInvalid
		}
	}
	return ch.Write(
		&ua.SetTriggeringResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			AddResults:    addResults,
			RemoveResults: removeResults,
		},
		requestid,
	)
}

// handleDeleteMonitoredItems removes items with per-item results.
func (srv *Server) handleDeleteMonitoredItems(ch *serverSecureChannel, requestid uint32, req *ua.DeleteMonitoredItemsRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	if len(req.MonitoredItemIDs) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.MonitoredItemIDs)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	results := make([]ua.StatusCode, len(req.MonitoredItemIDs))
	for i, id := range req.MonitoredItemIDs {
		if sub.DeleteItem(id) {
			results[i] = ua.Good
		} else {
			results[i] = ua.BadMonitoredItemIDInvalid
		}
	}
	return ch.Write(
		&ua.DeleteMonitoredItemsResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	)
}
