package server

import (
	"sort"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// handleCreateSubscription registers a new subscription for the session and
// starts its publish timer.
func (srv *Server) handleCreateSubscription(ch *serverSecureChannel, requestid uint32, req *ua.CreateSubscriptionRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub := NewSubscription(
		srv.subscriptionManager,
		session,
		req.RequestedPublishingInterval,
		req.RequestedLifetimeCount,
		req.RequestedMaxKeepAliveCount,
		req.MaxNotificationsPerPublish,
		req.PublishingEnabled,
		req.Priority,
	)
	if err := srv.subscriptionManager.Add(sub); err != nil {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManySubscriptions)
	}
	sub.startPublishing()
	return ch.Write(
		&ua.CreateSubscriptionResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			SubscriptionID:            sub.id,
			RevisedPublishingInterval: sub.publishingInterval,
			RevisedLifetimeCount:      sub.lifetimeCount,
			RevisedMaxKeepAliveCount:  sub.maxKeepAliveCount,
		},
		requestid,
	)
}

// handleModifySubscription revises the timing parameters of a subscription
// owned by the session.
func (srv *Server) handleModifySubscription(ch *serverSecureChannel, requestid uint32, req *ua.ModifySubscriptionRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	sub.Modify(
		req.RequestedPublishingInterval,
		req.RequestedLifetimeCount,
		req.RequestedMaxKeepAliveCount,
		req.MaxNotificationsPerPublish,
		req.Priority,
	)
	sub.RLock()
	revisedInterval := sub.publishingInterval
	revisedLifetime := sub.lifetimeCount
	revisedKeepAlive := sub.maxKeepAliveCount
	sub.RUnlock()
	return ch.Write(
		&ua.ModifySubscriptionResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			RevisedPublishingInterval: revisedInterval,
			RevisedLifetimeCount:      revisedLifetime,
			RevisedMaxKeepAliveCount:  revisedKeepAlive,
		},
		requestid,
	)
}

// handleSetPublishingMode enables or disables publishing per subscription
// with per-operation results.
func (srv *Server) handleSetPublishingMode(ch *serverSecureChannel, requestid uint32, req *ua.SetPublishingModeRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	if len(req.SubscriptionIDs) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.SubscriptionIDs)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	results := make([]ua.StatusCode, len(req.SubscriptionIDs))
	for i, id := range req.SubscriptionIDs {
		if sub, ok := srv.subscriptionManager.Get(id); ok && sub.Session() == session {
			sub.SetPublishingMode(req.PublishingEnabled)
			results[i] = ua.Good
		} else {
			results[i] = ua.BadSubscriptionIDInvalid
		}
	}
	return ch.Write(
		&ua.SetPublishingModeResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	)
}

// handleTransferSubscriptions moves subscriptions to the calling session.
// This is how a client reclaims subscriptions left detached by a closed
// session or moves them off a session it is abandoning; ownership is
// deliberately not required.
func (srv *Server) handleTransferSubscriptions(ch *serverSecureChannel, requestid uint32, req *ua.TransferSubscriptionsRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	if len(req.SubscriptionIDs) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.SubscriptionIDs)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	results := make([]ua.TransferResult, len(req.SubscriptionIDs))
	for i, id := range req.SubscriptionIDs {
		sub, ok := srv.subscriptionManager.Get(id)
		if !ok {
			results[i] = ua.TransferResult{StatusCode: ua.BadSubscriptionIDInvalid}
			continue
		}
		results[i] = ua.TransferResult{
			StatusCode:               ua.Good,
			AvailableSequenceNumbers: sub.transfer(session, req.SendInitialValues),
		}
	}
	return ch.Write(
		&ua.TransferSubscriptionsResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	)
}

// handleDeleteSubscriptions deletes subscriptions owned by the session.
// When the last one goes, queued publish requests are released with
// BadNoSubscription.
func (srv *Server) handleDeleteSubscriptions(ch *serverSecureChannel, requestid uint32, req *ua.DeleteSubscriptionsRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	if len(req.SubscriptionIDs) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.SubscriptionIDs)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	results := make([]ua.StatusCode, len(req.SubscriptionIDs))
	for i, id := range req.SubscriptionIDs {
		if sub, ok := srv.subscriptionManager.Get(id); ok && sub.Session() == session {
			srv.subscriptionManager.Delete(sub)
			sub.Delete()
			results[i] = ua.Good
		} else {
			results[i] = ua.BadSubscriptionIDInvalid
		}
	}
	if err := ch.Write(
		&ua.DeleteSubscriptionsResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Results: results,
		},
		requestid,
	); err != nil {
		return err
	}
	// the session holds publish requests only while it has subscriptions
	if len(srv.subscriptionManager.GetBySession(session)) == 0 {
		for {
			op, ok, err := session.removePublishRequest()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if err := srv.serviceFault(op.ch, op.requestID, op.req.RequestHandle, ua.BadNoSubscription); err != nil {
				return err
			}
		}
	}
	return nil
}

// handlePublish completes acknowledgements, reports queued status changes,
// then either answers a late subscription synchronously or queues the
// request as a publish slot.
func (srv *Server) handlePublish(ch *serverSecureChannel, requestid uint32, req *ua.PublishRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}

	// each acknowledgement releases a retransmission buffer
	results := make([]ua.StatusCode, len(req.SubscriptionAcknowledgements))
	for i, sa := range req.SubscriptionAcknowledgements {
		if sub, ok := srv.subscriptionManager.Get(sa.SubscriptionID); ok {
			if sub.acknowledge(sa.SequenceNumber) {
				results[i] = ua.Good
			} else {
				results[i] = ua.BadSequenceNumberUnknown
			}
		} else {
			results[i] = ua.BadSubscriptionIDInvalid
		}
	}

	// transferred or expired subscriptions report through the session's
	// state change queue ahead of new data
	select {
	case op := <-session.stateChanges:
		return ch.Write(
			&ua.PublishResponse{
				ResponseHeader: ua.ResponseHeader{
					Timestamp:     time.Now(),
					RequestHandle: req.RequestHandle,
				},
				SubscriptionID:           op.subscriptionID,
				AvailableSequenceNumbers: []uint32{},
				MoreNotifications:        false,
				NotificationMessage:      op.message,
				Results:                  results,
			},
			requestid,
		)
	default:
	}

	subs := srv.subscriptionManager.GetBySession(session)
	if len(subs) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNoSubscription)
	}

	// a subscription that owes data or a keep-alive answers right away,
	// highest priority first
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].priority > subs[j].priority
	})
	for _, sub := range subs {
		if sub.handleLatePublishRequest(ch, requestid, req, results) {
			return nil
		}
	}

	if err := session.addPublishRequest(ch, requestid, req, results); err != nil {
		if code, ok := err.(ua.StatusCode); ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, code)
		}
		return err
	}
	return nil
}

// handleRepublish replays a notification message still held in the
// retransmission queue.
func (srv *Server) handleRepublish(ch *serverSecureChannel, requestid uint32, req *ua.RepublishRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	sub, err := srv.subscriptionFromRequest(ch, requestid, req.RequestHandle, session, req.SubscriptionID)
	if sub == nil {
		return err
	}
	nm, ok := sub.republish(req.RetransmitSequenceNumber)
	if !ok {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadMessageNotAvailable)
	}
	return ch.Write(
		&ua.RepublishResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			NotificationMessage: nm,
		},
		requestid,
	)
}
