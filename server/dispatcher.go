package server

import (
	"context"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// requestWorker reads assembled requests from the channel and submits each
// one to the shared worker pool. It returns when the channel closes or the
// transport faults.
func (srv *Server) requestWorker(ch *serverSecureChannel) {
	for {
		req, requestid, err := ch.readRequest()
		if err != nil {
			if err != ua.BadSecureChannelClosed {
				ch.logger.Error().Err(err).Msg("error receiving request")
				if code, ok := err.(ua.StatusCode); ok {
					ch.Abort(code, "")
				}
			}
			return
		}
		srv.workerPool.Submit(func() {
			if err := srv.handleRequest(ch, req, requestid); err != nil {
				ch.logger.Error().Err(err).Msg("error handling request")
			}
		})
	}
}

// handleRequest routes a decoded request to its service handler. Unknown
// types answer a ServiceFault with BadServiceUnsupported.
func (srv *Server) handleRequest(ch *serverSecureChannel, req ua.ServiceRequest, requestid uint32) error {
	switch req := req.(type) {

	// subscription services
	case *ua.PublishRequest:
		return srv.handlePublish(ch, requestid, req)

	case *ua.RepublishRequest:
		return srv.handleRepublish(ch, requestid, req)

	case *ua.CreateSubscriptionRequest:
		return srv.handleCreateSubscription(ch, requestid, req)

	case *ua.ModifySubscriptionRequest:
		return srv.handleModifySubscription(ch, requestid, req)

	case *ua.SetPublishingModeRequest:
		return srv.handleSetPublishingMode(ch, requestid, req)

	case *ua.TransferSubscriptionsRequest:
		return srv.handleTransferSubscriptions(ch, requestid, req)

	case *ua.DeleteSubscriptionsRequest:
		return srv.handleDeleteSubscriptions(ch, requestid, req)

	// monitored item services
	case *ua.CreateMonitoredItemsRequest:
		return srv.handleCreateMonitoredItems(ch, requestid, req)

	case *ua.ModifyMonitoredItemsRequest:
		return srv.handleModifyMonitoredItems(ch, requestid, req)

	case *ua.SetMonitoringModeRequest:
		return srv.handleSetMonitoringMode(ch, requestid, req)

	case *ua.SetTriggeringRequest:
		return srv.handleSetTriggering(ch, requestid, req)

	case *ua.DeleteMonitoredItemsRequest:
		return srv.handleDeleteMonitoredItems(ch, requestid, req)

	// attribute services
	case *ua.ReadRequest:
		return srv.handleRead(ch, requestid, req)

	case *ua.WriteRequest:
		return srv.handleWrite(ch, requestid, req)

	// view and method services ride on the NodeService collaborator
	case *ua.BrowseRequest:
		return srv.handleDelegated(ch, requestid, req)

	case *ua.BrowseNextRequest:
		return srv.handleDelegated(ch, requestid, req)

	case *ua.TranslateBrowsePathsToNodeIDsRequest:
		return srv.handleDelegated(ch, requestid, req)

	case *ua.RegisterNodesRequest:
		return srv.handleDelegated(ch, requestid, req)

	case *ua.UnregisterNodesRequest:
		return srv.handleDelegated(ch, requestid, req)

	case *ua.CallRequest:
		return srv.handleDelegated(ch, requestid, req)

	// session services
	case *ua.CreateSessionRequest:
		return srv.handleCreateSession(ch, requestid, req)

	case *ua.ActivateSessionRequest:
		return srv.handleActivateSession(ch, requestid, req)

	case *ua.CloseSessionRequest:
		return srv.handleCloseSession(ch, requestid, req)

	case *ua.CancelRequest:
		return srv.handleCancel(ch, requestid, req)

	// discovery services
	case *ua.GetEndpointsRequest:
		return srv.handleGetEndpoints(ch, requestid, req)

	case *ua.FindServersRequest:
		return srv.handleFindServers(ch, requestid, req)

	// secure channel services
	case *ua.OpenSecureChannelRequest:
		return ch.handleOpenSecureChannel(requestid, req)

	case *ua.CloseSecureChannelRequest:
		return srv.handleCloseSecureChannel(ch, requestid, req)

	default:
		return srv.serviceFault(ch, requestid, req.Header().RequestHandle, ua.BadServiceUnsupported)
	}
}

// handleCloseSecureChannel removes the channel and closes the transport.
// The client does not wait for a response.
func (srv *Server) handleCloseSecureChannel(ch *serverSecureChannel, requestid uint32, req *ua.CloseSecureChannelRequest) error {
	srv.channelManager.Delete(ch)
	ch.Close()
	return nil
}

// serviceFault answers the request with a ServiceFault carrying code.
func (srv *Server) serviceFault(ch *serverSecureChannel, requestid uint32, requestHandle uint32, code ua.StatusCode) error {
	return ch.Write(
		&ua.ServiceFault{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: requestHandle,
				ServiceResult: code,
			},
		},
		requestid,
	)
}

// sessionFromRequest runs the guards shared by every session-scoped service:
// the channel must not be limited to discovery, the authentication token must
// name a known session, the session must be activated, and the request must
// arrive on the channel the session is bound to. When a guard fails the
// fault or abort has already been written and the returned session is nil;
// the error, if any, is the transport failure writing it.
func (srv *Server) sessionFromRequest(ch *serverSecureChannel, requestid uint32, req ua.ServiceRequest) (*Session, error) {
	if ch.IsDiscoveryOnly() {
		ch.Abort(ua.BadSecurityPolicyRejected, "")
		return nil, nil
	}
	h := req.Header()
	session, ok := srv.sessionManager.Get(h.AuthenticationToken)
	if !ok {
		return nil, srv.serviceFault(ch, requestid, h.RequestHandle, ua.BadSessionIDInvalid)
	}
	if session.SecureChannelID() == 0 {
		srv.sessionManager.Delete(session)
		return nil, srv.serviceFault(ch, requestid, h.RequestHandle, ua.BadSessionNotActivated)
	}
	if session.SecureChannelID() != ch.ChannelID() {
		session.incrementErrorCount()
		return nil, srv.serviceFault(ch, requestid, h.RequestHandle, ua.BadSecureChannelIDInvalid)
	}
	session.incrementRequestCount()
	return session, nil
}

// subscriptionFromRequest resolves a subscription id for a session-scoped
// service. A missing subscription and one owned by another session both
// answer BadSubscriptionIDInvalid, and a successful lookup counts as client
// activity on the subscription.
func (srv *Server) subscriptionFromRequest(ch *serverSecureChannel, requestid uint32, requestHandle uint32, session *Session, subscriptionID uint32) (*Subscription, error) {
	sub, ok := srv.subscriptionManager.Get(subscriptionID)
	if !ok || sub.Session() != session {
		return nil, srv.serviceFault(ch, requestid, requestHandle, ua.BadSubscriptionIDInvalid)
	}
	sub.touch()
	return sub, nil
}

// handleDelegated forwards a session-scoped request to the NodeService
// collaborator and writes whatever it answers.
func (srv *Server) handleDelegated(ch *serverSecureChannel, requestid uint32, req ua.ServiceRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	ctx := context.WithValue(context.Background(), SessionKey, session)
	res, err := srv.nodeService.Call(ctx, req)
	if err != nil {
		code, ok := err.(ua.StatusCode)
		if !ok {
			code = ua.BadInternalError
		}
		return srv.serviceFault(ch, requestid, req.Header().RequestHandle, code)
	}
	h := res.Header()
	h.Timestamp = time.Now()
	h.RequestHandle = req.Header().RequestHandle
	return ch.Write(res, requestid)
}
