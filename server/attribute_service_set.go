package server

import (
	"context"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// selectTimestamps strips the timestamps the client did not ask for.
func selectTimestamps(values []ua.DataValue, timestampsToReturn ua.TimestampsToReturn) []ua.DataValue {
	switch timestampsToReturn {
	case ua.TimestampsToReturnSource:
		for i, value := range values {
			values[i] = ua.NewDataValue(value.Value, value.StatusCode, value.SourceTimestamp, 0, time.Time{}, 0)
		}
	case ua.TimestampsToReturnServer:
		for i, value := range values {
			values[i] = ua.NewDataValue(value.Value, value.StatusCode, time.Time{}, 0, value.ServerTimestamp, 0)
		}
	case ua.TimestampsToReturnNeither:
		for i, value := range values {
			values[i] = ua.NewDataValue(value.Value, value.StatusCode, time.Time{}, 0, time.Time{}, 0)
		}
	}
	return values
}

// handleRead passes the batch to the node service and trims the result
// timestamps to what the client asked for.
func (srv *Server) handleRead(ch *serverSecureChannel, requestid uint32, req *ua.ReadRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	if req.MaxAge < 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadMaxAgeInvalid)
	}
	if req.TimestampsToReturn < ua.TimestampsToReturnSource || req.TimestampsToReturn > ua.TimestampsToReturnNeither {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTimestampsToReturnInvalid)
	}
	if len(req.NodesToRead) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.NodesToRead)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	ctx := context.WithValue(context.Background(), SessionKey, session)
	res := srv.nodeService.Read(ctx, req)
	if res == nil {
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadInternalError)
	}
	res.Timestamp = time.Now()
	res.RequestHandle = req.RequestHandle
	res.Results = selectTimestamps(res.Results, req.TimestampsToReturn)
	return ch.Write(res, requestid)
}

// handleWrite passes the batch to the node service.
func (srv *Server) handleWrite(ch *serverSecureChannel, requestid uint32, req *ua.WriteRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	if len(req.NodesToWrite) == 0 {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNothingToDo)
	}
	if srv.maxOperationsPerRequest != 0 && uint32(len(req.NodesToWrite)) > srv.maxOperationsPerRequest {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManyOperations)
	}
	ctx := context.WithValue(context.Background(), SessionKey, session)
	res := srv.nodeService.Write(ctx, req)
	if res == nil {
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadInternalError)
	}
	res.Timestamp = time.Now()
	res.RequestHandle = req.RequestHandle
	return ch.Write(res, requestid)
}
