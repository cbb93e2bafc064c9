package server

import (
	"time"

	"github.com/uaforge/uaserve/ua"
)

// handleFindServers returns the server's application description, filtered
// by the requested server uris. Allowed before a session exists and on
// discovery-only channels.
func (srv *Server) handleFindServers(ch *serverSecureChannel, requestid uint32, req *ua.FindServersRequest) error {
	srvs := make([]ua.ApplicationDescription, 0, 1)
	for _, s := range []ua.ApplicationDescription{srv.LocalDescription()} {
		if len(req.ServerURIs) > 0 {
			for _, su := range req.ServerURIs {
				if s.ApplicationURI == su {
					srvs = append(srvs, s)
					break
				}
			}
		} else {
			srvs = append(srvs, s)
		}
	}
	return ch.Write(
		&ua.FindServersResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Servers: srvs,
		},
		requestid,
	)
}

// handleGetEndpoints returns the endpoint table, filtered by the requested
// transport profile uris. Allowed before a session exists and on
// discovery-only channels.
func (srv *Server) handleGetEndpoints(ch *serverSecureChannel, requestid uint32, req *ua.GetEndpointsRequest) error {
	eds := make([]ua.EndpointDescription, 0, len(srv.Endpoints()))
	for _, ed := range srv.Endpoints() {
		if len(req.ProfileURIs) > 0 {
			for _, pu := range req.ProfileURIs {
				if ed.TransportProfileURI == pu {
					eds = append(eds, ed)
					break
				}
			}
		} else {
			eds = append(eds, ed)
		}
	}
	return ch.Write(
		&ua.GetEndpointsResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			Endpoints: eds,
		},
		requestid,
	)
}
