package server

import (
	"context"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// key is the type of context keys provided by this package.
type key string

// SessionKey is the key for the requesting session in the context.Context
// passed to NodeService methods.
const SessionKey key = "opcua-session"

// NodeService supplies the address space behind the protocol engine. The
// engine validates headers, session state and operation counts, then hands
// the request over; implementations fill in the result slices only, one
// entry per operation, and never escalate a per-item failure to an error.
// The engine stamps the response header before the response is encoded.
//
// Implementations must be safe for concurrent use. The context carries the
// requesting session under SessionKey.
type NodeService interface {
	// Read returns one DataValue per ReadValueID.
	Read(ctx context.Context, req *ua.ReadRequest) *ua.ReadResponse

	// Write returns one StatusCode per WriteValue.
	Write(ctx context.Context, req *ua.WriteRequest) *ua.WriteResponse

	// Call handles any other session-scoped service, e.g. Browse or Call.
	// Returning a StatusCode error produces a ServiceFault carrying it.
	Call(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error)
}

// nilNodeService stands in when no NodeService is configured. Reads and
// writes fail per operation, everything else faults.
type nilNodeService struct{}

func (nilNodeService) Read(ctx context.Context, req *ua.ReadRequest) *ua.ReadResponse {
	results := make([]ua.DataValue, len(req.NodesToRead))
	for i := range results {
		results[i] = ua.NewDataValue(nil, ua.BadNodeIDUnknown, time.Now(), 0, time.Now(), 0)
	}
	return &ua.ReadResponse{Results: results}
}

func (nilNodeService) Write(ctx context.Context, req *ua.WriteRequest) *ua.WriteResponse {
	results := make([]ua.StatusCode, len(req.NodesToWrite))
	for i := range results {
		results[i] = ua.BadNodeIDUnknown
	}
	return &ua.WriteResponse{Results: results}
}

func (nilNodeService) Call(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	return nil, ua.BadServiceUnsupported
}
