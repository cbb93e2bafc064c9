// Copyright 2025 UAForge Authors. All rights reserved.

package main

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/uaforge/uaserve/server"
	"github.com/uaforge/uaserve/ua"
)

// Simulator is a small in-memory address space for demonstration. It carries
// a handful of ticking nodes under namespace 2 and one writable node.
type Simulator struct {
	sync.RWMutex
	values  map[ua.NodeID]ua.DataValue
	closing chan struct{}
}

var (
	nodeTime    = ua.NewNodeIDString(2, "Demo.Time")
	nodeCounter = ua.NewNodeIDString(2, "Demo.Counter")
	nodeSine    = ua.NewNodeIDString(2, "Demo.Sine")
	nodeStatic  = ua.NewNodeIDString(2, "Demo.Static.Double")
)

// NewSimulator returns a running simulator. Close stops its tick loop.
func NewSimulator() *Simulator {
	sim := &Simulator{
		values:  map[ua.NodeID]ua.DataValue{},
		closing: make(chan struct{}),
	}
	now := time.Now()
	sim.values[nodeTime] = ua.NewDataValue(now, ua.Good, now, 0, now, 0)
	sim.values[nodeCounter] = ua.NewDataValue(uint32(0), ua.Good, now, 0, now, 0)
	sim.values[nodeSine] = ua.NewDataValue(float64(0), ua.Good, now, 0, now, 0)
	sim.values[nodeStatic] = ua.NewDataValue(float64(42), ua.Good, now, 0, now, 0)
	go sim.tick()
	return sim
}

// Close stops the simulation.
func (sim *Simulator) Close() {
	close(sim.closing)
}

func (sim *Simulator) tick() {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	start := time.Now()
	var counter uint32
	for {
		select {
		case <-sim.closing:
			return
		case now := <-ticker.C:
			counter++
			phase := now.Sub(start).Seconds()
			sim.Lock()
			sim.values[nodeTime] = ua.NewDataValue(now, ua.Good, now, 0, now, 0)
			sim.values[nodeCounter] = ua.NewDataValue(counter, ua.Good, now, 0, now, 0)
			sim.values[nodeSine] = ua.NewDataValue(math.Sin(phase), ua.Good, now, 0, now, 0)
			sim.Unlock()
		}
	}
}

// Read returns one DataValue per ReadValueID.
func (sim *Simulator) Read(ctx context.Context, req *ua.ReadRequest) *ua.ReadResponse {
	now := time.Now()
	results := make([]ua.DataValue, len(req.NodesToRead))
	sim.RLock()
	defer sim.RUnlock()
	for i, op := range req.NodesToRead {
		v, ok := sim.values[op.NodeID]
		switch {
		case !ok:
			results[i] = ua.NewDataValue(nil, ua.BadNodeIDUnknown, now, 0, now, 0)
		case op.AttributeID != ua.AttributeIDValue:
			results[i] = ua.NewDataValue(nil, ua.BadAttributeIDInvalid, now, 0, now, 0)
		default:
			results[i] = v
		}
	}
	return &ua.ReadResponse{Results: results}
}

// Write returns one StatusCode per WriteValue. Only the static node accepts
// writes.
func (sim *Simulator) Write(ctx context.Context, req *ua.WriteRequest) *ua.WriteResponse {
	results := make([]ua.StatusCode, len(req.NodesToWrite))
	sim.Lock()
	defer sim.Unlock()
	for i, op := range req.NodesToWrite {
		if _, ok := sim.values[op.NodeID]; !ok {
			results[i] = ua.BadNodeIDUnknown
			continue
		}
		if op.AttributeID != ua.AttributeIDValue {
			results[i] = ua.BadAttributeIDInvalid
			continue
		}
		if op.NodeID != nodeStatic {
			results[i] = ua.BadNotWritable
			continue
		}
		if _, ok := op.Value.Value.(float64); !ok {
			results[i] = ua.BadTypeMismatch
			continue
		}
		now := time.Now()
		sim.values[op.NodeID] = ua.NewDataValue(op.Value.Value, ua.Good, now, 0, now, 0)
		results[i] = ua.Good
	}
	return &ua.WriteResponse{Results: results}
}

// Call rejects everything beyond reads and writes.
func (sim *Simulator) Call(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	return nil, ua.BadServiceUnsupported
}

var _ server.NodeService = (*Simulator)(nil)
