package server

import (
	"context"
	"math"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gammazero/deque"

	"github.com/uaforge/uaserve/ua"
)

const (
	minQueueSize        = 1
	maxQueueSize        = 1024
	minSamplingInterval = 100.0
	maxSamplingInterval = 60 * 1000.0
)

var monitoredItemID = uint32(0)

// MonitoredItem samples one attribute of one node through the server's
// node service and queues value changes for its subscription to publish.
// Samples land in a prequeue at the sampling rate; each publishing cycle
// takes the last sample of every elapsed sampling interval, applies the
// data-change filter, and moves survivors to the notification queue.
type MonitoredItem struct {
	sync.RWMutex
	id                  uint32
	itemToMonitor       ua.ReadValueID
	monitoringMode      ua.MonitoringMode
	clientHandle        uint32
	samplingInterval    float64
	queueSize           uint32
	discardOldest       bool
	timestampsToReturn  ua.TimestampsToReturn
	queue               deque.Deque[ua.DataValue]
	prequeue            deque.Deque[ua.DataValue]
	dataChangeFilter    ua.DataChangeFilter
	previousQueuedValue ua.DataValue
	sub                 *Subscription
	srv                 *Server
	ts                  time.Time
	ti                  time.Duration
	cachedCtx           context.Context
	triggeredItems      []*MonitoredItem
	triggered           bool
}

// NewMonitoredItem constructs a new MonitoredItem and begins sampling.
func NewMonitoredItem(ctx context.Context, srv *Server, sub *Subscription, itemToMonitor ua.ReadValueID, monitoringMode ua.MonitoringMode, parameters ua.MonitoringParameters, timestampsToReturn ua.TimestampsToReturn) *MonitoredItem {
	mi := &MonitoredItem{
		sub:                 sub,
		srv:                 srv,
		id:                  atomic.AddUint32(&monitoredItemID, 1),
		itemToMonitor:       itemToMonitor,
		monitoringMode:      monitoringMode,
		clientHandle:        parameters.ClientHandle,
		discardOldest:       parameters.DiscardOldest,
		timestampsToReturn:  timestampsToReturn,
		previousQueuedValue: ua.NewDataValue(nil, ua.BadWaitingForInitialData, time.Time{}, 0, time.Time{}, 0),
	}
	mi.setQueueSize(parameters.QueueSize)
	mi.setSamplingInterval(parameters.SamplingInterval)
	mi.setFilter(parameters.Filter)
	mi.Lock()
	mi.startMonitoring(ctx)
	mi.Unlock()
	return mi
}

// Modify revises the monitored item's parameters and restarts sampling.
func (mi *MonitoredItem) Modify(ctx context.Context, req ua.MonitoredItemModifyRequest) ua.MonitoredItemModifyResult {
	mi.Lock()
	defer mi.Unlock()
	mi.stopMonitoring()
	mi.clientHandle = req.RequestedParameters.ClientHandle
	mi.discardOldest = req.RequestedParameters.DiscardOldest
	mi.setQueueSize(req.RequestedParameters.QueueSize)
	mi.setSamplingInterval(req.RequestedParameters.SamplingInterval)
	mi.setFilter(req.RequestedParameters.Filter)
	mi.startMonitoring(ctx)
	return ua.MonitoredItemModifyResult{RevisedSamplingInterval: mi.samplingInterval, RevisedQueueSize: mi.queueSize}
}

// Delete stops sampling and releases the queues. Safe to call more than
// once.
func (mi *MonitoredItem) Delete() {
	mi.Lock()
	defer mi.Unlock()
	if mi.sub == nil {
		return
	}
	mi.stopMonitoring()
	mi.queue.Clear()
	mi.prequeue.Clear()
	mi.previousQueuedValue = ua.NewDataValue(nil, ua.BadWaitingForInitialData, time.Time{}, 0, time.Time{}, 0)
	mi.sub = nil
	mi.triggeredItems = nil
}

// SetMonitoringMode sets the MonitoringMode of the MonitoredItem.
// Disabling drops the queued values.
func (mi *MonitoredItem) SetMonitoringMode(ctx context.Context, mode ua.MonitoringMode) {
	mi.Lock()
	defer mi.Unlock()
	if mi.monitoringMode == mode {
		return
	}
	mi.stopMonitoring()
	mi.monitoringMode = mode
	if mode == ua.MonitoringModeDisabled {
		mi.queue.Clear()
		mi.previousQueuedValue = ua.NewDataValue(nil, ua.BadWaitingForInitialData, time.Time{}, 0, time.Time{}, 0)
	}
	mi.startMonitoring(ctx)
}

// ID returns the identifier the server assigned to this item.
func (mi *MonitoredItem) ID() uint32 {
	return mi.id
}

// ItemToMonitor returns the node and attribute this item samples.
func (mi *MonitoredItem) ItemToMonitor() ua.ReadValueID {
	return mi.itemToMonitor
}

// SamplingInterval returns the revised sampling interval in ms.
func (mi *MonitoredItem) SamplingInterval() float64 {
	mi.RLock()
	defer mi.RUnlock()
	return mi.samplingInterval
}

// QueueSize returns the revised queue size.
func (mi *MonitoredItem) QueueSize() uint32 {
	mi.RLock()
	defer mi.RUnlock()
	return mi.queueSize
}

// ClientHandle returns the handle the client assigned to this item.
func (mi *MonitoredItem) ClientHandle() uint32 {
	mi.RLock()
	defer mi.RUnlock()
	return mi.clientHandle
}

func (mi *MonitoredItem) setQueueSize(queueSize uint32) {
	if queueSize > maxQueueSize {
		queueSize = maxQueueSize
	}
	if queueSize < minQueueSize {
		queueSize = minQueueSize
	}
	mi.queueSize = queueSize

	// trim to size, marking the survivor nearest the drop point.
	overflow := false
	if mi.discardOldest {
		for mi.queue.Len() > int(mi.queueSize) {
			mi.queue.PopFront()
			overflow = true
		}
		if overflow && mi.queueSize > 1 && mi.queue.Len() > 0 {
			v := mi.queue.Front()
			v.StatusCode = ua.StatusCode(uint32(v.StatusCode) | ua.InfoTypeDataValue | ua.Overflow)
			mi.queue.Set(0, v)
		}
	} else {
		for mi.queue.Len() > int(mi.queueSize) {
			mi.queue.PopBack()
			overflow = true
		}
		if overflow && mi.queueSize > 1 && mi.queue.Len() > 0 {
			v := mi.queue.Back()
			v.StatusCode = ua.StatusCode(uint32(v.StatusCode) | ua.InfoTypeDataValue | ua.Overflow)
			mi.queue.Set(mi.queue.Len()-1, v)
		}
	}
}

func (mi *MonitoredItem) setSamplingInterval(samplingInterval float64) {
	if samplingInterval < 0 || math.IsNaN(samplingInterval) {
		samplingInterval = mi.sub.publishingInterval
	}
	if samplingInterval < minSamplingInterval {
		samplingInterval = minSamplingInterval
	}
	if samplingInterval > maxSamplingInterval {
		samplingInterval = maxSamplingInterval
	}
	mi.samplingInterval = samplingInterval
	mi.ti = time.Duration(samplingInterval) * time.Millisecond
}

func (mi *MonitoredItem) setFilter(filter ua.ExtensionObject) {
	mi.dataChangeFilter = ua.DataChangeFilter{Trigger: ua.DataChangeTriggerStatusValue}
	if dcf, ok := filter.(ua.DataChangeFilter); ok {
		mi.dataChangeFilter = dcf
	}
}

func (mi *MonitoredItem) startMonitoring(ctx context.Context) {
	mi.cachedCtx = ctx
	mi.ts = time.Now()
	if mi.monitoringMode == ua.MonitoringModeDisabled {
		return
	}
	v := mi.srv.readValue(ctx, mi.itemToMonitor)
	mi.prequeue.PushBack(v)
	// the poll group locks itself around Poll, so subscribe unlocked.
	mi.Unlock()
	mi.srv.scheduler.GetPollGroup(time.Duration(mi.samplingInterval) * time.Millisecond).Subscribe(mi)
	mi.Lock()
}

func (mi *MonitoredItem) stopMonitoring() {
	mi.Unlock()
	mi.srv.scheduler.GetPollGroup(time.Duration(mi.samplingInterval) * time.Millisecond).Unsubscribe(mi)
	mi.Lock()
	mi.cachedCtx = nil
}

// Poll reads the monitored attribute and stages the sample for the next
// publishing cycle.
func (mi *MonitoredItem) Poll() {
	mi.Lock()
	if mi.sub != nil && mi.monitoringMode != ua.MonitoringModeDisabled {
		v := mi.srv.readValue(mi.cachedCtx, mi.itemToMonitor)
		mi.prequeue.PushBack(v)
	}
	mi.Unlock()
}

// AddTriggeredItem links an item to report its queued values when this
// item detects a data change.
func (mi *MonitoredItem) AddTriggeredItem(item *MonitoredItem) bool {
	mi.Lock()
	mi.triggeredItems = append(mi.triggeredItems, item)
	mi.Unlock()
	return true
}

// RemoveTriggeredItem unlinks a triggered item.
func (mi *MonitoredItem) RemoveTriggeredItem(item *MonitoredItem) bool {
	mi.Lock()
	ret := false
	for i, e := range mi.triggeredItems {
		if e.id == item.id {
			mi.triggeredItems[i] = mi.triggeredItems[len(mi.triggeredItems)-1]
			mi.triggeredItems[len(mi.triggeredItems)-1] = nil
			mi.triggeredItems = mi.triggeredItems[:len(mi.triggeredItems)-1]
			ret = true
			break
		}
	}
	mi.Unlock()
	return ret
}

// reporting reports whether the item's queued values publish this cycle.
func (mi *MonitoredItem) reporting() bool {
	mi.RLock()
	defer mi.RUnlock()
	return mi.monitoringMode == ua.MonitoringModeReporting || mi.triggered
}

func (mi *MonitoredItem) enqueue(item ua.DataValue) {
	if mi.discardOldest {
		overflow := false
		for mi.queue.Len() >= int(mi.queueSize) {
			mi.queue.PopFront()
			overflow = true
		}
		mi.queue.PushBack(item)
		if overflow && mi.queueSize > 1 {
			v := mi.queue.Front()
			v.StatusCode = ua.StatusCode(uint32(v.StatusCode) | ua.InfoTypeDataValue | ua.Overflow)
			mi.queue.Set(0, v)
		}
		return
	}
	if mi.queue.Len() >= int(mi.queueSize) {
		// drop the incoming sample, marking the newest retained value.
		if mi.queueSize > 1 {
			v := mi.queue.Back()
			v.StatusCode = ua.StatusCode(uint32(v.StatusCode) | ua.InfoTypeDataValue | ua.Overflow)
			mi.queue.Set(mi.queue.Len()-1, v)
		}
		return
	}
	mi.queue.PushBack(item)
}

// notifications drains up to max values from the notification queue.
func (mi *MonitoredItem) notifications(max int) ([]ua.DataValue, bool) {
	mi.Lock()
	defer mi.Unlock()
	notifications := make([]ua.DataValue, 0, 4)
	for i := 0; i < max && mi.queue.Len() > 0; i++ {
		notifications = append(notifications, mi.queue.PopFront())
	}
	more := mi.queue.Len() > 0
	if mi.triggered && !more {
		mi.triggered = false
	}
	return notifications, more
}

// notificationsAvailable moves staged samples through the data-change
// filter into the notification queue and reports whether the item has
// values to publish this cycle.
func (mi *MonitoredItem) notificationsAvailable(tn time.Time, late bool, resend bool) bool {
	_ = late
	mi.Lock()
	defer mi.Unlock()
	if mi.monitoringMode == ua.MonitoringModeDisabled {
		mi.ts = tn
		return false
	}
	if mi.ti > 0 {
		// queue the last sample of each elapsed sampling interval.
		v := mi.previousQueuedValue
		for ; !mi.ts.After(tn); mi.ts = mi.ts.Add(mi.ti) {
			for mi.prequeue.Len() > 0 {
				peek := mi.prequeue.Front()
				if peek.ServerTimestamp.After(mi.ts) {
					break
				}
				v = peek
				mi.prequeue.PopFront()
			}
			if mi.isDataChange(v, mi.previousQueuedValue) {
				mi.enqueue(withTimestamps(v, mi.timestampsToReturn))
				mi.previousQueuedValue = v
				mi.fireTriggers()
			}
		}
	} else {
		for mi.prequeue.Len() > 0 {
			v := mi.prequeue.PopFront()
			if mi.isDataChange(v, mi.previousQueuedValue) {
				mi.enqueue(withTimestamps(v, mi.timestampsToReturn))
				mi.previousQueuedValue = v
				mi.fireTriggers()
			}
		}
	}
	if resend && mi.monitoringMode == ua.MonitoringModeReporting && mi.queue.Len() == 0 {
		v := mi.srv.readValue(mi.cachedCtx, mi.itemToMonitor)
		mi.enqueue(withTimestamps(v, mi.timestampsToReturn))
		mi.previousQueuedValue = v
	}
	return mi.queue.Len() > 0 && (mi.monitoringMode == ua.MonitoringModeReporting || mi.triggered)
}

// fireTriggers is safe without the targets' locks: triggering links stay
// within one subscription, and that subscription's publishing serializes
// every access to the triggered flag.
func (mi *MonitoredItem) fireTriggers() {
	for _, item := range mi.triggeredItems {
		item.triggered = true
	}
}

func (mi *MonitoredItem) isDataChange(current, previous ua.DataValue) bool {
	dcf := mi.dataChangeFilter
	switch dcf.Trigger {
	case ua.DataChangeTriggerStatus:
		return current.StatusCode&0xFFFFF000 != previous.StatusCode&0xFFFFF000
	case ua.DataChangeTriggerStatusValue:
		if current.StatusCode&0xFFFFF000 != previous.StatusCode&0xFFFFF000 {
			return true
		}
		switch ua.DeadbandType(dcf.DeadbandType) {
		case ua.DeadbandTypeNone:
			return !reflect.DeepEqual(current.Value, previous.Value)
		case ua.DeadbandTypeAbsolute:
			return !deadbandEqualAbsolute(current.Value, previous.Value, dcf.DeadbandValue)
		case ua.DeadbandTypePercent:
			return true
		}
	case ua.DataChangeTriggerStatusValueTimestamp:
		if current.StatusCode&0xFFFFF000 != previous.StatusCode&0xFFFFF000 {
			return true
		}
		if current.SourceTimestamp != previous.SourceTimestamp {
			return true
		}
		switch ua.DeadbandType(dcf.DeadbandType) {
		case ua.DeadbandTypeNone:
			return !reflect.DeepEqual(current.Value, previous.Value)
		case ua.DeadbandTypeAbsolute:
			return !deadbandEqualAbsolute(current.Value, previous.Value, dcf.DeadbandValue)
		case ua.DeadbandTypePercent:
			return true
		}
	}
	return true
}

// deadbandEqualAbsolute reports whether every element of the current
// value lies within the deadband of the previous one. Non-numeric values
// never compare equal, so they always report as changes.
func deadbandEqualAbsolute(current, previous ua.Variant, deadband float64) bool {
	if current == nil || previous == nil {
		return current == nil && previous == nil
	}
	c, ok := numericSamples(current)
	if !ok {
		return false
	}
	p, ok := numericSamples(previous)
	if !ok || len(c) != len(p) {
		return false
	}
	for i := range c {
		if math.Abs(c[i]-p[i]) > deadband {
			return false
		}
	}
	return true
}

// numericSamples flattens a numeric scalar or one-dimensional numeric
// array variant to float64.
func numericSamples(v ua.Variant) ([]float64, bool) {
	switch v1 := v.(type) {
	case int8:
		return []float64{float64(v1)}, true
	case uint8:
		return []float64{float64(v1)}, true
	case int16:
		return []float64{float64(v1)}, true
	case uint16:
		return []float64{float64(v1)}, true
	case int32:
		return []float64{float64(v1)}, true
	case uint32:
		return []float64{float64(v1)}, true
	case int64:
		return []float64{float64(v1)}, true
	case uint64:
		return []float64{float64(v1)}, true
	case float32:
		return []float64{float64(v1)}, true
	case float64:
		return []float64{v1}, true
	case []int8:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []int16:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []uint16:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []int32:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []uint32:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []int64:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []uint64:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []float32:
		out := make([]float64, len(v1))
		for i, e := range v1 {
			out[i] = float64(e)
		}
		return out, true
	case []float64:
		out := make([]float64, len(v1))
		copy(out, v1)
		return out, true
	}
	return nil, false
}

// withTimestamps returns the value with only the selected timestamps.
func withTimestamps(value ua.DataValue, timestampsToReturn ua.TimestampsToReturn) ua.DataValue {
	switch timestampsToReturn {
	case ua.TimestampsToReturnSource:
		return ua.NewDataValue(value.Value, value.StatusCode, value.SourceTimestamp, 0, time.Time{}, 0)
	case ua.TimestampsToReturnServer:
		return ua.NewDataValue(value.Value, value.StatusCode, time.Time{}, 0, value.ServerTimestamp, 0)
	case ua.TimestampsToReturnNeither:
		return ua.NewDataValue(value.Value, value.StatusCode, time.Time{}, 0, time.Time{}, 0)
	default:
		return value
	}
}
