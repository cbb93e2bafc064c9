package server

import (
	"testing"
	"time"

	"github.com/uaforge/uaserve/ua"
)

func sampleValue(v ua.Variant) ua.DataValue {
	now := time.Now()
	return ua.NewDataValue(v, ua.Good, now, 0, now, 0)
}

func TestMonitoredItemEnqueueDiscardOldest(t *testing.T) {
	mi := &MonitoredItem{queueSize: 3, discardOldest: true}
	for i := int32(1); i <= 3; i++ {
		mi.enqueue(sampleValue(i))
	}
	if mi.queue.Len() != 3 {
		t.Fatalf("queue length = %d, want 3", mi.queue.Len())
	}
	if mi.queue.Front().StatusCode.IsOverflow() {
		t.Fatal("no overflow bit before the queue overflows")
	}

	mi.enqueue(sampleValue(int32(4)))
	if mi.queue.Len() != 3 {
		t.Fatalf("queue length after overflow = %d, want 3", mi.queue.Len())
	}
	front := mi.queue.Front()
	if front.Value != int32(2) {
		t.Errorf("front value = %v, want 2 (oldest dropped)", front.Value)
	}
	if !front.StatusCode.IsOverflow() {
		t.Error("oldest retained value must carry the overflow bit")
	}
	if mi.queue.Back().Value != int32(4) {
		t.Errorf("back value = %v, want the incoming sample", mi.queue.Back().Value)
	}
}

func TestMonitoredItemEnqueueDiscardNewest(t *testing.T) {
	mi := &MonitoredItem{queueSize: 3, discardOldest: false}
	for i := int32(1); i <= 3; i++ {
		mi.enqueue(sampleValue(i))
	}
	mi.enqueue(sampleValue(int32(4)))

	if mi.queue.Len() != 3 {
		t.Fatalf("queue length after overflow = %d, want 3", mi.queue.Len())
	}
	back := mi.queue.Back()
	if back.Value != int32(3) {
		t.Errorf("back value = %v, want 3 (incoming dropped)", back.Value)
	}
	if !back.StatusCode.IsOverflow() {
		t.Error("newest retained value must carry the overflow bit")
	}
	if mi.queue.Front().Value != int32(1) {
		t.Errorf("front value = %v, want 1", mi.queue.Front().Value)
	}
}

func TestMonitoredItemQueueSizeOneNeverMarksOverflow(t *testing.T) {
	mi := &MonitoredItem{queueSize: 1, discardOldest: true}
	mi.enqueue(sampleValue(int32(1)))
	mi.enqueue(sampleValue(int32(2)))
	if mi.queue.Len() != 1 {
		t.Fatalf("queue length = %d, want 1", mi.queue.Len())
	}
	v := mi.queue.Front()
	if v.Value != int32(2) {
		t.Errorf("retained value = %v, want 2", v.Value)
	}
	if v.StatusCode.IsOverflow() {
		t.Error("a queue of size one never carries the overflow bit")
	}
}

func TestMonitoredItemDataChangeFilter(t *testing.T) {
	mi := &MonitoredItem{dataChangeFilter: ua.DataChangeFilter{Trigger: ua.DataChangeTriggerStatusValue}}

	now := time.Now()
	prev := ua.NewDataValue(float64(10), ua.Good, now, 0, now, 0)
	same := ua.NewDataValue(float64(10), ua.Good, now.Add(time.Second), 0, now.Add(time.Second), 0)
	changed := ua.NewDataValue(float64(11), ua.Good, now, 0, now, 0)
	badStatus := ua.NewDataValue(float64(10), ua.BadNodeIDUnknown, now, 0, now, 0)

	if mi.isDataChange(same, prev) {
		t.Error("an equal value with an equal status is not a data change")
	}
	if !mi.isDataChange(changed, prev) {
		t.Error("a changed value is a data change")
	}
	if !mi.isDataChange(badStatus, prev) {
		t.Error("a changed status is a data change")
	}

	// an absolute deadband swallows small moves
	mi.dataChangeFilter = ua.DataChangeFilter{
		Trigger:       ua.DataChangeTriggerStatusValue,
		DeadbandType:  uint32(ua.DeadbandTypeAbsolute),
		DeadbandValue: 5,
	}
	within := ua.NewDataValue(float64(13), ua.Good, now, 0, now, 0)
	beyond := ua.NewDataValue(float64(16), ua.Good, now, 0, now, 0)
	if mi.isDataChange(within, prev) {
		t.Error("a move inside the deadband is not a data change")
	}
	if !mi.isDataChange(beyond, prev) {
		t.Error("a move beyond the deadband is a data change")
	}
	// non-numeric values always report
	if !mi.isDataChange(ua.NewDataValue("a", ua.Good, now, 0, now, 0), prev) {
		t.Error("a non-numeric value always reports under a deadband")
	}
}

func TestWithTimestamps(t *testing.T) {
	src := time.Now()
	srv := src.Add(time.Second)
	v := ua.NewDataValue(int32(1), ua.Good, src, 0, srv, 0)

	got := withTimestamps(v, ua.TimestampsToReturnSource)
	if got.SourceTimestamp != src || !got.ServerTimestamp.IsZero() {
		t.Errorf("source only: got %v / %v", got.SourceTimestamp, got.ServerTimestamp)
	}
	got = withTimestamps(v, ua.TimestampsToReturnServer)
	if !got.SourceTimestamp.IsZero() || got.ServerTimestamp != srv {
		t.Errorf("server only: got %v / %v", got.SourceTimestamp, got.ServerTimestamp)
	}
	got = withTimestamps(v, ua.TimestampsToReturnNeither)
	if !got.SourceTimestamp.IsZero() || !got.ServerTimestamp.IsZero() {
		t.Errorf("neither: got %v / %v", got.SourceTimestamp, got.ServerTimestamp)
	}
	got = withTimestamps(v, ua.TimestampsToReturnBoth)
	if got.SourceTimestamp != src || got.ServerTimestamp != srv {
		t.Errorf("both: got %v / %v", got.SourceTimestamp, got.ServerTimestamp)
	}
}
