package server

import (
	"testing"

	"github.com/uaforge/uaserve/ua"
)

func TestChannelManagerReservations(t *testing.T) {
	m := &channelManager{server: &Server{maxChannelCount: 2}, channelsByID: make(map[uint32]*serverSecureChannel)}
	if err := m.Reserve(); err != nil {
		t.Fatal(err)
	}
	if err := m.Reserve(); err != nil {
		t.Fatal(err)
	}
	if err := m.Reserve(); err != ua.BadTCPNotEnoughResources {
		t.Fatalf("third reservation returned %v, want BadTCPNotEnoughResources", err)
	}
	m.Release()
	if err := m.Reserve(); err != nil {
		t.Fatalf("reservation after release returned %v", err)
	}

	// registering consumes the reservations instead of double counting
	m.Add(&serverSecureChannel{channelID: 1})
	m.Add(&serverSecureChannel{channelID: 2})
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if err := m.Reserve(); err != ua.BadTCPNotEnoughResources {
		t.Fatalf("reservation at capacity returned %v, want BadTCPNotEnoughResources", err)
	}
	m.Delete(&serverSecureChannel{channelID: 1})
	if err := m.Reserve(); err != nil {
		t.Fatalf("reservation after delete returned %v", err)
	}
}
