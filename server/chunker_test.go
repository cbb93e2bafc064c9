package server

import (
	"math"
	"testing"

	"github.com/uaforge/uaserve/ua"
)

func TestChunkerSequenceContiguity(t *testing.T) {
	ck := newChunker(8192, 8192, 0, 0)
	if err := ck.acceptSequenceNumber(7); err != nil {
		t.Fatalf("first sequence number rejected: %v", err)
	}
	if err := ck.acceptSequenceNumber(8); err != nil {
		t.Fatalf("contiguous sequence number rejected: %v", err)
	}
	if err := ck.acceptSequenceNumber(10); err != ua.BadSequenceNumberInvalid {
		t.Fatalf("gap accepted, err = %v", err)
	}
}

func TestChunkerSequenceWrap(t *testing.T) {
	ck := newChunker(8192, 8192, 0, 0)
	if err := ck.acceptSequenceNumber(math.MaxUint32); err != nil {
		t.Fatalf("max sequence number rejected: %v", err)
	}
	if err := ck.acceptSequenceNumber(1); err != nil {
		t.Fatalf("wrapped sequence number rejected: %v", err)
	}
}

func TestChunkerNextSequenceSkipsZero(t *testing.T) {
	ck := newChunker(8192, 8192, 0, 0)
	ck.sequenceNumber = math.MaxUint32 - 1
	if n := ck.nextSequenceNumber(); n != math.MaxUint32 {
		t.Fatalf("sequence number = %d, want %d", n, uint32(math.MaxUint32))
	}
	if n := ck.nextSequenceNumber(); n != 1 {
		t.Fatalf("sequence number after wrap = %d, want 1", n)
	}
}

func TestChunkerNegotiateClampsToRemote(t *testing.T) {
	ck := newChunker(65536, 65536, 1<<24, 512)
	ck.negotiate(8192, 16384, 1<<20, 64)
	if ck.sendBufferSize != 8192 {
		t.Errorf("sendBufferSize = %d, want 8192", ck.sendBufferSize)
	}
	if ck.receiveBufferSize != 16384 {
		t.Errorf("receiveBufferSize = %d, want 16384", ck.receiveBufferSize)
	}
	if ck.maxMessageSize != 1<<20 {
		t.Errorf("maxMessageSize = %d, want %d", ck.maxMessageSize, 1<<20)
	}
	if ck.maxChunkCount != 64 {
		t.Errorf("maxChunkCount = %d, want 64", ck.maxChunkCount)
	}
}

func TestChunkerNegotiateZeroMeansNoLimit(t *testing.T) {
	ck := newChunker(65536, 65536, 1<<24, 512)
	ck.negotiate(65536, 65536, 0, 0)
	if ck.maxMessageSize != 1<<24 {
		t.Errorf("maxMessageSize = %d, want %d", ck.maxMessageSize, 1<<24)
	}
	if ck.maxChunkCount != 512 {
		t.Errorf("maxChunkCount = %d, want 512", ck.maxChunkCount)
	}
}

func TestChunkerMessageLimits(t *testing.T) {
	ck := newChunker(8192, 8192, 1024, 4)
	if err := ck.acceptChunkCount(4); err != nil {
		t.Errorf("chunk count at limit rejected: %v", err)
	}
	if err := ck.acceptChunkCount(5); err != ua.BadEncodingLimitsExceeded {
		t.Errorf("chunk count over limit, err = %v", err)
	}
	if err := ck.acceptMessageSize(1024); err != nil {
		t.Errorf("message size at limit rejected: %v", err)
	}
	if err := ck.acceptMessageSize(1025); err != ua.BadRequestTooLarge {
		t.Errorf("message size over limit, err = %v", err)
	}
	if err := ck.checkResponseSize(1025); err != ua.BadEncodingLimitsExceeded {
		t.Errorf("response size over limit, err = %v", err)
	}
}

func TestChunkerPlanPlainChunk(t *testing.T) {
	ck := newChunker(8192, 8192, 0, 0)

	// small body fits in one chunk
	p := ck.planPlainChunk(100, 16, 0)
	if p.bodySize != 100 {
		t.Errorf("bodySize = %d, want 100", p.bodySize)
	}
	if p.chunkSize != 16+sequenceHeaderSize+100 {
		t.Errorf("chunkSize = %d, want %d", p.chunkSize, 16+sequenceHeaderSize+100)
	}

	// oversized body is cut at the send buffer
	p = ck.planPlainChunk(100000, 16, 20)
	if want := 8192 - 16 - sequenceHeaderSize - 20; p.bodySize != want {
		t.Errorf("bodySize = %d, want %d", p.bodySize, want)
	}
	if p.chunkSize != 8192 {
		t.Errorf("chunkSize = %d, want 8192", p.chunkSize)
	}
}

func TestChunkerPlanSymmetricChunk(t *testing.T) {
	ck := newChunker(8192, 8192, 0, 0)
	const (
		plainHeaderSize = 16
		signatureSize   = 32
		blockSize       = 16
	)
	p := ck.planSymmetricChunk(100, plainHeaderSize, signatureSize, blockSize)
	if p.bodySize != 100 {
		t.Fatalf("bodySize = %d, want 100", p.bodySize)
	}
	if p.paddingHeaderSize != 1 {
		t.Fatalf("paddingHeaderSize = %d, want 1", p.paddingHeaderSize)
	}
	padded := sequenceHeaderSize + p.bodySize + p.paddingSize + p.paddingHeaderSize + signatureSize
	if padded%blockSize != 0 {
		t.Errorf("padded length %d not a multiple of the block size", padded)
	}
	if p.chunkSize != plainHeaderSize+padded {
		t.Errorf("chunkSize = %d, want %d", p.chunkSize, plainHeaderSize+padded)
	}
	if p.chunkSize > int(ck.sendBufferSize) {
		t.Errorf("chunkSize %d exceeds the send buffer", p.chunkSize)
	}
}

func TestChunkerPlanAsymmetricChunk(t *testing.T) {
	ck := newChunker(8192, 8192, 0, 0)
	const (
		plainHeaderSize = 135
		signatureSize   = 256
		plainBlockSize  = 214
		cipherBlockSize = 256
	)
	p := ck.planAsymmetricChunk(100, plainHeaderSize, signatureSize, plainBlockSize, cipherBlockSize)
	if p.bodySize != 100 {
		t.Fatalf("bodySize = %d, want 100", p.bodySize)
	}
	if p.paddingHeaderSize != 1 {
		t.Fatalf("paddingHeaderSize = %d, want 1", p.paddingHeaderSize)
	}
	padded := sequenceHeaderSize + p.bodySize + p.paddingSize + p.paddingHeaderSize + signatureSize
	if padded%plainBlockSize != 0 {
		t.Errorf("padded length %d not a multiple of the plain block size", padded)
	}
	if want := plainHeaderSize + (padded/plainBlockSize)*cipherBlockSize; p.chunkSize != want {
		t.Errorf("chunkSize = %d, want %d", p.chunkSize, want)
	}
}
