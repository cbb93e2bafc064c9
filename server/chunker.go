package server

import (
	"math"
	"sync"

	"github.com/uaforge/uaserve/ua"
)

const sequenceHeaderSize = 8

// chunkPlan sizes one outgoing chunk.
type chunkPlan struct {
	bodySize          int
	paddingSize       int
	paddingHeaderSize int
	chunkSize         int
}

// chunker tracks the transport framing state of one secure channel: the
// buffer, message and chunk-count limits negotiated in the Hello/Acknowledge
// handshake, the outgoing sequence counter, and the contiguity of incoming
// sequence numbers. The channel consults it for every chunk in both
// directions; signing and encryption stay with the channel.
type chunker struct {
	sequenceNumberLock sync.Mutex
	sequenceNumber     uint32

	nextReceiveSequence uint32
	receiveSequenceSet  bool

	receiveBufferSize uint32
	sendBufferSize    uint32
	maxMessageSize    uint32
	maxChunkCount     uint32
}

func newChunker(receiveBufferSize, sendBufferSize, maxMessageSize, maxChunkCount uint32) *chunker {
	return &chunker{
		receiveBufferSize: receiveBufferSize,
		sendBufferSize:    sendBufferSize,
		maxMessageSize:    maxMessageSize,
		maxChunkCount:     maxChunkCount,
	}
}

// negotiate clamps the local limits to the capabilities announced in the
// client Hello. A zero remote maximum means the client imposes no limit.
func (ck *chunker) negotiate(remoteReceiveBufferSize, remoteSendBufferSize, remoteMaxMessageSize, remoteMaxChunkCount uint32) {
	if remoteReceiveBufferSize < ck.sendBufferSize {
		ck.sendBufferSize = remoteReceiveBufferSize
	}
	if remoteSendBufferSize < ck.receiveBufferSize {
		ck.receiveBufferSize = remoteSendBufferSize
	}
	if remoteMaxMessageSize > 0 && remoteMaxMessageSize < ck.maxMessageSize {
		ck.maxMessageSize = remoteMaxMessageSize
	}
	if remoteMaxChunkCount > 0 && remoteMaxChunkCount < ck.maxChunkCount {
		ck.maxChunkCount = remoteMaxChunkCount
	}
}

// nextSequenceNumber gets the next outgoing sequence number, skipping zero.
func (ck *chunker) nextSequenceNumber() uint32 {
	ck.sequenceNumberLock.Lock()
	defer ck.sequenceNumberLock.Unlock()
	if ck.sequenceNumber == math.MaxUint32 {
		ck.sequenceNumber = 0
	}
	ck.sequenceNumber++
	return ck.sequenceNumber
}

// acceptSequenceNumber verifies that received chunks arrive in strictly
// contiguous sequence. The first chunk on the channel sets the baseline;
// after MaxUint32 the sequence wraps to 1.
func (ck *chunker) acceptSequenceNumber(sequenceNumber uint32) error {
	if ck.receiveSequenceSet && sequenceNumber != ck.nextReceiveSequence {
		return ua.BadSequenceNumberInvalid
	}
	ck.receiveSequenceSet = true
	if sequenceNumber == math.MaxUint32 {
		ck.nextReceiveSequence = 1
	} else {
		ck.nextReceiveSequence = sequenceNumber + 1
	}
	return nil
}

// acceptChunkCount enforces the negotiated cap on chunks per message.
func (ck *chunker) acceptChunkCount(count int) error {
	if i := int(ck.maxChunkCount); i > 0 && count > i {
		return ua.BadEncodingLimitsExceeded
	}
	return nil
}

// acceptMessageSize enforces the negotiated cap on the reassembled body.
func (ck *chunker) acceptMessageSize(size int64) error {
	if i := int64(ck.maxMessageSize); i > 0 && size > i {
		return ua.BadRequestTooLarge
	}
	return nil
}

// checkResponseSize enforces the negotiated cap on an outgoing body.
func (ck *chunker) checkResponseSize(size int64) error {
	if i := int64(ck.maxMessageSize); i > 0 && size > i {
		return ua.BadEncodingLimitsExceeded
	}
	return nil
}

// planAsymmetricChunk sizes the next chunk of an OpenSecureChannel response,
// where the chunk grows from plain-text blocks to cipher-text blocks under
// the remote public key.
func (ck *chunker) planAsymmetricChunk(bodyCount, plainHeaderSize, signatureSize, plainBlockSize, cipherBlockSize int) chunkPlan {
	var p chunkPlan
	if cipherBlockSize > 256 {
		p.paddingHeaderSize = 2
	} else {
		p.paddingHeaderSize = 1
	}
	maxBodySize := (((int(ck.sendBufferSize) - plainHeaderSize) / cipherBlockSize) * plainBlockSize) - sequenceHeaderSize - p.paddingHeaderSize - signatureSize
	if bodyCount < maxBodySize {
		p.bodySize = bodyCount
		p.paddingSize = (plainBlockSize - ((sequenceHeaderSize + p.bodySize + p.paddingHeaderSize + signatureSize) % plainBlockSize)) % plainBlockSize
	} else {
		p.bodySize = maxBodySize
	}
	p.chunkSize = plainHeaderSize + (((sequenceHeaderSize + p.bodySize + p.paddingSize + p.paddingHeaderSize + signatureSize) / plainBlockSize) * cipherBlockSize)
	return p
}

// planSymmetricChunk sizes the next chunk of a signed-and-encrypted message,
// where AES-CBC keeps the cipher text the same length as the padded plain
// text.
func (ck *chunker) planSymmetricChunk(bodyCount, plainHeaderSize, signatureSize, blockSize int) chunkPlan {
	var p chunkPlan
	if blockSize > 256 {
		p.paddingHeaderSize = 2
	} else {
		p.paddingHeaderSize = 1
	}
	maxBodySize := (((int(ck.sendBufferSize) - plainHeaderSize) / blockSize) * blockSize) - sequenceHeaderSize - p.paddingHeaderSize - signatureSize
	if bodyCount < maxBodySize {
		p.bodySize = bodyCount
		p.paddingSize = (blockSize - ((sequenceHeaderSize + p.bodySize + p.paddingHeaderSize + signatureSize) % blockSize)) % blockSize
	} else {
		p.bodySize = maxBodySize
	}
	p.chunkSize = plainHeaderSize + sequenceHeaderSize + p.bodySize + p.paddingSize + p.paddingHeaderSize + signatureSize
	return p
}

// planPlainChunk sizes the next chunk when nothing is encrypted: None mode,
// or Sign mode where only the trailing signature is added.
func (ck *chunker) planPlainChunk(bodyCount, plainHeaderSize, signatureSize int) chunkPlan {
	var p chunkPlan
	maxBodySize := int(ck.sendBufferSize) - plainHeaderSize - sequenceHeaderSize - signatureSize
	if bodyCount < maxBodySize {
		p.bodySize = bodyCount
	} else {
		p.bodySize = maxBodySize
	}
	p.chunkSize = plainHeaderSize + sequenceHeaderSize + p.bodySize + signatureSize
	return p
}
