package server_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/server"
	"github.com/uaforge/uaserve/ua"
)

var testNodeID = ua.NewNodeIDString(2, "Test.Value")

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

// startTestServer runs a server offering the None security policy with
// anonymous identities and the given node service.
func startTestServer(t *testing.T, svc server.NodeService, options ...server.Option) (*server.Server, string) {
	t.Helper()
	port := freePort(t)
	endpointURL := fmt.Sprintf("opc.tcp://127.0.0.1:%d", port)
	opts := append([]server.Option{
		server.WithLogger(zerolog.Nop()),
		server.WithSecurityPolicyNone(true),
		server.WithAnonymousIdentity(true),
	}, options...)
	if svc != nil {
		opts = append(opts, server.WithNodeService(svc))
	}
	srv, err := server.New(
		ua.ApplicationDescription{
			ApplicationURI:  "urn:testhost:uaserve-test",
			ProductURI:      "http://github.com/uaforge/uaserve",
			ApplicationName: ua.NewLocalizedText("uaserve-test", "en"),
			ApplicationType: ua.ApplicationTypeServer,
		},
		"", "", endpointURL, opts...,
	)
	if err != nil {
		t.Fatal(err)
	}
	go srv.ListenAndServe()
	t.Cleanup(func() { srv.Close() })

	// wait until the listener accepts
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			conn.Close()
			return srv, endpointURL
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start listening: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// testConn is a minimal client speaking the unsecured binary protocol, just
// enough to drive the server under test.
type testConn struct {
	t                    *testing.T
	conn                 net.Conn
	ec                   ua.EncodingContext
	channelID            uint32
	tokenID              uint32
	sequence             uint32
	lastServerSeq        uint32
	requestID            uint32
	handle               uint32
	authToken            ua.NodeID
	ackSendBufferSize    uint32
	ackReceiveBufferSize uint32
}

const testClientBufferSize = 8192

func dialTestServer(t *testing.T, endpointURL string) *testConn {
	t.Helper()
	hostport := endpointURL[len("opc.tcp://"):]
	conn, err := net.Dial("tcp", hostport)
	if err != nil {
		t.Fatal(err)
	}
	c := &testConn{t: t, conn: conn, ec: ua.NewEncodingContext()}
	t.Cleanup(func() { conn.Close() })
	c.hello(endpointURL)
	c.openChannel(ua.SecurityTokenRequestTypeIssue)
	return c
}

func (c *testConn) nextHandle() uint32 {
	c.handle++
	return c.handle
}

func (c *testConn) nextRequestID() uint32 {
	c.requestID++
	return c.requestID
}

func (c *testConn) writeFrame(b []byte) {
	c.t.Helper()
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(b)))
	if _, err := c.conn.Write(b); err != nil {
		c.t.Fatalf("writing frame: %v", err)
	}
}

func (c *testConn) readFrame() (uint32, []byte) {
	c.t.Helper()
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	hdr := make([]byte, 8)
	if _, err := io.ReadFull(c.conn, hdr); err != nil {
		c.t.Fatalf("reading frame header: %v", err)
	}
	msgType := binary.LittleEndian.Uint32(hdr[:4])
	length := binary.LittleEndian.Uint32(hdr[4:8])
	frame := make([]byte, length)
	copy(frame, hdr)
	if _, err := io.ReadFull(c.conn, frame[8:]); err != nil {
		c.t.Fatalf("reading frame body: %v", err)
	}
	return msgType, frame
}

func (c *testConn) hello(endpointURL string) {
	c.t.Helper()
	var buf bytes.Buffer
	enc := ua.NewBinaryEncoder(&buf, c.ec)
	enc.WriteUInt32(ua.MessageTypeHello)
	enc.WriteUInt32(0)
	enc.WriteUInt32(0) // protocol version
	enc.WriteUInt32(testClientBufferSize)
	enc.WriteUInt32(testClientBufferSize)
	enc.WriteUInt32(0)
	enc.WriteUInt32(0)
	enc.WriteString(endpointURL)
	c.writeFrame(buf.Bytes())

	msgType, frame := c.readFrame()
	if msgType != ua.MessageTypeAck {
		c.t.Fatalf("expected ACK, got %#x", msgType)
	}
	dec := ua.NewBinaryDecoder(bytes.NewReader(frame[8:]), c.ec)
	var version uint32
	dec.ReadUInt32(&version)
	dec.ReadUInt32(&c.ackReceiveBufferSize)
	dec.ReadUInt32(&c.ackSendBufferSize)
}

// openChannel sends an OpenSecureChannelRequest over the asymmetric framing
// and records the channel and token ids from the response.
func (c *testConn) openChannel(requestType ua.SecurityTokenRequestType) {
	c.t.Helper()
	req := &ua.OpenSecureChannelRequest{
		RequestHeader: ua.RequestHeader{
			Timestamp:     time.Now(),
			RequestHandle: c.nextHandle(),
			TimeoutHint:   15000,
		},
		RequestType:       requestType,
		SecurityMode:      ua.MessageSecurityModeNone,
		RequestedLifetime: 60000,
	}
	var buf bytes.Buffer
	enc := ua.NewBinaryEncoder(&buf, c.ec)
	enc.WriteUInt32(ua.MessageTypeOpenFinal)
	enc.WriteUInt32(0)
	enc.WriteUInt32(c.channelID)
	enc.WriteString(ua.SecurityPolicyURINone)
	enc.WriteByteArray(nil)
	enc.WriteByteArray(nil)
	c.sequence++
	enc.WriteUInt32(c.sequence)
	enc.WriteUInt32(c.nextRequestID())
	enc.WriteNodeID(ua.ObjectIDOpenSecureChannelRequestEncodingDefaultBinary)
	if err := enc.Encode(req); err != nil {
		c.t.Fatalf("encoding open request: %v", err)
	}
	c.writeFrame(buf.Bytes())

	msgType, frame := c.readFrame()
	if msgType == ua.MessageTypeError {
		c.t.Fatalf("server answered ERR: %v", decodeErrorFrame(c.t, c.ec, frame))
	}
	if msgType != ua.MessageTypeOpenFinal {
		c.t.Fatalf("expected OPNF, got %#x", msgType)
	}
	dec := ua.NewBinaryDecoder(bytes.NewReader(frame[8:]), c.ec)
	var channelID uint32
	dec.ReadUInt32(&channelID)
	var policy string
	dec.ReadString(&policy)
	var cert, thumbprint []byte
	dec.ReadByteArray(&cert)
	dec.ReadByteArray(&thumbprint)
	c.checkServerSequence(dec)
	var requestID uint32
	dec.ReadUInt32(&requestID)
	var nid ua.NodeID
	if err := dec.ReadNodeID(&nid); err != nil {
		c.t.Fatalf("decoding response type id: %v", err)
	}
	var res ua.OpenSecureChannelResponse
	if err := dec.Decode(&res); err != nil {
		c.t.Fatalf("decoding open response: %v", err)
	}
	c.channelID = channelID
	c.tokenID = res.SecurityToken.TokenID
}

func decodeErrorFrame(t *testing.T, ec ua.EncodingContext, frame []byte) error {
	t.Helper()
	dec := ua.NewBinaryDecoder(bytes.NewReader(frame[8:]), ec)
	var code uint32
	dec.ReadUInt32(&code)
	return ua.StatusCode(code)
}

func (c *testConn) checkServerSequence(dec *ua.BinaryDecoder) {
	c.t.Helper()
	var seq uint32
	dec.ReadUInt32(&seq)
	if seq <= c.lastServerSeq {
		c.t.Fatalf("server sequence number went from %d to %d", c.lastServerSeq, seq)
	}
	c.lastServerSeq = seq
}

// send writes the request as a single MSGF chunk and returns its request id.
func (c *testConn) send(req ua.ServiceRequest) uint32 {
	c.t.Helper()
	return c.sendWithToken(req, c.tokenID)
}

func (c *testConn) sendWithToken(req ua.ServiceRequest, tokenID uint32) uint32 {
	c.t.Helper()
	h := req.Header()
	h.Timestamp = time.Now()
	if h.RequestHandle == 0 {
		h.RequestHandle = c.nextHandle()
	}
	if h.TimeoutHint == 0 {
		h.TimeoutHint = 15000
	}
	if h.AuthenticationToken == nil {
		h.AuthenticationToken = c.authToken
	}
	encodingID, ok := ua.FindBinaryEncodingIDForType(reflect.TypeOf(req).Elem())
	if !ok {
		c.t.Fatalf("no binary encoding id for %T", req)
	}

	var buf bytes.Buffer
	enc := ua.NewBinaryEncoder(&buf, c.ec)
	enc.WriteUInt32(ua.MessageTypeFinal)
	enc.WriteUInt32(0)
	enc.WriteUInt32(c.channelID)
	enc.WriteUInt32(tokenID)
	c.sequence++
	enc.WriteUInt32(c.sequence)
	requestID := c.nextRequestID()
	enc.WriteUInt32(requestID)
	enc.WriteNodeID(encodingID.NodeID)
	if err := enc.Encode(req); err != nil {
		c.t.Fatalf("encoding %T: %v", req, err)
	}
	c.writeFrame(buf.Bytes())
	return requestID
}

// sendChunked splits the request across as many MSGC chunks as the
// negotiated buffer size requires, finishing with a MSGF chunk.
func (c *testConn) sendChunked(req ua.ServiceRequest) uint32 {
	c.t.Helper()
	h := req.Header()
	h.Timestamp = time.Now()
	if h.RequestHandle == 0 {
		h.RequestHandle = c.nextHandle()
	}
	if h.TimeoutHint == 0 {
		h.TimeoutHint = 15000
	}
	if h.AuthenticationToken == nil {
		h.AuthenticationToken = c.authToken
	}
	encodingID, ok := ua.FindBinaryEncodingIDForType(reflect.TypeOf(req).Elem())
	if !ok {
		c.t.Fatalf("no binary encoding id for %T", req)
	}

	var body bytes.Buffer
	enc := ua.NewBinaryEncoder(&body, c.ec)
	enc.WriteNodeID(encodingID.NodeID)
	if err := enc.Encode(req); err != nil {
		c.t.Fatalf("encoding %T: %v", req, err)
	}

	// message header, channel id, token id, sequence and request id
	const headerSize = 24
	requestID := c.nextRequestID()
	remaining := body.Bytes()
	for len(remaining) > 0 {
		n := len(remaining)
		msgType := ua.MessageTypeFinal
		if n > testClientBufferSize-headerSize {
			n = testClientBufferSize - headerSize
			msgType = ua.MessageTypeChunk
		}
		var buf bytes.Buffer
		fenc := ua.NewBinaryEncoder(&buf, c.ec)
		fenc.WriteUInt32(msgType)
		fenc.WriteUInt32(0)
		fenc.WriteUInt32(c.channelID)
		fenc.WriteUInt32(c.tokenID)
		c.sequence++
		fenc.WriteUInt32(c.sequence)
		fenc.WriteUInt32(requestID)
		buf.Write(remaining[:n])
		remaining = remaining[n:]
		c.writeFrame(buf.Bytes())
	}
	return requestID
}

// recvChunked reassembles a response spread over MSGC chunks, checking
// that the chunk sequence numbers are contiguous and every chunk fits the
// negotiated buffer. It returns the response and the chunk count.
func (c *testConn) recvChunked() (ua.ServiceResponse, int) {
	c.t.Helper()
	var assembled bytes.Buffer
	chunks := 0
	for {
		msgType, frame := c.readFrame()
		if msgType == ua.MessageTypeError {
			c.t.Fatalf("server answered ERR: %v", decodeErrorFrame(c.t, c.ec, frame))
		}
		if msgType != ua.MessageTypeFinal && msgType != ua.MessageTypeChunk {
			c.t.Fatalf("expected MSGF or MSGC, got %#x", msgType)
		}
		if len(frame) > testClientBufferSize {
			c.t.Fatalf("chunk of %d bytes exceeds the negotiated %d byte buffer", len(frame), testClientBufferSize)
		}
		dec := ua.NewBinaryDecoder(bytes.NewReader(frame[8:]), c.ec)
		var channelID, tokenID, seq, requestID uint32
		dec.ReadUInt32(&channelID)
		dec.ReadUInt32(&tokenID)
		dec.ReadUInt32(&seq)
		dec.ReadUInt32(&requestID)
		if channelID != c.channelID {
			c.t.Fatalf("response channel id = %d, want %d", channelID, c.channelID)
		}
		if chunks > 0 && seq != c.lastServerSeq+1 {
			c.t.Fatalf("chunk sequence jumped from %d to %d", c.lastServerSeq, seq)
		}
		if seq <= c.lastServerSeq {
			c.t.Fatalf("server sequence number went from %d to %d", c.lastServerSeq, seq)
		}
		c.lastServerSeq = seq
		chunks++
		assembled.Write(frame[24:])
		if msgType == ua.MessageTypeFinal {
			break
		}
	}

	dec := ua.NewBinaryDecoder(&assembled, c.ec)
	var nid ua.NodeID
	if err := dec.ReadNodeID(&nid); err != nil {
		c.t.Fatalf("decoding response type id: %v", err)
	}
	typ, ok := ua.FindTypeForBinaryEncodingID(ua.NewExpandedNodeID(nid))
	if !ok {
		c.t.Fatalf("unknown response type id %v", nid)
	}
	v := reflect.New(typ).Interface()
	if err := dec.Decode(v); err != nil {
		c.t.Fatalf("decoding %v: %v", typ, err)
	}
	res, ok := v.(ua.ServiceResponse)
	if !ok {
		c.t.Fatalf("decoded %v is not a service response", typ)
	}
	return res, chunks
}

// recv reads the next MSGF chunk and decodes whatever response it carries.
func (c *testConn) recv() ua.ServiceResponse {
	c.t.Helper()
	msgType, frame := c.readFrame()
	if msgType == ua.MessageTypeError {
		c.t.Fatalf("server answered ERR: %v", decodeErrorFrame(c.t, c.ec, frame))
	}
	if msgType != ua.MessageTypeFinal {
		c.t.Fatalf("expected MSGF, got %#x", msgType)
	}
	dec := ua.NewBinaryDecoder(bytes.NewReader(frame[8:]), c.ec)
	var channelID, tokenID uint32
	dec.ReadUInt32(&channelID)
	dec.ReadUInt32(&tokenID)
	if channelID != c.channelID {
		c.t.Fatalf("response channel id = %d, want %d", channelID, c.channelID)
	}
	c.checkServerSequence(dec)
	var requestID uint32
	dec.ReadUInt32(&requestID)
	var nid ua.NodeID
	if err := dec.ReadNodeID(&nid); err != nil {
		c.t.Fatalf("decoding response type id: %v", err)
	}
	typ, ok := ua.FindTypeForBinaryEncodingID(ua.NewExpandedNodeID(nid))
	if !ok {
		c.t.Fatalf("unknown response type id %v", nid)
	}
	v := reflect.New(typ).Interface()
	if err := dec.Decode(v); err != nil {
		c.t.Fatalf("decoding %v: %v", typ, err)
	}
	res, ok := v.(ua.ServiceResponse)
	if !ok {
		c.t.Fatalf("decoded %v is not a service response", typ)
	}
	return res
}

func (c *testConn) request(req ua.ServiceRequest) ua.ServiceResponse {
	c.t.Helper()
	c.send(req)
	return c.recv()
}

// expectFault asserts the response is a ServiceFault with the given code.
func expectFault(t *testing.T, res ua.ServiceResponse, code ua.StatusCode) {
	t.Helper()
	fault, ok := res.(*ua.ServiceFault)
	if !ok {
		t.Fatalf("expected a service fault, got %T", res)
	}
	if fault.ServiceResult != code {
		t.Fatalf("fault code = %v, want %v", fault.ServiceResult, code)
	}
}

// createAndActivate runs CreateSession and an anonymous ActivateSession,
// leaving the auth token on the connection.
func (c *testConn) createAndActivate(endpointURL string) {
	c.t.Helper()
	res := c.request(&ua.CreateSessionRequest{
		ClientDescription: ua.ApplicationDescription{
			ApplicationURI:  "urn:testhost:testclient",
			ApplicationName: ua.NewLocalizedText("testclient", "en"),
			ApplicationType: ua.ApplicationTypeClient,
		},
		EndpointURL:             endpointURL,
		SessionName:             "test session",
		RequestedSessionTimeout: 30000,
	})
	created, ok := res.(*ua.CreateSessionResponse)
	if !ok {
		c.t.Fatalf("CreateSession answered %T", res)
	}
	if created.RevisedSessionTimeout < 10000 {
		c.t.Fatalf("revised session timeout = %v, below the server minimum", created.RevisedSessionTimeout)
	}

	// find the anonymous token policy in the returned endpoints
	policyID := ""
	for _, ep := range created.ServerEndpoints {
		if ep.SecurityPolicyURI != ua.SecurityPolicyURINone {
			continue
		}
		for _, tp := range ep.UserIdentityTokens {
			if tp.TokenType == ua.UserTokenTypeAnonymous {
				policyID = tp.PolicyID
			}
		}
	}
	if policyID == "" {
		c.t.Fatal("no anonymous token policy offered")
	}

	c.authToken = created.AuthenticationToken
	res = c.request(&ua.ActivateSessionRequest{
		UserIdentityToken: ua.AnonymousIdentityToken{PolicyID: policyID},
	})
	if _, ok := res.(*ua.ActivateSessionResponse); !ok {
		c.t.Fatalf("ActivateSession answered %T", res)
	}
}

func TestHandshakeClampsBufferSizes(t *testing.T) {
	_, endpointURL := startTestServer(t, nil)
	c := dialTestServer(t, endpointURL)
	if c.ackSendBufferSize > testClientBufferSize {
		t.Errorf("acknowledged send buffer = %d, larger than the client offered %d", c.ackSendBufferSize, testClientBufferSize)
	}
	if c.ackReceiveBufferSize > testClientBufferSize {
		t.Errorf("acknowledged receive buffer = %d, larger than the client offered %d", c.ackReceiveBufferSize, testClientBufferSize)
	}
}

func TestChannelCapacityRefusedBeforeOpen(t *testing.T) {
	_, endpointURL := startTestServer(t, nil, server.WithMaxChannelCount(1))
	c := dialTestServer(t, endpointURL)

	// The slot is taken, so the next connection is refused with an error
	// frame before any handshake, never with an OpenSecureChannelResponse.
	hostport := endpointURL[len("opc.tcp://"):]
	conn, err := net.Dial("tcp", hostport)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	c2 := &testConn{t: t, conn: conn, ec: ua.NewEncodingContext()}
	msgType, frame := c2.readFrame()
	if msgType != ua.MessageTypeError {
		t.Fatalf("over-capacity connection answered with %#x, want an error frame", msgType)
	}
	if err := decodeErrorFrame(t, c2.ec, frame); err != ua.BadTCPNotEnoughResources {
		t.Fatalf("over-capacity connection refused with %v, want BadTCPNotEnoughResources", err)
	}

	// the established channel keeps working
	res := c.request(&ua.GetEndpointsRequest{EndpointURL: endpointURL})
	if _, ok := res.(*ua.GetEndpointsResponse); !ok {
		t.Fatalf("GetEndpoints on the surviving channel answered %T", res)
	}
}

func TestGetEndpointsBeforeSession(t *testing.T) {
	_, endpointURL := startTestServer(t, nil)
	c := dialTestServer(t, endpointURL)
	res := c.request(&ua.GetEndpointsRequest{EndpointURL: endpointURL})
	eps, ok := res.(*ua.GetEndpointsResponse)
	if !ok {
		t.Fatalf("GetEndpoints answered %T", res)
	}
	if len(eps.Endpoints) == 0 {
		t.Fatal("no endpoints returned")
	}
	found := false
	for _, ep := range eps.Endpoints {
		if ep.SecurityPolicyURI == ua.SecurityPolicyURINone && ep.SecurityMode == ua.MessageSecurityModeNone {
			found = true
		}
	}
	if !found {
		t.Error("the None endpoint is missing")
	}
}

func TestTokenRenewalKeepsPreviousToken(t *testing.T) {
	_, endpointURL := startTestServer(t, nil)
	c := dialTestServer(t, endpointURL)
	oldToken := c.tokenID
	c.openChannel(ua.SecurityTokenRequestTypeRenew)
	if c.tokenID == oldToken {
		t.Fatal("renewal did not issue a new token id")
	}

	// the new token works
	if _, ok := c.request(&ua.GetEndpointsRequest{EndpointURL: endpointURL}).(*ua.GetEndpointsResponse); !ok {
		t.Fatal("request under the renewed token failed")
	}
	// the superseded token stays valid until it expires
	c.sendWithToken(&ua.GetEndpointsRequest{EndpointURL: endpointURL}, oldToken)
	if _, ok := c.recv().(*ua.GetEndpointsResponse); !ok {
		t.Fatal("request under the previous token failed")
	}
}

func TestSessionLifecycle(t *testing.T) {
	nodes := newSimNodes()
	_, endpointURL := startTestServer(t, nodes)
	c := dialTestServer(t, endpointURL)

	// session-scoped services fault before a session exists
	c.authToken = ua.NewNodeIDNumeric(0, 99999)
	res := c.request(&ua.ReadRequest{NodesToRead: []ua.ReadValueID{{NodeID: testNodeID, AttributeID: ua.AttributeIDValue}}})
	expectFault(t, res, ua.BadSessionIDInvalid)
	c.authToken = nil

	c.createAndActivate(endpointURL)

	// reads flow through the node service
	res = c.request(&ua.ReadRequest{NodesToRead: []ua.ReadValueID{{NodeID: testNodeID, AttributeID: ua.AttributeIDValue}}})
	read, ok := res.(*ua.ReadResponse)
	if !ok {
		t.Fatalf("Read answered %T", res)
	}
	if len(read.Results) != 1 || read.Results[0].StatusCode != ua.Good {
		t.Fatalf("read results = %+v", read.Results)
	}
	if v, ok := read.Results[0].Value.(float64); !ok || v != 1 {
		t.Fatalf("read value = %v, want 1", read.Results[0].Value)
	}

	// writes too
	res = c.request(&ua.WriteRequest{NodesToWrite: []ua.WriteValue{{
		NodeID:      testNodeID,
		AttributeID: ua.AttributeIDValue,
		Value:       ua.NewDataValue(float64(5), ua.Good, time.Now(), 0, time.Now(), 0),
	}}})
	write, ok := res.(*ua.WriteResponse)
	if !ok {
		t.Fatalf("Write answered %T", res)
	}
	if len(write.Results) != 1 || write.Results[0] != ua.Good {
		t.Fatalf("write results = %v", write.Results)
	}

	// after CloseSession the auth token is gone
	if _, ok := c.request(&ua.CloseSessionRequest{}).(*ua.CloseSessionResponse); !ok {
		t.Fatal("CloseSession failed")
	}
	res = c.request(&ua.ReadRequest{NodesToRead: []ua.ReadValueID{{NodeID: testNodeID, AttributeID: ua.AttributeIDValue}}})
	expectFault(t, res, ua.BadSessionIDInvalid)
}

func TestLargeReadSpansChunksBothWays(t *testing.T) {
	nodes := newSimNodes()
	_, endpointURL := startTestServer(t, nodes)
	c := dialTestServer(t, endpointURL)
	c.createAndActivate(endpointURL)

	// 2000 operations encode well past the 8192 byte buffer in both
	// directions, so request and response each travel as a MSGC train.
	const count = 2000
	nodesToRead := make([]ua.ReadValueID, count)
	for i := range nodesToRead {
		nodesToRead[i] = ua.ReadValueID{NodeID: testNodeID, AttributeID: ua.AttributeIDValue}
	}
	c.sendChunked(&ua.ReadRequest{NodesToRead: nodesToRead})
	res, chunks := c.recvChunked()
	read, ok := res.(*ua.ReadResponse)
	if !ok {
		t.Fatalf("Read answered %T", res)
	}
	if len(read.Results) != count {
		t.Fatalf("read %d results, want %d", len(read.Results), count)
	}
	if chunks < 2 {
		t.Fatalf("response arrived in %d chunk(s), want a multi-chunk split", chunks)
	}
	for i, r := range read.Results {
		if r.StatusCode != ua.Good {
			t.Fatalf("result %d has status %v", i, r.StatusCode)
		}
	}

	// the channel stays usable after reassembly
	if _, ok := c.request(&ua.ReadRequest{NodesToRead: nodesToRead[:1]}).(*ua.ReadResponse); !ok {
		t.Fatal("single-chunk read after the chunked exchange failed")
	}
}

func TestPublishCycle(t *testing.T) {
	nodes := newSimNodes()
	_, endpointURL := startTestServer(t, nodes)
	c := dialTestServer(t, endpointURL)
	c.createAndActivate(endpointURL)

	// a publish with no subscriptions faults
	expectFault(t, c.request(&ua.PublishRequest{}), ua.BadNoSubscription)

	res := c.request(&ua.CreateSubscriptionRequest{
		RequestedPublishingInterval: 125,
		RequestedLifetimeCount:      600,
		RequestedMaxKeepAliveCount:  1,
		PublishingEnabled:           true,
	})
	created, ok := res.(*ua.CreateSubscriptionResponse)
	if !ok {
		t.Fatalf("CreateSubscription answered %T", res)
	}
	subID := created.SubscriptionID
	if created.RevisedPublishingInterval < 125 {
		t.Fatalf("revised publishing interval = %v", created.RevisedPublishingInterval)
	}

	// with no monitored items the first publish completes with a keep-alive
	res = c.request(&ua.PublishRequest{})
	pub, ok := res.(*ua.PublishResponse)
	if !ok {
		t.Fatalf("Publish answered %T", res)
	}
	if pub.SubscriptionID != subID {
		t.Fatalf("publish subscription id = %d, want %d", pub.SubscriptionID, subID)
	}
	if len(pub.NotificationMessage.NotificationData) != 0 {
		t.Fatalf("expected a keep-alive, got %v", pub.NotificationMessage.NotificationData)
	}

	// monitor the test node
	res = c.request(&ua.CreateMonitoredItemsRequest{
		SubscriptionID:     subID,
		TimestampsToReturn: ua.TimestampsToReturnBoth,
		ItemsToCreate: []ua.MonitoredItemCreateRequest{{
			ItemToMonitor:  ua.ReadValueID{NodeID: testNodeID, AttributeID: ua.AttributeIDValue},
			MonitoringMode: ua.MonitoringModeReporting,
			RequestedParameters: ua.MonitoringParameters{
				ClientHandle:     42,
				SamplingInterval: 100,
				QueueSize:        10,
				DiscardOldest:    true,
			},
		}},
	})
	cmi, ok := res.(*ua.CreateMonitoredItemsResponse)
	if !ok {
		t.Fatalf("CreateMonitoredItems answered %T", res)
	}
	if len(cmi.Results) != 1 || cmi.Results[0].StatusCode != ua.Good {
		t.Fatalf("create item results = %+v", cmi.Results)
	}

	// the initial sample publishes as a data change
	nm := awaitDataChange(t, c, subID)
	dcn := nm.NotificationData[0].(ua.DataChangeNotification)
	if dcn.MonitoredItems[0].ClientHandle != 42 {
		t.Fatalf("client handle = %d, want 42", dcn.MonitoredItems[0].ClientHandle)
	}
	firstSeq := nm.SequenceNumber

	// republish replays the unacknowledged notification
	res = c.request(&ua.RepublishRequest{SubscriptionID: subID, RetransmitSequenceNumber: firstSeq})
	rep, ok := res.(*ua.RepublishResponse)
	if !ok {
		t.Fatalf("Republish answered %T", res)
	}
	if rep.NotificationMessage.SequenceNumber != firstSeq {
		t.Fatalf("republished sequence = %d, want %d", rep.NotificationMessage.SequenceNumber, firstSeq)
	}
	// republish removed it, so a second attempt fails
	expectFault(t, c.request(&ua.RepublishRequest{SubscriptionID: subID, RetransmitSequenceNumber: firstSeq}), ua.BadMessageNotAvailable)

	// a changed value publishes as a new data change
	nodes.set(float64(7))
	nm = awaitDataChange(t, c, subID)
	secondSeq := nm.SequenceNumber
	if secondSeq <= firstSeq {
		t.Fatalf("notification sequence went from %d to %d", firstSeq, secondSeq)
	}

	// acknowledging releases the retransmission buffer
	res = c.request(&ua.PublishRequest{SubscriptionAcknowledgements: []ua.SubscriptionAcknowledgement{
		{SubscriptionID: subID, SequenceNumber: secondSeq},
		{SubscriptionID: subID, SequenceNumber: 9999},
		{SubscriptionID: subID + 1000, SequenceNumber: 1},
	}})
	pub, ok = res.(*ua.PublishResponse)
	if !ok {
		t.Fatalf("Publish answered %T", res)
	}
	if pub.Results[0] != ua.Good {
		t.Errorf("ack of held sequence = %v, want Good", pub.Results[0])
	}
	if pub.Results[1] != ua.BadSequenceNumberUnknown {
		t.Errorf("ack of unknown sequence = %v, want BadSequenceNumberUnknown", pub.Results[1])
	}
	if pub.Results[2] != ua.BadSubscriptionIDInvalid {
		t.Errorf("ack of unknown subscription = %v, want BadSubscriptionIDInvalid", pub.Results[2])
	}

	// deleting the subscription ends the publish stream
	res = c.request(&ua.DeleteSubscriptionsRequest{SubscriptionIDs: []uint32{subID}})
	del, ok := res.(*ua.DeleteSubscriptionsResponse)
	if !ok {
		t.Fatalf("DeleteSubscriptions answered %T", res)
	}
	if del.Results[0] != ua.Good {
		t.Fatalf("delete result = %v", del.Results[0])
	}
	expectFault(t, c.request(&ua.PublishRequest{}), ua.BadNoSubscription)
}

// awaitDataChange publishes until a data-change notification arrives.
func awaitDataChange(t *testing.T, c *testConn, subID uint32) ua.NotificationMessage {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		res := c.request(&ua.PublishRequest{})
		pub, ok := res.(*ua.PublishResponse)
		if !ok {
			t.Fatalf("Publish answered %T", res)
		}
		if pub.SubscriptionID != subID {
			continue
		}
		for _, nd := range pub.NotificationMessage.NotificationData {
			if dcn, ok := nd.(ua.DataChangeNotification); ok && len(dcn.MonitoredItems) > 0 {
				return pub.NotificationMessage
			}
		}
	}
	t.Fatal("no data change notification arrived")
	return ua.NotificationMessage{}
}

func TestTransferSubscriptionsBetweenSessions(t *testing.T) {
	nodes := newSimNodes()
	_, endpointURL := startTestServer(t, nodes)

	c1 := dialTestServer(t, endpointURL)
	c1.createAndActivate(endpointURL)
	res := c1.request(&ua.CreateSubscriptionRequest{
		RequestedPublishingInterval: 125,
		RequestedLifetimeCount:      600,
		RequestedMaxKeepAliveCount:  3,
		PublishingEnabled:           true,
	})
	created, ok := res.(*ua.CreateSubscriptionResponse)
	if !ok {
		t.Fatalf("CreateSubscription answered %T", res)
	}
	subID := created.SubscriptionID

	// a second session adopts the subscription
	c2 := dialTestServer(t, endpointURL)
	c2.createAndActivate(endpointURL)
	res = c2.request(&ua.TransferSubscriptionsRequest{SubscriptionIDs: []uint32{subID}})
	tr, ok := res.(*ua.TransferSubscriptionsResponse)
	if !ok {
		t.Fatalf("TransferSubscriptions answered %T", res)
	}
	if tr.Results[0].StatusCode != ua.Good {
		t.Fatalf("transfer result = %v", tr.Results[0].StatusCode)
	}

	// the old owner learns of the move through a status change
	res = c1.request(&ua.PublishRequest{})
	pub, ok := res.(*ua.PublishResponse)
	if !ok {
		t.Fatalf("Publish answered %T", res)
	}
	if pub.SubscriptionID != subID {
		t.Fatalf("status change subscription id = %d, want %d", pub.SubscriptionID, subID)
	}
	scn, ok := pub.NotificationMessage.NotificationData[0].(ua.StatusChangeNotification)
	if !ok {
		t.Fatalf("expected a status change, got %T", pub.NotificationMessage.NotificationData[0])
	}
	if scn.Status != ua.GoodSubscriptionTransferred {
		t.Fatalf("status change = %v, want GoodSubscriptionTransferred", scn.Status)
	}

	// the subscription now publishes for the new owner
	res = c2.request(&ua.PublishRequest{})
	if pub, ok := res.(*ua.PublishResponse); !ok || pub.SubscriptionID != subID {
		t.Fatalf("publish after transfer answered %T", res)
	}

	// and no longer belongs to the old one
	expectFault(t, c1.request(&ua.RepublishRequest{SubscriptionID: subID, RetransmitSequenceNumber: 1}), ua.BadSubscriptionIDInvalid)
}

func TestDiscoveryOnlyChannel(t *testing.T) {
	// without the None endpoint an unsecured channel serves discovery only
	_, endpointURL := startTestServer(t, nil, server.WithSecurityPolicyNone(false))
	c := dialTestServer(t, endpointURL)

	// discovery still answers
	if _, ok := c.request(&ua.FindServersRequest{EndpointURL: endpointURL}).(*ua.FindServersResponse); !ok {
		t.Fatal("FindServers failed on a discovery-only channel")
	}

	// session services abort the channel
	c.send(&ua.CreateSessionRequest{EndpointURL: endpointURL, SessionName: "nope"})
	msgType, frame := c.readFrame()
	if msgType != ua.MessageTypeError {
		t.Fatalf("expected ERR, got %#x", msgType)
	}
	if err := decodeErrorFrame(t, c.ec, frame); err != ua.BadSecurityPolicyRejected {
		t.Fatalf("abort code = %v, want BadSecurityPolicyRejected", err)
	}
}

// simNodes is a one-node address space backing the tests.
type simNodes struct {
	sync.RWMutex
	value ua.DataValue
}

func newSimNodes() *simNodes {
	now := time.Now()
	return &simNodes{value: ua.NewDataValue(float64(1), ua.Good, now, 0, now, 0)}
}

func (n *simNodes) set(v ua.Variant) {
	now := time.Now()
	n.Lock()
	n.value = ua.NewDataValue(v, ua.Good, now, 0, now, 0)
	n.Unlock()
}

func (n *simNodes) Read(ctx context.Context, req *ua.ReadRequest) *ua.ReadResponse {
	now := time.Now()
	results := make([]ua.DataValue, len(req.NodesToRead))
	n.RLock()
	defer n.RUnlock()
	for i, op := range req.NodesToRead {
		switch {
		case op.NodeID != testNodeID:
			results[i] = ua.NewDataValue(nil, ua.BadNodeIDUnknown, now, 0, now, 0)
		case op.AttributeID != ua.AttributeIDValue:
			results[i] = ua.NewDataValue(nil, ua.BadAttributeIDInvalid, now, 0, now, 0)
		default:
			results[i] = n.value
		}
	}
	return &ua.ReadResponse{Results: results}
}

func (n *simNodes) Write(ctx context.Context, req *ua.WriteRequest) *ua.WriteResponse {
	results := make([]ua.StatusCode, len(req.NodesToWrite))
	n.Lock()
	defer n.Unlock()
	for i, op := range req.NodesToWrite {
		if op.NodeID != testNodeID {
			results[i] = ua.BadNodeIDUnknown
			continue
		}
		if op.AttributeID != ua.AttributeIDValue {
			results[i] = ua.BadAttributeIDInvalid
			continue
		}
		now := time.Now()
		n.value = ua.NewDataValue(op.Value.Value, ua.Good, now, 0, now, 0)
		results[i] = ua.Good
	}
	return &ua.WriteResponse{Results: results}
}

func (n *simNodes) Call(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	return nil, ua.BadServiceUnsupported
}

var _ server.NodeService = (*simNodes)(nil)
