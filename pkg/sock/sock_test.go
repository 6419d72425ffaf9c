// Copyright 2025 Netsock Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/netsock/netsock/pkg/private/xtest"
	"github.com/netsock/netsock/pkg/sock"
	"github.com/netsock/netsock/pkg/sock/engine"
	"github.com/netsock/netsock/pkg/sock/engine/enginetest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newStack(t *testing.T) (*sock.Stack, *enginetest.Engine) {
	t.Helper()
	eng := enginetest.New()
	return sock.New(eng, sock.Config{}, sock.Metrics{}), eng
}

// recvAll drains n bytes from the socket with bounded retries, collecting
// them across as many calls as the buffer size requires.
func recvAll(t *testing.T, s *sock.Stack, h sock.Handle, bufSize, n int) []byte {
	t.Helper()
	var out []byte
	deadline := time.Now().Add(5 * time.Second)
	for len(out) < n {
		require.True(t, time.Now().Before(deadline), "timed out after %d bytes", len(out))
		buf := make([]byte, bufSize)
		got, err := s.Recv(h, buf)
		if err != nil {
			require.Equal(t, sock.WouldBlock, sock.CodeOf(err))
			continue
		}
		out = append(out, buf[:got]...)
	}
	return out
}

func TestOpenClose(t *testing.T) {
	s, _ := newStack(t)
	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	assert.Equal(t, 1, s.InUse())

	require.NoError(t, s.Close(h))
	assert.Equal(t, 0, s.InUse())

	// The handle is dead after close.
	err = s.Close(h)
	assert.Equal(t, sock.InvalidParameter, sock.CodeOf(err))
	_, err = s.Send(h, []byte("x"))
	assert.Equal(t, sock.InvalidParameter, sock.CodeOf(err))
}

func TestOpenExhaustionRecovers(t *testing.T) {
	s, _ := newStack(t)
	handles := make([]sock.Handle, 0, sock.NumSockets)
	for i := 0; i < sock.NumSockets; i++ {
		h, err := s.Open(engine.UDP)
		require.NoError(t, err)
		handles = append(handles, h)
	}

	_, err := s.Open(engine.UDP)
	require.Error(t, err)
	assert.Equal(t, sock.NoSocket, sock.CodeOf(err))
	assert.Equal(t, sock.NumSockets, s.InUse())

	require.NoError(t, s.Close(handles[0]))
	_, err = s.Open(engine.UDP)
	assert.NoError(t, err)
}

func TestOpenEngineFailure(t *testing.T) {
	s, eng := newStack(t)
	eng.FailNextNewConn(engine.StatusMem)
	_, err := s.Open(engine.TCP)
	require.Error(t, err)
	assert.Equal(t, sock.NoSocket, sock.CodeOf(err))
	assert.Equal(t, 0, s.InUse(), "failed open must not leak a slot")
}

func TestStreamEcho(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)

	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))
	ec := eng.Conns()[0]
	assert.True(t, ec.ConnectWasBlocking(), "connect must run in blocking mode")
	assert.False(t, ec.Blocking(), "non-blocking mode must be restored")
	assert.Equal(t, sock.DefaultPollInterval, ec.RecvTimeout())

	n, err := s.Send(h, []byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	data, ok := remote.Recv(time.Second)
	require.True(t, ok)
	assert.Equal(t, []byte("ping"), data)

	require.Equal(t, engine.StatusOK, remote.Send([]byte("pong")))
	assert.Equal(t, []byte("pong"), recvAll(t, s, h, 16, 4))
}

func TestRecvWouldBlock(t *testing.T) {
	s, eng := newStack(t)
	eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))

	_, err = s.Recv(h, make([]byte, 8))
	require.Error(t, err)
	assert.Equal(t, sock.WouldBlock, sock.CodeOf(err))
	var code sock.Code
	require.ErrorAs(t, err, &code)
	assert.True(t, code.Timeout())
}

func TestRecvPartialDrain(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))

	require.Equal(t, engine.StatusOK, remote.Send([]byte("abcdefghij")))
	got := recvAll(t, s, h, 4, 10)
	assert.Equal(t, []byte("abcdefghij"), got, "drained bytes must be in order without loss")
	assert.Equal(t, 0, eng.OutstandingBuffers(), "drained unit must be released")

	_, err = s.Recv(h, make([]byte, 4))
	assert.Equal(t, sock.WouldBlock, sock.CodeOf(err), "no duplicate data after drain")
}

func TestRecvPartialDrainHoldsBuffer(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))
	require.Equal(t, engine.StatusOK, remote.Send([]byte("abcdefgh")))

	got := recvAll(t, s, h, 4, 4)
	assert.Equal(t, []byte("abcd"), got)
	assert.Equal(t, 1, eng.OutstandingBuffers(), "partially drained unit stays held")

	// Close releases the held unit along with the slot.
	require.NoError(t, s.Close(h))
	assert.Equal(t, 0, eng.OutstandingBuffers())
}

func TestRecvOrderlyClose(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))

	require.Equal(t, engine.StatusOK, remote.Send([]byte("bye")))
	remote.Close()

	// Data queued before the close is still delivered.
	assert.Equal(t, []byte("bye"), recvAll(t, s, h, 8, 3))

	// Then the orderly shutdown surfaces as zero bytes without an error.
	n, err := s.Recv(h, make([]byte, 8))
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestSendAfterPeerClose(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))

	remote.Close()
	_, err = s.Send(h, []byte("into the void"))
	require.Error(t, err)
	assert.Equal(t, sock.NoConnection, sock.CodeOf(err))
}

func TestAcceptWouldBlock(t *testing.T) {
	s, _ := newStack(t)
	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)

	require.NoError(t, s.Bind(h, sock.Addr{Host: "192.0.2.10", Port: 80}))
	require.NoError(t, s.Listen(h, 4))

	_, err = s.Accept(h)
	require.Error(t, err)
	assert.Equal(t, sock.WouldBlock, sock.CodeOf(err))
	assert.Equal(t, 1, s.InUse(), "failed accept must not consume a slot")
}

func TestAcceptLoopback(t *testing.T) {
	s, _ := newStack(t)
	srv, err := s.Open(engine.TCP)
	require.NoError(t, err)
	require.NoError(t, s.Bind(srv, sock.Addr{Host: "192.0.2.10", Port: 80}))
	require.NoError(t, s.Listen(srv, 4))

	cli, err := s.Open(engine.TCP)
	require.NoError(t, err)
	require.NoError(t, s.Connect(cli, sock.Addr{Host: "192.0.2.10", Port: 80}))

	conn, err := s.Accept(srv)
	require.NoError(t, err)
	assert.Equal(t, 3, s.InUse())

	n, err := s.Send(cli, []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("hi"), recvAll(t, s, conn, 8, 2))

	n, err = s.Send(conn, []byte("ho"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("ho"), recvAll(t, s, cli, 8, 2))

	for _, h := range []sock.Handle{conn, cli, srv} {
		require.NoError(t, s.Close(h))
	}
	assert.Equal(t, 0, s.InUse())
}

func TestBindAddressInUse(t *testing.T) {
	s, _ := newStack(t)
	a, err := s.Open(engine.UDP)
	require.NoError(t, err)
	defer s.Close(a)
	b, err := s.Open(engine.UDP)
	require.NoError(t, err)
	defer s.Close(b)

	addr := sock.Addr{Host: "192.0.2.10", Port: 9000}
	require.NoError(t, s.Bind(a, addr))
	err = s.Bind(b, addr)
	require.Error(t, err)
	assert.Equal(t, sock.InvalidParameter, sock.CodeOf(err))
}

func TestDatagramRoundTrip(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.UDP, xtest.MustParseAddrPort("203.0.113.9:53"))

	h, err := s.Open(engine.UDP)
	require.NoError(t, err)
	defer s.Close(h)
	local := sock.Addr{Host: "192.0.2.10", Port: 9000}
	require.NoError(t, s.Bind(h, local))

	n, err := s.SendTo(h, sock.Addr{Host: "203.0.113.9", Port: 53}, []byte("query"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	data, ok := remote.Recv(time.Second)
	require.True(t, ok)
	assert.Equal(t, []byte("query"), data)

	require.Equal(t, engine.StatusOK,
		remote.SendTo(xtest.MustParseAddrPort("192.0.2.10:9000"), []byte("answer")))
	buf := make([]byte, 16)
	deadline := time.Now().Add(5 * time.Second)
	for {
		var from sock.Addr
		n, from, err = s.RecvFrom(h, buf)
		if err == nil {
			assert.Equal(t, []byte("answer"), buf[:n])
			assert.Equal(t, sock.Addr{Host: "203.0.113.9", Port: 53}, from)
			break
		}
		require.Equal(t, sock.WouldBlock, sock.CodeOf(err))
		require.True(t, time.Now().Before(deadline))
	}
}

func TestDatagramTruncation(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.UDP, xtest.MustParseAddrPort("203.0.113.9:53"))

	h, err := s.Open(engine.UDP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Bind(h, sock.Addr{Host: "192.0.2.10", Port: 9000}))

	require.Equal(t, engine.StatusOK,
		remote.SendTo(xtest.MustParseAddrPort("192.0.2.10:9000"), []byte("0123456789")))

	buf := make([]byte, 4)
	deadline := time.Now().Add(5 * time.Second)
	for {
		n, from, err := s.RecvFrom(h, buf)
		if err == nil {
			assert.Equal(t, 4, n, "datagram larger than the buffer is truncated")
			assert.Equal(t, []byte("0123"), buf[:n])
			assert.Equal(t, sock.Addr{Host: "203.0.113.9", Port: 53}, from)
			break
		}
		require.Equal(t, sock.WouldBlock, sock.CodeOf(err))
		require.True(t, time.Now().Before(deadline))
	}
	assert.Equal(t, 0, eng.OutstandingBuffers(), "truncated datagram is released, not retained")

	// The excess bytes are gone, not queued for a later call.
	_, _, err = s.RecvFrom(h, buf)
	assert.Equal(t, sock.WouldBlock, sock.CodeOf(err))
}

func TestAttachCallback(t *testing.T) {
	s, eng := newStack(t)
	remote := eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))

	fired := make(chan struct{}, 1)
	err = s.Attach(h, func(ud interface{}) {
		assert.Equal(t, "user-data", ud)
		select {
		case fired <- struct{}{}:
		default:
		}
	}, "user-data")
	require.NoError(t, err)

	require.Equal(t, engine.StatusOK, remote.Send([]byte("wake")))
	xtest.AssertReadReturnsBefore(t, fired, time.Second)
}

func TestAttachInvalidHandle(t *testing.T) {
	s, _ := newStack(t)
	err := s.Attach(sock.Handle{}, func(interface{}) {}, nil)
	assert.Equal(t, sock.InvalidParameter, sock.CodeOf(err))
}
