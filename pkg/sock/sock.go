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

// Package sock adapts an event-driven protocol engine into a synchronous,
// non-blocking, handle-based socket API.
//
// The stack multiplexes a fixed-capacity arena of socket contexts across two
// execution contexts: caller goroutines issuing operations, and the engine's
// event callbacks. Engine results are translated into the stable Code
// taxonomy before they reach callers. Operations may block for at most the
// configured poll interval; only Connect is deliberately synchronous.
//
// Operations on distinct sockets are safe to issue concurrently. Operations
// on the same socket must be serialized by the caller.
package sock

import (
	"github.com/netsock/netsock/pkg/log"
	"github.com/netsock/netsock/pkg/metrics"
	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/sock/engine"
)

// Stack is the socket layer over one protocol engine.
type Stack struct {
	eng     engine.Engine
	cfg     Config
	metrics Metrics
	arena   arena
	logger  log.Logger
}

// New creates a socket stack on top of the given engine.
func New(eng engine.Engine, cfg Config, m Metrics) *Stack {
	cfg.InitDefaults()
	return &Stack{
		eng:     eng,
		cfg:     cfg,
		metrics: m,
		logger:  log.New("comp", "sock"),
	}
}

// Open allocates a socket of the given transport kind. The underlying engine
// connection is registered with the stack's demultiplexing callback and put
// into bounded-wait mode, see DefaultPollInterval.
func (s *Stack) Open(p engine.Protocol) (Handle, error) {
	h, ok := s.arena.alloc()
	if !ok {
		metrics.CounterInc(s.metrics.OpenErrors)
		return Handle{}, serrors.WithCtx(NoSocket, "reason", "arena exhausted")
	}
	conn, st := s.eng.NewConn(p, s.connEvent)
	if st != engine.StatusOK || conn == nil {
		s.arena.release(h)
		metrics.CounterInc(s.metrics.OpenErrors)
		return Handle{}, serrors.Join(NoSocket, statusError(st), "proto", p)
	}
	conn.SetRecvTimeout(s.cfg.PollInterval.Duration)

	s.arena.mu.Lock()
	if sl, ok := s.arena.lookup(h); ok {
		sl.conn = conn
		sl.proto = p
	}
	s.arena.mu.Unlock()

	metrics.CounterInc(s.metrics.Opens)
	metrics.GaugeSet(s.metrics.SocketsInUse, float64(s.arena.inUseCount()))
	s.logger.Debug("Socket opened", "handle", h, "proto", p)
	return h, nil
}

// Close releases the engine connection and unconditionally frees the slot.
// Even if the engine reports a release failure the slot is reusable
// afterwards; resource hygiene takes precedence over surfacing a close-time
// error.
func (s *Stack) Close(h Handle) error {
	s.arena.mu.Lock()
	sl, ok := s.arena.lookup(h)
	if !ok {
		s.arena.mu.Unlock()
		return serrors.WithCtx(InvalidParameter, "handle", h)
	}
	conn, pending := sl.conn, sl.pending
	sl.pending = nil
	s.arena.mu.Unlock()

	if pending != nil {
		pending.Release()
	}
	st := conn.Close()
	s.arena.release(h)

	metrics.CounterInc(s.metrics.Closes)
	metrics.GaugeSet(s.metrics.SocketsInUse, float64(s.arena.inUseCount()))
	s.logger.Debug("Socket closed", "handle", h, "status", st)
	return statusError(st)
}

// Bind binds the socket to a local address.
func (s *Stack) Bind(h Handle, addr Addr) error {
	conn, err := s.conn(h)
	if err != nil {
		return err
	}
	ap, err := addr.resolve()
	if err != nil {
		return err
	}
	return s.opError(conn.Bind(ap))
}

// Listen switches the socket into listening mode with the given
// pending-connection queue depth.
func (s *Stack) Listen(h Handle, backlog int) error {
	conn, err := s.conn(h)
	if err != nil {
		return err
	}
	return s.opError(conn.Listen(backlog))
}

// Connect establishes a connection to the remote address. Connect is the one
// deliberately synchronous operation: the engine connection is forced into
// blocking mode for the duration of the call and restored to bounded-wait
// mode before returning, regardless of the outcome.
func (s *Stack) Connect(h Handle, addr Addr) error {
	conn, err := s.conn(h)
	if err != nil {
		return err
	}
	ap, err := addr.resolve()
	if err != nil {
		return err
	}
	conn.SetBlocking(true)
	st := conn.Connect(ap)
	conn.SetBlocking(false)
	return s.opError(st)
}

// Accept hands out one queued inbound connection of a listening socket as a
// new, independent socket. If the engine has nothing queued within the poll
// interval, Accept fails with WouldBlock and no arena slot stays consumed.
func (s *Stack) Accept(h Handle) (Handle, error) {
	conn, err := s.conn(h)
	if err != nil {
		return Handle{}, err
	}
	nh, ok := s.arena.alloc()
	if !ok {
		return Handle{}, serrors.WithCtx(NoSocket, "reason", "arena exhausted")
	}
	nc, st := conn.Accept()
	if st != engine.StatusOK || nc == nil {
		s.arena.release(nh)
		return Handle{}, s.opError(st)
	}
	nc.SetRecvTimeout(s.cfg.PollInterval.Duration)

	s.arena.mu.Lock()
	if sl, ok := s.arena.lookup(nh); ok {
		sl.conn = nc
		sl.proto = nc.Protocol()
	}
	s.arena.mu.Unlock()

	metrics.CounterInc(s.metrics.Accepts)
	metrics.GaugeSet(s.metrics.SocketsInUse, float64(s.arena.inUseCount()))
	s.logger.Debug("Connection accepted", "server", h, "handle", nh)
	return nh, nil
}

// Send writes the full buffer to the connection. The engine copies the data,
// so the caller keeps ownership of p. On success the full length is
// reported; when the engine is transiently unable to take the data, Send
// fails with WouldBlock instead of stalling.
func (s *Stack) Send(h Handle, p []byte) (int, error) {
	conn, err := s.conn(h)
	if err != nil {
		return 0, err
	}
	if st := conn.Write(p); st != engine.StatusOK {
		return 0, s.opError(st)
	}
	s.addBytes(h, 0, len(p))
	metrics.CounterAdd(s.metrics.BytesSent, float64(len(p)))
	return len(p), nil
}

// Recv copies inbound data into p. An inbound unit larger than p is drained
// across multiple calls: the socket holds on to the unit and an offset until
// every byte has been handed out, then releases it. A connection closed in
// an orderly fashion by the peer yields 0 bytes and a nil error, it is not
// an error condition.
func (s *Stack) Recv(h Handle, p []byte) (int, error) {
	s.arena.mu.Lock()
	sl, ok := s.arena.lookup(h)
	if !ok {
		s.arena.mu.Unlock()
		return 0, serrors.WithCtx(InvalidParameter, "handle", h)
	}
	conn, pending := sl.conn, sl.pending
	s.arena.mu.Unlock()

	if pending == nil {
		d, st := conn.Recv()
		if st != engine.StatusOK {
			if st == engine.StatusClosed {
				// Orderly end of stream.
				return 0, nil
			}
			return 0, s.opError(st)
		}
		s.arena.mu.Lock()
		sl.pending = d
		sl.offset = 0
		s.arena.mu.Unlock()
	}

	s.arena.mu.Lock()
	n := sl.pending.Read(p, sl.offset)
	sl.offset += n
	sl.bytesIn += uint64(n)
	var drained engine.Datagram
	if sl.offset >= sl.pending.Len() {
		drained = sl.pending
		sl.pending = nil
		sl.offset = 0
	}
	s.arena.mu.Unlock()

	if drained != nil {
		drained.Release()
	}
	metrics.CounterAdd(s.metrics.BytesReceived, float64(n))
	return n, nil
}

// SendTo sends one datagram to the given remote address. The engine wraps
// the payload transiently without copying.
func (s *Stack) SendTo(h Handle, addr Addr, p []byte) (int, error) {
	conn, err := s.conn(h)
	if err != nil {
		return 0, err
	}
	ap, err := addr.resolve()
	if err != nil {
		return 0, err
	}
	if st := conn.SendTo(ap, p); st != engine.StatusOK {
		return 0, s.opError(st)
	}
	s.addBytes(h, 0, len(p))
	metrics.CounterAdd(s.metrics.BytesSent, float64(len(p)))
	return len(p), nil
}

// RecvFrom receives one whole datagram, reporting the sender. Datagram
// receive never retains drain state across calls: excess bytes of a
// datagram larger than p are discarded.
func (s *Stack) RecvFrom(h Handle, p []byte) (int, Addr, error) {
	conn, err := s.conn(h)
	if err != nil {
		return 0, Addr{}, err
	}
	d, st := conn.Recv()
	if st != engine.StatusOK {
		return 0, Addr{}, s.opError(st)
	}
	n := d.Read(p, 0)
	from := AddrFrom(d.From())
	d.Release()
	s.addBytes(h, n, 0)
	metrics.CounterAdd(s.metrics.BytesReceived, float64(n))
	return n, from, nil
}

// Attach registers the state-change notification target of the socket,
// replacing any previous registration. The callback is invoked from engine
// context whenever the readiness of the underlying connection changes; it
// must not block and must not call back into the stack.
func (s *Stack) Attach(h Handle, cb func(interface{}), data interface{}) error {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	sl, ok := s.arena.lookup(h)
	if !ok {
		return serrors.WithCtx(InvalidParameter, "handle", h)
	}
	sl.cb = cb
	sl.ud = data
	return nil
}

// connEvent is the demultiplexing callback registered with every engine
// connection. It runs in engine context: the arena scan is bounded and the
// user callbacks are invoked outside the lock.
func (s *Stack) connEvent(c engine.Conn, ev engine.Event, n int) {
	for _, cb := range s.arena.demux(c) {
		cb()
	}
}

// conn resolves a handle to its engine connection.
func (s *Stack) conn(h Handle) (engine.Conn, error) {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	sl, ok := s.arena.lookup(h)
	if !ok || sl.conn == nil {
		return nil, serrors.WithCtx(InvalidParameter, "handle", h)
	}
	return sl.conn, nil
}

// opError translates an engine status, counting transient failures.
func (s *Stack) opError(st engine.Status) error {
	err := statusError(st)
	if CodeOf(err) == WouldBlock {
		metrics.CounterInc(s.metrics.WouldBlocks)
	}
	return err
}

func (s *Stack) addBytes(h Handle, in, out int) {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	if sl, ok := s.arena.lookup(h); ok {
		sl.bytesIn += uint64(in)
		sl.bytesOut += uint64(out)
	}
}

// InUse returns the number of occupied arena slots.
func (s *Stack) InUse() int {
	return s.arena.inUseCount()
}

// SocketInfo is a point-in-time snapshot of one open socket.
type SocketInfo struct {
	Handle   Handle
	Protocol engine.Protocol
	BytesIn  uint64
	BytesOut uint64
}

// Sockets snapshots all open sockets, for diagnostics.
func (s *Stack) Sockets() []SocketInfo {
	s.arena.mu.Lock()
	defer s.arena.mu.Unlock()
	var infos []SocketInfo
	for i := range s.arena.slots {
		sl := &s.arena.slots[i]
		if !sl.inUse {
			continue
		}
		infos = append(infos, SocketInfo{
			Handle:   Handle{idx: uint16(i), gen: sl.gen},
			Protocol: sl.proto,
			BytesIn:  sl.bytesIn,
			BytesOut: sl.bytesOut,
		})
	}
	return infos
}
