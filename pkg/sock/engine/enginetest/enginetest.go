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

// Package enginetest provides an in-memory protocol engine for tests and
// demos. Connections rendezvous through an internal registry, inbound units
// travel over per-connection queues honoring the receive timeout, and event
// callbacks fire from dedicated goroutines, approximating the engine-context
// discipline of a real stack. Faults can be scripted per connection and per
// operation.
package enginetest

import (
	"net"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"github.com/netsock/netsock/pkg/sock/engine"
)

// inboundDepth is the per-connection inbound queue capacity. A full queue
// rejects writers with StatusWouldBlock.
const inboundDepth = 64

// Engine is the in-memory engine. The zero value is not usable, construct it
// with New.
type Engine struct {
	mu        sync.Mutex
	started   bool
	hooks     engine.DeviceHooks
	acquiring bool

	addr         netip.Addr
	acquireDelay time.Duration
	holdAddress  bool
	failNewConn  engine.Status

	listeners map[netip.AddrPort]*Conn
	endpoints map[netip.AddrPort]*Conn
	conns     []*Conn
	nextPort  uint16

	stops       int
	releases    int
	outstanding atomic.Int64
}

// New creates an engine that acquires 192.0.2.10 immediately on request.
func New() *Engine {
	return &Engine{
		addr:      netip.MustParseAddr("192.0.2.10"),
		listeners: make(map[netip.AddrPort]*Conn),
		endpoints: make(map[netip.AddrPort]*Conn),
		nextPort:  40000,
	}
}

// SetAddress overrides the address handed out by acquisition.
func (e *Engine) SetAddress(addr netip.Addr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addr = addr
}

// SetAcquireDelay delays the interface-up notification after acquisition
// starts.
func (e *Engine) SetAcquireDelay(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.acquireDelay = d
}

// HoldAddress makes acquisition report the link but never the address,
// simulating an unresponsive lease server.
func (e *Engine) HoldAddress() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.holdAddress = true
}

// AllowAddress reverts HoldAddress for subsequent acquisition attempts.
func (e *Engine) AllowAddress() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.holdAddress = false
}

// FailNextNewConn makes the next NewConn call fail with the given status.
func (e *Engine) FailNextNewConn(st engine.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNewConn = st
}

// AcquisitionStops reports how often StopAcquisition was called.
func (e *Engine) AcquisitionStops() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stops
}

// LeaseReleases reports how often ReleaseLease was called.
func (e *Engine) LeaseReleases() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.releases
}

// OutstandingBuffers reports how many inbound units were handed out through
// Recv and not yet released.
func (e *Engine) OutstandingBuffers() int {
	return int(e.outstanding.Load())
}

// Start implements engine.Engine.
func (e *Engine) Start(ready func()) engine.Status {
	e.mu.Lock()
	e.started = true
	e.mu.Unlock()
	if ready != nil {
		go ready()
	}
	return engine.StatusOK
}

// AttachDevice implements engine.Engine.
func (e *Engine) AttachDevice(dev engine.Device, hooks engine.DeviceHooks) engine.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks = hooks
	return engine.StatusOK
}

// StartAcquisition implements engine.Engine. The link comes up right away;
// the address follows after the configured delay unless held back.
func (e *Engine) StartAcquisition() engine.Status {
	e.mu.Lock()
	e.acquiring = true
	hooks := e.hooks
	hold := e.holdAddress
	delay := e.acquireDelay
	addr := e.addr
	e.mu.Unlock()

	go func() {
		if hooks.LinkState != nil {
			hooks.LinkState(true)
		}
		if hold || hooks.InterfaceState == nil {
			return
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		hooks.InterfaceState(true, addr)
	}()
	return engine.StatusOK
}

// StopAcquisition implements engine.Engine.
func (e *Engine) StopAcquisition() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.acquiring = false
	e.stops++
}

// ReleaseLease implements engine.Engine.
func (e *Engine) ReleaseLease() engine.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releases++
	return engine.StatusOK
}

// NewConn implements engine.Engine.
func (e *Engine) NewConn(p engine.Protocol, cb engine.ConnCallback) (engine.Conn, engine.Status) {
	e.mu.Lock()
	if st := e.failNewConn; st != engine.StatusOK {
		e.failNewConn = engine.StatusOK
		e.mu.Unlock()
		return nil, st
	}
	e.mu.Unlock()
	c := e.newConn(p, cb)
	e.mu.Lock()
	e.conns = append(e.conns, c)
	e.mu.Unlock()
	return c, engine.StatusOK
}

// Conns returns the connections handed out through NewConn, in creation
// order. Connections created by Accept are not included.
func (e *Engine) Conns() []*Conn {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Conn(nil), e.conns...)
}

func (e *Engine) newConn(p engine.Protocol, cb engine.ConnCallback) *Conn {
	return &Conn{
		eng:      e,
		proto:    p,
		cb:       cb,
		inbound:  make(chan unit, inboundDepth),
		closed:   make(chan struct{}),
		failures: make(map[string]engine.Status),
	}
}

// ephemeral assigns a local address to a connection that never bound.
func (e *Engine) ephemeral() netip.AddrPort {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextPort++
	return netip.AddrPortFrom(e.addr, e.nextPort)
}

// notify fires a connection event from a fresh goroutine, standing in for
// engine context.
func notify(c *Conn, ev engine.Event, n int) {
	if c == nil || c.cb == nil {
		return
	}
	go c.cb(c, ev, n)
}

// unit is one queued inbound payload.
type unit struct {
	data []byte
	from netip.AddrPort
}

// Conn is the in-memory connection. It additionally exposes the knobs the
// socket layer turned, so tests can assert on them.
type Conn struct {
	eng   *Engine
	proto engine.Protocol
	cb    engine.ConnCallback

	inbound   chan unit
	acceptQ   chan *Conn
	closed    chan struct{}
	closeOnce sync.Once

	mu          sync.Mutex
	local       netip.AddrPort
	peer        *Conn
	peerDone    chan struct{}
	recvTimeout time.Duration
	blocking    bool
	connBlocked bool

	keepAlive bool
	keepIdle  time.Duration
	keepIntvl time.Duration

	failures map[string]engine.Status
}

// FailNext makes the next call of the named operation fail with the given
// status. Operation names are the lowercase method names: "bind", "listen",
// "connect", "accept", "write", "recv", "sendto", "close". A close failure
// still tears the connection down.
func (c *Conn) FailNext(op string, st engine.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[op] = st
}

func (c *Conn) takeFailure(op string) engine.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.failures[op]; ok {
		delete(c.failures, op)
		return st
	}
	return engine.StatusOK
}

// Protocol implements engine.Conn.
func (c *Conn) Protocol() engine.Protocol { return c.proto }

// Bind implements engine.Conn.
func (c *Conn) Bind(local netip.AddrPort) engine.Status {
	if st := c.takeFailure("bind"); st != engine.StatusOK {
		return st
	}
	c.eng.mu.Lock()
	if _, taken := c.eng.endpoints[local]; taken {
		c.eng.mu.Unlock()
		return engine.StatusUse
	}
	if _, taken := c.eng.listeners[local]; taken {
		c.eng.mu.Unlock()
		return engine.StatusUse
	}
	c.eng.endpoints[local] = c
	c.eng.mu.Unlock()

	c.mu.Lock()
	c.local = local
	c.mu.Unlock()
	return engine.StatusOK
}

// Listen implements engine.Conn.
func (c *Conn) Listen(backlog int) engine.Status {
	if st := c.takeFailure("listen"); st != engine.StatusOK {
		return st
	}
	c.mu.Lock()
	local := c.local
	c.mu.Unlock()
	if !local.IsValid() {
		return engine.StatusValue
	}
	if backlog < 1 {
		backlog = 1
	}

	c.eng.mu.Lock()
	defer c.eng.mu.Unlock()
	c.mu.Lock()
	c.acceptQ = make(chan *Conn, backlog)
	c.mu.Unlock()
	delete(c.eng.endpoints, local)
	c.eng.listeners[local] = c
	return engine.StatusOK
}

// Connect implements engine.Conn. Establishment is instantaneous: the target
// is either a listening connection or a registered Remote, anything else
// fails with StatusTimeout the way an unanswered handshake would.
func (c *Conn) Connect(remote netip.AddrPort) engine.Status {
	if st := c.takeFailure("connect"); st != engine.StatusOK {
		return st
	}
	c.mu.Lock()
	c.connBlocked = c.blocking
	local := c.local
	c.mu.Unlock()
	if !local.IsValid() {
		local = c.eng.ephemeral()
		c.mu.Lock()
		c.local = local
		c.mu.Unlock()
	}
	if c.proto == engine.UDP {
		// Datagram connect just fixes the default remote; nothing to do
		// beyond the local assignment above.
		return engine.StatusOK
	}

	c.eng.mu.Lock()
	if l, ok := c.eng.listeners[remote]; ok {
		child := c.eng.newConn(engine.TCP, l.cb)
		child.mu.Lock()
		child.local = remote
		child.mu.Unlock()
		c.eng.mu.Unlock()

		pair(c, child)
		select {
		case l.acceptQ <- child:
		default:
			return engine.StatusReset
		}
		notify(l, engine.EventRecvPlus, 0)
		return engine.StatusOK
	}
	if r, ok := c.eng.endpoints[remote]; ok && r.proto == engine.TCP {
		c.eng.mu.Unlock()
		pair(c, r)
		return engine.StatusOK
	}
	c.eng.mu.Unlock()
	return engine.StatusTimeout
}

// pair links two stream connections so that each sees the other's writes and
// its orderly close.
func pair(a, b *Conn) {
	a.mu.Lock()
	a.peer = b
	a.peerDone = b.closed
	a.mu.Unlock()
	b.mu.Lock()
	b.peer = a
	b.peerDone = a.closed
	b.mu.Unlock()
}

// Accept implements engine.Conn.
func (c *Conn) Accept() (engine.Conn, engine.Status) {
	if st := c.takeFailure("accept"); st != engine.StatusOK {
		return nil, st
	}
	c.mu.Lock()
	q := c.acceptQ
	blocking := c.blocking
	timeout := c.recvTimeout
	c.mu.Unlock()
	if q == nil {
		return nil, engine.StatusValue
	}

	if blocking {
		select {
		case child := <-q:
			return child, engine.StatusOK
		case <-c.closed:
			return nil, engine.StatusClosed
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case child := <-q:
		return child, engine.StatusOK
	case <-c.closed:
		return nil, engine.StatusClosed
	case <-timer.C:
		return nil, engine.StatusTimeout
	}
}

// Write implements engine.Conn. The payload is copied before queueing, the
// caller keeps ownership.
func (c *Conn) Write(p []byte) engine.Status {
	if st := c.takeFailure("write"); st != engine.StatusOK {
		return st
	}
	c.mu.Lock()
	peer := c.peer
	local := c.local
	c.mu.Unlock()
	if peer == nil {
		return engine.StatusConn
	}
	select {
	case <-peer.closed:
		return engine.StatusReset
	default:
	}

	u := unit{data: append([]byte(nil), p...), from: local}
	select {
	case peer.inbound <- u:
	default:
		return engine.StatusWouldBlock
	}
	notify(peer, engine.EventRecvPlus, len(p))
	return engine.StatusOK
}

// Recv implements engine.Conn. Queued units win over a peer close, so data
// sent before an orderly shutdown is still drained.
func (c *Conn) Recv() (engine.Datagram, engine.Status) {
	if st := c.takeFailure("recv"); st != engine.StatusOK {
		return nil, st
	}
	c.mu.Lock()
	blocking := c.blocking
	timeout := c.recvTimeout
	peerDone := c.peerDone
	c.mu.Unlock()

	select {
	case u := <-c.inbound:
		return c.handOut(u), engine.StatusOK
	default:
	}

	if blocking {
		select {
		case u := <-c.inbound:
			return c.handOut(u), engine.StatusOK
		case <-peerDone:
			return nil, engine.StatusClosed
		case <-c.closed:
			return nil, engine.StatusClosed
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case u := <-c.inbound:
		return c.handOut(u), engine.StatusOK
	case <-peerDone:
		return nil, engine.StatusClosed
	case <-c.closed:
		return nil, engine.StatusClosed
	case <-timer.C:
		return nil, engine.StatusTimeout
	}
}

func (c *Conn) handOut(u unit) engine.Datagram {
	c.eng.outstanding.Add(1)
	return &datagram{eng: c.eng, data: u.data, from: u.from}
}

// SendTo implements engine.Conn. The destination must be a bound datagram
// endpoint; an unknown destination is a routing failure.
func (c *Conn) SendTo(remote netip.AddrPort, p []byte) engine.Status {
	if st := c.takeFailure("sendto"); st != engine.StatusOK {
		return st
	}
	c.mu.Lock()
	local := c.local
	c.mu.Unlock()
	if !local.IsValid() {
		local = c.eng.ephemeral()
		c.mu.Lock()
		c.local = local
		c.mu.Unlock()
	}

	c.eng.mu.Lock()
	dst, ok := c.eng.endpoints[remote]
	c.eng.mu.Unlock()
	if !ok || dst.proto != engine.UDP {
		return engine.StatusRoute
	}

	u := unit{data: append([]byte(nil), p...), from: local}
	select {
	case dst.inbound <- u:
	default:
		return engine.StatusWouldBlock
	}
	notify(dst, engine.EventRecvPlus, len(p))
	return engine.StatusOK
}

// SetRecvTimeout implements engine.Conn.
func (c *Conn) SetRecvTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recvTimeout = d
}

// SetBlocking implements engine.Conn.
func (c *Conn) SetBlocking(blocking bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocking = blocking
}

// SetKeepAlive implements engine.Conn.
func (c *Conn) SetKeepAlive(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keepAlive = enabled
}

// SetKeepAliveIdle implements engine.Conn.
func (c *Conn) SetKeepAliveIdle(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keepIdle = d
}

// SetKeepAliveInterval implements engine.Conn.
func (c *Conn) SetKeepAliveInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keepIntvl = d
}

// Close implements engine.Conn. An injected close failure is reported but the
// connection is torn down regardless.
func (c *Conn) Close() engine.Status {
	st := c.takeFailure("close")
	c.closeOnce.Do(func() {
		close(c.closed)
		c.mu.Lock()
		local := c.local
		peer := c.peer
		c.mu.Unlock()
		c.eng.mu.Lock()
		if c.eng.endpoints[local] == c {
			delete(c.eng.endpoints, local)
		}
		if c.eng.listeners[local] == c {
			delete(c.eng.listeners, local)
		}
		c.eng.mu.Unlock()
		// Wake a peer polling for data so it observes the close promptly.
		notify(peer, engine.EventRecvPlus, 0)
	})
	return st
}

// RecvTimeout reports the configured receive timeout.
func (c *Conn) RecvTimeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recvTimeout
}

// Blocking reports whether the connection is in blocking mode.
func (c *Conn) Blocking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blocking
}

// ConnectWasBlocking reports whether the connection was in blocking mode when
// Connect last ran.
func (c *Conn) ConnectWasBlocking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connBlocked
}

// KeepAliveState reports the keep-alive knobs in their current state.
func (c *Conn) KeepAliveState() (enabled bool, idle, interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keepAlive, c.keepIdle, c.keepIntvl
}

// LocalAddr reports the bound or assigned local address.
func (c *Conn) LocalAddr() netip.AddrPort {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.local
}

// datagram is one handed-out inbound unit.
type datagram struct {
	eng      *Engine
	data     []byte
	from     netip.AddrPort
	released sync.Once
}

func (d *datagram) Len() int { return len(d.data) }

func (d *datagram) Read(p []byte, off int) int {
	if off >= len(d.data) {
		return 0
	}
	return copy(p, d.data[off:])
}

func (d *datagram) From() netip.AddrPort { return d.from }

func (d *datagram) Release() {
	d.released.Do(func() { d.eng.outstanding.Add(-1) })
}

// Remote is an engine-side test endpoint: a peer living entirely inside the
// engine that the socket layer can talk to. For TCP it answers one inbound
// connection, for UDP it is an addressable datagram endpoint.
type Remote struct {
	conn *Conn
}

// AddRemote registers a remote endpoint at the given address.
func (e *Engine) AddRemote(p engine.Protocol, addr netip.AddrPort) *Remote {
	c := e.newConn(p, nil)
	c.mu.Lock()
	c.local = addr
	c.mu.Unlock()
	e.mu.Lock()
	e.endpoints[addr] = c
	e.mu.Unlock()
	return &Remote{conn: c}
}

// Addr returns the remote's address.
func (r *Remote) Addr() netip.AddrPort { return r.conn.LocalAddr() }

// Send delivers a stream payload to the connected peer.
func (r *Remote) Send(p []byte) engine.Status { return r.conn.Write(p) }

// SendTo delivers a datagram to the given endpoint.
func (r *Remote) SendTo(dst netip.AddrPort, p []byte) engine.Status {
	return r.conn.SendTo(dst, p)
}

// Recv waits up to the given duration for a payload to arrive at the remote.
func (r *Remote) Recv(d time.Duration) ([]byte, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case u := <-r.conn.inbound:
		return u.data, true
	case <-timer.C:
		return nil, false
	}
}

// Close shuts the remote endpoint down, propagating an orderly close to a
// connected peer.
func (r *Remote) Close() { r.conn.Close() }

// Device is a simulated network device.
type Device struct {
	mac net.HardwareAddr

	mu      sync.Mutex
	enabled bool
}

// NewDevice creates a device with the given MAC address, or a fixed default
// when mac is empty.
func NewDevice(mac string) *Device {
	if mac == "" {
		mac = "02:00:5e:00:53:01"
	}
	hw, err := net.ParseMAC(mac)
	if err != nil {
		panic(err)
	}
	return &Device{mac: hw}
}

// HardwareAddr implements engine.Device.
func (d *Device) HardwareAddr() net.HardwareAddr { return d.mac }

// EnableInterrupts implements engine.Device.
func (d *Device) EnableInterrupts() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = true
}

// DisableInterrupts implements engine.Device.
func (d *Device) DisableInterrupts() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = false
}

// InterruptsEnabled reports whether event delivery is enabled.
func (d *Device) InterruptsEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}
