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

// Package engine defines the contract between the socket layer and the
// underlying protocol engine, an event-driven TCP/IP stack that runs in its
// own execution context.
//
// The engine owns address resolution, retransmission, congestion control and
// lease negotiation; the socket layer consumes it exclusively through the
// Conn and Datagram abstractions below. All callbacks declared in this
// package are invoked from engine context: they must not block, and anything
// they touch must be guarded with the same care as state shared with an
// interrupt handler.
package engine

import (
	"net"
	"net/netip"
	"time"
)

// Protocol selects the transport kind of a connection.
type Protocol uint8

const (
	// TCP is the stream transport.
	TCP Protocol = iota
	// UDP is the datagram transport.
	UDP
)

func (p Protocol) String() string {
	switch p {
	case TCP:
		return "tcp"
	case UDP:
		return "udp"
	default:
		return "unknown"
	}
}

// Status is the engine-internal result code. The zero value means success;
// all failures are negative, mirroring the convention of embedded protocol
// stacks. The socket layer never surfaces a Status to its callers directly,
// it translates through sock.CodeFromStatus.
type Status int8

const (
	// StatusOK means no error.
	StatusOK Status = 0
	// StatusMem means the engine ran out of memory.
	StatusMem Status = -1
	// StatusBuf means a buffer error.
	StatusBuf Status = -2
	// StatusTimeout means a bounded wait expired.
	StatusTimeout Status = -3
	// StatusRoute means no route to the destination.
	StatusRoute Status = -4
	// StatusInProgress means the operation was started but has not finished.
	StatusInProgress Status = -5
	// StatusValue means an illegal value was supplied.
	StatusValue Status = -6
	// StatusWouldBlock means the operation would block a non-blocking call.
	StatusWouldBlock Status = -7
	// StatusUse means the address is already in use.
	StatusUse Status = -8
	// StatusAlready means the connection is already established.
	StatusAlready Status = -9
	// StatusIsConn means the connection is already connected.
	StatusIsConn Status = -10
	// StatusConn means there is no connection.
	StatusConn Status = -11
	// StatusInterface means a low-level interface error.
	StatusInterface Status = -12
	// StatusAbort means the connection was aborted.
	StatusAbort Status = -13
	// StatusReset means the connection was reset by the peer.
	StatusReset Status = -14
	// StatusClosed means the connection was closed in an orderly fashion.
	StatusClosed Status = -15
	// StatusArg means an illegal argument was supplied.
	StatusArg Status = -16
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMem:
		return "out of memory"
	case StatusBuf:
		return "buffer error"
	case StatusTimeout:
		return "timeout"
	case StatusRoute:
		return "routing error"
	case StatusInProgress:
		return "in progress"
	case StatusValue:
		return "illegal value"
	case StatusWouldBlock:
		return "would block"
	case StatusUse:
		return "address in use"
	case StatusAlready:
		return "already connecting"
	case StatusIsConn:
		return "already connected"
	case StatusConn:
		return "not connected"
	case StatusInterface:
		return "interface error"
	case StatusAbort:
		return "connection aborted"
	case StatusReset:
		return "connection reset"
	case StatusClosed:
		return "connection closed"
	case StatusArg:
		return "illegal argument"
	default:
		return "unknown status"
	}
}

// Event describes a readiness change on a connection.
type Event uint8

const (
	// EventRecvPlus signals that inbound data became available.
	EventRecvPlus Event = iota
	// EventRecvMinus signals that inbound data was consumed.
	EventRecvMinus
	// EventSendPlus signals that outbound buffer space became available.
	EventSendPlus
	// EventSendMinus signals that outbound buffer space was consumed.
	EventSendMinus
	// EventError signals a fatal connection error.
	EventError
)

// ConnCallback is invoked by the engine whenever the readiness of a
// connection changes. It runs in engine context and must not block. n is the
// number of bytes associated with the event, if any.
type ConnCallback func(c Conn, ev Event, n int)

// Datagram is one inbound unit handed out by the engine: a stream segment or
// a whole datagram. The engine owns the backing memory; Release must be
// called exactly once, after which the datagram must not be used. A unit
// cannot be re-read by the engine once consumed, which is why the socket
// layer drains oversized units across calls itself.
type Datagram interface {
	// Len returns the total length of the unit in bytes.
	Len() int
	// Read copies up to len(p) bytes starting at offset off into p and
	// returns the number of bytes copied.
	Read(p []byte, off int) int
	// From returns the sender of the unit.
	From() netip.AddrPort
	// Release returns the backing memory to the engine.
	Release()
}

// Conn is an engine-level connection object. Calls may block the caller up
// to the configured receive timeout; they are not safe for concurrent use by
// multiple goroutines.
type Conn interface {
	// Protocol returns the transport kind the connection was created with.
	Protocol() Protocol
	// Bind binds the connection to the given local address.
	Bind(local netip.AddrPort) Status
	// Listen switches the connection into listening mode with the given
	// pending-connection queue depth.
	Listen(backlog int) Status
	// Connect establishes a connection to the given remote address. In
	// blocking mode it returns only once establishment succeeds or the
	// engine's own connection timeout expires.
	Connect(remote netip.AddrPort) Status
	// Accept hands over one queued inbound connection.
	Accept() (Conn, Status)
	// Write queues the full buffer for sending, copying it into engine
	// memory. The caller keeps ownership of p.
	Write(p []byte) Status
	// Recv returns the next inbound unit.
	Recv() (Datagram, Status)
	// SendTo sends one datagram to the given remote address. The engine
	// wraps p transiently without copying; p must not be modified until
	// SendTo returns.
	SendTo(remote netip.AddrPort, p []byte) Status
	// SetRecvTimeout bounds how long Recv and Accept wait for an inbound
	// unit before returning StatusTimeout.
	SetRecvTimeout(d time.Duration)
	// SetBlocking switches the connection between blocking and
	// non-blocking mode.
	SetBlocking(blocking bool)
	// SetKeepAlive enables or disables keep-alive probing. Only meaningful
	// for stream connections.
	SetKeepAlive(enabled bool)
	// SetKeepAliveIdle sets the idle time before the first keep-alive probe.
	SetKeepAliveIdle(d time.Duration)
	// SetKeepAliveInterval sets the interval between keep-alive probes.
	SetKeepAliveInterval(d time.Duration)
	// Close releases the connection object.
	Close() Status
}

// Device is the network device the engine drives.
type Device interface {
	// HardwareAddr returns the device's MAC address.
	HardwareAddr() net.HardwareAddr
	// EnableInterrupts starts event delivery from the device.
	EnableInterrupts()
	// DisableInterrupts stops event delivery from the device.
	DisableInterrupts()
}

// DeviceHooks are the interface-level notification callbacks registered at
// device attach time. Both run in engine context and must not block.
type DeviceHooks struct {
	// LinkState is invoked when the physical link changes state.
	LinkState func(up bool)
	// InterfaceState is invoked when the interface changes state. On the
	// transition to up, addr carries the acquired address.
	InterfaceState func(up bool, addr netip.Addr)
}

// Engine is the protocol engine itself.
type Engine interface {
	// Start brings up the engine's internal task. ready is invoked from
	// engine context once the task is operational; Start does not wait for
	// it.
	Start(ready func()) Status
	// AttachDevice attaches the network device and registers the
	// interface-level notification hooks.
	AttachDevice(dev Device, hooks DeviceHooks) Status
	// StartAcquisition starts dynamic address acquisition. Completion is
	// reported through the InterfaceState hook.
	StartAcquisition() Status
	// StopAcquisition stops dynamic address acquisition.
	StopAcquisition()
	// ReleaseLease releases the currently held address lease.
	ReleaseLease() Status
	// NewConn creates a connection object of the given transport kind. The
	// callback is registered for the lifetime of the connection and is
	// inherited by connections handed out by Accept.
	NewConn(p Protocol, cb ConnCallback) (Conn, Status)
}
