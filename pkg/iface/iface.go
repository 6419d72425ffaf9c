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

// Package iface coordinates the one-shot bring-up and teardown of the
// network interface: it starts the protocol engine, attaches the device,
// drives dynamic address acquisition and owns the interface-wide MAC and IP
// state consumed by socket users.
package iface

import (
	"context"
	"net/netip"
	"sync"
	"time"

	"github.com/netsock/netsock/pkg/log"
	"github.com/netsock/netsock/pkg/metrics"
	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/sock"
	"github.com/netsock/netsock/pkg/sock/engine"
)

// State describes how far bring-up has progressed.
type State int

const (
	// Uninitialized means bring-up has not run, or teardown completed.
	Uninitialized State = iota
	// EngineStarted means the engine's internal task is operational.
	EngineStarted
	// DeviceAttached means the device and its hooks are registered.
	DeviceAttached
	// AddressAcquiring means acquisition was started and bring-up is
	// waiting for the interface to come up.
	AddressAcquiring
	// Up means the interface holds an address and sockets are usable.
	Up
	// Failed means the last bring-up expired its acquisition budget. The
	// interface is partially initialized; tearing it down or retrying is
	// the caller's decision.
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case EngineStarted:
		return "engine-started"
	case DeviceAttached:
		return "device-attached"
	case AddressAcquiring:
		return "address-acquiring"
	case Up:
		return "up"
	case Failed:
		return "failed"
	default:
		return "invalid"
	}
}

// Metrics instruments the coordinator. Uninitialized fields are no-ops.
type Metrics struct {
	// BringupAttempts counts bring-up invocations that did real work.
	BringupAttempts metrics.Counter
	// BringupFailures counts bring-ups that expired the acquisition budget.
	BringupFailures metrics.Counter
}

// Coordinator drives interface bring-up and teardown. It is the sole writer
// of the interface-wide MAC and IP state; everyone else observes it through
// the query methods.
type Coordinator struct {
	eng     engine.Engine
	dev     engine.Device
	cfg     Config
	metrics Metrics
	logger  log.Logger

	// Milestone signals, each released exactly once per milestone from
	// engine context. Buffered so that a release before the corresponding
	// wait, or after an expired wait, stays consumable by a later waiter.
	engineReady chan struct{}
	linkUp      chan struct{}
	netifUp     chan struct{}

	mu            sync.Mutex
	state         State
	engineStarted bool
	attached      bool
	mac           string
	ip            string
}

// NewCoordinator creates a coordinator for the given engine and device.
func NewCoordinator(eng engine.Engine, dev engine.Device, cfg Config, m Metrics) *Coordinator {
	cfg.InitDefaults()
	return &Coordinator{
		eng:         eng,
		dev:         dev,
		cfg:         cfg,
		metrics:     m,
		logger:      log.New("comp", "iface"),
		engineReady: make(chan struct{}, 1),
		linkUp:      make(chan struct{}, 1),
		netifUp:     make(chan struct{}, 1),
	}
}

// BringUp runs the bring-up sequence: start the engine task, attach the
// device, enable device interrupts, start address acquisition and wait for
// the interface to come up within the acquisition budget. If the interface
// is already up, BringUp is a no-op success. On an expired budget it fails
// with DhcpFailure and leaves the interface partially initialized; teardown
// is the caller's responsibility, and a later BringUp retries from where the
// sequence stopped.
func (c *Coordinator) BringUp(ctx context.Context) error {
	c.mu.Lock()
	if c.mac != "" {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	metrics.CounterInc(c.metrics.BringupAttempts)
	c.logger.Info("Bringing interface up", "acquire_timeout", c.cfg.AcquireTimeout)

	if err := c.startEngine(ctx); err != nil {
		return err
	}
	if err := c.attachDevice(); err != nil {
		return err
	}

	c.dev.EnableInterrupts()
	if st := c.eng.StartAcquisition(); st != engine.StatusOK {
		return serrors.Join(sock.CodeFromStatus(st), nil,
			"op", "start acquisition", "status", st)
	}
	c.setState(AddressAcquiring)

	timer := time.NewTimer(c.cfg.AcquireTimeout.Duration)
	defer timer.Stop()
	if err := c.await(ctx, timer, c.linkUp, "link up"); err != nil {
		return err
	}
	if err := c.await(ctx, timer, c.netifUp, "interface up"); err != nil {
		return err
	}

	c.mu.Lock()
	c.mac = c.dev.HardwareAddr().String()
	c.state = Up
	mac, ip := c.mac, c.ip
	c.mu.Unlock()

	c.logger.Info("Interface up", "mac", mac, "ip", ip)
	return nil
}

// Teardown releases the address lease, stops acquisition, disables device
// interrupts and clears the interface state. It must not run concurrently
// with in-flight socket operations; callers quiesce sockets first.
func (c *Coordinator) Teardown() {
	c.logger.Info("Tearing interface down")
	if st := c.eng.ReleaseLease(); st != engine.StatusOK {
		c.logger.Debug("Lease release failed", "status", st)
	}
	c.eng.StopAcquisition()
	c.dev.DisableInterrupts()

	c.mu.Lock()
	c.mac = ""
	c.ip = ""
	c.state = Uninitialized
	c.mu.Unlock()
}

// IPAddress returns the textual IP address, or false if bring-up has not
// completed.
func (c *Coordinator) IPAddress() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ip, c.ip != ""
}

// MACAddress returns the textual MAC address, or false if bring-up has not
// completed.
func (c *Coordinator) MACAddress() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mac, c.mac != ""
}

// State returns the current bring-up state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) startEngine(ctx context.Context) error {
	c.mu.Lock()
	started := c.engineStarted
	c.mu.Unlock()
	if started {
		return nil
	}
	if st := c.eng.Start(func() { signal(c.engineReady) }); st != engine.StatusOK {
		return serrors.Join(sock.CodeFromStatus(st), nil,
			"op", "engine start", "status", st)
	}
	select {
	case <-c.engineReady:
	case <-ctx.Done():
		return serrors.Wrap("waiting for engine readiness", ctx.Err())
	}
	c.mu.Lock()
	c.engineStarted = true
	c.state = EngineStarted
	c.mu.Unlock()
	c.logger.Debug("Engine started")
	return nil
}

func (c *Coordinator) attachDevice() error {
	c.mu.Lock()
	attached := c.attached
	c.mu.Unlock()
	if attached {
		return nil
	}
	hooks := engine.DeviceHooks{
		LinkState:      c.linkEvent,
		InterfaceState: c.netifEvent,
	}
	if st := c.eng.AttachDevice(c.dev, hooks); st != engine.StatusOK {
		return serrors.Join(sock.CodeFromStatus(st), nil,
			"op", "device attach", "status", st)
	}
	c.mu.Lock()
	c.attached = true
	c.state = DeviceAttached
	c.mu.Unlock()
	c.logger.Debug("Device attached")
	return nil
}

// await blocks until the milestone fires, the shared bring-up timer expires
// or the context is cancelled. An expiry is the address-acquisition failure
// condition.
func (c *Coordinator) await(ctx context.Context, timer *time.Timer,
	milestone <-chan struct{}, what string) error {

	select {
	case <-milestone:
		return nil
	case <-timer.C:
		metrics.CounterInc(c.metrics.BringupFailures)
		c.setState(Failed)
		return serrors.Wrap("acquisition budget expired", sock.DhcpFailure,
			"waiting_for", what, "timeout", c.cfg.AcquireTimeout)
	case <-ctx.Done():
		return serrors.Wrap("bring-up cancelled", ctx.Err(), "waiting_for", what)
	}
}

// linkEvent runs in engine context.
func (c *Coordinator) linkEvent(up bool) {
	if up {
		signal(c.linkUp)
	}
}

// netifEvent runs in engine context. The acquired address is recorded here,
// on the callback path, before the milestone is released.
func (c *Coordinator) netifEvent(up bool, addr netip.Addr) {
	if !up {
		return
	}
	c.mu.Lock()
	c.ip = addr.String()
	c.mu.Unlock()
	signal(c.netifUp)
}

func (c *Coordinator) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// signal releases a milestone without blocking; duplicate releases are
// dropped so a milestone is consumable at most once per occurrence.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
