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

package sock

import (
	"fmt"
	"sync"

	"github.com/netsock/netsock/pkg/sock/engine"
)

// NumSockets is the fixed capacity of the socket arena. Exhaustion is a
// normal, recoverable condition reported as NoSocket.
const NumSockets = 32

// Handle is an opaque reference to one arena slot. Handles are generation
// checked: a handle that outlives its socket stops resolving instead of
// aliasing a reallocated slot.
type Handle struct {
	idx uint16
	gen uint32
}

func (h Handle) String() string {
	return fmt.Sprintf("sock %d#%d", h.idx, h.gen)
}

// slot is one socket context. The conn field is set right after allocation
// and stays set until close; pending holds a partially consumed inbound unit
// strictly between a receive that underfilled the caller's buffer and the
// call that drains the rest.
type slot struct {
	inUse   bool
	gen     uint32
	proto   engine.Protocol
	conn    engine.Conn
	pending engine.Datagram
	offset  int
	cb      func(interface{})
	ud      interface{}

	bytesIn  uint64
	bytesOut uint64
}

func (s *slot) clear() {
	*s = slot{gen: s.gen}
}

// arena is the fixed pool of socket contexts. It is shared between caller
// goroutines and the engine's event callbacks, so every access to the slots
// goes through mu. The mutex is only ever held for bounded sections (slot
// scans and field updates), never across an engine call that can block.
type arena struct {
	mu    sync.Mutex
	slots [NumSockets]slot
}

// alloc marks the first free slot as in use, zeroes its fields and returns
// its handle. The second return value is false if the pool is exhausted; in
// that case the pool is left untouched.
func (a *arena) alloc() (Handle, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.slots {
		if a.slots[i].inUse {
			continue
		}
		s := &a.slots[i]
		s.clear()
		s.gen++
		s.inUse = true
		return Handle{idx: uint16(i), gen: s.gen}, true
	}
	return Handle{}, false
}

// release unconditionally frees the slot. The caller is responsible for
// having released any engine connection or datagram the slot owned.
func (a *arena) release(h Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.lookup(h); ok {
		s.clear()
	}
}

// lookup resolves a handle to its slot. Callers must hold mu.
func (a *arena) lookup(h Handle) (*slot, bool) {
	if int(h.idx) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.idx]
	if !s.inUse || s.gen != h.gen {
		return nil, false
	}
	return s, true
}

// inUseCount returns the number of occupied slots.
func (a *arena) inUseCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for i := range a.slots {
		if a.slots[i].inUse {
			n++
		}
	}
	return n
}

// demux finds the callbacks registered on slots owning the given connection.
// It is called from engine context; the scan runs under mu, the callbacks
// are invoked after the lock is dropped.
func (a *arena) demux(c engine.Conn) []func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	var cbs []func()
	for i := range a.slots {
		s := &a.slots[i]
		if s.inUse && s.conn == c && s.cb != nil {
			cb, ud := s.cb, s.ud
			cbs = append(cbs, func() { cb(ud) })
		}
	}
	return cbs
}
