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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaCapacity(t *testing.T) {
	var a arena
	handles := make([]Handle, 0, NumSockets)
	for i := 0; i < NumSockets; i++ {
		h, ok := a.alloc()
		require.True(t, ok, "slot %d", i)
		handles = append(handles, h)
	}
	assert.Equal(t, NumSockets, a.inUseCount())

	_, ok := a.alloc()
	assert.False(t, ok, "alloc beyond capacity must fail")
	assert.Equal(t, NumSockets, a.inUseCount(), "failed alloc must not consume a slot")

	a.release(handles[7])
	assert.Equal(t, NumSockets-1, a.inUseCount())
	h, ok := a.alloc()
	require.True(t, ok, "released slot must be reusable")
	assert.Equal(t, NumSockets, a.inUseCount())

	a.mu.Lock()
	_, found := a.lookup(h)
	a.mu.Unlock()
	assert.True(t, found)
}

func TestArenaStaleHandle(t *testing.T) {
	var a arena
	h1, ok := a.alloc()
	require.True(t, ok)
	a.release(h1)

	h2, ok := a.alloc()
	require.True(t, ok)

	a.mu.Lock()
	defer a.mu.Unlock()
	_, found := a.lookup(h1)
	assert.False(t, found, "handle from a previous generation must not resolve")
	_, found = a.lookup(h2)
	assert.True(t, found)
}

func TestArenaReleaseIsIdempotent(t *testing.T) {
	var a arena
	h, ok := a.alloc()
	require.True(t, ok)
	a.release(h)
	a.release(h)
	assert.Equal(t, 0, a.inUseCount())

	// A double release must not free a slot reallocated in between.
	h2, ok := a.alloc()
	require.True(t, ok)
	a.release(h)
	assert.Equal(t, 1, a.inUseCount())
	a.mu.Lock()
	defer a.mu.Unlock()
	_, found := a.lookup(h2)
	assert.True(t, found)
}

func TestArenaAllocZeroesSlot(t *testing.T) {
	var a arena
	h, ok := a.alloc()
	require.True(t, ok)
	a.mu.Lock()
	sl, found := a.lookup(h)
	require.True(t, found)
	sl.offset = 99
	sl.bytesIn = 42
	a.mu.Unlock()
	a.release(h)

	h2, ok := a.alloc()
	require.True(t, ok)
	a.mu.Lock()
	defer a.mu.Unlock()
	sl, found = a.lookup(h2)
	require.True(t, found)
	assert.Zero(t, sl.offset)
	assert.Zero(t, sl.bytesIn)
	assert.Nil(t, sl.pending)
	assert.Nil(t, sl.conn)
}
