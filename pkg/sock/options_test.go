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
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsock/netsock/pkg/private/xtest"
	"github.com/netsock/netsock/pkg/sock"
	"github.com/netsock/netsock/pkg/sock/engine"
)

func optionValue(v uint32) []byte {
	b := make([]byte, sock.OptionLen)
	binary.NativeEndian.PutUint32(b, v)
	return b
}

func TestSetOption(t *testing.T) {
	s, eng := newStack(t)
	eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	h, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(h)
	require.NoError(t, s.Connect(h, sock.Addr{Host: "203.0.113.5", Port: 7}))
	ec := eng.Conns()[0]

	require.NoError(t, s.SetOption(h, 0, sock.KeepAlive, optionValue(1)))
	require.NoError(t, s.SetOption(h, 0, sock.KeepAliveIdle, optionValue(2000)))
	require.NoError(t, s.SetOption(h, 0, sock.KeepAliveInterval, optionValue(500)))

	enabled, idle, interval := ec.KeepAliveState()
	assert.True(t, enabled)
	assert.Equal(t, 2*time.Second, idle)
	assert.Equal(t, 500*time.Millisecond, interval)

	require.NoError(t, s.SetOption(h, 0, sock.KeepAlive, optionValue(0)))
	enabled, _, _ = ec.KeepAliveState()
	assert.False(t, enabled)
}

func TestSetOptionUnsupported(t *testing.T) {
	s, eng := newStack(t)
	eng.AddRemote(engine.TCP, xtest.MustParseAddrPort("203.0.113.5:7"))

	tcp, err := s.Open(engine.TCP)
	require.NoError(t, err)
	defer s.Close(tcp)
	require.NoError(t, s.Connect(tcp, sock.Addr{Host: "203.0.113.5", Port: 7}))
	udp, err := s.Open(engine.UDP)
	require.NoError(t, err)
	defer s.Close(udp)

	testCases := map[string]struct {
		handle sock.Handle
		opt    sock.Option
		value  []byte
	}{
		"short value":    {handle: tcp, opt: sock.KeepAlive, value: []byte{1}},
		"long value":     {handle: tcp, opt: sock.KeepAlive, value: make([]byte, 8)},
		"nil value":      {handle: tcp, opt: sock.KeepAlive, value: nil},
		"datagram":       {handle: udp, opt: sock.KeepAlive, value: optionValue(1)},
		"unknown option": {handle: tcp, opt: sock.Option(99), value: optionValue(1)},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := s.SetOption(tc.handle, 0, tc.opt, tc.value)
			require.Error(t, err)
			assert.Equal(t, sock.Unsupported, sock.CodeOf(err))
		})
	}

	// None of the rejected calls may have touched the connection.
	enabled, idle, interval := eng.Conns()[0].KeepAliveState()
	assert.False(t, enabled)
	assert.Zero(t, idle)
	assert.Zero(t, interval)
}

func TestSetOptionInvalidHandle(t *testing.T) {
	s, _ := newStack(t)
	err := s.SetOption(sock.Handle{}, 0, sock.KeepAlive, optionValue(1))
	assert.Equal(t, sock.InvalidParameter, sock.CodeOf(err))
}
