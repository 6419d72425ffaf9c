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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netsock/netsock/pkg/sock"
	"github.com/netsock/netsock/pkg/sock/engine"
)

func TestCodeFromStatus(t *testing.T) {
	testCases := map[engine.Status]sock.Code{
		engine.StatusOK:         sock.Ok,
		engine.StatusMem:        sock.NoMemory,
		engine.StatusBuf:        sock.DeviceError,
		engine.StatusTimeout:    sock.WouldBlock,
		engine.StatusRoute:      sock.WouldBlock,
		engine.StatusInProgress: sock.WouldBlock,
		engine.StatusValue:      sock.InvalidParameter,
		engine.StatusWouldBlock: sock.WouldBlock,
		engine.StatusUse:        sock.InvalidParameter,
		engine.StatusAlready:    sock.InvalidParameter,
		engine.StatusIsConn:     sock.InvalidParameter,
		engine.StatusConn:       sock.NoConnection,
		engine.StatusInterface:  sock.DeviceError,
		engine.StatusAbort:      sock.DeviceError,
		engine.StatusReset:      sock.NoConnection,
		engine.StatusClosed:     sock.NoConnection,
		engine.StatusArg:        sock.InvalidParameter,
	}
	for st, want := range testCases {
		t.Run(st.String(), func(t *testing.T) {
			assert.Equal(t, want, sock.CodeFromStatus(st))
			// Same input, same output.
			assert.Equal(t, want, sock.CodeFromStatus(st))
		})
	}
}

func TestCodeFromStatusUnknown(t *testing.T) {
	for _, st := range []engine.Status{-17, -42, -128, 1} {
		t.Run(fmt.Sprint(st), func(t *testing.T) {
			assert.Equal(t, sock.DeviceError, sock.CodeFromStatus(st))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, sock.Ok, sock.CodeOf(nil))
	assert.Equal(t, sock.DeviceError, sock.CodeOf(fmt.Errorf("opaque")))
	assert.Equal(t, sock.WouldBlock, sock.CodeOf(sock.WouldBlock))
	assert.Equal(t, sock.WouldBlock, sock.CodeOf(fmt.Errorf("wrapped: %w", sock.WouldBlock)))
}

func TestCodeTimeout(t *testing.T) {
	assert.True(t, sock.WouldBlock.Timeout())
	for _, c := range []sock.Code{
		sock.Ok, sock.NoSocket, sock.NoMemory, sock.NoConnection,
		sock.InvalidParameter, sock.Unsupported, sock.DhcpFailure, sock.DeviceError,
	} {
		assert.False(t, c.Timeout(), c.String())
	}
}
