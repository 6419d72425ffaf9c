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
	"encoding/binary"
	"time"

	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/sock/engine"
)

// Option identifies a stack-specific socket option.
type Option int

const (
	// KeepAlive enables keep-alive probing. Value: 4 bytes, zero disables.
	KeepAlive Option = iota
	// KeepAliveIdle sets the idle time before the first keep-alive probe.
	// Value: 4 bytes, milliseconds.
	KeepAliveIdle
	// KeepAliveInterval sets the interval between keep-alive probes.
	// Value: 4 bytes, milliseconds.
	KeepAliveInterval
)

// OptionLen is the required length of every option value.
const OptionLen = 4

// SetOption passes a stack-specific hint to the engine connection. Only the
// keep-alive options are supported, only on stream sockets, and only with a
// value of exactly OptionLen bytes. Any other combination fails with
// Unsupported and leaves the socket unmodified; all checks happen before the
// engine is touched. level is accepted for interface compatibility and
// ignored, options are keyed by name alone.
func (s *Stack) SetOption(h Handle, level int, opt Option, value []byte) error {
	s.arena.mu.Lock()
	sl, ok := s.arena.lookup(h)
	if !ok || sl.conn == nil {
		s.arena.mu.Unlock()
		return serrors.WithCtx(InvalidParameter, "handle", h)
	}
	conn, proto := sl.conn, sl.proto
	s.arena.mu.Unlock()

	if len(value) != OptionLen || proto != engine.TCP {
		return serrors.WithCtx(Unsupported,
			"option", opt, "proto", proto, "len", len(value))
	}
	v := binary.NativeEndian.Uint32(value)

	switch opt {
	case KeepAlive:
		conn.SetKeepAlive(v != 0)
	case KeepAliveIdle:
		conn.SetKeepAliveIdle(time.Duration(v) * time.Millisecond)
	case KeepAliveInterval:
		conn.SetKeepAliveInterval(time.Duration(v) * time.Millisecond)
	default:
		return serrors.WithCtx(Unsupported, "option", opt)
	}
	return nil
}
