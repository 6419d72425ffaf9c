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
	"errors"
)

// Code is the stable external error taxonomy of the socket layer. Every
// operation reports failures as an error that wraps exactly one Code, so
// callers can classify results with errors.Is or CodeOf without depending on
// engine-internal status values.
type Code int

const (
	// Ok means success. It is never returned as an error; successful
	// operations return a nil error.
	Ok Code = 0
	// NoSocket means the arena is exhausted or engine object creation
	// failed. Recoverable: retry after closing sockets.
	NoSocket Code = -1
	// NoMemory means an engine allocation failure.
	NoMemory Code = -2
	// NoConnection means the remote end reset or closed the connection.
	NoConnection Code = -3
	// WouldBlock means the operation would block; the caller must retry.
	WouldBlock Code = -4
	// InvalidParameter means a malformed address, bad argument or invalid
	// socket state. Caller bug; never retried.
	InvalidParameter Code = -5
	// Unsupported means an unrecognized or unsupported socket option.
	Unsupported Code = -6
	// DhcpFailure means bring-up could not obtain an address within budget.
	DhcpFailure Code = -7
	// DeviceError means an unclassified engine failure.
	DeviceError Code = -8
)

// Error implements the error interface so that codes can be used as sentinel
// errors.
func (c Code) Error() string {
	return c.String()
}

func (c Code) String() string {
	switch c {
	case Ok:
		return "ok"
	case NoSocket:
		return "no socket available"
	case NoMemory:
		return "out of memory"
	case NoConnection:
		return "no connection"
	case WouldBlock:
		return "would block"
	case InvalidParameter:
		return "invalid parameter"
	case Unsupported:
		return "unsupported"
	case DhcpFailure:
		return "address acquisition failed"
	case DeviceError:
		return "device error"
	default:
		return "unknown code"
	}
}

// Timeout reports whether the code is transient, so that callers relying on
// the net-style Timeout classification retry on WouldBlock.
func (c Code) Timeout() bool {
	return c == WouldBlock
}

// CodeOf extracts the taxonomy code from an error returned by this package.
// A nil error yields Ok; an error with no embedded code yields DeviceError.
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return DeviceError
}
