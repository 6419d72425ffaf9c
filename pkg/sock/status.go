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
	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/sock/engine"
)

// CodeFromStatus translates an engine-internal status into the external
// taxonomy. The translation is total: unrecognized statuses, including ones a
// future engine might add, map to DeviceError.
func CodeFromStatus(st engine.Status) Code {
	switch st {
	case engine.StatusOK:
		return Ok
	case engine.StatusMem:
		return NoMemory
	case engine.StatusConn, engine.StatusReset, engine.StatusClosed:
		return NoConnection
	case engine.StatusTimeout, engine.StatusRoute,
		engine.StatusInProgress, engine.StatusWouldBlock:
		return WouldBlock
	case engine.StatusValue, engine.StatusUse,
		engine.StatusAlready, engine.StatusIsConn, engine.StatusArg:
		return InvalidParameter
	default:
		return DeviceError
	}
}

// statusError converts an engine status into an error carrying the
// translated code, or nil for StatusOK. The raw status is kept as error
// context for diagnostics.
func statusError(st engine.Status) error {
	if st == engine.StatusOK {
		return nil
	}
	return serrors.Join(CodeFromStatus(st), nil, "status", st)
}
