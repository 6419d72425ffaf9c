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
	"github.com/netsock/netsock/pkg/metrics"
)

// Metrics instruments the socket stack. Uninitialized fields are no-ops.
type Metrics struct {
	// Opens counts successful socket opens.
	Opens metrics.Counter
	// OpenErrors counts failed socket opens, including arena exhaustion.
	OpenErrors metrics.Counter
	// Closes counts socket closes.
	Closes metrics.Counter
	// Accepts counts connections handed out by Accept.
	Accepts metrics.Counter
	// WouldBlocks counts operations that reported WouldBlock.
	WouldBlocks metrics.Counter
	// BytesSent counts payload bytes accepted for sending.
	BytesSent metrics.Counter
	// BytesReceived counts payload bytes copied to callers.
	BytesReceived metrics.Counter
	// SocketsInUse tracks the number of occupied arena slots.
	SocketsInUse metrics.Gauge
}
