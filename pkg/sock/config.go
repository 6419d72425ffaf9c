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
	"time"

	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/private/util"
)

// DefaultPollInterval is the receive timeout applied to every engine
// connection at open time. The engine's receive primitive natively blocks;
// capping each wait at this interval is what turns the blocking engine into
// a bounded-wait, polling-style API. Lowering it reduces the latency of
// detecting WouldBlock at the cost of more wakeups per idle socket.
const DefaultPollInterval = time.Millisecond

// Config configures a socket stack.
type Config struct {
	// PollInterval overrides DefaultPollInterval, see there for the
	// tradeoff.
	PollInterval util.DurWrap `toml:"poll_interval,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values.
func (cfg *Config) InitDefaults() {
	if cfg.PollInterval.Duration == 0 {
		cfg.PollInterval.Duration = DefaultPollInterval
	}
}

// Validate validates that the config is valid.
func (cfg *Config) Validate() error {
	if cfg.PollInterval.Duration < 0 {
		return serrors.New("negative poll_interval",
			"value", cfg.PollInterval.Duration)
	}
	return nil
}
