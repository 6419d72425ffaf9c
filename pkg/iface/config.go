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

package iface

import (
	"time"

	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/private/util"
)

// DefaultAcquireTimeout is the default budget for dynamic address
// acquisition during bring-up.
const DefaultAcquireTimeout = 15 * time.Second

// Config configures interface bring-up.
type Config struct {
	// AcquireTimeout bounds how long bring-up waits for an address before
	// failing with DhcpFailure.
	AcquireTimeout util.DurWrap `toml:"acquire_timeout,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values.
func (cfg *Config) InitDefaults() {
	if cfg.AcquireTimeout.Duration == 0 {
		cfg.AcquireTimeout.Duration = DefaultAcquireTimeout
	}
}

// Validate validates that the config is valid.
func (cfg *Config) Validate() error {
	if cfg.AcquireTimeout.Duration < 0 {
		return serrors.New("negative acquire_timeout",
			"value", cfg.AcquireTimeout.Duration)
	}
	return nil
}
