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
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsock/netsock/pkg/sock"
)

func TestConfigDefaults(t *testing.T) {
	var cfg sock.Config
	cfg.InitDefaults()
	assert.Equal(t, sock.DefaultPollInterval, cfg.PollInterval.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestConfigSample(t *testing.T) {
	raw := []byte(`poll_interval = "5ms"`)
	var cfg sock.Config
	require.NoError(t, toml.Unmarshal(raw, &cfg))
	cfg.InitDefaults()
	assert.Equal(t, 5*time.Millisecond, cfg.PollInterval.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestConfigInvalid(t *testing.T) {
	var cfg sock.Config
	cfg.PollInterval.Duration = -time.Second
	assert.Error(t, cfg.Validate())
}
