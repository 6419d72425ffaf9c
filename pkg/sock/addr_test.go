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

	"github.com/stretchr/testify/assert"

	"github.com/netsock/netsock/pkg/sock"
)

func TestParseAddr(t *testing.T) {
	testCases := map[string]struct {
		input     string
		want      sock.Addr
		assertErr assert.ErrorAssertionFunc
	}{
		"valid": {
			input:     "192.0.2.1:8080",
			want:      sock.Addr{Host: "192.0.2.1", Port: 8080},
			assertErr: assert.NoError,
		},
		"port zero": {
			input:     "10.0.0.1:0",
			want:      sock.Addr{Host: "10.0.0.1", Port: 0},
			assertErr: assert.NoError,
		},
		"hostname": {
			input:     "example.com:80",
			assertErr: assert.Error,
		},
		"missing port": {
			input:     "192.0.2.1",
			assertErr: assert.Error,
		},
		"empty": {
			input:     "",
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			a, err := sock.ParseAddr(tc.input)
			tc.assertErr(t, err)
			if err != nil {
				assert.Equal(t, sock.InvalidParameter, sock.CodeOf(err))
				return
			}
			assert.Equal(t, tc.want, a)
			assert.Equal(t, tc.input, a.String())
		})
	}
}
