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

package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netsock/netsock/pkg/private/serrors"
)

var errSentinel = serrors.New("sentinel")

func TestNew(t *testing.T) {
	err := serrors.New("simple err", "key", "value", "code", 42)
	assert.Equal(t, "simple err {code=42; key=value}", err.Error())
	assert.True(t, errors.Is(err, err))
}

func TestNewUnique(t *testing.T) {
	err1 := serrors.New("msg")
	err2 := serrors.New("msg")
	assert.False(t, errors.Is(err1, err2), "distinct errors with the same message differ")
}

func TestWrap(t *testing.T) {
	cause := serrors.New("cause")
	err := serrors.Wrap("failed to do thing", cause, "thing", "x")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "failed to do thing")
	assert.Contains(t, err.Error(), "cause")
}

func TestJoin(t *testing.T) {
	cause := errors.New("low level failure")
	err := serrors.Join(errSentinel, cause, "op", "recv")
	assert.True(t, errors.Is(err, errSentinel))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "sentinel")
}

func TestJoinNilCause(t *testing.T) {
	err := serrors.Join(errSentinel, nil, "op", "send")
	assert.True(t, errors.Is(err, errSentinel))
}

func TestWithCtx(t *testing.T) {
	err := serrors.WithCtx(errSentinel, "key", "value")
	assert.True(t, errors.Is(err, errSentinel))
	assert.Equal(t, "sentinel {key=value}", err.Error())
}
