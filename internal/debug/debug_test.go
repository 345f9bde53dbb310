// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debug_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/runmedian/internal/debug"
	"buf.build/go/runmedian/internal/flag2"
)

// recorder is a [debug.Logger] that is not a [testing.TB].
type recorder struct{ lines []string }

func (r *recorder) Log(args ...any) { r.lines = append(r.lines, fmt.Sprint(args...)) }

func TestWithTesting(t *testing.T) {
	t.Parallel()

	if debug.Enabled && flag2.Lookup[bool]("runmedian.nocapture") {
		t.Skip("debug logs are not being captured")
	}

	r := new(recorder)
	restore := debug.WithTesting(r)
	debug.Log([]any{"n %d", 7}, "lookup", "found %q", "key")
	restore()

	if !debug.Enabled {
		assert.Empty(t, r.lines)
		return
	}
	require.Len(t, r.lines, 1)
	assert.Contains(t, r.lines[0], "debug_test.go:")
	assert.Contains(t, r.lines[0], ", n 7] lookup: found \"key\"")
}

func TestAssert(t *testing.T) {
	t.Parallel()
	defer debug.WithTesting(t)()

	assert.NotPanics(t, func() { debug.Assert(true, "never fires") })
	if !debug.Enabled {
		assert.NotPanics(t, func() { debug.Assert(false, "compiled out") })
		return
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if assert.True(t, ok, "%v", r) {
			assert.Contains(t, err.Error(), "internal assertion failed: want 1, got 2")
			assert.Contains(t, err.Error(), "TestAssert")
		}
	}()
	debug.Assert(false, "want %d, got %d", 1, 2)
}

func TestStack(t *testing.T) {
	t.Parallel()

	stack := debug.Stack(1)
	assert.Contains(t, stack, "debug.Stack()")
	assert.Contains(t, stack, "TestStack")
	assert.NotContains(t, stack, "tRunner")
}
