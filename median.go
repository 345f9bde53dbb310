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

package runmedian

import (
	"math"

	"buf.build/go/runmedian/internal/buffer"
	"buf.build/go/runmedian/internal/debug"
	"buf.build/go/runmedian/internal/heap"
)

// Integer is the set of element types a [Median] can be instantiated with.
type Integer = buffer.Integer

// Median is a running median over values of type T.
//
// Medians are reported as float64, so for int64, uint64, int and uint values
// beyond 2^53 they are rounded to the nearest representable float64.
//
// Must be constructed with [New]. A Median must not be copied by value; use
// [Median.Clone].
type Median[T Integer] struct {
	lower heap.Heap[T] // The smaller half; its top is its maximum.
	upper heap.Heap[T] // The larger half; its top is its minimum.
}

// New returns an empty running median.
func New[T Integer]() *Median[T] {
	return &Median[T]{
		lower: heap.NewMax[T](),
		upper: heap.NewMin[T](),
	}
}

// Add adds a value.
//
// A value equal to the largest value of the lower half goes to the upper half.
func (m *Median[T]) Add(v T) {
	if m.lower.Empty() || v < m.lower.Top() {
		m.lower.Insert(v)
	} else {
		m.upper.Insert(v)
	}
	m.balance()
}

// balance restores |lower - upper| <= 1 after a single insertion.
func (m *Median[T]) balance() {
	switch d := m.lower.Len() - m.upper.Len(); d {
	case 2:
		debug.Log(nil, "balance", "lower -> upper: %v", m.lower.Top())
		m.upper.Insert(m.lower.Top())
		m.lower.Pop()
	case -2:
		debug.Log(nil, "balance", "upper -> lower: %v", m.upper.Top())
		m.lower.Insert(m.upper.Top())
		m.upper.Pop()
	default:
		debug.Assert(d >= -1 && d <= 1, "halves out of balance: %d vs %d", m.lower.Len(), m.upper.Len())
	}
}

// Calculate returns the median of the values added since the last reset.
//
// For an even count this is the mean of the two middle values, computed in
// float64. Either way, a median beyond 2^53 in magnitude is rounded. Returns
// NaN if there are no values.
func (m *Median[T]) Calculate() float64 {
	lower, upper := m.lower.Len(), m.upper.Len()
	switch {
	case lower == 0 && upper == 0:
		return math.NaN()
	case lower == upper:
		return (float64(m.lower.Top()) + float64(m.upper.Top())) / 2
	case lower > upper:
		return float64(m.lower.Top())
	default:
		return float64(m.upper.Top())
	}
}

// Reset discards every value, but keeps the memory allocated for them.
func (m *Median[T]) Reset() {
	m.lower.Clear()
	m.upper.Clear()
}

// Reserve pre-allocates space for about n values.
func (m *Median[T]) Reserve(n int) {
	m.lower.Reserve(n / 2)
	m.upper.Reserve(n / 2)
}

// Len returns the number of values added since the last reset.
func (m *Median[T]) Len() int {
	return m.lower.Len() + m.upper.Len()
}

// Clone returns an independent copy of m, allocated only as large as it needs
// to be.
func (m *Median[T]) Clone() *Median[T] {
	return &Median[T]{
		lower: m.lower.Clone(),
		upper: m.upper.Clone(),
	}
}
