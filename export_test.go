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

// Halves returns the sizes of the lower and upper halves of m.
func (m *Median[T]) Halves() (lower, upper int) {
	return m.lower.Len(), m.upper.Len()
}

// Tops returns the largest value of the lower half and the smallest value of
// the upper half. Each half must be non-empty.
func (m *Median[T]) Tops() (lower, upper T) {
	return m.lower.Top(), m.upper.Top()
}

// LowerTop returns the largest value of the lower half, which must be
// non-empty.
func (m *Median[T]) LowerTop() T {
	return m.lower.Top()
}

// Caps returns the capacities of the lower and upper halves of m.
func (m *Median[T]) Caps() (lower, upper int) {
	return m.lower.Cap(), m.upper.Cap()
}
