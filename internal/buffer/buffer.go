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

// Package buffer provides an owned, growable array of integers whose growth,
// copy and move behavior is spelled out rather than left to append.
package buffer

import (
	"fmt"
	"iter"
	"unsafe"

	"buf.build/go/runmedian/internal/debug"
)

// Integer is the closed set of element types a [Buffer] may hold.
//
// Byte-sized integers and uintptr are deliberately absent; instantiating a
// Buffer with any other type is a compile error.
type Integer interface {
	int | int16 | int32 | int64 | uint | uint16 | uint32 | uint64
}

// Buffer is a contiguous array of T with a logical length and a separately
// tracked capacity.
//
// The zero value is an empty buffer with no allocation. A Buffer owns its
// allocation exclusively: it must not be copied by value once it has been
// used. Use [Buffer.Clone] or [Buffer.Move] instead.
//
// Growth is exact: the first push allocates one element, and every push into a
// full buffer doubles the capacity.
type Buffer[T Integer] struct {
	data []T // len(data) is the capacity; data[:len] is live.
	len  int
}

// Of allocates a buffer holding exactly the given values.
func Of[T Integer](values ...T) Buffer[T] {
	var b Buffer[T]
	b.realloc(len(values))
	b.len = copy(b.data, values)
	return b
}

// Len returns the number of live elements.
func (b *Buffer[_]) Len() int {
	return b.len
}

// Cap returns the number of elements the current allocation can hold.
func (b *Buffer[_]) Cap() int {
	return len(b.data)
}

// Empty returns whether Len is zero.
func (b *Buffer[_]) Empty() bool {
	return b.len == 0
}

// Ptr returns a pointer to the start of the allocation, or nil if there is
// none.
func (b *Buffer[T]) Ptr() *T {
	if b.data == nil {
		return nil
	}
	return unsafe.SliceData(b.data)
}

// Load loads the value at the given index.
//
// n must be less than Len. This is only checked in debug mode; otherwise, an
// index between Len and Cap silently returns a stale value.
func (b *Buffer[T]) Load(n int) T {
	if debug.Enabled {
		debug.Assert(n >= 0 && n < b.len, "Load(%d) with Len() = %d", n, b.len)
	}
	return b.data[n]
}

// Store stores a value at the given index. Same preconditions as
// [Buffer.Load].
func (b *Buffer[T]) Store(n int, v T) {
	if debug.Enabled {
		debug.Assert(n >= 0 && n < b.len, "Store(%d) with Len() = %d", n, b.len)
	}
	b.data[n] = v
}

// Front returns the first element. The buffer must not be empty.
func (b *Buffer[T]) Front() T {
	return b.Load(0)
}

// Back returns the last element. The buffer must not be empty.
func (b *Buffer[T]) Back() T {
	return b.Load(b.len - 1)
}

// Swap exchanges the elements at i and j.
func (b *Buffer[T]) Swap(i, j int) {
	if debug.Enabled {
		debug.Assert(i >= 0 && i < b.len && j >= 0 && j < b.len,
			"Swap(%d, %d) with Len() = %d", i, j, b.len)
	}
	b.data[i], b.data[j] = b.data[j], b.data[i]
}

// Push appends v, growing the allocation if it is full.
func (b *Buffer[T]) Push(v T) {
	if b.len == len(b.data) {
		b.realloc(max(1, 2*len(b.data)))
	}
	b.data[b.len] = v
	b.len++
}

// PopLast discards the last element. The allocation is kept.
func (b *Buffer[T]) PopLast() {
	if debug.Enabled {
		debug.Assert(b.len > 0, "PopLast() on empty buffer")
	}
	b.len--
}

// Clear discards all elements but keeps the allocation for reuse.
func (b *Buffer[T]) Clear() {
	b.len = 0
}

// Reserve grows the allocation to exactly n elements, if it is currently
// smaller than that.
func (b *Buffer[T]) Reserve(n int) {
	if n > len(b.data) {
		b.realloc(n)
	}
}

// ShrinkToFit reallocates so that Cap equals Len. A buffer with no elements
// drops its allocation entirely.
func (b *Buffer[T]) ShrinkToFit() {
	b.realloc(b.len)
	debug.Assert(b.len == len(b.data), "ShrinkToFit() left Len() = %d, Cap() = %d", b.len, len(b.data))
}

// Clone returns a copy of the live elements in a fresh allocation.
//
// The capacity of the copy is its length, not the capacity of b.
func (b *Buffer[T]) Clone() Buffer[T] {
	return Of(b.Raw()...)
}

// Move transfers b's allocation to the returned buffer and leaves b empty,
// with no allocation.
func (b *Buffer[T]) Move() Buffer[T] {
	moved := *b
	*b = Buffer[T]{}
	return moved
}

// Raw returns the live elements as an ordinary slice.
//
// The returned slice aliases b and has no spare capacity. It must not be
// retained past the next call that mutates b.
func (b *Buffer[T]) Raw() []T {
	return b.data[:b.len:b.len]
}

// All returns an iterator over the live elements, in index order.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range b.len {
			if !yield(b.data[i]) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (b *Buffer[T]) Format(state fmt.State, v rune) {
	fmt.Fprintf(state, fmt.FormatString(state, v), b.Raw())
	if v == 'v' && state.Flag('+') {
		fmt.Fprintf(state, "[%d:%d]", b.len, len(b.data))
	}
}

// realloc moves the live elements into a new allocation of exactly n
// elements, truncating them if n < Len.
func (b *Buffer[T]) realloc(n int) {
	if n == len(b.data) {
		return
	}

	debug.Log(nil, "realloc", "%p[%d:%d] -> %d", b.Ptr(), b.len, len(b.data), n)
	if n == 0 {
		b.data = nil
		b.len = 0
		return
	}

	data := make([]T, n)
	b.len = copy(data, b.data[:b.len])
	b.data = data
}
