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

// Package heap provides an array-backed binary heap over [buffer.Buffer],
// ordered by an injected predicate.
package heap

import (
	"cmp"
	"iter"

	"buf.build/go/runmedian/internal/buffer"
	"buf.build/go/runmedian/internal/debug"
)

// Less orders a max-heap: the root is the largest element.
func Less[T cmp.Ordered](a, b T) bool { return a < b }

// Greater orders a min-heap: the root is the smallest element.
func Greater[T cmp.Ordered](a, b T) bool { return a > b }

// Heap is a binary heap stored in a single [buffer.Buffer].
//
// cmp(a, b) reports whether a is dominated by b, i.e. whether b belongs closer
// to the root than a. It must be a strict ordering.
//
// Must be constructed with [New], [NewMax] or [NewMin]. Like the buffer it
// owns, a Heap must not be copied by value; use [Heap.Clone].
type Heap[T buffer.Integer] struct {
	buf buffer.Buffer[T]
	cmp func(a, b T) bool
}

// New returns an empty heap ordered by cmp.
func New[T buffer.Integer](cmp func(a, b T) bool) Heap[T] {
	return Heap[T]{cmp: cmp}
}

// NewMax returns an empty heap whose root is its maximum.
func NewMax[T buffer.Integer]() Heap[T] {
	return New(Less[T])
}

// NewMin returns an empty heap whose root is its minimum.
func NewMin[T buffer.Integer]() Heap[T] {
	return New(Greater[T])
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.buf.Len()
}

// Empty returns whether the heap has no elements.
func (h *Heap[T]) Empty() bool {
	return h.buf.Empty()
}

// Cap returns the number of elements the heap can hold without growing.
func (h *Heap[T]) Cap() int {
	return h.buf.Cap()
}

// Reserve pre-allocates space for n elements.
func (h *Heap[T]) Reserve(n int) {
	h.buf.Reserve(n)
}

// Clear removes all elements, keeping the allocation.
func (h *Heap[T]) Clear() {
	h.buf.Clear()
}

// Clone returns a copy of h with the same ordering. The copy's capacity is
// exactly its length.
func (h *Heap[T]) Clone() Heap[T] {
	return Heap[T]{buf: h.buf.Clone(), cmp: h.cmp}
}

// All returns an iterator over the heap's elements in array order, which is a
// level-order walk of the tree.
func (h *Heap[T]) All() iter.Seq[T] {
	return h.buf.All()
}

// Top returns the root element. The heap must not be empty.
func (h *Heap[T]) Top() T {
	if debug.Enabled {
		debug.Assert(!h.buf.Empty(), "Top() on empty heap")
	}
	return h.buf.Front()
}

// Insert adds v to the heap and sifts it up to its place.
func (h *Heap[T]) Insert(v T) {
	h.buf.Push(v)

	i := h.buf.Len() - 1
	for i > 0 && h.cmp(h.buf.Load(parent(i)), h.buf.Load(i)) {
		h.buf.Swap(i, parent(i))
		i = parent(i)
	}
}

// Pop removes the root element. The heap must not be empty.
func (h *Heap[T]) Pop() {
	if debug.Enabled {
		debug.Assert(!h.buf.Empty(), "Pop() on empty heap")
	}

	h.buf.Swap(0, h.buf.Len()-1)
	h.buf.PopLast()
	if !h.buf.Empty() {
		h.siftDown(0)
	}
}

// siftDown moves the element at i down until neither child dominates it.
func (h *Heap[T]) siftDown(i int) {
	n := h.buf.Len()
	for {
		l, r := left(i), right(i)
		top := i
		if l < n && h.cmp(h.buf.Load(top), h.buf.Load(l)) {
			top = l
		}
		if r < n && h.cmp(h.buf.Load(top), h.buf.Load(r)) {
			top = r
		}
		if top == i {
			return
		}

		h.buf.Swap(top, i)
		i = top
	}
}

// Verify checks the heap property over the whole array, and panics if it does
// not hold. Only does anything in debug mode.
func (h *Heap[T]) Verify() {
	if !debug.Enabled {
		return
	}
	for i := 1; i < h.buf.Len(); i++ {
		p := parent(i)
		debug.Assert(!h.cmp(h.buf.Load(p), h.buf.Load(i)),
			"heap property violated: %v at %d dominated by %v at %d: %v",
			h.buf.Load(p), p, h.buf.Load(i), i, &h.buf)
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
