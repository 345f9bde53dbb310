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

// Package sync2 contains typed wrappers over package sync.
package sync2

import "sync"

// Pool is a [sync.Pool] of *T.
//
// Values are reset as they are returned rather than as they are handed out,
// so that whatever a value retains, such as a grown allocation, is kept
// across uses while its contents are not.
type Pool[T any] struct {
	New   func() *T // Constructs new values. If nil, new(T) is used.
	Reset func(*T)  // Called on each value before it is put back.

	impl sync.Pool
}

// Get returns a cached value of type T, and a function that must be called
// exactly once when the caller is done with it.
//
//	v, drop := pool.Get()
//	defer drop()
func (p *Pool[T]) Get() (v *T, drop func()) {
	v, _ = p.impl.Get().(*T)
	if v == nil {
		if p.New != nil {
			v = p.New()
		} else {
			v = new(T)
		}
	}

	return v, func() {
		if p.Reset != nil {
			p.Reset(v)
		}
		p.impl.Put(v)
	}
}
