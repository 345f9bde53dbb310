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
	"fmt"
	"io"
	"strconv"
)

// Session is a [Listener] that drives a [Median] and writes every requested
// median to an [io.Writer].
//
// Medians are written in the shortest decimal form that round-trips, such as
// 3 or 2.5, or NaN if there were no values. A failed write stops the parse.
type Session[T Integer] struct {
	median *Median[T]
	out    io.Writer
	sep    string

	written int
	err     error
	scratch []byte
}

var _ Listener[int] = (*Session[int])(nil)

// NewSession returns a new session that writes to out.
func NewSession[T Integer](out io.Writer, opts ...SessionOption) *Session[T] {
	o := sessionOptions{separator: " "}
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}

	m := New[T]()
	m.Reserve(o.reserve)
	return &Session[T]{median: m, out: out, sep: o.separator}
}

// Accept implements [Listener].
func (s *Session[T]) Accept(e Event[T]) bool {
	if s.err != nil {
		return false
	}

	switch e.Type {
	case NewValue:
		s.median.Add(e.Value)
	case ComputeMedian:
		return s.write(s.median.Calculate())
	case ResetSequence:
		s.median.Reset()
	}
	return true
}

// Run parses r into this session.
//
// Returns the parse error, if any, and otherwise the first write error.
func (s *Session[T]) Run(r io.Reader, opts ...ParseOption) error {
	if err := Parse[T](r, s, opts...); err != nil {
		return err
	}
	return s.err
}

// Median returns the engine this session drives.
func (s *Session[T]) Median() *Median[T] {
	return s.median
}

// Written returns how many medians have been written so far.
func (s *Session[T]) Written() int {
	return s.written
}

// Err returns the write error that stopped this session, if any.
func (s *Session[T]) Err() error {
	return s.err
}

func (s *Session[T]) write(v float64) bool {
	s.scratch = s.scratch[:0]
	if s.written > 0 {
		s.scratch = append(s.scratch, s.sep...)
	}
	s.scratch = strconv.AppendFloat(s.scratch, v, 'f', -1, 64)

	if _, err := s.out.Write(s.scratch); err != nil {
		s.err = fmt.Errorf("runmedian: writing median: %w", err)
		return false
	}
	s.written++
	return true
}
