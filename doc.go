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

// Package runmedian computes the running median of a stream of integers.
//
// A [Median] splits everything it has seen since its last reset across two
// binary heaps: a max-heap holding the smaller half and a min-heap holding the
// larger half. Each [Median.Add] costs O(log n) and [Median.Calculate] is O(1).
//
// Values usually arrive as text. [Parse] reads a single line of tokens and
// reports each one to a [Listener], and a [Session] is the listener that feeds
// a Median and writes the requested medians out:
//
//	s := runmedian.NewSession[int](os.Stdout)
//	err := s.Run(os.Stdin)
//
// # Input Format
//
// A line consists of tokens separated by exactly one space:
//
//   - A decimal literal with no leading zero or sign, such as 42, adds a value.
//   - m prints the median of the values added so far, or NaN if there are none.
//   - q forgets every value added so far.
//
// The line ends at the first '\n' or '\r', or at the end of the input. The
// markers can be changed with [WithMedianMarker] and [WithResetMarker].
//
// Any other byte, a missing or doubled separator, or a literal that does not
// fit in the element type is a [*ParseError]. Tokens before the offending byte
// have already been delivered by then.
package runmedian
