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

	"buf.build/go/runmedian/internal/scan"
)

// EventType is the kind of an [Event].
type EventType uint8

// These have the same values as the corresponding [scan.Kind]s.
const (
	NewValue      EventType = iota // A value was read.
	ComputeMedian                  // A median was requested.
	ResetSequence                  // A reset was requested.
)

// String implements [fmt.Stringer].
func (t EventType) String() string {
	switch t {
	case NewValue:
		return "NewValue"
	case ComputeMedian:
		return "ComputeMedian"
	case ResetSequence:
		return "ResetSequence"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Event is a single token read by [Parse].
type Event[T Integer] struct {
	Type  EventType
	Value T // Zero unless Type is NewValue.
}

// Listener receives the events produced by [Parse].
type Listener[T Integer] interface {
	// Accept handles a single event. Returning false stops the parse
	// immediately, without reading any further input.
	Accept(Event[T]) bool
}

// ListenerFunc adapts a function into a [Listener].
type ListenerFunc[T Integer] func(Event[T]) bool

// Accept implements [Listener].
func (f ListenerFunc[T]) Accept(e Event[T]) bool {
	return f(e)
}

func eventType(k scan.Kind) EventType {
	return EventType(k)
}
