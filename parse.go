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
	"io"

	"buf.build/go/runmedian/internal/scan"
)

// Parse reads one line of tokens from r and reports each one to l, in order.
//
// Parsing stops successfully at the first '\n' or '\r', which is left unread,
// at the end of r, or as soon as l returns false. If r is an [io.ByteScanner],
// such as a [*bufio.Reader], nothing past that point is consumed.
//
// Returns a [*ParseError] for malformed input, [ErrInvalidMarker] for
// conflicting options, or the error returned by r.
func Parse[T Integer](r io.Reader, l Listener[T], opts ...ParseOption) error {
	o := scan.DefaultOptions()
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}

	return scan.Run(r, o, func(k scan.Kind, v T) bool {
		return l.Accept(Event[T]{Type: eventType(k), Value: v})
	})
}
