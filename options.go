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

import "buf.build/go/runmedian/internal/scan"

// ParseOption is a configuration setting for [Parse].
type ParseOption struct{ apply func(*scan.Options) }

// WithMedianMarker sets the byte that requests a median. The default is 'm'.
//
// The byte must not be NUL, a digit, a space, '\n' or '\r', or the reset
// marker; otherwise [Parse] returns [ErrInvalidMarker].
func WithMedianMarker(c byte) ParseOption {
	return ParseOption{func(o *scan.Options) { o.MedianMarker = c }}
}

// WithResetMarker sets the byte that requests a reset. The default is 'q'.
//
// The same restrictions as for [WithMedianMarker] apply.
func WithResetMarker(c byte) ParseOption {
	return ParseOption{func(o *scan.Options) { o.ResetMarker = c }}
}

// SessionOption is a configuration setting for [NewSession].
type SessionOption struct{ apply func(*sessionOptions) }

type sessionOptions struct {
	reserve   int
	separator string
}

// WithReserve pre-allocates room for n values in the session's [Median].
//
// This is only a hint; the engine grows past it as needed.
func WithReserve(n int) SessionOption {
	return SessionOption{func(o *sessionOptions) { o.reserve = max(n, 0) }}
}

// WithSeparator sets the string written between consecutive medians. The
// default is a single space.
func WithSeparator(sep string) SessionOption {
	return SessionOption{func(o *sessionOptions) { o.separator = sep }}
}
