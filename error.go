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

// ParseError is an error returned by [Parse] for malformed input.
//
// It unwraps to one of the sentinel errors below, so it can be inspected with
// [errors.Is].
type ParseError = scan.Error

// ErrorCode is one of the possible types of errors in [ParseError].
type ErrorCode = scan.ErrorCode

const (
	ErrorUnexpectedSeparator = scan.ErrorUnexpectedSeparator
	ErrorMissingSeparator    = scan.ErrorMissingSeparator
	ErrorUnexpectedCharacter = scan.ErrorUnexpectedCharacter
	ErrorNotANumber          = scan.ErrorNotANumber
)

var (
	// ErrUnexpectedSeparator is a space at the start of the line, or right
	// after another space.
	ErrUnexpectedSeparator = scan.ErrUnexpectedSeparator
	// ErrMissingSeparator is a token that directly follows another token.
	ErrMissingSeparator = scan.ErrMissingSeparator
	// ErrUnexpectedCharacter is a byte that cannot start any token.
	ErrUnexpectedCharacter = scan.ErrUnexpectedCharacter
	// ErrNotANumber is a literal that does not fit in the element type.
	ErrNotANumber = scan.ErrNotANumber

	// ErrInvalidMarker is returned by [Parse] when the markers passed to
	// [WithMedianMarker] and [WithResetMarker] are the same, or clash with
	// digits, the separator or a line terminator.
	ErrInvalidMarker = scan.ErrInvalidMarker
)
