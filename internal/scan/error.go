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

package scan

import (
	"errors"
	"fmt"
)

const (
	ErrorOk ErrorCode = iota
	ErrorUnexpectedSeparator
	ErrorMissingSeparator
	ErrorUnexpectedCharacter
	ErrorNotANumber
)

// Sentinel errors that an [Error] unwraps to.
var (
	ErrUnexpectedSeparator = errors.New("unexpected separator")
	ErrMissingSeparator    = errors.New("missing separator")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrNotANumber          = errors.New("not-a-number")

	// ErrInvalidMarker is returned when the configured markers collide with
	// each other or with the rest of the grammar.
	ErrInvalidMarker = errors.New("invalid marker")
)

var errs = [...]error{
	ErrorOk:                  nil,
	ErrorUnexpectedSeparator: ErrUnexpectedSeparator,
	ErrorMissingSeparator:    ErrMissingSeparator,
	ErrorUnexpectedCharacter: ErrUnexpectedCharacter,
	ErrorNotANumber:          ErrNotANumber,
}

// ErrorCode is one of the possible types of errors in [Error].
type ErrorCode int

// String implements [fmt.Stringer].
func (c ErrorCode) String() string {
	if c <= ErrorOk || int(c) >= len(errs) {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return errs[c].Error()
}

// Error is an error returned by the scanner. Every Error is fatal to the
// parse that produced it.
type Error struct {
	code   ErrorCode
	offset int
}

// Code returns what kind of error this is.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Offset returns the byte offset at which the error occurred.
func (e *Error) Offset() int {
	return e.offset
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *Error) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *Error) Error() string {
	return fmt.Sprintf("runmedian: parse error at offset %d: %v", e.offset, e.Unwrap())
}
