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

// Package scan implements the token grammar that drives the median engine.
//
// Input is a single line of tokens separated by exactly one space. A token is
// a decimal literal starting with 1-9, the median marker, or the reset marker.
// Scanning stops, without consuming it, at the first '\n' or '\r', or at the
// end of the input.
package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"buf.build/go/runmedian/internal/buffer"
	"buf.build/go/runmedian/internal/debug"
)

// Kind is the kind of token produced by the scanner.
type Kind uint8

const (
	NewValue      Kind = iota // A numeric literal.
	ComputeMedian             // The median marker.
	ResetSequence             // The reset marker.
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case NewValue:
		return "NewValue"
	case ComputeMedian:
		return "ComputeMedian"
	case ResetSequence:
		return "ResetSequence"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

const (
	DefaultMedianMarker = 'm'
	DefaultResetMarker  = 'q'

	separator = ' '

	// The longest decimal literal that can fit in a uint64. Anything longer
	// is known to overflow without parsing it.
	maxDigits = 20
)

// Options configures a scan. Use [DefaultOptions] as a starting point; the
// zero value is rejected by [Options.Validate].
type Options struct {
	MedianMarker byte
	ResetMarker  byte
}

// DefaultOptions returns the options for the standard grammar.
func DefaultOptions() Options {
	return Options{
		MedianMarker: DefaultMedianMarker,
		ResetMarker:  DefaultResetMarker,
	}
}

// Validate checks that the markers can be told apart from each other and from
// the rest of the grammar.
func (o Options) Validate() error {
	for _, m := range []byte{o.MedianMarker, o.ResetMarker} {
		if m == 0 || isDigit(m) || m == separator || isTerminator(m) {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidMarker, m)
		}
	}
	if o.MedianMarker == o.ResetMarker {
		return fmt.Errorf("%w: median and reset markers are both %q", ErrInvalidMarker, o.MedianMarker)
	}
	return nil
}

// Run scans one line of r, calling yield for every token.
//
// If yield returns false, Run returns nil immediately, without reading past
// the token it just reported. If r implements [io.ByteScanner] it is read
// directly, so whatever Run did not consume can still be read from it.
// Otherwise r is wrapped in a [bufio.Reader], and any read-ahead is lost.
//
// Returns an [*Error] on malformed input, or a wrapped error if r fails.
func Run[T buffer.Integer](r io.Reader, opts Options, yield func(Kind, T) bool) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	in, ok := r.(io.ByteScanner)
	if !ok {
		in = bufio.NewReader(r)
	}

	s := &scanner[T]{in: in, opts: opts}
	return s.run(yield)
}

// scanner is the per-call state of [Run]. Nothing survives between calls.
type scanner[T buffer.Integer] struct {
	in   io.ByteScanner
	opts Options

	offset       int  // Offset of the next unread byte.
	expectingSep bool // Whether the previous token is still unterminated.

	digits [maxDigits]byte
}

func (s *scanner[T]) run(yield func(Kind, T) bool) error {
	for {
		start := s.offset
		c, err := s.in.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return s.readError(err)
		}

		var (
			kind  Kind
			value T
		)
		switch {
		case isTerminator(c):
			_ = s.in.UnreadByte()
			return nil

		case s.expectingSep && c != separator:
			return s.fail(ErrorMissingSeparator, start)

		case c == s.opts.MedianMarker:
			s.offset++
			kind = ComputeMedian

		case c == s.opts.ResetMarker:
			s.offset++
			kind = ResetSequence

		case c >= '1' && c <= '9':
			s.offset++
			value, err = s.number(c, start)
			if err != nil {
				return err
			}
			kind = NewValue

		case c == separator:
			if !s.expectingSep {
				return s.fail(ErrorUnexpectedSeparator, start)
			}
			s.offset++
			s.expectingSep = false
			continue

		default:
			return s.fail(ErrorUnexpectedCharacter, start)
		}

		debug.Log([]any{"offset %d", start}, "token", "%v %v", kind, value)
		s.expectingSep = true
		if !yield(kind, value) {
			return nil
		}
	}
}

// number consumes the rest of a decimal literal whose first digit is first,
// and converts it to T.
func (s *scanner[T]) number(first byte, start int) (T, error) {
	s.digits[0] = first
	n := 1
	long := false
	for {
		c, err := s.in.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return 0, s.readError(err)
		}
		if !isDigit(c) {
			_ = s.in.UnreadByte()
			break
		}

		s.offset++
		if n == len(s.digits) {
			long = true
			continue
		}
		s.digits[n] = c
		n++
	}

	if long {
		return 0, s.fail(ErrorNotANumber, start)
	}
	u, err := strconv.ParseUint(string(s.digits[:n]), 10, 64)
	if err != nil {
		return 0, s.fail(ErrorNotANumber, start)
	}

	// Round-tripping through T catches both truncation and, for signed
	// types, wrapping into the negatives.
	v := T(u)
	if v < 0 || uint64(v) != u {
		return 0, s.fail(ErrorNotANumber, start)
	}
	return v, nil
}

func (s *scanner[T]) fail(code ErrorCode, offset int) error {
	debug.Log([]any{"offset %d", offset}, "fail", "%v", code)
	return &Error{code: code, offset: offset}
}

func (s *scanner[T]) readError(err error) error {
	return fmt.Errorf("runmedian: reading input at offset %d: %w", s.offset, err)
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isTerminator(c byte) bool { return c == '\n' || c == '\r' }
