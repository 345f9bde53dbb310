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

// Package stats provides slow, obviously-correct median computations that
// the streaming engine is checked against.
package stats

import (
	"math"
	"slices"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Median returns the median of values by sorting a copy of them.
//
// Returns NaN for no values. For an even count, returns the mean of the two
// middle values, computed in float64 so that it cannot overflow.
func Median[T Number](values []T) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	values = slices.Clone(values)
	slices.Sort(values)

	mid := len(values) / 2
	if len(values)%2 != 0 {
		return float64(values[mid])
	}
	return (float64(values[mid-1]) + float64(values[mid])) / 2
}

// Select is like [Median], but partitions a copy of values around the middle
// with quickselect instead of fully sorting it.
func Select[T Number](values []T) float64 {
	switch len(values) {
	case 0:
		return math.NaN()
	case 1:
		return float64(values[0])
	}

	values = slices.Clone(values)
	mid := len(values) / 2
	hi := nth(values, mid)
	if len(values)%2 != 0 {
		return float64(hi)
	}

	// After partitioning, everything before mid is <= values[mid], so the
	// other middle value is the largest of them.
	lo := slices.Max(values[:mid])
	return (float64(lo) + float64(hi)) / 2
}

// nth partially sorts s so that s[n] is the element that would be there if s
// were sorted, and returns it.
func nth[T Number](s []T, n int) T {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case n < p:
			hi = p - 1
		case n > p:
			lo = p + 1
		default:
			return s[n]
		}
	}
	return s[n]
}

// partition is a Lomuto partition of s[lo:hi+1] around a median-of-three
// pivot; it returns the pivot's final index.
func partition[T Number](s []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if s[mid] < s[lo] {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if s[hi] < s[lo] {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if s[mid] < s[hi] {
		s[mid], s[hi] = s[hi], s[mid]
	}
	// s[hi] now holds the median of the three.

	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if s[j] < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}
