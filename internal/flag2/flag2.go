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

// Package flag2 contains helpers for reading flags registered by other
// packages, such as the testing package's -test.* flags.
package flag2

import "flag"

// Lookup looks up a flag by name of the given type.
//
// Panics if this flag is of the wrong type, or if the flag value is not a
// [flag.Getter].
func Lookup[T any](name string) T {
	return flag.Lookup(name).Value.(flag.Getter).Get().(T) //nolint:errcheck
}

// Parsed returns whether the named flag was explicitly set on the command
// line, as opposed to holding its default.
//
// Must be called after [flag.Parse].
func Parsed(name string) bool {
	var found bool
	flag.Visit(func(f *flag.Flag) {
		found = found || f.Name == name
	})
	return found
}
