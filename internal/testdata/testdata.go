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

// Package testdata holds the session-script corpus shared by the tests and
// benchmarks of the root package.
//
// Each case is a YAML file under cases/. A case describes one line of input,
// either literally or generated from a seed, plus whatever it expects back.
// Every case is also checked against a slow reference median, so cases only
// need to spell out their output when the output itself is the point.
package testdata

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"buf.build/go/runmedian"
	"buf.build/go/runmedian/internal/debug"
	"buf.build/go/runmedian/internal/flag2"
	"buf.build/go/runmedian/internal/stats"
)

//go:embed cases
var cases embed.FS

// Harness is a generalization of [testing.TB] that also includes the
// [testing.T.Run] method. It must be generic because the signature of this
// function varies across [testing.T] and [testing.B].
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// TestCase is a single case from the corpus.
type TestCase struct {
	Name string `yaml:"-"`

	// The element type to instantiate the engine with. Defaults to int.
	Type string `yaml:"type"`

	// If set, run this test as a benchmark.
	Benchmark bool `yaml:"benchmark"`
	// Set for very large cases.
	Large bool `yaml:"large"`

	// The literal input, and how many times to repeat it.
	Input  string `yaml:"input"`
	Repeat int    `yaml:"repeat"`

	// Random tokens appended after the literal input.
	Random *Random `yaml:"random"`

	MedianMarker string `yaml:"median_marker"`
	ResetMarker  string `yaml:"reset_marker"`

	// The exact expected output, if it should be checked.
	Output *string `yaml:"output"`

	// A substring of the expected error, and for parse errors, its offset.
	Error  string `yaml:"error"`
	Offset *int   `yaml:"offset"`

	Specimen string `yaml:"-"`
}

// Random describes a randomly generated run of tokens.
type Random struct {
	Seed  uint64 `yaml:"seed"`
	Count int    `yaml:"count"` // Number of values.
	Max   uint64 `yaml:"max"`   // Largest value; defaults to 1000000.

	MedianEvery int `yaml:"median_every"` // Request a median after this many values.
	ResetEvery  int `yaml:"reset_every"`  // Request a reset after this many values.
}

// RunAll runs all of the test cases against the given harness.
func RunAll[T Harness[T]](t T, f func(T, *TestCase)) {
	t.Helper()

	err := fs.WalkDir(cases, "cases", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading test %q", path)

		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimPrefix(path, "cases/"), func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}

			data, err := fs.ReadFile(cases, path)
			require.NoError(t, err, "loading test %q", path)

			test := parseTestCase(t, path, data)
			if test != nil {
				f(t, test)
			}
		})

		return nil
	})
	require.NoError(t, err)
}

// Run executes a single test case, comparing a [runmedian.Session] against
// the reference median.
func (test *TestCase) Run(t *testing.T, verbose bool) {
	t.Helper()

	if debug.Enabled && test.Large && !flag2.Parsed("test.run") {
		t.Skipf("skipping large test because of -tags debug; set -test.run to run it anyways")
	}

	switch test.Type {
	case "", "int":
		run[int](t, test, verbose)
	case "int16":
		run[int16](t, test, verbose)
	case "int32":
		run[int32](t, test, verbose)
	case "int64":
		run[int64](t, test, verbose)
	case "uint":
		run[uint](t, test, verbose)
	case "uint16":
		run[uint16](t, test, verbose)
	case "uint32":
		run[uint32](t, test, verbose)
	case "uint64":
		run[uint64](t, test, verbose)
	default:
		t.Fatalf("unknown element type %q", test.Type)
	}
}

// Bench benchmarks a [runmedian.Session] on this test case.
func (test *TestCase) Bench(b *testing.B) {
	b.Helper()

	switch test.Type {
	case "", "int":
		bench[int](b, test)
	case "int16":
		bench[int16](b, test)
	case "int32":
		bench[int32](b, test)
	case "int64":
		bench[int64](b, test)
	case "uint":
		bench[uint](b, test)
	case "uint16":
		bench[uint16](b, test)
	case "uint32":
		bench[uint32](b, test)
	case "uint64":
		bench[uint64](b, test)
	default:
		b.Fatalf("unknown element type %q", test.Type)
	}
}

// Options returns the parse options this case asks for.
func (test *TestCase) Options() []runmedian.ParseOption {
	var opts []runmedian.ParseOption
	if test.MedianMarker != "" {
		opts = append(opts, runmedian.WithMedianMarker(test.MedianMarker[0]))
	}
	if test.ResetMarker != "" {
		opts = append(opts, runmedian.WithResetMarker(test.ResetMarker[0]))
	}
	return opts
}

func run[T runmedian.Integer](t *testing.T, test *TestCase, verbose bool) {
	t.Helper()
	defer debug.WithTesting(t)()

	out := new(strings.Builder)
	session := runmedian.NewSession[T](out)
	ref := new(reference[T])

	err := runmedian.Parse[T](
		strings.NewReader(test.Specimen),
		runmedian.ListenerFunc[T](func(e runmedian.Event[T]) bool {
			ref.Accept(e)
			return session.Accept(e)
		}),
		test.Options()...,
	)

	if verbose {
		t.Logf("output: %q, error: %v", out, err)
	}

	if test.Error == "" {
		require.NoError(t, err)
	} else {
		require.ErrorContains(t, err, test.Error)
		if test.Offset != nil {
			perr := new(runmedian.ParseError)
			require.ErrorAs(t, err, &perr)
			require.Equal(t, *test.Offset, perr.Offset())
		}
	}

	require.Equal(t, string(ref.out), out.String(), "output disagrees with the reference")
	if test.Output != nil {
		require.Equal(t, *test.Output, out.String())
	}
}

func bench[T runmedian.Integer](b *testing.B, test *TestCase) {
	b.Helper()

	opts := test.Options()
	b.ReportAllocs()
	b.SetBytes(int64(len(test.Specimen)))
	for range b.N {
		s := runmedian.NewSession[T](io.Discard)
		_ = s.Run(strings.NewReader(test.Specimen), opts...)
	}
}

// reference is a listener that recomputes every median from scratch.
type reference[T runmedian.Integer] struct {
	values []T
	out    []byte
	n      int
}

func (r *reference[T]) Accept(e runmedian.Event[T]) {
	switch e.Type {
	case runmedian.NewValue:
		r.values = append(r.values, e.Value)
	case runmedian.ComputeMedian:
		if r.n > 0 {
			r.out = append(r.out, ' ')
		}
		r.out = strconv.AppendFloat(r.out, stats.Median(r.values), 'f', -1, 64)
		r.n++
	case runmedian.ResetSequence:
		r.values = r.values[:0]
	}
}

// parseTestCase parses a single test case from the given data.
//
// This will call t.FailNow() if testing fails.
func parseTestCase(t testing.TB, path string, file []byte) *TestCase {
	t.Helper()
	defer debug.WithTesting(t)()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	test := new(TestCase)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	err := dec.Decode(&test)
	require.NoError(t, err, "loading test %q", path)

	_, isBench := t.(*testing.B)
	if isBench && !test.Benchmark {
		t.SkipNow()
	}

	test.Name = strings.TrimPrefix(path, "cases/")
	require.LessOrEqual(t, len(test.MedianMarker), 1, "median marker in %q", path)
	require.LessOrEqual(t, len(test.ResetMarker), 1, "reset marker in %q", path)

	var b strings.Builder
	for i := range max(test.Repeat, 1) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(test.Input)
	}

	if r := test.Random; r != nil {
		require.Positive(t, r.Count, "random.count in %q", path)
		test.generate(&b, r)
	}

	test.Specimen = b.String()
	return test
}

// generate appends r's tokens to b.
func (test *TestCase) generate(b *strings.Builder, r *Random) {
	median, reset := byte('m'), byte('q')
	if test.MedianMarker != "" {
		median = test.MedianMarker[0]
	}
	if test.ResetMarker != "" {
		reset = test.ResetMarker[0]
	}

	limit := r.Max
	if limit == 0 {
		limit = 1_000_000
	}

	token := func(s []byte) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.Write(s)
	}

	rng := rand.New(rand.NewPCG(r.Seed, uint64(r.Count)))
	var scratch []byte
	for i := 1; i <= r.Count; i++ {
		scratch = strconv.AppendUint(scratch[:0], 1+rng.Uint64N(limit), 10)
		token(scratch)

		if r.MedianEvery > 0 && i%r.MedianEvery == 0 {
			token([]byte{median})
		}
		if r.ResetEvery > 0 && i%r.ResetEvery == 0 {
			token([]byte{reset})
		}
	}
}
