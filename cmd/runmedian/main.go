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

// runmedian reads a line of values and median requests from stdin, and writes
// the requested medians to stdout.
//
// Usage:
//
//	echo "3 5 m 8 m 6 m q 1000 m" | runmedian
//	4 5 5.5 1000
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"buf.build/go/runmedian"
)

var (
	elemType     = flag.String("type", "int", "element type: int, int16, int32, int64, uint, uint16, uint32 or uint64")
	reserve      = flag.Int("reserve", 0, "number of values to pre-allocate room for")
	medianMarker = flag.String("median-marker", "m", "token that requests a median")
	resetMarker  = flag.String("reset-marker", "q", "token that discards all values so far")
)

// config is everything main needs from the command line.
type config struct {
	elemType string
	reserve  int
	parse    []runmedian.ParseOption
}

func main() {
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := newConfig(*elemType, *reserve, *medianMarker, *resetMarker)
	if err != nil {
		return err
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(stderr, "enter values separated by spaces, %q for the median, %q to reset; end with a newline\n",
			*medianMarker, *resetMarker)
	}

	out := bufio.NewWriter(stdout)
	if err := process(cfg, bufio.NewReader(stdin), out); err != nil {
		_ = out.Flush()
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return out.Flush()
}

func newConfig(elemType string, reserve int, median, reset string) (config, error) {
	cfg := config{elemType: elemType, reserve: reserve}

	for _, m := range []struct {
		name, value string
		opt         func(byte) runmedian.ParseOption
	}{
		{"median-marker", median, runmedian.WithMedianMarker},
		{"reset-marker", reset, runmedian.WithResetMarker},
	} {
		if len(m.value) != 1 {
			return config{}, fmt.Errorf("-%s must be a single byte, got %q", m.name, m.value)
		}
		cfg.parse = append(cfg.parse, m.opt(m.value[0]))
	}

	if reserve < 0 {
		return config{}, errors.New("-reserve must not be negative")
	}
	return cfg, nil
}

// process dispatches on the element type.
func process(cfg config, in io.Reader, out io.Writer) error {
	switch cfg.elemType {
	case "int":
		return session[int](cfg, in, out)
	case "int16":
		return session[int16](cfg, in, out)
	case "int32":
		return session[int32](cfg, in, out)
	case "int64":
		return session[int64](cfg, in, out)
	case "uint":
		return session[uint](cfg, in, out)
	case "uint16":
		return session[uint16](cfg, in, out)
	case "uint32":
		return session[uint32](cfg, in, out)
	case "uint64":
		return session[uint64](cfg, in, out)
	default:
		return fmt.Errorf("unknown element type %q", cfg.elemType)
	}
}

func session[T runmedian.Integer](cfg config, in io.Reader, out io.Writer) error {
	s := runmedian.NewSession[T](out, runmedian.WithReserve(cfg.reserve))
	return s.Run(in, cfg.parse...)
}
