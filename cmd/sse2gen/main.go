// Copyright 2025 go-sse2 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sse2gen generates the mechanical parts of go-sse2.
//
// Usage:
//
//	sse2gen -target vectors -output lanes/vectors.gen.go
//	sse2gen -target byteshift -output sse2/byteshift.gen.go
//	sse2gen -target all -root .
//
// Or via go:generate from inside a package directory:
//
//	//go:generate go run ../cmd/sse2gen -target vectors -output vectors.gen.go
//
// The vectors target emits the ten 128-bit lane types with their
// constructors, accessors and bit reinterpretations. The byteshift target
// emits the 17 precomputed byte-shift patterns per direction.
//
// Set SSE2GEN_LOG=json for JSON log records.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	target  = flag.String("target", "all", "Target to generate ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
	output  = flag.String("output", "", "Output file for a single target (default: <root>/<target path>)")
	root    = flag.String("root", ".", "Repository root used to place outputs")
	verbose = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log := NewLogger(os.Stderr, *verbose)
	gen := &Generator{
		Target: *target,
		Output: *output,
		Root:   *root,
		Log:    log,
	}

	if err := gen.Run(); err != nil {
		log.Error("generation failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
