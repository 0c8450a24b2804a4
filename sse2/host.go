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

package sse2

import (
	"os"
	"strconv"

	"golang.org/x/sys/cpu"
)

// Level describes the 128-bit SIMD support of the host CPU.
//
// It is informational only. Every function in this package runs the same
// portable Go code regardless of the level.
type Level int

const (
	// LevelScalar means no 128-bit SIMD unit was detected, or detection was
	// disabled through SSE2_NO_SIMD.
	LevelScalar Level = iota

	// LevelSSE2 means the host implements SSE2 (every amd64 CPU).
	LevelSSE2

	// LevelNEON means the host implements ARM Advanced SIMD.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var hostLevel = detectHost()

// HostLevel returns the detected SIMD level of the host.
func HostLevel() Level {
	return hostLevel
}

// HostName returns HostLevel().String().
func HostName() string {
	return hostLevel.String()
}

// NoSimdEnv reports whether SSE2_NO_SIMD is set to a true value. Any
// non-empty value that does not parse as a bool counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("SSE2_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func detectHost() Level {
	if NoSimdEnv() {
		return LevelScalar
	}
	switch {
	case cpu.X86.HasSSE2:
		return LevelSSE2
	case cpu.ARM64.HasASIMD:
		return LevelNEON
	default:
		return LevelScalar
	}
}
