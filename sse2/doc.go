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

// Package sse2 exposes the SSE2 instruction catalogue as individually named,
// statically typed Go functions over the 128-bit vectors of package lanes.
//
// Names follow the Intel intrinsics with the _mm_ prefix dropped:
// _mm_adds_epu8 is AddsEpu8, _mm_shuffle_epi32 is ShuffleEpi32.
//
//	a := lanes.NewI32x4(5, 10, 15, 20)
//	r := sse2.ShuffleEpi32(a, 0b00_01_01_11) // [20 10 10 5]
//
// Every function is pure and total. Immediate operands that the hardware
// would encode in the instruction are ordinary runtime integers here:
// byte-shift counts outside 0..15 (negative ones included) shift everything
// out, shuffle controls only look at their low 8 bits, and lane selectors
// are masked to the lane count. No operation returns an error or panics on
// a selector value.
//
// Shuffles and byte shifts are always realised through a permutation whose
// source indices are fixed when the package is compiled; see byteshift.go
// and shuffle.go for how a runtime selector is reduced to one of them.
package sse2

//go:generate go run ../cmd/sse2gen -target byteshift -output byteshift.gen.go
