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

import "github.com/ajroetker/go-sse2/lanes"

// Unpacks interleave one half of a with the same half of b, starting with a.
var (
	unpackLo16 = Pattern16{0, 16, 1, 17, 2, 18, 3, 19, 4, 20, 5, 21, 6, 22, 7, 23}
	unpackHi16 = Pattern16{8, 24, 9, 25, 10, 26, 11, 27, 12, 28, 13, 29, 14, 30, 15, 31}
	unpackLo8  = Pattern8{0, 8, 1, 9, 2, 10, 3, 11}
	unpackHi8  = Pattern8{4, 12, 5, 13, 6, 14, 7, 15}
	unpackLo4  = Pattern4{0, 4, 1, 5}
	unpackHi4  = Pattern4{2, 6, 3, 7}
	unpackLo2  = Pattern2{0, 2}
	unpackHi2  = Pattern2{1, 3}
)

// UnpackhiEpi8 interleaves bytes 8..15 of a and b.
func UnpackhiEpi8(a, b lanes.I8x16) lanes.I8x16 { return shuffle16(a, b, unpackHi16) }

// UnpackhiEpi16 interleaves 16-bit lanes 4..7 of a and b.
func UnpackhiEpi16(a, b lanes.I16x8) lanes.I16x8 { return shuffle8(a, b, unpackHi8) }

// UnpackhiEpi32 interleaves 32-bit lanes 2..3 of a and b.
func UnpackhiEpi32(a, b lanes.I32x4) lanes.I32x4 { return shuffle4(a, b, unpackHi4) }

// UnpackhiEpi64 returns (a[1], b[1]).
func UnpackhiEpi64(a, b lanes.I64x2) lanes.I64x2 { return shuffle2(a, b, unpackHi2) }

// UnpackloEpi8 interleaves bytes 0..7 of a and b.
func UnpackloEpi8(a, b lanes.I8x16) lanes.I8x16 { return shuffle16(a, b, unpackLo16) }

// UnpackloEpi16 interleaves 16-bit lanes 0..3 of a and b.
func UnpackloEpi16(a, b lanes.I16x8) lanes.I16x8 { return shuffle8(a, b, unpackLo8) }

// UnpackloEpi32 interleaves 32-bit lanes 0..1 of a and b.
func UnpackloEpi32(a, b lanes.I32x4) lanes.I32x4 { return shuffle4(a, b, unpackLo4) }

// UnpackloEpi64 returns (a[0], b[0]).
func UnpackloEpi64(a, b lanes.I64x2) lanes.I64x2 { return shuffle2(a, b, unpackLo2) }

// UnpackhiPd returns (a[1], b[1]).
func UnpackhiPd(a, b lanes.F64x2) lanes.F64x2 { return shuffle2(a, b, unpackHi2) }

// UnpackloPd returns (a[0], b[0]).
func UnpackloPd(a, b lanes.F64x2) lanes.F64x2 { return shuffle2(a, b, unpackLo2) }
