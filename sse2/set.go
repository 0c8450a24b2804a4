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

// The Set forms take their arguments highest lane first, as the Intel
// intrinsics do. The Setr forms take them in lane order.

// SetEpi64x returns (e0, e1).
func SetEpi64x(e1, e0 int64) lanes.I64x2 {
	return lanes.NewI64x2(e0, e1)
}

// SetEpi32 returns (e0, e1, e2, e3).
func SetEpi32(e3, e2, e1, e0 int32) lanes.I32x4 {
	return lanes.NewI32x4(e0, e1, e2, e3)
}

// SetEpi16 returns (e0, ..., e7).
func SetEpi16(e7, e6, e5, e4, e3, e2, e1, e0 int16) lanes.I16x8 {
	return lanes.NewI16x8(e0, e1, e2, e3, e4, e5, e6, e7)
}

// SetEpi8 returns (e0, ..., e15).
func SetEpi8(e15, e14, e13, e12, e11, e10, e9, e8, e7, e6, e5, e4, e3, e2, e1, e0 int8) lanes.I8x16 {
	return lanes.NewI8x16(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15)
}

// SetrEpi32 returns (e0, e1, e2, e3).
func SetrEpi32(e0, e1, e2, e3 int32) lanes.I32x4 {
	return lanes.NewI32x4(e0, e1, e2, e3)
}

// SetrEpi16 returns (e0, ..., e7).
func SetrEpi16(e0, e1, e2, e3, e4, e5, e6, e7 int16) lanes.I16x8 {
	return lanes.NewI16x8(e0, e1, e2, e3, e4, e5, e6, e7)
}

// SetrEpi8 returns (e0, ..., e15).
func SetrEpi8(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15 int8) lanes.I8x16 {
	return lanes.NewI8x16(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15)
}

// Set1Epi64x broadcasts a to both lanes.
func Set1Epi64x(a int64) lanes.I64x2 { return lanes.SplatI64x2(a) }

// Set1Epi32 broadcasts a to all four lanes.
func Set1Epi32(a int32) lanes.I32x4 { return lanes.SplatI32x4(a) }

// Set1Epi16 broadcasts a to all eight lanes.
func Set1Epi16(a int16) lanes.I16x8 { return lanes.SplatI16x8(a) }

// Set1Epi8 broadcasts a to all sixteen lanes.
func Set1Epi8(a int8) lanes.I8x16 { return lanes.SplatI8x16(a) }

// SetzeroSi128 returns 128 zero bits.
func SetzeroSi128() lanes.V128 { return lanes.V128{} }

// SetPd returns (e0, e1).
func SetPd(e1, e0 float64) lanes.F64x2 { return lanes.NewF64x2(e0, e1) }

// Set1Pd broadcasts a to both lanes.
func Set1Pd(a float64) lanes.F64x2 { return lanes.SplatF64x2(a) }

// SetzeroPd returns (0, 0).
func SetzeroPd() lanes.F64x2 { return lanes.ZeroF64x2() }
