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
	"math"

	"github.com/ajroetker/go-sse2/lanes"
)

// CvtEpi32Pd converts the low two 32-bit lanes of a to doubles.
func CvtEpi32Pd(a lanes.I32x4) lanes.F64x2 {
	return lanes.F64x2{float64(a[0]), float64(a[1])}
}

// CvtEpi32Ps converts all four 32-bit lanes of a to float32, rounding to
// nearest even.
func CvtEpi32Ps(a lanes.I32x4) lanes.F32x4 {
	var r lanes.F32x4
	lanes.Map(r[:], a[:], func(x int32) float32 { return float32(x) })
	return r
}

// CvtSi32Sd returns a with lane 0 replaced by float64(b).
func CvtSi32Sd(a lanes.F64x2, b int32) lanes.F64x2 {
	return a.Replace(0, float64(b))
}

// CvtSi64Sd returns a with lane 0 replaced by float64(b).
func CvtSi64Sd(a lanes.F64x2, b int64) lanes.F64x2 {
	return a.Replace(0, float64(b))
}

// CvtSi64xSd is CvtSi64Sd.
func CvtSi64xSd(a lanes.F64x2, b int64) lanes.F64x2 { return CvtSi64Sd(a, b) }

// CvtSi32Si128 returns (a, 0, 0, 0).
func CvtSi32Si128(a int32) lanes.I32x4 {
	return lanes.I32x4{a, 0, 0, 0}
}

// CvtSi64Si128 returns (a, 0).
func CvtSi64Si128(a int64) lanes.I64x2 {
	return lanes.I64x2{a, 0}
}

// CvtSi64xSi128 is CvtSi64Si128.
func CvtSi64xSi128(a int64) lanes.I64x2 { return CvtSi64Si128(a) }

// CvtSi128Si32 returns lane 0 of a.
func CvtSi128Si32(a lanes.I32x4) int32 { return a[0] }

// CvtSi128Si64 returns lane 0 of a.
func CvtSi128Si64(a lanes.I64x2) int64 { return a[0] }

// CvtSi128Si64x is CvtSi128Si64.
func CvtSi128Si64x(a lanes.I64x2) int64 { return CvtSi128Si64(a) }

// MoveEpi64 keeps the low 64-bit lane of a and zeroes the high one.
func MoveEpi64(a lanes.I64x2) lanes.I64x2 {
	return lanes.I64x2{a[0], 0}
}

// PacksEpi16 narrows the 16-bit lanes of a then b to signed bytes with
// saturation. Lanes of a fill bytes 0..7 and lanes of b fill 8..15.
func PacksEpi16(a, b lanes.I16x8) lanes.I8x16 {
	var r lanes.I8x16
	for i := range a {
		r[i] = saturate[int8](int64(a[i]))
		r[i+len(a)] = saturate[int8](int64(b[i]))
	}
	return r
}

// PacksEpi32 narrows the 32-bit lanes of a then b to int16 with saturation.
func PacksEpi32(a, b lanes.I32x4) lanes.I16x8 {
	var r lanes.I16x8
	for i := range a {
		r[i] = saturate[int16](int64(a[i]))
		r[i+len(a)] = saturate[int16](int64(b[i]))
	}
	return r
}

// PackusEpi16 narrows the signed 16-bit lanes of a then b to unsigned bytes,
// clamping negatives to 0 and values above 255 to 255.
func PackusEpi16(a, b lanes.I16x8) lanes.U8x16 {
	var r lanes.U8x16
	for i := range a {
		r[i] = saturate[uint8](int64(a[i]))
		r[i+len(a)] = saturate[uint8](int64(b[i]))
	}
	return r
}

// MovemaskEpi8 gathers the sign bit of each byte of a into bits 0..15 of
// the result. The upper bits are zero.
func MovemaskEpi8(a lanes.I8x16) int32 {
	var m int32
	for i, x := range a {
		if x < 0 {
			m |= 1 << i
		}
	}
	return m
}

// MovemaskPd gathers the sign bits of both lanes of a into bits 0 and 1.
// Negative zero and NaNs with the sign bit set count as negative.
func MovemaskPd(a lanes.F64x2) int32 {
	var m int32
	for i, x := range a {
		if math.Signbit(x) {
			m |= 1 << i
		}
	}
	return m
}
