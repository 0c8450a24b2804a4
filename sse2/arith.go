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

// narrow is the set of lane types that saturating operations produce.
type narrow interface {
	~int8 | ~int16 | ~uint8 | ~uint16
}

// saturate clamps v into the range of T.
func saturate[T narrow](v int64) T {
	lo, hi := bounds[T]()
	return T(min(max(v, lo), hi))
}

func bounds[T narrow]() (lo, hi int64) {
	var z T
	switch any(z).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case uint8:
		return 0, math.MaxUint8
	default:
		return 0, math.MaxUint16
	}
}

func add[T lanes.Integers](x, y T) T { return x + y }
func sub[T lanes.Integers](x, y T) T { return x - y }

func addSat[T narrow](x, y T) T { return saturate[T](int64(x) + int64(y)) }
func subSat[T narrow](x, y T) T { return saturate[T](int64(x) - int64(y)) }

func maxLane[T lanes.Integers](x, y T) T { return max(x, y) }
func minLane[T lanes.Integers](x, y T) T { return min(x, y) }

// avg rounds half up.
func avg[T ~uint8 | ~uint16](x, y T) T {
	return T((uint32(x) + uint32(y) + 1) >> 1)
}

// AddEpi8 adds 8-bit lanes with wraparound.
func AddEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], add[int8])
	return r
}

// AddEpi16 adds 16-bit lanes with wraparound.
func AddEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], add[int16])
	return r
}

// AddEpi32 adds 32-bit lanes with wraparound.
func AddEpi32(a, b lanes.I32x4) lanes.I32x4 {
	var r lanes.I32x4
	lanes.Zip(r[:], a[:], b[:], add[int32])
	return r
}

// AddEpi64 adds 64-bit lanes with wraparound.
func AddEpi64(a, b lanes.I64x2) lanes.I64x2 {
	var r lanes.I64x2
	lanes.Zip(r[:], a[:], b[:], add[int64])
	return r
}

// AddsEpi8 adds signed 8-bit lanes, saturating at -128 and 127.
func AddsEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], addSat[int8])
	return r
}

// AddsEpi16 adds signed 16-bit lanes with saturation.
func AddsEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], addSat[int16])
	return r
}

// AddsEpu8 adds unsigned 8-bit lanes, saturating at 255.
func AddsEpu8(a, b lanes.U8x16) lanes.U8x16 {
	var r lanes.U8x16
	lanes.Zip(r[:], a[:], b[:], addSat[uint8])
	return r
}

// AddsEpu16 adds unsigned 16-bit lanes with saturation.
func AddsEpu16(a, b lanes.U16x8) lanes.U16x8 {
	var r lanes.U16x8
	lanes.Zip(r[:], a[:], b[:], addSat[uint16])
	return r
}

// AvgEpu8 returns (a + b + 1) >> 1 per lane without intermediate overflow.
func AvgEpu8(a, b lanes.U8x16) lanes.U8x16 {
	var r lanes.U8x16
	lanes.Zip(r[:], a[:], b[:], avg[uint8])
	return r
}

// AvgEpu16 returns (a + b + 1) >> 1 per lane without intermediate overflow.
func AvgEpu16(a, b lanes.U16x8) lanes.U16x8 {
	var r lanes.U16x8
	lanes.Zip(r[:], a[:], b[:], avg[uint16])
	return r
}

// MaddEpi16 multiplies the 16-bit lanes of a and b into 32-bit products and
// adds adjacent pairs: r[i] = a[2i]*b[2i] + a[2i+1]*b[2i+1].
//
// The single overflowing case, all four inputs -32768, wraps to MinInt32.
func MaddEpi16(a, b lanes.I16x8) lanes.I32x4 {
	var r lanes.I32x4
	for i := range r {
		lo := int32(a[2*i]) * int32(b[2*i])
		hi := int32(a[2*i+1]) * int32(b[2*i+1])
		r[i] = lo + hi
	}
	return r
}

// MaxEpi16 returns the signed maximum per lane.
func MaxEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], maxLane[int16])
	return r
}

// MaxEpu8 returns the unsigned maximum per lane.
func MaxEpu8(a, b lanes.U8x16) lanes.U8x16 {
	var r lanes.U8x16
	lanes.Zip(r[:], a[:], b[:], maxLane[uint8])
	return r
}

// MinEpi16 returns the signed minimum per lane.
func MinEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], minLane[int16])
	return r
}

// MinEpu8 returns the unsigned minimum per lane.
func MinEpu8(a, b lanes.U8x16) lanes.U8x16 {
	var r lanes.U8x16
	lanes.Zip(r[:], a[:], b[:], minLane[uint8])
	return r
}

// MulhiEpi16 returns the high 16 bits of each signed 32-bit product.
func MulhiEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], func(x, y int16) int16 {
		return int16((int32(x) * int32(y)) >> 16)
	})
	return r
}

// MulhiEpu16 returns the high 16 bits of each unsigned 32-bit product.
func MulhiEpu16(a, b lanes.U16x8) lanes.U16x8 {
	var r lanes.U16x8
	lanes.Zip(r[:], a[:], b[:], func(x, y uint16) uint16 {
		return uint16((uint32(x) * uint32(y)) >> 16)
	})
	return r
}

// MulloEpi16 returns the low 16 bits of each 32-bit product.
func MulloEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], func(x, y int16) int16 { return x * y })
	return r
}

// MulEpu32 multiplies the even unsigned 32-bit lanes (0 and 2) of a and b
// into full 64-bit products.
func MulEpu32(a, b lanes.U32x4) lanes.U64x2 {
	return lanes.U64x2{
		uint64(a[0]) * uint64(b[0]),
		uint64(a[2]) * uint64(b[2]),
	}
}

// SadEpu8 sums the absolute differences of the unsigned bytes of a and b
// over each 8-byte half. Each sum lands in the low 16 bits of its 64-bit
// lane and the upper bits are zero.
func SadEpu8(a, b lanes.U8x16) lanes.U64x2 {
	var r lanes.U64x2
	for i, x := range a {
		y := b[i]
		d := x - y
		if y > x {
			d = y - x
		}
		r[i/8] += uint64(d)
	}
	return r
}

// SubEpi8 subtracts 8-bit lanes with wraparound.
func SubEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], sub[int8])
	return r
}

// SubEpi16 subtracts 16-bit lanes with wraparound.
func SubEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], sub[int16])
	return r
}

// SubEpi32 subtracts 32-bit lanes with wraparound.
func SubEpi32(a, b lanes.I32x4) lanes.I32x4 {
	var r lanes.I32x4
	lanes.Zip(r[:], a[:], b[:], sub[int32])
	return r
}

// SubEpi64 subtracts 64-bit lanes with wraparound.
func SubEpi64(a, b lanes.I64x2) lanes.I64x2 {
	var r lanes.I64x2
	lanes.Zip(r[:], a[:], b[:], sub[int64])
	return r
}

// SubsEpi8 subtracts signed 8-bit lanes with saturation.
func SubsEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], subSat[int8])
	return r
}

// SubsEpi16 subtracts signed 16-bit lanes with saturation.
func SubsEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], subSat[int16])
	return r
}

// SubsEpu8 subtracts unsigned 8-bit lanes, saturating at 0.
func SubsEpu8(a, b lanes.U8x16) lanes.U8x16 {
	var r lanes.U8x16
	lanes.Zip(r[:], a[:], b[:], subSat[uint8])
	return r
}

// SubsEpu16 subtracts unsigned 16-bit lanes, saturating at 0.
func SubsEpu16(a, b lanes.U16x8) lanes.U16x8 {
	var r lanes.U16x8
	lanes.Zip(r[:], a[:], b[:], subSat[uint16])
	return r
}
