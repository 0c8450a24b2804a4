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

// Per-lane shifts take their count either as an immediate or as the low 64
// bits of a vector. Both are read as unsigned, so a negative immediate is a
// count far beyond any lane width. Counts at or above the lane width clear
// logical shifts and sign-fill arithmetic ones.

func immCount(imm8 int32) uint64 { return uint64(uint32(imm8)) }

func vecCount(v lanes.Vector) uint64 { return v.Bits().Low() }

func shiftLeft[T lanes.Integers](dst, a []T, n, width uint64) {
	for i := range dst {
		if n >= width {
			dst[i] = 0
		} else {
			dst[i] = a[i] << n
		}
	}
}

// shiftRightLogical shifts zeros in. T must be unsigned.
func shiftRightLogical[T lanes.UnsignedInts](dst, a []T, n, width uint64) {
	for i := range dst {
		if n >= width {
			dst[i] = 0
		} else {
			dst[i] = a[i] >> n
		}
	}
}

func shiftRightArith[T lanes.SignedInts](dst, a []T, n, width uint64) {
	n = min(n, width-1)
	for i := range dst {
		dst[i] = a[i] >> n
	}
}

func sll16(a lanes.I16x8, n uint64) lanes.I16x8 {
	var r lanes.I16x8
	shiftLeft(r[:], a[:], n, 16)
	return r
}

func sll32(a lanes.I32x4, n uint64) lanes.I32x4 {
	var r lanes.I32x4
	shiftLeft(r[:], a[:], n, 32)
	return r
}

func sll64(a lanes.I64x2, n uint64) lanes.I64x2 {
	var r lanes.I64x2
	shiftLeft(r[:], a[:], n, 64)
	return r
}

func sra16(a lanes.I16x8, n uint64) lanes.I16x8 {
	var r lanes.I16x8
	shiftRightArith(r[:], a[:], n, 16)
	return r
}

func sra32(a lanes.I32x4, n uint64) lanes.I32x4 {
	var r lanes.I32x4
	shiftRightArith(r[:], a[:], n, 32)
	return r
}

// Logical right shifts work on the unsigned view of the same bits.

func srl16(a lanes.I16x8, n uint64) lanes.I16x8 {
	u := a.Bits().AsU16x8()
	shiftRightLogical(u[:], u[:], n, 16)
	return u.Bits().AsI16x8()
}

func srl32(a lanes.I32x4, n uint64) lanes.I32x4 {
	u := a.Bits().AsU32x4()
	shiftRightLogical(u[:], u[:], n, 32)
	return u.Bits().AsI32x4()
}

func srl64(a lanes.I64x2, n uint64) lanes.I64x2 {
	u := a.Bits().AsU64x2()
	shiftRightLogical(u[:], u[:], n, 64)
	return u.Bits().AsI64x2()
}

// SlliEpi16 shifts each 16-bit lane left by imm8, shifting in zeros.
func SlliEpi16(a lanes.I16x8, imm8 int32) lanes.I16x8 { return sll16(a, immCount(imm8)) }

// SllEpi16 shifts each 16-bit lane left by the low 64 bits of count.
func SllEpi16(a, count lanes.I16x8) lanes.I16x8 { return sll16(a, vecCount(count)) }

// SlliEpi32 shifts each 32-bit lane left by imm8, shifting in zeros.
func SlliEpi32(a lanes.I32x4, imm8 int32) lanes.I32x4 { return sll32(a, immCount(imm8)) }

// SllEpi32 shifts each 32-bit lane left by the low 64 bits of count.
func SllEpi32(a, count lanes.I32x4) lanes.I32x4 { return sll32(a, vecCount(count)) }

// SlliEpi64 shifts each 64-bit lane left by imm8, shifting in zeros.
func SlliEpi64(a lanes.I64x2, imm8 int32) lanes.I64x2 { return sll64(a, immCount(imm8)) }

// SllEpi64 shifts each 64-bit lane left by the low 64 bits of count.
func SllEpi64(a, count lanes.I64x2) lanes.I64x2 { return sll64(a, vecCount(count)) }

// SraiEpi16 shifts each 16-bit lane right by imm8, shifting in sign bits.
func SraiEpi16(a lanes.I16x8, imm8 int32) lanes.I16x8 { return sra16(a, immCount(imm8)) }

// SraEpi16 shifts each 16-bit lane right by the low 64 bits of count,
// shifting in sign bits.
func SraEpi16(a, count lanes.I16x8) lanes.I16x8 { return sra16(a, vecCount(count)) }

// SraiEpi32 shifts each 32-bit lane right by imm8, shifting in sign bits.
func SraiEpi32(a lanes.I32x4, imm8 int32) lanes.I32x4 { return sra32(a, immCount(imm8)) }

// SraEpi32 shifts each 32-bit lane right by the low 64 bits of count,
// shifting in sign bits.
func SraEpi32(a, count lanes.I32x4) lanes.I32x4 { return sra32(a, vecCount(count)) }

// SrliEpi16 shifts each 16-bit lane right by imm8, shifting in zeros.
func SrliEpi16(a lanes.I16x8, imm8 int32) lanes.I16x8 { return srl16(a, immCount(imm8)) }

// SrlEpi16 shifts each 16-bit lane right by the low 64 bits of count.
func SrlEpi16(a, count lanes.I16x8) lanes.I16x8 { return srl16(a, vecCount(count)) }

// SrliEpi32 shifts each 32-bit lane right by imm8, shifting in zeros.
func SrliEpi32(a lanes.I32x4, imm8 int32) lanes.I32x4 { return srl32(a, immCount(imm8)) }

// SrlEpi32 shifts each 32-bit lane right by the low 64 bits of count.
func SrlEpi32(a, count lanes.I32x4) lanes.I32x4 { return srl32(a, vecCount(count)) }

// SrliEpi64 shifts each 64-bit lane right by imm8, shifting in zeros.
func SrliEpi64(a lanes.I64x2, imm8 int32) lanes.I64x2 { return srl64(a, immCount(imm8)) }

// SrlEpi64 shifts each 64-bit lane right by the low 64 bits of count.
func SrlEpi64(a, count lanes.I64x2) lanes.I64x2 { return srl64(a, vecCount(count)) }
