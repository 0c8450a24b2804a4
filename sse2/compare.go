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

// Integer comparisons produce -1 (all bits set) for true and 0 for false.

func laneMask[T lanes.SignedInts](ok bool) T {
	if ok {
		return -1
	}
	return 0
}

func eqMask[T lanes.SignedInts](x, y T) T { return laneMask[T](x == y) }
func gtMask[T lanes.SignedInts](x, y T) T { return laneMask[T](x > y) }
func ltMask[T lanes.SignedInts](x, y T) T { return laneMask[T](x < y) }

// CmpeqEpi8 compares 8-bit lanes for equality.
func CmpeqEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], eqMask[int8])
	return r
}

// CmpeqEpi16 compares 16-bit lanes for equality.
func CmpeqEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], eqMask[int16])
	return r
}

// CmpeqEpi32 compares 32-bit lanes for equality.
func CmpeqEpi32(a, b lanes.I32x4) lanes.I32x4 {
	var r lanes.I32x4
	lanes.Zip(r[:], a[:], b[:], eqMask[int32])
	return r
}

// CmpgtEpi8 compares signed 8-bit lanes for a > b.
func CmpgtEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], gtMask[int8])
	return r
}

// CmpgtEpi16 compares signed 16-bit lanes for a > b.
func CmpgtEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], gtMask[int16])
	return r
}

// CmpgtEpi32 compares signed 32-bit lanes for a > b.
func CmpgtEpi32(a, b lanes.I32x4) lanes.I32x4 {
	var r lanes.I32x4
	lanes.Zip(r[:], a[:], b[:], gtMask[int32])
	return r
}

// CmpltEpi8 compares signed 8-bit lanes for a < b.
func CmpltEpi8(a, b lanes.I8x16) lanes.I8x16 {
	var r lanes.I8x16
	lanes.Zip(r[:], a[:], b[:], ltMask[int8])
	return r
}

// CmpltEpi16 compares signed 16-bit lanes for a < b.
func CmpltEpi16(a, b lanes.I16x8) lanes.I16x8 {
	var r lanes.I16x8
	lanes.Zip(r[:], a[:], b[:], ltMask[int16])
	return r
}

// CmpltEpi32 compares signed 32-bit lanes for a < b.
func CmpltEpi32(a, b lanes.I32x4) lanes.I32x4 {
	var r lanes.I32x4
	lanes.Zip(r[:], a[:], b[:], ltMask[int32])
	return r
}

// cmpPredicate is the comparison encoded in the CMPSD/CMPPD immediate.
type cmpPredicate uint8

const (
	cmpEQ cmpPredicate = iota
	cmpLT
	cmpLE
	cmpUNORD
	cmpNEQ
	cmpNLT
	cmpNLE
	cmpORD
)

func (p cmpPredicate) eval(x, y float64) bool {
	unordered := math.IsNaN(x) || math.IsNaN(y)
	switch p {
	case cmpEQ:
		return x == y
	case cmpLT:
		return x < y
	case cmpLE:
		return x <= y
	case cmpUNORD:
		return unordered
	case cmpNEQ:
		return x != y
	case cmpNLT:
		return !(x < y)
	case cmpNLE:
		return !(x <= y)
	default:
		return !unordered
	}
}

// allOnes is the float64 whose bits are all set. It is a NaN.
var allOnes = math.Float64frombits(math.MaxUint64)

func floatMask(ok bool) float64 {
	if ok {
		return allOnes
	}
	return 0
}

// cmpSd compares lane 0 and keeps lane 1 of a. When swap is set the
// operands of the predicate are exchanged, which is how the gt/ge forms are
// built from lt/le.
func cmpSd(a, b lanes.F64x2, p cmpPredicate, swap bool) lanes.F64x2 {
	x, y := a[0], b[0]
	if swap {
		x, y = y, x
	}
	return lanes.F64x2{floatMask(p.eval(x, y)), a[1]}
}

func cmpPd(a, b lanes.F64x2, p cmpPredicate) lanes.F64x2 {
	var r lanes.F64x2
	for i := range r {
		r[i] = floatMask(p.eval(a[i], b[i]))
	}
	return r
}

// CmpeqSd sets lane 0 to all ones when a[0] == b[0].
func CmpeqSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpEQ, false) }

// CmpltSd sets lane 0 to all ones when a[0] < b[0].
func CmpltSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpLT, false) }

// CmpleSd sets lane 0 to all ones when a[0] <= b[0].
func CmpleSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpLE, false) }

// CmpgtSd sets lane 0 to all ones when a[0] > b[0].
func CmpgtSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpLT, true) }

// CmpgeSd sets lane 0 to all ones when a[0] >= b[0].
func CmpgeSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpLE, true) }

// CmpordSd sets lane 0 to all ones when neither a[0] nor b[0] is NaN.
func CmpordSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpORD, false) }

// CmpunordSd sets lane 0 to all ones when a[0] or b[0] is NaN.
func CmpunordSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpUNORD, false) }

// CmpneqSd sets lane 0 to all ones when a[0] != b[0] or either is NaN.
func CmpneqSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpNEQ, false) }

// CmpnltSd sets lane 0 to all ones when !(a[0] < b[0]).
func CmpnltSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpNLT, false) }

// CmpnleSd sets lane 0 to all ones when !(a[0] <= b[0]).
func CmpnleSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpNLE, false) }

// CmpngtSd sets lane 0 to all ones when !(a[0] > b[0]).
func CmpngtSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpNLT, true) }

// CmpngeSd sets lane 0 to all ones when !(a[0] >= b[0]).
func CmpngeSd(a, b lanes.F64x2) lanes.F64x2 { return cmpSd(a, b, cmpNLE, true) }

// CmpeqPd compares both lanes for equality.
func CmpeqPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpEQ) }

// CmpltPd compares both lanes for a < b.
func CmpltPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpLT) }

// CmplePd compares both lanes for a <= b.
func CmplePd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpLE) }

// CmpgtPd compares both lanes for a > b.
func CmpgtPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(b, a, cmpLT) }

// CmpgePd compares both lanes for a >= b.
func CmpgePd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(b, a, cmpLE) }

// CmpordPd marks lanes where neither operand is NaN.
func CmpordPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpORD) }

// CmpunordPd marks lanes where either operand is NaN.
func CmpunordPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpUNORD) }

// CmpneqPd compares both lanes for a != b.
func CmpneqPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpNEQ) }

// CmpnltPd compares both lanes for !(a < b).
func CmpnltPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpNLT) }

// CmpnlePd compares both lanes for !(a <= b).
func CmpnlePd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(a, b, cmpNLE) }

// CmpngtPd compares both lanes for !(a > b).
func CmpngtPd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(b, a, cmpNLT) }

// CmpngePd compares both lanes for !(a >= b).
func CmpngePd(a, b lanes.F64x2) lanes.F64x2 { return cmpPd(b, a, cmpNLE) }

// The Comi and Ucomi forms compare lane 0 and report the result as a bool.
// They use Go's IEEE ordering: every relation with a NaN operand is false
// except inequality, which is true. The two families differ on hardware only
// in which NaNs raise an invalid-operation exception, and that is not
// observable here.

// ComieqSd reports a[0] == b[0].
func ComieqSd(a, b lanes.F64x2) bool { return a[0] == b[0] }

// ComiltSd reports a[0] < b[0].
func ComiltSd(a, b lanes.F64x2) bool { return a[0] < b[0] }

// ComileSd reports a[0] <= b[0].
func ComileSd(a, b lanes.F64x2) bool { return a[0] <= b[0] }

// ComigtSd reports a[0] > b[0].
func ComigtSd(a, b lanes.F64x2) bool { return a[0] > b[0] }

// ComigeSd reports a[0] >= b[0].
func ComigeSd(a, b lanes.F64x2) bool { return a[0] >= b[0] }

// ComineqSd reports a[0] != b[0].
func ComineqSd(a, b lanes.F64x2) bool { return a[0] != b[0] }

// UcomieqSd reports a[0] == b[0].
func UcomieqSd(a, b lanes.F64x2) bool { return ComieqSd(a, b) }

// UcomiltSd reports a[0] < b[0].
func UcomiltSd(a, b lanes.F64x2) bool { return ComiltSd(a, b) }

// UcomileSd reports a[0] <= b[0].
func UcomileSd(a, b lanes.F64x2) bool { return ComileSd(a, b) }

// UcomigtSd reports a[0] > b[0].
func UcomigtSd(a, b lanes.F64x2) bool { return ComigtSd(a, b) }

// UcomigeSd reports a[0] >= b[0].
func UcomigeSd(a, b lanes.F64x2) bool { return ComigeSd(a, b) }

// UcomineqSd reports a[0] != b[0].
func UcomineqSd(a, b lanes.F64x2) bool { return ComineqSd(a, b) }
