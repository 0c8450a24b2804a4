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

// A shuffle control byte holds four 2-bit fields. Field k (bits 2k..2k+1)
// names the source lane for destination lane k.
//
// The control is resolved one field at a time. Each level of the tree
// switches on a single field and binds the chosen lane as a type argument,
// so after four levels the whole pattern is a property of the instantiated
// leaf. There are 4^4 = 256 leaves and each one applies a constant pattern.

// laneIndex is a lane number carried by a type.
type laneIndex interface {
	index() uint8
}

type (
	lane0 struct{}
	lane1 struct{}
	lane2 struct{}
	lane3 struct{}
)

func (lane0) index() uint8 { return 0 }
func (lane1) index() uint8 { return 1 }
func (lane2) index() uint8 { return 2 }
func (lane3) index() uint8 { return 3 }

// shuffleSite applies a resolved 4-lane selection to the operands of one
// shuffle operation.
type shuffleSite[V any] interface {
	apply(p Pattern4) V
}

// controlByte keeps the low 8 bits of a shuffle immediate.
func controlByte(imm8 int32) uint8 {
	return uint8(imm8 & 0xFF)
}

func shuffleX01[V any, S shuffleSite[V]](s S, c uint8) V {
	switch c & 0b11 {
	case 0b00:
		return shuffleX23[V, S, lane0](s, c)
	case 0b01:
		return shuffleX23[V, S, lane1](s, c)
	case 0b10:
		return shuffleX23[V, S, lane2](s, c)
	default:
		return shuffleX23[V, S, lane3](s, c)
	}
}

func shuffleX23[V any, S shuffleSite[V], X01 laneIndex](s S, c uint8) V {
	switch (c >> 2) & 0b11 {
	case 0b00:
		return shuffleX45[V, S, X01, lane0](s, c)
	case 0b01:
		return shuffleX45[V, S, X01, lane1](s, c)
	case 0b10:
		return shuffleX45[V, S, X01, lane2](s, c)
	default:
		return shuffleX45[V, S, X01, lane3](s, c)
	}
}

func shuffleX45[V any, S shuffleSite[V], X01, X23 laneIndex](s S, c uint8) V {
	switch (c >> 4) & 0b11 {
	case 0b00:
		return shuffleX67[V, S, X01, X23, lane0](s, c)
	case 0b01:
		return shuffleX67[V, S, X01, X23, lane1](s, c)
	case 0b10:
		return shuffleX67[V, S, X01, X23, lane2](s, c)
	default:
		return shuffleX67[V, S, X01, X23, lane3](s, c)
	}
}

func shuffleX67[V any, S shuffleSite[V], X01, X23, X45 laneIndex](s S, c uint8) V {
	switch (c >> 6) & 0b11 {
	case 0b00:
		return shuffleDone[V, S, X01, X23, X45, lane0](s)
	case 0b01:
		return shuffleDone[V, S, X01, X23, X45, lane1](s)
	case 0b10:
		return shuffleDone[V, S, X01, X23, X45, lane2](s)
	default:
		return shuffleDone[V, S, X01, X23, X45, lane3](s)
	}
}

// shuffleDone no longer sees the control byte.
func shuffleDone[V any, S shuffleSite[V], X01, X23, X45, X67 laneIndex](s S) V {
	var (
		x01 X01
		x23 X23
		x45 X45
		x67 X67
	)
	return s.apply(Pattern4{x01.index(), x23.index(), x45.index(), x67.index()})
}

type epi32Site struct{ a lanes.I32x4 }

func (s epi32Site) apply(p Pattern4) lanes.I32x4 {
	return shuffle4(s.a, s.a, p)
}

type loEpi16Site struct{ a lanes.I16x8 }

func (s loEpi16Site) apply(p Pattern4) lanes.I16x8 {
	return shuffle8(s.a, s.a, Pattern8{p[0], p[1], p[2], p[3], 4, 5, 6, 7})
}

type hiEpi16Site struct{ a lanes.I16x8 }

func (s hiEpi16Site) apply(p Pattern4) lanes.I16x8 {
	return shuffle8(s.a, s.a, Pattern8{0, 1, 2, 3, p[0] + 4, p[1] + 4, p[2] + 4, p[3] + 4})
}

// psSite draws the low two lanes from a and the high two from b.
type psSite struct{ a, b lanes.F32x4 }

func (s psSite) apply(p Pattern4) lanes.F32x4 {
	return shuffle4(s.a, s.b, Pattern4{p[0], p[1], p[2] + 4, p[3] + 4})
}

// ShuffleEpi32 returns r with r[k] = a[(imm8 >> 2k) & 3]. Bits of imm8 above
// the low 8 are ignored.
//
// With a = (5, 10, 15, 20) and imm8 = 0b00_01_01_11 the result is
// (20, 10, 10, 5).
func ShuffleEpi32(a lanes.I32x4, imm8 int32) lanes.I32x4 {
	return shuffleX01[lanes.I32x4](epi32Site{a}, controlByte(imm8))
}

// ShuffleloEpi16 permutes the low four 16-bit lanes of a by imm8 and passes
// the high four through.
func ShuffleloEpi16(a lanes.I16x8, imm8 int32) lanes.I16x8 {
	return shuffleX01[lanes.I16x8](loEpi16Site{a}, controlByte(imm8))
}

// ShufflehiEpi16 permutes the high four 16-bit lanes of a by imm8 and passes
// the low four through.
func ShufflehiEpi16(a lanes.I16x8, imm8 int32) lanes.I16x8 {
	return shuffleX01[lanes.I16x8](hiEpi16Site{a}, controlByte(imm8))
}

// ShufflePs selects r[0], r[1] from a and r[2], r[3] from b using the four
// control fields of imm8.
func ShufflePs(a, b lanes.F32x4, imm8 int32) lanes.F32x4 {
	return shuffleX01[lanes.F32x4](psSite{a, b}, controlByte(imm8))
}

type pdSite struct{ a, b lanes.F64x2 }

func shufflePdX0(s pdSite, c uint8) lanes.F64x2 {
	if c&1 == 0 {
		return shufflePdX1[lane0](s, c)
	}
	return shufflePdX1[lane1](s, c)
}

func shufflePdX1[X0 laneIndex](s pdSite, c uint8) lanes.F64x2 {
	if (c>>1)&1 == 0 {
		return shufflePdDone[X0, lane0](s)
	}
	return shufflePdDone[X0, lane1](s)
}

func shufflePdDone[X0, X1 laneIndex](s pdSite) lanes.F64x2 {
	var (
		x0 X0
		x1 X1
	)
	return shuffle2(s.a, s.b, Pattern2{x0.index(), x1.index() + 2})
}

// ShufflePd returns (a[imm8&1], b[(imm8>>1)&1]). The remaining bits of imm8
// are ignored.
func ShufflePd(a, b lanes.F64x2, imm8 int32) lanes.F64x2 {
	return shufflePdX0(pdSite{a, b}, controlByte(imm8))
}

// laneSelect8 masks a 16-bit lane selector to 0..7.
const laneSelect8 = 0b111

// ExtractEpi16 returns 16-bit lane imm8&7 of a, sign-extended.
func ExtractEpi16(a lanes.I16x8, imm8 int32) int32 {
	return int32(a[imm8&laneSelect8])
}

// InsertEpi16 returns a with 16-bit lane imm8&7 replaced by the low 16 bits
// of i.
func InsertEpi16(a lanes.I16x8, i int32, imm8 int32) lanes.I16x8 {
	a[imm8&laneSelect8] = int16(i)
	return a
}
