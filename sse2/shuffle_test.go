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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-sse2/lanes"
)

// field returns control field k of c.
func field(c int32, k int) int {
	return int(c>>(2*k)) & 3
}

func TestShuffleEpi32(t *testing.T) {
	a := lanes.NewI32x4(5, 10, 15, 20)
	tests := []struct {
		name string
		imm8 int32
		want lanes.I32x4
	}{
		{"mixed", 0b00_01_01_11, lanes.NewI32x4(20, 10, 10, 5)},
		{"identity", 0xE4, a},
		{"reverse", 0b00_01_10_11, lanes.NewI32x4(20, 15, 10, 5)},
		{"broadcast 0", 0x00, lanes.SplatI32x4(5)},
		{"broadcast 1", 0x55, lanes.SplatI32x4(10)},
		{"broadcast 2", 0xAA, lanes.SplatI32x4(15)},
		{"broadcast 3", 0xFF, lanes.SplatI32x4(20)},
		{"high bits ignored", 0x7FFF_FF00 | 0xE4, a},
		{"negative", -1, lanes.SplatI32x4(20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShuffleEpi32(a, tt.imm8))
		})
	}
}

func TestShuffleEpi32AllControls(t *testing.T) {
	a := lanes.NewI32x4(-7, 1<<20, math.MaxInt32, math.MinInt32)
	for c := range int32(256) {
		var want lanes.I32x4
		for k := range want {
			want[k] = a[field(c, k)]
		}
		if diff := cmp.Diff(want, ShuffleEpi32(a, c)); diff != "" {
			t.Fatalf("ShuffleEpi32(%v, %#02x) mismatch (-want +got):\n%s", a, c, diff)
		}
		// Only the low byte of the control counts.
		for _, hi := range []int32{0x100, 0x7F00, -0x100, math.MinInt32} {
			assert.Equal(t, want, ShuffleEpi32(a, c|hi), "control %#x", c|hi)
		}
	}
}

func TestShuffleloEpi16(t *testing.T) {
	a := lanes.NewI16x8(5, 10, 15, 20, 1, 2, 3, 4)
	assert.Equal(t, lanes.NewI16x8(20, 10, 10, 5, 1, 2, 3, 4), ShuffleloEpi16(a, 0b00_01_01_11))
	assert.Equal(t, a, ShuffleloEpi16(a, 0xE4))
}

func TestShufflehiEpi16(t *testing.T) {
	a := lanes.NewI16x8(1, 2, 3, 4, 5, 10, 15, 20)
	assert.Equal(t, lanes.NewI16x8(1, 2, 3, 4, 20, 10, 10, 5), ShufflehiEpi16(a, 0b00_01_01_11))
	assert.Equal(t, a, ShufflehiEpi16(a, 0xE4))
}

func TestShuffleEpi16HalvesAllControls(t *testing.T) {
	a := lanes.NewI16x8(-1, 2, -3, 4, -5, 6, -7, 8)
	for c := range int32(256) {
		lo := ShuffleloEpi16(a, c)
		hi := ShufflehiEpi16(a, c)

		wantLo, wantHi := a, a
		for k := range 4 {
			wantLo[k] = a[field(c, k)]
			wantHi[4+k] = a[4+field(c, k)]
		}
		if diff := cmp.Diff(wantLo, lo); diff != "" {
			t.Fatalf("ShuffleloEpi16 control %#02x (-want +got):\n%s", c, diff)
		}
		if diff := cmp.Diff(wantHi, hi); diff != "" {
			t.Fatalf("ShufflehiEpi16 control %#02x (-want +got):\n%s", c, diff)
		}
		// The untouched half always passes through.
		assert.Equal(t, a[4:], lo[4:], "lo control %#02x", c)
		assert.Equal(t, a[:4], hi[:4], "hi control %#02x", c)
	}
}

func TestShufflePs(t *testing.T) {
	a := lanes.NewF32x4(1, 2, 3, 4)
	b := lanes.NewF32x4(5, 6, 7, 8)
	assert.Equal(t, lanes.NewF32x4(1, 2, 7, 8), ShufflePs(a, b, 0xE4))
	assert.Equal(t, lanes.NewF32x4(4, 1, 6, 7), ShufflePs(a, b, 0b10_01_00_11))

	for c := range int32(256) {
		want := lanes.F32x4{a[field(c, 0)], a[field(c, 1)], b[field(c, 2)], b[field(c, 3)]}
		if diff := cmp.Diff(want, ShufflePs(a, b, c)); diff != "" {
			t.Fatalf("ShufflePs control %#02x (-want +got):\n%s", c, diff)
		}
	}
}

func TestShufflePd(t *testing.T) {
	a := lanes.NewF64x2(1, 2)
	b := lanes.NewF64x2(3, 4)
	tests := []struct {
		imm8 int32
		want lanes.F64x2
	}{
		{0b00, lanes.NewF64x2(1, 3)},
		{0b01, lanes.NewF64x2(2, 3)},
		{0b10, lanes.NewF64x2(1, 4)},
		{0b11, lanes.NewF64x2(2, 4)},
		{0xFC, lanes.NewF64x2(1, 3)},
		{-1, lanes.NewF64x2(2, 4)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShufflePd(a, b, tt.imm8), "imm8=%#x", tt.imm8)
	}
}

func TestShuffleTreeLeavesAreDistinct(t *testing.T) {
	// Recording the pattern each control reaches shows the tree resolves
	// all four fields independently.
	seen := make(map[Pattern4]int32)
	for c := range int32(256) {
		var got Pattern4
		shuffleX01[Pattern4](recordSite{&got}, controlByte(c))
		for k := range got {
			assert.EqualValues(t, field(c, k), got[k], "control %#02x field %d", c, k)
		}
		if prev, dup := seen[got]; dup {
			t.Fatalf("controls %#02x and %#02x reached the same leaf %v", prev, c, got)
		}
		seen[got] = c
	}
	assert.Len(t, seen, 256)
}

type recordSite struct{ p *Pattern4 }

func (s recordSite) apply(p Pattern4) Pattern4 {
	*s.p = p
	return p
}

func TestExtractEpi16(t *testing.T) {
	a := lanes.NewI16x8(0, 1, 2, 3, 4, 5, -6, 7)
	assert.Equal(t, int32(5), ExtractEpi16(a, 5))
	assert.Equal(t, int32(-6), ExtractEpi16(a, 6), "sign-extended")
	assert.Equal(t, int32(1), ExtractEpi16(a, 9), "masked to 3 bits")
	assert.Equal(t, int32(7), ExtractEpi16(a, -1))
	assert.Equal(t, int32(0), ExtractEpi16(a, math.MinInt32))
}

func TestInsertEpi16(t *testing.T) {
	a := lanes.NewI16x8(0, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, a.Replace(0, 9), InsertEpi16(a, 9, 0))
	assert.Equal(t, a.Replace(2, 9), InsertEpi16(a, 9, 10))
	assert.Equal(t, a.Replace(7, -1), InsertEpi16(a, 0x1FFFF, -1), "low 16 bits of i")
	assert.Equal(t, lanes.NewI16x8(0, 1, 2, 3, 4, 5, 6, 7), a, "input unchanged")
}
