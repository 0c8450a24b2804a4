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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sse2/lanes"
)

// counting returns the vector whose byte i holds i+1.
func counting() lanes.V128 {
	var b lanes.V128
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

// byteShiftLeftRef computes a left byte shift one byte at a time.
func byteShiftLeftRef(a lanes.V128, imm8 int32) lanes.V128 {
	var r lanes.V128
	n := int64(uint32(imm8))
	for j := range r {
		if k := int64(j) - n; k >= 0 {
			r[j] = a[k]
		}
	}
	return r
}

func byteShiftRightRef(a lanes.V128, imm8 int32) lanes.V128 {
	var r lanes.V128
	n := int64(uint32(imm8))
	for j := range r {
		if k := int64(j) + n; k < lanes.Width {
			r[j] = a[k]
		}
	}
	return r
}

// byteShiftInputs covers every class plus the integers that stress the
// normalization: negatives, the int32 extremes and values just above 15.
func byteShiftInputs() []int32 {
	in := []int32{-1, -2, -15, -16, -17, 17, 31, 32, 255, 256, math.MinInt32, math.MaxInt32, math.MinInt32 + 1}
	for d := int32(0); d < byteShiftClasses; d++ {
		in = append(in, d)
	}
	return in
}

func TestNormalizeByteShift(t *testing.T) {
	tests := []struct {
		imm8 int32
		want int
	}{
		{0, 0},
		{1, 1},
		{15, 15},
		{16, 16},
		{17, 16},
		{1 << 20, 16},
		{-1, 16},
		{-16, 16},
		{math.MinInt32, 16},
		{math.MaxInt32, 16},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.imm8), func(t *testing.T) {
			got := normalizeByteShift(tt.imm8)
			assert.Equal(t, tt.want, got)
			assert.Less(t, got, byteShiftClasses)
		})
	}
}

func TestSlliSi128(t *testing.T) {
	a := counting()
	tests := []struct {
		name string
		imm8 int32
		want lanes.V128
	}{
		{"by 1", 1, lanes.V128{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{"by 15", 15, lanes.V128{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{"by 16", 16, lanes.V128{}},
		{"negative", -1, lanes.V128{}},
		{"min int32", math.MinInt32, lanes.V128{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlliSi128(a, tt.imm8))
		})
	}
}

func TestSrliSi128(t *testing.T) {
	a := counting()
	tests := []struct {
		name string
		imm8 int32
		want lanes.V128
	}{
		{"by 1", 1, lanes.V128{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 0}},
		{"by 15", 15, lanes.V128{16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"by 16", 16, lanes.V128{}},
		{"negative", -1, lanes.V128{}},
		{"min int32", math.MinInt32, lanes.V128{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SrliSi128(a, tt.imm8))
		})
	}
}

func TestByteShiftMatchesReference(t *testing.T) {
	inputs := []lanes.V128{
		counting(),
		lanes.V128FromHalves(math.MaxUint64, math.MaxUint64),
		lanes.V128FromHalves(0x0123456789abcdef, 0xfedcba9876543210),
	}
	for _, a := range inputs {
		for _, d := range byteShiftInputs() {
			if diff := cmp.Diff(byteShiftLeftRef(a, d), SlliSi128(a, d)); diff != "" {
				t.Errorf("SlliSi128(%s, %d) mismatch (-want +got):\n%s", a, d, diff)
			}
			if diff := cmp.Diff(byteShiftRightRef(a, d), SrliSi128(a, d)); diff != "" {
				t.Errorf("SrliSi128(%s, %d) mismatch (-want +got):\n%s", a, d, diff)
			}
		}
	}
}

func TestByteShiftAliases(t *testing.T) {
	a := counting()
	for _, d := range byteShiftInputs() {
		assert.Equal(t, SlliSi128(a, d), BslliSi128(a, d), "imm8=%d", d)
		assert.Equal(t, SrliSi128(a, d), BsrliSi128(a, d), "imm8=%d", d)
	}
}

func TestByteShiftProperties(t *testing.T) {
	a := counting()

	t.Run("zero is identity", func(t *testing.T) {
		assert.Equal(t, a, SlliSi128(a, 0))
		assert.Equal(t, a, SrliSi128(a, 0))
	})

	t.Run("out of range empties", func(t *testing.T) {
		for _, d := range byteShiftInputs() {
			if d >= 0 && d < lanes.Width {
				continue
			}
			assert.Equal(t, lanes.V128{}, SlliSi128(a, d), "left imm8=%d", d)
			assert.Equal(t, lanes.V128{}, SrliSi128(a, d), "right imm8=%d", d)
		}
	})

	t.Run("left then right keeps the low bytes", func(t *testing.T) {
		for d := int32(0); d < lanes.Width; d++ {
			got := SrliSi128(SlliSi128(a, d), d)
			for j := range got {
				if int32(j) < lanes.Width-d {
					require.Equal(t, a[j], got[j], "d=%d byte %d", d, j)
				} else {
					require.Zero(t, got[j], "d=%d byte %d", d, j)
				}
			}
		}
	})

	t.Run("shift equals 64-bit lane arithmetic", func(t *testing.T) {
		for d := int32(0); d < 8; d++ {
			got := SlliSi128(a, d)
			lo, hi := a.Low(), a.High()
			s := uint(8 * d)
			wantHi := hi << s
			if s > 0 {
				wantHi |= lo >> (64 - s)
			}
			assert.Equal(t, lanes.V128FromHalves(lo<<s, wantHi), got, "d=%d", d)
		}
	})
}

func TestByteShiftPatternTables(t *testing.T) {
	for k := range byteShiftClasses {
		for j := range lanes.Width {
			assert.EqualValues(t, lanes.Width-k+j, byteShiftLeftPatterns[k][j], "left k=%d j=%d", k, j)
			assert.EqualValues(t, j+k, byteShiftRightPatterns[k][j], "right k=%d j=%d", k, j)
		}
	}
}
