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

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-sse2/lanes"
)

func iotaI8(start int8) lanes.I8x16 {
	var v lanes.I8x16
	for i := range v {
		v[i] = start + int8(i)
	}
	return v
}

func TestAddEpi(t *testing.T) {
	t.Run("epi8", func(t *testing.T) {
		r := AddEpi8(iotaI8(0), iotaI8(16))
		for i, x := range r {
			assert.Equal(t, int8(16+2*i), x, "lane %d", i)
		}
	})
	t.Run("epi8 wraps", func(t *testing.T) {
		assert.Equal(t, lanes.SplatI8x16(-128), AddEpi8(lanes.SplatI8x16(0x7F), lanes.SplatI8x16(1)))
	})
	t.Run("epi16", func(t *testing.T) {
		a := lanes.NewI16x8(0, 1, 2, 3, 4, 5, 6, 7)
		b := lanes.NewI16x8(8, 9, 10, 11, 12, 13, 14, 15)
		assert.Equal(t, lanes.NewI16x8(8, 10, 12, 14, 16, 18, 20, 22), AddEpi16(a, b))
	})
	t.Run("epi32", func(t *testing.T) {
		assert.Equal(t, lanes.NewI32x4(4, 6, 8, 10), AddEpi32(lanes.NewI32x4(0, 1, 2, 3), lanes.NewI32x4(4, 5, 6, 7)))
	})
	t.Run("epi64", func(t *testing.T) {
		assert.Equal(t, lanes.NewI64x2(2, 4), AddEpi64(lanes.NewI64x2(0, 1), lanes.NewI64x2(2, 3)))
		assert.Equal(t, lanes.NewI64x2(math.MinInt64, 0), AddEpi64(lanes.NewI64x2(math.MaxInt64, -1), lanes.NewI64x2(1, 1)))
	})
}

func TestAddsSaturating(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"epi8 in range", AddsEpi8(iotaI8(0), iotaI8(16)), AddEpi8(iotaI8(0), iotaI8(16))},
		{"epi8 positive", AddsEpi8(lanes.SplatI8x16(0x7F), lanes.SplatI8x16(1)), lanes.SplatI8x16(0x7F)},
		{"epi8 negative", AddsEpi8(lanes.SplatI8x16(-0x80), lanes.SplatI8x16(-1)), lanes.SplatI8x16(-0x80)},
		{"epi16 positive", AddsEpi16(lanes.SplatI16x8(0x7FFF), lanes.SplatI16x8(1)), lanes.SplatI16x8(0x7FFF)},
		{"epi16 negative", AddsEpi16(lanes.SplatI16x8(-0x8000), lanes.SplatI16x8(-1)), lanes.SplatI16x8(-0x8000)},
		{"epu8", AddsEpu8(lanes.SplatU8x16(0xFF), lanes.SplatU8x16(1)), lanes.SplatU8x16(0xFF)},
		{"epu16", AddsEpu16(lanes.SplatU16x8(0xFFFF), lanes.SplatU16x8(1)), lanes.SplatU16x8(0xFFFF)},
		{"epu16 in range", AddsEpu16(lanes.NewU16x8(0, 1, 2, 3, 4, 5, 6, 7), lanes.NewU16x8(8, 9, 10, 11, 12, 13, 14, 15)), lanes.NewU16x8(8, 10, 12, 14, 16, 18, 20, 22)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSubsSaturating(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"epi8", SubsEpi8(lanes.SplatI8x16(5), lanes.SplatI8x16(2)), lanes.SplatI8x16(3)},
		{"epi8 positive", SubsEpi8(lanes.SplatI8x16(0x7F), lanes.SplatI8x16(-1)), lanes.SplatI8x16(0x7F)},
		{"epi8 negative", SubsEpi8(lanes.SplatI8x16(-0x80), lanes.SplatI8x16(1)), lanes.SplatI8x16(-0x80)},
		{"epi16", SubsEpi16(lanes.SplatI16x8(5), lanes.SplatI16x8(2)), lanes.SplatI16x8(3)},
		{"epi16 positive", SubsEpi16(lanes.SplatI16x8(0x7FFF), lanes.SplatI16x8(-1)), lanes.SplatI16x8(0x7FFF)},
		{"epi16 negative", SubsEpi16(lanes.SplatI16x8(-0x8000), lanes.SplatI16x8(1)), lanes.SplatI16x8(-0x8000)},
		{"epu8", SubsEpu8(lanes.SplatU8x16(5), lanes.SplatU8x16(2)), lanes.SplatU8x16(3)},
		{"epu8 floor", SubsEpu8(lanes.SplatU8x16(0), lanes.SplatU8x16(1)), lanes.SplatU8x16(0)},
		{"epu16", SubsEpu16(lanes.SplatU16x8(5), lanes.SplatU16x8(2)), lanes.SplatU16x8(3)},
		{"epu16 floor", SubsEpu16(lanes.SplatU16x8(0), lanes.SplatU16x8(1)), lanes.SplatU16x8(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSubEpi(t *testing.T) {
	assert.Equal(t, lanes.SplatI8x16(-1), SubEpi8(lanes.SplatI8x16(5), lanes.SplatI8x16(6)))
	assert.Equal(t, lanes.SplatI8x16(0x7F), SubEpi8(lanes.SplatI8x16(-0x80), lanes.SplatI8x16(1)), "wraps")
	assert.Equal(t, lanes.SplatI16x8(-1), SubEpi16(lanes.SplatI16x8(5), lanes.SplatI16x8(6)))
	assert.Equal(t, lanes.SplatI32x4(-1), SubEpi32(lanes.SplatI32x4(5), lanes.SplatI32x4(6)))
	assert.Equal(t, lanes.SplatI64x2(-1), SubEpi64(lanes.SplatI64x2(5), lanes.SplatI64x2(6)))
}

func TestAvgEpu(t *testing.T) {
	assert.Equal(t, lanes.SplatU8x16(6), AvgEpu8(lanes.SplatU8x16(3), lanes.SplatU8x16(9)))
	assert.Equal(t, lanes.SplatU8x16(5), AvgEpu8(lanes.SplatU8x16(4), lanes.SplatU8x16(5)), "rounds up")
	assert.Equal(t, lanes.SplatU8x16(0xFF), AvgEpu8(lanes.SplatU8x16(0xFF), lanes.SplatU8x16(0xFF)), "no overflow")
	assert.Equal(t, lanes.SplatU16x8(6), AvgEpu16(lanes.SplatU16x8(3), lanes.SplatU16x8(9)))
	assert.Equal(t, lanes.SplatU16x8(0xFFFF), AvgEpu16(lanes.SplatU16x8(0xFFFF), lanes.SplatU16x8(0xFFFE)))
}

func TestMaddEpi16(t *testing.T) {
	a := lanes.NewI16x8(1, 2, 3, 4, 5, 6, 7, 8)
	b := lanes.NewI16x8(9, 10, 11, 12, 13, 14, 15, 16)
	assert.Equal(t, lanes.NewI32x4(29, 81, 149, 233), MaddEpi16(a, b))

	m := lanes.SplatI16x8(math.MinInt16)
	assert.Equal(t, lanes.SplatI32x4(math.MinInt32), MaddEpi16(m, m), "only overflowing input wraps")
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, lanes.SplatI16x8(1), MaxEpi16(lanes.SplatI16x8(1), lanes.SplatI16x8(-1)))
	assert.Equal(t, lanes.SplatU8x16(255), MaxEpu8(lanes.SplatU8x16(1), lanes.SplatU8x16(255)))
	assert.Equal(t, lanes.SplatI16x8(-1), MinEpi16(lanes.SplatI16x8(1), lanes.SplatI16x8(-1)))
	assert.Equal(t, lanes.SplatU8x16(1), MinEpu8(lanes.SplatU8x16(1), lanes.SplatU8x16(255)))
}

func TestMul(t *testing.T) {
	assert.Equal(t, lanes.SplatI16x8(-16), MulhiEpi16(lanes.SplatI16x8(1000), lanes.SplatI16x8(-1001)))
	assert.Equal(t, lanes.SplatU16x8(15), MulhiEpu16(lanes.SplatU16x8(1000), lanes.SplatU16x8(1001)))
	assert.Equal(t, lanes.SplatI16x8(-17960), MulloEpi16(lanes.SplatI16x8(1000), lanes.SplatI16x8(-1001)))

	// Lanes 1 and 3 are ignored by MulEpu32.
	a := lanes.NewU64x2(1_000_000_000, 1<<34).Bits().AsU32x4()
	b := lanes.NewU64x2(1_000_000_000, 1<<35).Bits().AsU32x4()
	assert.Equal(t, lanes.NewU64x2(1_000_000_000*1_000_000_000, 0), MulEpu32(a, b))
	assert.Equal(t, lanes.NewU64x2(math.MaxUint32*math.MaxUint32, 0),
		MulEpu32(lanes.NewU32x4(math.MaxUint32, 7, 0, 7), lanes.NewU32x4(math.MaxUint32, 9, 5, 9)))
}

func TestSadEpu8(t *testing.T) {
	a := lanes.NewU8x16(255, 254, 253, 252, 1, 2, 3, 4, 155, 154, 153, 152, 1, 2, 3, 4)
	b := lanes.NewU8x16(0, 0, 0, 0, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, 2)
	assert.Equal(t, lanes.NewU64x2(1020, 614), SadEpu8(a, b))
	assert.Equal(t, lanes.NewU64x2(8*255, 8*255), SadEpu8(lanes.SplatU8x16(0), lanes.SplatU8x16(255)))
}
