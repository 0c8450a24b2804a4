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

// byteShiftClasses is the number of distinct whole-register byte shifts:
// 0 through 15, plus one class for everything that empties the register.
const byteShiftClasses = 17

// normalizeByteShift maps a runtime shift count to its class in
// 0..byteShiftClasses-1. Negative counts reinterpret as huge unsigned values
// and land in the last class together with 16 and above.
func normalizeByteShift(imm8 int32) int {
	if d := uint32(imm8); d < lanes.Width {
		return int(d)
	}
	return byteShiftClasses - 1
}

// SlliSi128 shifts a left by imm8 bytes while shifting in zeros. Result byte
// j is a[j-imm8] for j >= imm8 and zero below that.
func SlliSi128(a lanes.V128, imm8 int32) lanes.V128 {
	return shuffle16(lanes.V128{}, a, byteShiftLeftPatterns[normalizeByteShift(imm8)])
}

// SrliSi128 shifts a right by imm8 bytes while shifting in zeros. Result byte
// j is a[j+imm8] for j+imm8 < 16 and zero above that.
func SrliSi128(a lanes.V128, imm8 int32) lanes.V128 {
	return shuffle16(a, lanes.V128{}, byteShiftRightPatterns[normalizeByteShift(imm8)])
}

// BslliSi128 is SlliSi128.
func BslliSi128(a lanes.V128, imm8 int32) lanes.V128 { return SlliSi128(a, imm8) }

// BsrliSi128 is SrliSi128.
func BsrliSi128(a lanes.V128, imm8 int32) lanes.V128 { return SrliSi128(a, imm8) }
