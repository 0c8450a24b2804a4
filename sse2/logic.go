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

func bitwise(a, b lanes.V128, f func(x, y uint64) uint64) lanes.V128 {
	return lanes.V128FromHalves(f(a.Low(), b.Low()), f(a.High(), b.High()))
}

func and(x, y uint64) uint64    { return x & y }
func andnot(x, y uint64) uint64 { return ^x & y }
func or(x, y uint64) uint64     { return x | y }
func xor(x, y uint64) uint64    { return x ^ y }

// AndSi128 returns a & b.
func AndSi128(a, b lanes.V128) lanes.V128 { return bitwise(a, b, and) }

// AndnotSi128 returns ^a & b. Note the complement applies to the first
// operand.
func AndnotSi128(a, b lanes.V128) lanes.V128 { return bitwise(a, b, andnot) }

// OrSi128 returns a | b.
func OrSi128(a, b lanes.V128) lanes.V128 { return bitwise(a, b, or) }

// XorSi128 returns a ^ b.
func XorSi128(a, b lanes.V128) lanes.V128 { return bitwise(a, b, xor) }

// AndPd is AndSi128 on the bit patterns of two double vectors.
func AndPd(a, b lanes.F64x2) lanes.F64x2 {
	return bitwise(a.Bits(), b.Bits(), and).AsF64x2()
}

// AndnotPd is AndnotSi128 on the bit patterns of two double vectors.
func AndnotPd(a, b lanes.F64x2) lanes.F64x2 {
	return bitwise(a.Bits(), b.Bits(), andnot).AsF64x2()
}

// OrPd is OrSi128 on the bit patterns of two double vectors.
func OrPd(a, b lanes.F64x2) lanes.F64x2 {
	return bitwise(a.Bits(), b.Bits(), or).AsF64x2()
}

// XorPd is XorSi128 on the bit patterns of two double vectors.
func XorPd(a, b lanes.F64x2) lanes.F64x2 {
	return bitwise(a.Bits(), b.Bits(), xor).AsF64x2()
}
