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

package lanes

import (
	"encoding/binary"
	"fmt"
)

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for every type that can occupy a lane.
type Element interface {
	Floats | Integers
}

// Width is the size of every vector type in bytes.
const Width = 16

// V128 is 128 untyped bits, byte 0 first.
//
// It plays the role of an integer register whose lane width is decided by the
// operation applied to it. Convert to a typed view with the As* methods.
type V128 [Width]byte

// Vector is implemented by every 128-bit vector type in this package.
type Vector interface {
	Bits() V128
	String() string
}

// V128FromHalves builds a V128 from its low and high 64-bit halves.
func V128FromHalves(lo, hi uint64) V128 {
	var b V128
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	return b
}

// Low returns bytes 0..7 as a little-endian uint64.
func (b V128) Low() uint64 {
	return binary.LittleEndian.Uint64(b[:8])
}

// High returns bytes 8..15 as a little-endian uint64.
func (b V128) High() uint64 {
	return binary.LittleEndian.Uint64(b[8:])
}

// Bits returns b unchanged.
func (b V128) Bits() V128 {
	return b
}

// String formats b as 32 hex digits, most significant byte first.
func (b V128) String() string {
	return fmt.Sprintf("%016x%016x", b.High(), b.Low())
}

// Map sets dst[i] = f(a[i]) for every lane of dst.
func Map[T, R Element](dst []R, a []T, f func(T) R) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}

// Zip sets dst[i] = f(a[i], b[i]) for every lane of dst.
func Zip[T, R Element](dst []R, a, b []T, f func(T, T) R) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}
