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
	"encoding/binary"

	"github.com/ajroetker/go-sse2/lanes"
)

// Memory operations read and write byte or float64 slices. Go has no
// alignment requirement on slices, so the aligned and unaligned forms are
// the same function. A slice shorter than the access panics with an index
// out of range error.

// LoadSi128 reads 16 bytes from mem.
func LoadSi128(mem []byte) lanes.V128 {
	var r lanes.V128
	_ = mem[lanes.Width-1]
	copy(r[:], mem)
	return r
}

// LoaduSi128 is LoadSi128.
func LoaduSi128(mem []byte) lanes.V128 { return LoadSi128(mem) }

// LoadlEpi64 reads 8 bytes from mem into the low lane and zeroes the high
// lane.
func LoadlEpi64(mem []byte) lanes.I64x2 {
	return lanes.I64x2{int64(binary.LittleEndian.Uint64(mem)), 0}
}

// StoreSi128 writes the 16 bytes of a to mem.
func StoreSi128(mem []byte, a lanes.V128) {
	_ = mem[lanes.Width-1]
	copy(mem, a[:])
}

// StoreuSi128 is StoreSi128.
func StoreuSi128(mem []byte, a lanes.V128) { StoreSi128(mem, a) }

// StorelEpi64 writes the low 8 bytes of a to mem and leaves the rest of mem
// untouched.
func StorelEpi64(mem []byte, a lanes.V128) {
	binary.LittleEndian.PutUint64(mem, a.Low())
}

// MaskmoveuSi128 writes byte i of a to mem[i] for every i whose mask byte has
// its high bit set. Other bytes of mem are left as they were.
func MaskmoveuSi128(a, mask lanes.I8x16, mem []byte) {
	_ = mem[lanes.Width-1]
	for i, m := range mask {
		if m < 0 {
			mem[i] = byte(a[i])
		}
	}
}

// LoadPd reads two float64 values from mem.
func LoadPd(mem []float64) lanes.F64x2 { return lanes.LoadF64x2(mem) }

// LoaduPd is LoadPd.
func LoaduPd(mem []float64) lanes.F64x2 { return LoadPd(mem) }

// StorePd writes both lanes of a to mem.
func StorePd(mem []float64, a lanes.F64x2) { a.Store(mem) }

// StoreuPd is StorePd.
func StoreuPd(mem []float64, a lanes.F64x2) { StorePd(mem, a) }
