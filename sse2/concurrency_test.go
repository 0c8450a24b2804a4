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
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-sse2/lanes"
)

// TestConcurrentDispatch runs the byte-shift and shuffle dispatch from many
// goroutines at once and checks every result against a serial run. Run with
// -race to check the shared pattern tables are only read.
func TestConcurrentDispatch(t *testing.T) {
	a := counting()
	v := lanes.NewI32x4(5, 10, 15, 20)

	var wantShift [2][byteShiftClasses]lanes.V128
	for d := range int32(byteShiftClasses) {
		wantShift[0][d] = SlliSi128(a, d)
		wantShift[1][d] = SrliSi128(a, d)
	}
	var wantShuffle [256]lanes.I32x4
	for c := range int32(256) {
		wantShuffle[c] = ShuffleEpi32(v, c)
	}

	var g errgroup.Group
	g.SetLimit(4 * runtime.GOMAXPROCS(0))
	for w := range 64 {
		g.Go(func() error {
			for i := range 1000 {
				d := int32((w + i) % byteShiftClasses)
				if got := SlliSi128(a, d); got != wantShift[0][d] {
					return fmt.Errorf("worker %d: SlliSi128(%d) = %s, want %s", w, d, got, wantShift[0][d])
				}
				if got := SrliSi128(a, d); got != wantShift[1][d] {
					return fmt.Errorf("worker %d: SrliSi128(%d) = %s, want %s", w, d, got, wantShift[1][d])
				}
				c := int32((w*31 + i) & 0xFF)
				if got := ShuffleEpi32(v, c); got != wantShuffle[c] {
					return fmt.Errorf("worker %d: ShuffleEpi32(%#02x) = %v, want %v", w, c, got, wantShuffle[c])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
