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

package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// byteShiftClasses is the number of distinguishable normalized byte-shift
// distances: 0 through 15, plus 16 for every out-of-range count.
const byteShiftClasses = 17

// leftShiftPattern returns the 16 source indices for a left byte shift by k
// over the operand pair (zero, a).
func leftShiftPattern(k int) []int {
	return lo.Map(lo.Range(16), func(j int, _ int) int {
		return 16 - k + j
	})
}

// rightShiftPattern returns the 16 source indices for a right byte shift by k
// over the operand pair (a, zero).
func rightShiftPattern(k int) []int {
	return lo.Map(lo.Range(16), func(j int, _ int) int {
		return j + k
	})
}

// emitByteShift writes the body of sse2/byteshift.gen.go.
func emitByteShift(buf *bytes.Buffer) {
	writeFileHeader(buf, "sse2")

	fmt.Fprintf(buf, "\n// byteShiftLeftPatterns[k] shuffles (zero, a) so that destination byte j\n")
	fmt.Fprintf(buf, "// reads source index 16-k+j. The low k bytes come from zero.\n")
	emitPatternTable(buf, "byteShiftLeftPatterns", leftShiftPattern)

	fmt.Fprintf(buf, "\n// byteShiftRightPatterns[k] shuffles (a, zero) so that destination byte j\n")
	fmt.Fprintf(buf, "// reads source index j+k. The high k bytes come from zero.\n")
	emitPatternTable(buf, "byteShiftRightPatterns", rightShiftPattern)
}

func emitPatternTable(buf *bytes.Buffer, name string, pattern func(k int) []int) {
	fmt.Fprintf(buf, "var %s = [byteShiftClasses]Pattern16{\n", name)
	for _, k := range lo.Range(byteShiftClasses) {
		idx := lo.Map(pattern(k), func(x int, _ int) string {
			return fmt.Sprint(x)
		})
		fmt.Fprintf(buf, "\t// shift by %d\n", k)
		fmt.Fprintf(buf, "\t{%s},\n", strings.Join(idx, ", "))
	}
	fmt.Fprintf(buf, "}\n")
}
