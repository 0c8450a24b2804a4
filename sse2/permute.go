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

// Permutation patterns list one source index per destination lane. An index
// below the lane count N names a lane of the first operand; N..2N-1 name a
// lane of the second. A zero fill is expressed by passing a zero vector as
// one of the operands.
type (
	Pattern16 [16]uint8
	Pattern8  [8]uint8
	Pattern4  [4]uint8
	Pattern2  [2]uint8
)

func shuffle16[V ~[16]T, T lanes.Element](a, b V, p Pattern16) V {
	var r V
	for j, i := range p {
		if i < 16 {
			r[j] = a[i]
		} else {
			r[j] = b[i-16]
		}
	}
	return r
}

func shuffle8[V ~[8]T, T lanes.Element](a, b V, p Pattern8) V {
	var r V
	for j, i := range p {
		if i < 8 {
			r[j] = a[i]
		} else {
			r[j] = b[i-8]
		}
	}
	return r
}

func shuffle4[V ~[4]T, T lanes.Element](a, b V, p Pattern4) V {
	var r V
	for j, i := range p {
		if i < 4 {
			r[j] = a[i]
		} else {
			r[j] = b[i-4]
		}
	}
	return r
}

func shuffle2[V ~[2]T, T lanes.Element](a, b V, p Pattern2) V {
	var r V
	for j, i := range p {
		if i < 2 {
			r[j] = a[i]
		} else {
			r[j] = b[i-2]
		}
	}
	return r
}
