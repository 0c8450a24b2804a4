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

// elemKind classifies how a lane is written to and read from bytes.
type elemKind int

const (
	kindSigned elemKind = iota
	kindUnsigned
	kindFloat
)

// vectorSpec describes one generated 128-bit vector type.
type vectorSpec struct {
	Name string // I32x4
	Elem string // int32
	Kind elemKind
	Bits int // lane width in bits
}

// Lanes returns the lane count.
func (s vectorSpec) Lanes() int {
	return 128 / s.Bits
}

// Bytes returns the lane width in bytes.
func (s vectorSpec) Bytes() int {
	return s.Bits / 8
}

// vectorSpecs lists the vector types in the order they are emitted.
var vectorSpecs = []vectorSpec{
	{Name: "I8x16", Elem: "int8", Kind: kindSigned, Bits: 8},
	{Name: "U8x16", Elem: "uint8", Kind: kindUnsigned, Bits: 8},
	{Name: "I16x8", Elem: "int16", Kind: kindSigned, Bits: 16},
	{Name: "U16x8", Elem: "uint16", Kind: kindUnsigned, Bits: 16},
	{Name: "I32x4", Elem: "int32", Kind: kindSigned, Bits: 32},
	{Name: "U32x4", Elem: "uint32", Kind: kindUnsigned, Bits: 32},
	{Name: "I64x2", Elem: "int64", Kind: kindSigned, Bits: 64},
	{Name: "U64x2", Elem: "uint64", Kind: kindUnsigned, Bits: 64},
	{Name: "F32x4", Elem: "float32", Kind: kindFloat, Bits: 32},
	{Name: "F64x2", Elem: "float64", Kind: kindFloat, Bits: 64},
}

// emitVectors writes the body of lanes/vectors.gen.go.
func emitVectors(buf *bytes.Buffer) {
	writeFileHeader(buf, "lanes")
	fmt.Fprintf(buf, "import (\n\t\"encoding/binary\"\n\t\"fmt\"\n\t\"math\"\n)\n")
	for _, s := range vectorSpecs {
		emitVector(buf, s)
	}
}

func emitVector(buf *bytes.Buffer, s vectorSpec) {
	n := s.Lanes()
	params := lo.Map(lo.Range(n), func(i int, _ int) string {
		return fmt.Sprintf("e%d", i)
	})
	splat := lo.Map(lo.Range(n), func(int, int) string { return "x" })

	fmt.Fprintf(buf, "\n// %s holds %d lanes of %s.\n", s.Name, n, s.Elem)
	fmt.Fprintf(buf, "type %s [%d]%s\n", s.Name, n, s.Elem)

	fmt.Fprintf(buf, "\n// %sLanes is the lane count of %s.\n", s.Name, s.Name)
	fmt.Fprintf(buf, "const %sLanes = %d\n", s.Name, n)

	fmt.Fprintf(buf, "\n// New%s returns a vector with lane i set to ei.\n", s.Name)
	fmt.Fprintf(buf, "func New%s(%s %s) %s {\n", s.Name, strings.Join(params, ", "), s.Elem, s.Name)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", s.Name, strings.Join(params, ", "))

	fmt.Fprintf(buf, "\n// Splat%s returns a vector with every lane set to x.\n", s.Name)
	fmt.Fprintf(buf, "func Splat%s(x %s) %s {\n", s.Name, s.Elem, s.Name)
	fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", s.Name, strings.Join(splat, ", "))

	fmt.Fprintf(buf, "\n// Zero%s returns the all-zero vector.\n", s.Name)
	fmt.Fprintf(buf, "func Zero%s() %s {\n\treturn %s{}\n}\n", s.Name, s.Name, s.Name)

	fmt.Fprintf(buf, "\n// Load%s copies the first %d elements of s. It panics if s is shorter.\n", s.Name, n)
	fmt.Fprintf(buf, "func Load%s(s []%s) %s {\n", s.Name, s.Elem, s.Name)
	fmt.Fprintf(buf, "\t_ = s[%d]\n\tvar v %s\n\tcopy(v[:], s)\n\treturn v\n}\n", n-1, s.Name)

	fmt.Fprintf(buf, "\n// Store copies the %d lanes of v into dst. It panics if dst is shorter.\n", n)
	fmt.Fprintf(buf, "func (v %s) Store(dst []%s) {\n", s.Name, s.Elem)
	fmt.Fprintf(buf, "\t_ = dst[%d]\n\tcopy(dst, v[:])\n}\n", n-1)

	fmt.Fprintf(buf, "\n// Extract returns lane i. It panics unless 0 <= i < %d.\n", n)
	fmt.Fprintf(buf, "func (v %s) Extract(i int) %s {\n\treturn v[i]\n}\n", s.Name, s.Elem)

	fmt.Fprintf(buf, "\n// Replace returns a copy of v with lane i set to x. It panics unless 0 <= i < %d.\n", n)
	fmt.Fprintf(buf, "func (v %s) Replace(i int, x %s) %s {\n\tv[i] = x\n\treturn v\n}\n", s.Name, s.Elem, s.Name)

	fmt.Fprintf(buf, "\n// Bits returns the little-endian byte image of v.\n")
	fmt.Fprintf(buf, "func (v %s) Bits() V128 {\n\tvar b V128\n\tfor i, x := range v {\n", s.Name)
	fmt.Fprintf(buf, "\t\t%s\n\t}\n\treturn b\n}\n", putLane(s))

	fmt.Fprintf(buf, "\n// As%s reinterprets the bits of b as %s.\n", s.Name, s.Name)
	fmt.Fprintf(buf, "func (b V128) As%s() %s {\n\tvar v %s\n\tfor i := range v {\n", s.Name, s.Name, s.Name)
	fmt.Fprintf(buf, "\t\tv[i] = %s\n\t}\n\treturn v\n}\n", getLane(s))

	fmt.Fprintf(buf, "\n// String formats the lanes of v, lane 0 first.\n")
	fmt.Fprintf(buf, "func (v %s) String() string {\n\treturn fmt.Sprint([%d]%s(v))\n}\n", s.Name, n, s.Elem)
}

// putLane returns the statement storing lane x at index i into b.
func putLane(s vectorSpec) string {
	if s.Bits == 8 {
		return "b[i] = byte(x)"
	}
	val := fmt.Sprintf("uint%d(x)", s.Bits)
	if s.Kind == kindFloat {
		val = fmt.Sprintf("math.Float%dbits(x)", s.Bits)
	}
	return fmt.Sprintf("binary.LittleEndian.PutUint%d(b[%d*i:], %s)", s.Bits, s.Bytes(), val)
}

// getLane returns the expression reading lane i out of b.
func getLane(s vectorSpec) string {
	if s.Bits == 8 {
		return fmt.Sprintf("%s(b[i])", s.Elem)
	}
	raw := fmt.Sprintf("binary.LittleEndian.Uint%d(b[%d*i:])", s.Bits, s.Bytes())
	if s.Kind == kindFloat {
		return fmt.Sprintf("math.Float%dfrombits(%s)", s.Bits, raw)
	}
	return fmt.Sprintf("%s(%s)", s.Elem, raw)
}
